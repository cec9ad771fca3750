package state

// DirEntry is a single (inumber, name) binding held by a directory inode.
// An entry with Inumber == Free is empty and reusable.
type DirEntry struct {
	Inumber int
	Name    string
}

// dirData is the bounded entry array backing a DIRECTORY inode, mirroring
// operations.c's DirEntry[MAX_DIR_ENTRIES] payload.
type dirData struct {
	entries [MaxDirEntries]DirEntry
}

func newDirData() *dirData {
	d := &dirData{}
	for i := range d.entries {
		d.entries[i].Inumber = Free
	}
	return d
}

// find returns the inumber bound to name, or Free if no entry matches.
// Mirrors operations.c's lookup_sub_node.
func (d *dirData) find(name string) int {
	for i := range d.entries {
		if d.entries[i].Inumber != Free && d.entries[i].Name == name {
			return d.entries[i].Inumber
		}
	}
	return Free
}

// add binds name to inumber in the first free slot. Returns false if the
// directory is full. Mirrors operations.c's dir_add_entry.
func (d *dirData) add(inumber int, name string) bool {
	for i := range d.entries {
		if d.entries[i].Inumber == Free {
			d.entries[i] = DirEntry{Inumber: inumber, Name: name}
			return true
		}
	}
	return false
}

// reset clears the entry bound to inumber. Mirrors operations.c's
// dir_reset_entry.
func (d *dirData) reset(inumber int) bool {
	for i := range d.entries {
		if d.entries[i].Inumber == inumber {
			d.entries[i] = DirEntry{Inumber: Free}
			return true
		}
	}
	return false
}

// isEmpty reports whether every entry is Free. Mirrors operations.c's
// is_dir_empty.
func (d *dirData) isEmpty() bool {
	for i := range d.entries {
		if d.entries[i].Inumber != Free {
			return false
		}
	}
	return true
}

// liveEntries returns a snapshot of the live (non-Free) entries in array
// order, the order the tree printer and directory listings walk them in.
func (d *dirData) liveEntries() []DirEntry {
	out := make([]DirEntry, 0, MaxDirEntries)
	for i := range d.entries {
		if d.entries[i].Inumber != Free {
			out = append(out, d.entries[i])
		}
	}
	return out
}
