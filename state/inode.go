package state

// Inode is one slot of the table (C1): a type tag, an optional directory
// payload, and the reader-writer lock (C2) that guards both. Every access
// to Type or the directory payload must happen with lock held in an
// appropriate mode — package tree is the only caller that is allowed to
// take these locks, via the path resolver's lock coupling.
type Inode struct {
	lock rwLock

	// typ and dir are guarded by lock. typ is TFree for an
	// unallocated slot.
	typ Type
	dir *dirData
}

// LockRead acquires the inode's lock in read mode.
func (n *Inode) LockRead() { n.lock.LockRead() }

// UnlockRead releases a read-mode acquisition.
func (n *Inode) UnlockRead() { n.lock.UnlockRead() }

// LockWrite acquires the inode's lock in write mode.
func (n *Inode) LockWrite() { n.lock.LockWrite() }

// UnlockWrite releases a write-mode acquisition.
func (n *Inode) UnlockWrite() { n.lock.UnlockWrite() }

// TryLockWrite attempts to acquire the write lock without blocking.
func (n *Inode) TryLockWrite() bool { return n.lock.TryLockWrite() }

// Type returns the inode's type. Caller must hold the lock in any mode.
func (n *Inode) Type() Type {
	return n.typ
}

// Find returns the inumber bound to name in this directory, or Free if
// absent. Caller must hold the lock in any mode and n.Type() must be
// TDirectory.
func (n *Inode) Find(name string) int {
	return n.dir.find(name)
}

// Add binds name to childInumber in this directory. Returns false if the
// directory is full or not a directory. Caller must hold the write lock.
func (n *Inode) Add(childInumber int, name string) bool {
	if n.typ != TDirectory {
		return false
	}
	return n.dir.add(childInumber, name)
}

// Remove clears the entry bound to childInumber. Caller must hold the
// write lock.
func (n *Inode) Remove(childInumber int) bool {
	if n.typ != TDirectory {
		return false
	}
	return n.dir.reset(childInumber)
}

// IsEmptyDir reports whether a directory inode has no live entries.
// Caller must hold the lock in any mode.
func (n *Inode) IsEmptyDir() bool {
	return n.typ == TDirectory && n.dir.isEmpty()
}

// Entries returns a snapshot of the directory's live entries in array
// order. Caller must hold the lock in any mode.
func (n *Inode) Entries() []DirEntry {
	if n.typ != TDirectory {
		return nil
	}
	return n.dir.liveEntries()
}

// reset reinitializes the slot for (re)allocation as typ. Caller must hold
// the table's allocation lock; it does not itself take n's rwLock, since a
// freshly allocated or freed slot has no concurrent readers/writers yet.
func (n *Inode) reset(typ Type) {
	n.typ = typ
	if typ == TDirectory {
		n.dir = newDirData()
	} else {
		n.dir = nil
	}
}
