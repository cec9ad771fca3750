package state

import "sync"

// Table is the fixed-capacity inode table (C1): InodeTableSize slots,
// indexed by inumber, with deterministic lowest-free-index allocation.
type Table struct {
	// allocMu guards the FREE <-> allocated transition of every slot's
	// Type field. It is held only for the duration of a scan-and-mark,
	// never across the caller's own per-inode locking of the
	// content — those are guarded by each Inode's own rwLock.
	allocMu sync.Mutex
	slots   [InodeTableSize]Inode
}

// NewTable builds an empty table and allocates the root directory at
// inumber Root, matching operations.c's init_fs.
func NewTable() *Table {
	t := &Table{}
	for i := range t.slots {
		t.slots[i].typ = TFree
	}
	root := t.Create(TDirectory)
	if root != Root {
		panic("state: root inode did not land at the fixed root inumber")
	}
	return t
}

// Inode returns the slot for inumber. The caller is responsible for
// locking it before reading or mutating its contents.
func (t *Table) Inode(inumber int) *Inode {
	return &t.slots[inumber]
}

// Create allocates the lowest-indexed free slot as typ and returns its
// inumber, or Free if the table is exhausted. Mirrors operations.c's
// inode_create.
func (t *Table) Create(typ Type) int {
	t.allocMu.Lock()
	defer t.allocMu.Unlock()

	for i := range t.slots {
		if t.slots[i].typ == TFree {
			t.slots[i].reset(typ)
			return i
		}
	}
	return Free
}

// Delete marks inumber's slot FREE. The caller must already hold inumber's
// write lock and its parent's write lock (per spec invariant 3/4); Delete
// itself only touches the allocation bookkeeping. Mirrors operations.c's
// inode_delete.
func (t *Table) Delete(inumber int) {
	t.allocMu.Lock()
	defer t.allocMu.Unlock()
	t.slots[inumber].reset(TFree)
}
