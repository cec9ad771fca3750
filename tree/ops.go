package tree

import "github.com/RicardoMartins55/tecnico-filesystem/state"

// Success and Fail are the two status codes every namespace operation
// (other than Lookup, which returns an inumber) can return, matching
// spec.md §7's closed {SUCCESS, FAIL} contract. Fail reuses state.Free
// (-1), the same sentinel used for empty directory entries and
// unallocated slots.
const (
	Success = 0
	Fail    = state.Free
)

// validName reports whether name is a legal single path component: not
// empty and within MaxFileName bytes.
func validName(name string) bool {
	return name != "" && len(name) < state.MaxFileName
}

// Create adds a new inode of typ at path (C5 4.4.1). The parent
// directory must already exist and must not already contain an entry
// with the new node's name.
func (e *Engine) Create(path string, typ state.Type) int {
	parentPath, childName := splitParentChild(path)
	if !validName(childName) {
		return Fail
	}

	var h held
	defer h.unlockAll(e)

	parentInumber, ok := e.traverse(parentPath, false, &h)
	if !ok {
		return Fail
	}

	parent := e.table.Inode(parentInumber)
	if parent.Type() != state.TDirectory {
		return Fail
	}
	if parent.Find(childName) != state.Free {
		return Fail
	}

	childInumber := e.table.Create(typ)
	if childInumber == state.Free {
		return Fail
	}
	if !parent.Add(childInumber, childName) {
		// Parent directory is full; give back the inode we just
		// allocated rather than leaking the slot.
		e.table.Delete(childInumber)
		return Fail
	}

	return Success
}

// Delete removes the inode at path (C5 4.4.2). A non-empty directory
// cannot be deleted.
func (e *Engine) Delete(path string) int {
	parentPath, childName := splitParentChild(path)

	var h held
	defer h.unlockAll(e)

	parentInumber, ok := e.traverse(parentPath, false, &h)
	if !ok {
		return Fail
	}

	parent := e.table.Inode(parentInumber)
	if parent.Type() != state.TDirectory {
		return Fail
	}

	childInumber := parent.Find(childName)
	if childInumber == state.Free {
		return Fail
	}

	h.acquire(e, childInumber, true)
	child := e.table.Inode(childInumber)

	if child.Type() == state.TDirectory && !child.IsEmptyDir() {
		return Fail
	}

	if !parent.Remove(childInumber) {
		return Fail
	}
	e.table.Delete(childInumber)

	return Success
}

// Lookup resolves path and returns its inumber, or Fail if it doesn't
// exist (C5 4.4.3). Every lock it takes while descending is released
// before it returns, so the inumber is advisory only: safe to report, not
// safe to dereference without re-resolving and re-locking.
func (e *Engine) Lookup(path string) int {
	var h held
	defer h.unlockAll(e)

	inumber, ok := e.traverse(path, true, &h)
	if !ok {
		return Fail
	}
	return inumber
}
