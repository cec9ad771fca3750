package tree

import (
	"strings"

	"github.com/RicardoMartins55/tecnico-filesystem/state"
)

// normalize reduces path to a canonical "/"-rooted form so two paths can
// be compared structurally (used for the self-containment check and the
// from == to check), independent of repeated or trailing slashes.
func normalize(path string) string {
	return "/" + strings.Join(splitPath(path), "/")
}

// Move relocates the inode at from to to, possibly renaming it in the
// process (C5 4.4.4). from and to may share a parent, be siblings, or be
// ancestor/descendant of one another; only the self-containment case
// (moving a directory inside itself) is rejected.
func (e *Engine) Move(from, to string) int {
	parentFromPath, childFrom := splitParentChild(from)
	parentToPath, childTo := splitParentChild(to)

	normFrom := normalize(from)
	normTo := normalize(to)

	// Per spec.md §9's resolution of the from == to open question: both
	// identical paths and empty destination names fail outright, before
	// any traversal or locking.
	if normFrom == normTo {
		return Fail
	}
	if !validName(childTo) {
		return Fail
	}
	// Self-containment: reject moving a directory inside its own
	// subtree. Checked on '/'-aligned boundaries, not a raw substring
	// test, so e.g. "/ab" is not considered to contain "/abc".
	if strings.HasPrefix(normTo, normFrom+"/") {
		return Fail
	}

	var h held
	defer h.unlockAll(e)

	// Lexicographic-on-parent-path ordering (§4.4.4): traverse the
	// smaller-or-equal parent path first. This is a total order across
	// all concurrent Move calls, so it can never deadlock against
	// another Move doing the same thing. When the two parent paths are
	// equal, the second traversal finds everything already in h and
	// acquires no new lock.
	var parentFromInumber, parentToInumber int
	var fromOK, toOK bool
	if parentFromPath > parentToPath {
		parentToInumber, toOK = e.traverse(parentToPath, false, &h)
		parentFromInumber, fromOK = e.traverse(parentFromPath, false, &h)
	} else {
		parentFromInumber, fromOK = e.traverse(parentFromPath, false, &h)
		parentToInumber, toOK = e.traverse(parentToPath, false, &h)
	}

	if !fromOK || !toOK {
		return Fail
	}

	parentFrom := e.table.Inode(parentFromInumber)
	parentTo := e.table.Inode(parentToInumber)
	if parentFrom.Type() != state.TDirectory || parentTo.Type() != state.TDirectory {
		return Fail
	}

	childFromInumber := parentFrom.Find(childFrom)
	if childFromInumber == Fail {
		return Fail
	}

	h.acquire(e, childFromInumber, true)

	if parentTo.Find(childTo) != Fail {
		return Fail
	}

	if !parentFrom.Remove(childFromInumber) {
		return Fail
	}
	if !parentTo.Add(childFromInumber, childTo) {
		// Compensating reinsertion: restore the pre-call state before
		// reporting failure, per §4.4.4's "Rewire" step.
		parentFrom.Add(childFromInumber, childFrom)
		return Fail
	}

	return Success
}
