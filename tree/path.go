// Package tree implements the concurrent namespace engine (C4 path
// resolver, C5 namespace operations, C7 tree printer) on top of the
// inode table in package state.
package tree

import (
	"strings"

	"github.com/RicardoMartins55/tecnico-filesystem/state"
)

// Engine is a namespace rooted at state.Root. Create, Delete, Lookup and
// Move are safe to call concurrently from many goroutines. Print takes no
// per-inode locks and is not safe to run concurrently with Create, Delete
// or Move.
type Engine struct {
	table *state.Table
}

// New builds an Engine with a freshly allocated root directory.
func New() *Engine {
	return &Engine{table: state.NewTable()}
}

// lockRecord remembers which mode this operation acquired a given
// inode's lock in, so it can be released correctly and exactly once.
type lockRecord struct {
	inumber int
	write   bool
}

// held is the caller-owned, duplicate-free set of locks acquired during a
// single operation (spec.md C4/C5: "held"). Its zero value is ready to use.
type held []lockRecord

func (h *held) contains(inumber int) bool {
	for _, r := range *h {
		if r.inumber == inumber {
			return true
		}
	}
	return false
}

func (h *held) acquire(e *Engine, inumber int, write bool) {
	if h.contains(inumber) {
		return
	}
	n := e.table.Inode(inumber)
	if write {
		n.LockWrite()
	} else {
		n.LockRead()
	}
	*h = append(*h, lockRecord{inumber: inumber, write: write})
}

// unlockAll releases every lock this operation acquired, exactly once
// each, in reverse acquisition order. Every exported Engine method calls
// this on every return path, success or failure.
func (h held) unlockAll(e *Engine) {
	for i := len(h) - 1; i >= 0; i-- {
		r := h[i]
		n := e.table.Inode(r.inumber)
		if r.write {
			n.UnlockWrite()
		} else {
			n.UnlockRead()
		}
	}
}

// splitPath tokenizes a '/'-separated path into its components, treating
// any run of slashes (leading, trailing, or repeated) as a single
// separator. An empty string or "/" yields no components, i.e. root.
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// splitParentChild splits path into its parent path and final component,
// mirroring operations.c's split_parent_child_from_path. An empty parent
// means "the root directory".
func splitParentChild(path string) (parent, child string) {
	trimmed := strings.Trim(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx == -1 {
		return "", trimmed
	}
	return trimmed[:idx], trimmed[idx+1:]
}

// traverse descends from root to the node named by path, appending every
// lock it acquires to h (C4). Interior nodes are locked read; the
// terminal node is locked write unless isLookup is true. It returns the
// resolved inumber, or (state.Free, false) if any component fails to
// resolve — whatever locks were already acquired remain in h for the
// caller to release.
func (e *Engine) traverse(path string, isLookup bool, h *held) (int, bool) {
	components := splitPath(path)

	current := state.Root
	h.acquire(e, current, len(components) == 0 && !isLookup)

	for i, name := range components {
		node := e.table.Inode(current)
		if node.Type() != state.TDirectory {
			return state.Free, false
		}
		next := node.Find(name)
		if next == state.Free {
			return state.Free, false
		}

		terminal := i == len(components)-1
		h.acquire(e, next, terminal && !isLookup)
		current = next
	}

	return current, true
}
