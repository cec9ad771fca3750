package tree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RicardoMartins55/tecnico-filesystem/state"
)

// Print serializes the reachable tree to outPath as a deterministic,
// human-readable dump (C7). It takes no per-inode locks: callers are
// expected to run it behind the dispatcher's print barrier (C6 §4.5), so
// no writer can be active concurrently. Lookup may still run concurrently,
// since it never mutates.
func (e *Engine) Print(outPath string) int {
	out, err := os.Create(outPath)
	if err != nil {
		return Fail
	}
	defer out.Close()

	e.printNode(out, state.Root, "/", 0)
	return Success
}

// printNode writes one line for the inode at inumber, named name, then
// recurses pre-order into its children in their directory-array order.
// depth controls indentation. It deliberately takes no per-inode lock:
// the dispatcher's print barrier (C6) already guarantees no writer is
// active for the duration of the whole Print call.
func (e *Engine) printNode(w io.Writer, inumber int, name string, depth int) {
	node := e.table.Inode(inumber)
	typ := node.Type()
	var entries []state.DirEntry
	if typ == state.TDirectory {
		entries = node.Entries()
	}

	fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth), tag(typ), name)

	for _, entry := range entries {
		e.printNode(w, entry.Inumber, entry.Name, depth+1)
	}
}

func tag(typ state.Type) string {
	if typ == state.TDirectory {
		return "d"
	}
	return "f"
}
