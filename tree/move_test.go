package tree

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/RicardoMartins55/tecnico-filesystem/state"
)

func TestMoveAcrossDirectories(t *testing.T) {
	e := New()
	mustCreate(t, e, "/src", state.TDirectory)
	mustCreate(t, e, "/src/f", state.TFile)
	mustCreate(t, e, "/dst", state.TDirectory)

	original := e.Lookup("/src/f")
	if original == Fail {
		t.Fatalf("setup: lookup /src/f failed")
	}

	if got := e.Move("/src/f", "/dst/f"); got != Success {
		t.Fatalf("move = %d, want Success", got)
	}
	if e.Lookup("/src/f") != Fail {
		t.Fatalf("lookup /src/f should fail after move")
	}
	if got := e.Lookup("/dst/f"); got != original {
		t.Fatalf("lookup /dst/f = %d, want original inumber %d", got, original)
	}
}

func TestMoveRenameSameDirectory(t *testing.T) {
	e := New()
	mustCreate(t, e, "/a", state.TDirectory)
	mustCreate(t, e, "/a/x", state.TFile)

	original := e.Lookup("/a/x")

	if got := e.Move("/a/x", "/a/y"); got != Success {
		t.Fatalf("move = %d, want Success", got)
	}
	if e.Lookup("/a/x") != Fail {
		t.Fatalf("lookup /a/x should fail after rename")
	}
	if e.Lookup("/a/y") != original {
		t.Fatalf("lookup /a/y should resolve to the original inumber")
	}
}

func TestMoveSelfContainmentRejected(t *testing.T) {
	e := New()
	mustCreate(t, e, "/a", state.TDirectory)
	mustCreate(t, e, "/a/b", state.TDirectory)

	before := snapshotNames(t, e, "/a")

	if got := e.Move("/a", "/a/b/a"); got != Fail {
		t.Fatalf("move onto own subtree = %d, want Fail", got)
	}

	after := snapshotNames(t, e, "/a")
	if before != after {
		t.Fatalf("state changed after rejected move: before=%q after=%q", before, after)
	}
}

func TestMoveRejectsIdenticalPaths(t *testing.T) {
	e := New()
	mustCreate(t, e, "/a", state.TFile)

	if got := e.Move("/a", "/a"); got != Fail {
		t.Fatalf("move(a, a) = %d, want Fail", got)
	}
	if e.Lookup("/a") == Fail {
		t.Fatalf("/a should still exist")
	}
}

func TestMoveOntoExistingNameFailsWithoutSideEffects(t *testing.T) {
	e := New()
	mustCreate(t, e, "/a", state.TFile)
	mustCreate(t, e, "/b", state.TFile)

	aBefore := e.Lookup("/a")
	bBefore := e.Lookup("/b")

	if got := e.Move("/a", "/b"); got != Fail {
		t.Fatalf("move onto existing name = %d, want Fail", got)
	}

	if e.Lookup("/a") != aBefore {
		t.Fatalf("/a should be unchanged")
	}
	if e.Lookup("/b") != bBefore {
		t.Fatalf("/b should be unchanged")
	}
}

func TestMoveDestinationDirectoryFullCompensates(t *testing.T) {
	e := New()
	mustCreate(t, e, "/src", state.TDirectory)
	mustCreate(t, e, "/src/f", state.TFile)
	mustCreate(t, e, "/dst", state.TDirectory)
	for i := 0; i < state.MaxDirEntries; i++ {
		mustCreate(t, e, fmt.Sprintf("/dst/x%d", i), state.TFile)
	}

	original := e.Lookup("/src/f")

	if got := e.Move("/src/f", "/dst/f"); got != Fail {
		t.Fatalf("move into full directory = %d, want Fail", got)
	}

	if e.Lookup("/src/f") != original {
		t.Fatalf("failed move should have restored /src/f")
	}
	if e.Lookup("/dst/f") != Fail {
		t.Fatalf("/dst/f should not exist after a failed move")
	}
}

// TestConcurrentMovesSameParentsDoNotDeadlock exercises the degenerate
// case called out in spec.md §4.4.4: many concurrent Move calls sharing
// identical parent paths must not deadlock against each other, because
// the second traversal finds the parent already held.
func TestConcurrentMovesSameParentsDoNotDeadlock(t *testing.T) {
	e := New()
	mustCreate(t, e, "/d", state.TDirectory)
	for i := 0; i < 8; i++ {
		mustCreate(t, e, fmt.Sprintf("/d/f%d", i), state.TFile)
	}

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			e.Move(fmt.Sprintf("/d/f%d", i), fmt.Sprintf("/d/g%d", i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 8; i++ {
		if e.Lookup(fmt.Sprintf("/d/g%d", i)) == Fail {
			t.Fatalf("/d/g%d should exist after concurrent rename", i)
		}
	}
}

func snapshotNames(t *testing.T, e *Engine, dirPath string) string {
	t.Helper()
	inumber := e.Lookup(dirPath)
	if inumber == Fail {
		t.Fatalf("snapshot: %s does not exist", dirPath)
	}
	node := e.table.Inode(inumber)
	node.LockRead()
	defer node.UnlockRead()
	return fmt.Sprintf("%v", node.Entries())
}
