package state

// Size limits for the inode table, directories, names and wire requests.
// The names follow the original tecnicofs C implementation's state.h
// constants (inferred from fs/operations.c's usage of them, since the
// header itself never made it into the retrieval pack). InodeTableSize and
// MaxDirEntries are sized so that the root directory can hold 64 sibling
// files, the fan-out of the concurrent-create tests.
const (
	// InodeTableSize is the number of inode slots in the table.
	InodeTableSize = 128

	// MaxDirEntries bounds the number of (inumber, name) bindings a
	// single directory inode can hold.
	MaxDirEntries = 64

	// MaxFileName bounds a single path component, including the
	// terminating NUL the C implementation reserved space for.
	MaxFileName = 40

	// MaxPathInodeLength is the C implementation's bound on how many
	// inodes a single path traversal can lock: root plus one per
	// '/'-separated component. The Go path resolver does not consult it;
	// its held set grows with the depth of the path.
	MaxPathInodeLength = MaxFileName/2 + 1

	// MaxInputSize bounds a single wire request, matching main.c's
	// "#define MAX_INPUT_SIZE 100".
	MaxInputSize = 100
)

// Root is the fixed inumber of the root directory.
const Root = 0

// Free marks an unallocated inode slot, an empty directory entry, and is
// also the universal FAIL sentinel returned by operations.
const Free = -1

// Type identifies what kind of node an inode slot holds.
type Type int

const (
	// TFree marks the slot as not currently allocated.
	TFree Type = iota
	TFile
	TDirectory
)

func (t Type) String() string {
	switch t {
	case TFile:
		return "f"
	case TDirectory:
		return "d"
	default:
		return "free"
	}
}
