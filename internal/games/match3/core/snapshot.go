package core

// SnapshotKind tells which half of a cascade step a snapshot shows.
type SnapshotKind uint8

const (
	SnapshotCleared  SnapshotKind = iota // After removals, before gravity
	SnapshotRefilled                     // After gravity and refill
)

// String returns the string representation of a snapshot kind.
func (k SnapshotKind) String() string {
	if k == SnapshotRefilled {
		return "refilled"
	}
	return "cleared"
}

// Snapshot is a full copy of the board at one point of a move.
type Snapshot struct {
	Step  int // 1-based cascade step
	Kind  SnapshotKind
	Board *Board
}

// ClearedCells counts the empty cells of cleared snapshots across a move.
// Refilled snapshots are full and contribute nothing.
func ClearedCells(snaps []Snapshot) int {
	n := 0
	for _, s := range snaps {
		if s.Kind == SnapshotCleared {
			n += s.Board.EmptyCount()
		}
	}
	return n
}

// Steps returns the number of cascade steps in a move.
func Steps(snaps []Snapshot) int {
	return len(snaps) / 2
}
