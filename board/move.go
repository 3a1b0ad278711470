package board

import "fmt"

// IsValidMove reports whether a token may go from src to dst in one turn:
// it either stays (src == dst) or follows one edge of src's adjacency list.
// A nil board or an index outside [0, Size()) is never a valid move.
// Complexity: O(deg(src)).
func (b *Board) IsValidMove(src, dst int) bool {
	return b.CheckMove(src, dst) == nil
}

// CheckMove is IsValidMove with the reason for rejection:
// ErrNilBoard, ErrOutOfRange or ErrNotAdjacent.
func (b *Board) CheckMove(src, dst int) error {
	if b == nil {
		return ErrNilBoard
	}
	if !b.Contains(src) || !b.Contains(dst) {
		return fmt.Errorf("move %d→%d with size %d: %w", src, dst, len(b.vertices), ErrOutOfRange)
	}
	if src == dst {
		return nil
	}
	for _, nb := range b.adjacency(src) {
		if nb == dst {
			return nil
		}
	}

	return fmt.Errorf("move %d→%d: %w", src, dst, ErrNotAdjacent)
}
