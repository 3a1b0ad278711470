package paths

import (
	"fmt"

	"github.com/katalvlaran/copsrobbers/board"
)

// BFSResult holds a single-source breadth-first traversal:
//   - Order: vertices in visit sequence.
//   - Depth: Depth[v] is the edge count from the source, -1 if unreached.
//   - Parent: Parent[v] is v's predecessor in the BFS tree, -1 for the
//     source and for unreached vertices.
type BFSResult struct {
	Source int
	Order  []int
	Depth  []int
	Parent []int
}

// PathTo reconstructs source→dest from the Parent links.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrOutOfRange)
	}
	if r.Depth[dest] < 0 {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNoPath)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i, cur = i-1, r.Parent[cur] {
		path[i] = cur
	}

	return path, nil
}

// walker encapsulates mutable BFS state.
type walker struct {
	board *board.Board
	queue []int
	res   *BFSResult
}

// BFS explores b from src in adjacency order.
// Errors: ErrNilBoard, ErrOutOfRange.
// Complexity: O(n + m).
func BFS(b *board.Board, src int) (*BFSResult, error) {
	if b == nil {
		return nil, fmt.Errorf("BFS: %w", ErrNilBoard)
	}
	if !b.Contains(src) {
		return nil, fmt.Errorf("BFS(%d) with size %d: %w", src, b.Size(), ErrOutOfRange)
	}

	n := b.Size()
	w := &walker{
		board: b,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Source: src,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(src, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(v, depth, parent int) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, cur)

		nbrs, err := w.board.Neighbors(cur)
		if err != nil {
			return fmt.Errorf("BFS: neighbors of %d: %w", cur, err)
		}
		for _, nb := range nbrs {
			if w.res.Depth[nb] < 0 {
				w.enqueue(nb, w.res.Depth[cur]+1, cur)
			}
		}
	}
	return nil
}

// Components partitions b's vertices into connected components.
// Components are ordered by their smallest vertex; members appear in BFS
// visit order from that vertex. A nil board has no components.
func Components(b *board.Board) [][]int {
	if b == nil {
		return nil
	}
	n := b.Size()
	seen := make([]bool, n)
	var out [][]int
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		res, err := BFS(b, v)
		if err != nil {
			// v is in range and the board is non-nil; BFS cannot fail here.
			continue
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}

	return out
}
