package paths

import "fmt"

// index validates (u,v) and returns the flat cell offset.
func (t *Table) index(op string, u, v int) (int, error) {
	if !t.computed() {
		return 0, fmt.Errorf("%s(%d, %d): %w", op, u, v, ErrNotComputed)
	}
	if u < 0 || u >= t.n || v < 0 || v >= t.n {
		return 0, fmt.Errorf("%s(%d, %d) with size %d: %w", op, u, v, t.n, ErrOutOfRange)
	}
	return u*t.n + v, nil
}

// Distance returns the number of edges on a shortest u→v path, or
// Unreachable when none exists.
func (t *Table) Distance(u, v int) (int, error) {
	i, err := t.index("Distance", u, v)
	if err != nil {
		return 0, err
	}
	return t.dist[i], nil
}

// Next returns the vertex following u on a shortest u→v path (u itself when
// u == v), or NoHop when v is unreachable from u.
func (t *Table) Next(u, v int) (int, error) {
	i, err := t.index("Next", u, v)
	if err != nil {
		return 0, err
	}
	return t.next[i], nil
}

// Reachable reports whether a path joins u and v. Invalid queries report false.
func (t *Table) Reachable(u, v int) bool {
	d, err := t.Distance(u, v)
	return err == nil && d != Unreachable
}

// Path reconstructs a shortest u→v route, both endpoints included.
// Errors: ErrNotComputed, ErrOutOfRange, ErrNoPath.
// Complexity: O(Distance(u, v)).
func (t *Table) Path(u, v int) ([]int, error) {
	d, err := t.Distance(u, v)
	if err != nil {
		return nil, err
	}
	if d == Unreachable {
		return nil, fmt.Errorf("Path(%d, %d): %w", u, v, ErrNoPath)
	}

	route := make([]int, 0, d+1)
	route = append(route, u)
	for cur := u; cur != v; {
		cur = t.next[cur*t.n+v]
		route = append(route, cur)
	}

	return route, nil
}
