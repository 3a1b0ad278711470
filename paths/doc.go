// Package paths precomputes all-pairs shortest paths over a board.Board and
// answers distance, next-hop and route queries in O(1) / O(length).
//
// What
//
//   - FloydWarshall builds a Table holding two n×n row-major matrices:
//     dist (edge count of a shortest path, Unreachable when none exists) and
//     next (first vertex after u on a shortest path u→v, NoHop when none).
//   - Distance, Next, Path and Reachable read the Table; it is never mutated
//     after construction and may be shared across goroutines.
//   - BFS and Components provide single-source levels and connected
//     components over the same adjacency, for diagnostics and cross-checks.
//
// Determinism
//
//	The relaxation loop order is fixed (w → u → v) and only strict
//	improvements are applied, so among equally short routes the one found
//	first under ascending intermediate vertex w wins. Path reconstruction is
//	therefore reproducible bit for bit.
//
// Staleness
//
//	A Table is a snapshot. Adding edges to the Board afterwards is not
//	detected; recompute instead.
//
// Complexity
//
//   - FloydWarshall: Time O(n³), Memory O(n²).
//   - Distance / Next / Reachable: O(1).
//   - Path: O(path length).
//   - BFS / Components: O(n + m).
package paths
