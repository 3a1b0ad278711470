// Package builder generates deterministic boards (path, cycle, grid, star,
// complete graph) for tests, benchmarks and the boardgen tool.
//
// Every constructor validates its size first, creates the board with the
// configured token counts and turn budget, then emits vertices in ascending
// index order and edges in a documented, stable order. The same inputs
// always produce the same board, byte for byte once written.
//
// Options:
//
//   - WithCops(n), WithRobbers(n): token counts (default 1 each).
//   - WithMaxTurn(n): gameplay turn budget (default DefaultMaxTurn).
//
// A negative value is recorded and surfaced as ErrOptionViolation by
// BuildBoard.
package builder
