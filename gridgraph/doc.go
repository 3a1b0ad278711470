// Package gridgraph turns a 2D terrain map into a game board.
//
// What:
//
//   - Terrain holds a rectangular map of cell levels.
//   - Cells whose level reaches the floor (WithFloor, default 1) are
//     walkable and become board vertices; everything else is a wall.
//   - Walkable cells are joined orthogonally, or also diagonally with
//     WithDiagonals.
//   - ParseMap reads a text map ('#' wall, '.' floor, digits as levels).
//   - WithTokens and WithMaxTurn set the board header.
//
// Vertex numbering:
//
//   - Walkable cells are numbered in row-major order, skipping walls, and
//     carry the payload "x y".
//   - Each cell lists edges to forward neighbors only (E, S; E, SE, S, SW
//     with diagonals), so every pair appears once.
//
// Complexity:
//
//   - NewTerrain, ParseMap: O(W×H).
//   - Terrain.Board:        O(W×H×d), d = 2 or 4 forward steps.
//
// Errors:
//
//   - ErrEmptyMap: no rows or no columns.
//   - ErrRaggedRows: rows have differing lengths.
//   - ErrBadGlyph: ParseMap met a character it does not know.
//   - ErrNoLand: Terrain.Board found no walkable cell.
package gridgraph
