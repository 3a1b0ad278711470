// Package board defines the static game board of a Cops and Robbers match:
// an undirected, unweighted graph together with the token counts and the
// turn budget of the match.
//
// What
//
//   - Board owns an arena of Vertex values indexed 0..Size()-1.
//     Every reference to a vertex (adjacency, token positions, matrix cells)
//     is a plain int index into that arena.
//   - Adjacency is symmetric: AddEdge(u, v) appends v to u's neighbor list and
//     u to v's neighbor list. Neighbor lists keep edge-read order and are never
//     deduplicated, so a pair listed twice appears twice.
//   - ReadFrom / LoadFile parse the line-oriented board description;
//     WriteTo serializes a Board back into the same format.
//   - IsValidMove / CheckMove implement the move rule shared by both roles:
//     a token either stays where it is or crosses exactly one edge.
//
// Board description
//
//	Cops: <uint>
//	Robbers: <uint>
//	Max turn: <uint>
//	Vertices: <uint N>
//	<N payload lines, stored verbatim and otherwise ignored>
//	Edges: <uint M>
//	<M lines of "u v", 0-indexed vertex pairs>
//
// Errors
//
//   - *ParseError wraps ErrTruncated, ErrMalformed or ErrOutOfRange and names
//     the offending line and field.
//   - ErrOutOfRange for vertex indices outside [0, Size()).
//   - ErrNotAdjacent when a move skips over more than one edge.
//
// A Board is built once per match and treated as read-only afterwards; it is
// not safe for concurrent mutation.
package board
