// Package game runs one Cops and Robbers match between the local engine and
// an external adversary.
//
// A Game owns the token positions of both roles, the remaining-turn counter
// and the role played locally. Every Step is one iteration of the turn loop:
//
//	PLACEMENT(cops) → PLACEMENT(robbers) → TURN(cops) ↔ TURN(robbers) → TERMINATED
//
//   - The match starts with remaining = MaxTurn + 2 (one tick per placement)
//     and cops to move.
//   - Local role: placement is deterministic (cops on 0..k-1, robbers on
//     Size()-1 downwards); later turns come from the Strategy. The positions
//     are validated and then written through the Exchange.
//   - External role: the Exchange supplies one position per remaining token.
//     During placement any in-range vertex is accepted; afterwards every token
//     must satisfy board.CheckMove. One bad token rejects the whole list and
//     aborts the match with a *MoveError; nothing is applied.
//   - After each update the capture rule removes every robber that shares a
//     vertex with a cop, keeping the order of the survivors.
//   - The turn flips and remaining decrements once per iteration.
//   - The match ends with CopsWin when no robber is left, or RobbersWin when
//     remaining reaches 0 first.
//
// Diagnostics ("Initial positions for cops", "Turn for robbers (remaining: 3)",
// "Captured robber at position 2", "Cops win!") go to the *log.Logger from
// WithLogger and never to the Exchange.
//
// A Game is single-threaded; the only blocking point is Exchange.ReadPositions.
package game
