// Package copsrobbers is a player for the game of Cops and Robbers on a graph.
//
// Two processes play a match: one controls the cops, the other the robbers.
// Each reads the same board description, takes turns writing its token
// positions to stdout and reads the adversary's from stdin, one integer per
// line. Cops win by landing on every robber before the turn budget runs out.
//
// Layout:
//
//	board/      Board, the board file format and the move rule
//	paths/      Floyd–Warshall path table, BFS and components
//	builder/    generated boards: path, cycle, grid, star, complete
//	gridgraph/  boards from ASCII terrain maps
//	transport/  line-oriented position exchange with read timeouts
//	game/       the turn machine: placement, moves, capture, outcome
//	strategy/   local policies: stay, chase, evade
//	record/     Parquet match logs
//	config/     flags, environment and .env
//
//	cmd/copsrobbers  the player
//	cmd/boardgen     board generator
//	cmd/matchlog     match log viewer
//	cmd/selfplay     both players in one process
//
// Quick ASCII example:
//
//	0───1───2
//
// With one cop on 0, one robber on 2 and a budget of three turns, a chasing
// cop reaches the robber on its second move.
package copsrobbers
