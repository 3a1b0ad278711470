// Package strategy provides local move policies for game.Game.
//
// Every policy implements game.Strategy and only proposes moves the engine
// accepts: each token stays or crosses one edge. Policies that need distances
// read them from View.Paths, so the Game must be built with game.WithPaths.
//
//   - Stay   keeps every token in place.
//   - Chase  moves each cop one hop along a shortest path to its nearest robber.
//   - Evade  moves each robber to the reachable vertex farthest from the cops.
//   - ByName resolves the command-line names "stay", "chase", "evade", "auto".
package strategy
