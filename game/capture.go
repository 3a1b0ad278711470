package game

// Capture removes every robber standing on a vertex occupied by a cop and
// returns the vertices of the robbers removed, in robber order. Survivors
// keep their relative order. Nothing happens until both roles are placed.
//
// The pass repeats until a sweep removes nothing, so calling Capture again
// without an intervening move is a no-op.
// Complexity: O(cops + robbers) per sweep.
func (g *Game) Capture() []int {
	if g.cops == nil || g.robbers == nil {
		return nil
	}

	occupied := make(map[int]struct{}, len(g.cops))
	for _, c := range g.cops {
		occupied[c] = struct{}{}
	}

	var caught []int
	for {
		kept := g.robbers[:0]
		removed := 0
		for _, r := range g.robbers {
			if _, hit := occupied[r]; hit {
				g.logger.Printf("Captured robber at position %d", r)
				caught = append(caught, r)
				removed++
				continue
			}
			kept = append(kept, r)
		}
		g.robbers = kept
		if removed == 0 {
			break
		}
	}
	g.captured = append(g.captured, caught...)

	return caught
}
