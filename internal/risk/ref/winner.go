package ref

import "github.com/corvidlabs/riskmcts/internal/risk"

// computeWinner reports the game's outcome. A single surviving owner (of
// either all territories or all non-eliminated players) wins outright; a
// move-count cap produces a gameOver=true, winner=risk.Unowned draw so
// pathological positions can't stall a search indefinitely.
func (b *Board) computeWinner() (winner risk.PlayerID, over bool) {
	owners := make(map[risk.PlayerID]bool, b.numPlayers)
	for _, t := range b.territories {
		owners[t.Owner] = true
	}
	if len(owners) == 1 {
		for p := range owners {
			return p, true
		}
	}

	active, last := 0, risk.PlayerID(0)
	for p := risk.PlayerID(0); int(p) < b.numPlayers; p++ {
		if !b.eliminated.Has(p) {
			active++
			last = p
		}
	}
	if active <= 1 {
		return last, true
	}

	if b.moveNumber >= b.maxMoves {
		return risk.Unowned, true
	}
	return risk.Unowned, false
}

// IsGameOver implements risk.GameState.
func (b *Board) IsGameOver() bool {
	b.buildDerivedIfNeeded()
	return b.derived.gameOver
}

// UtilityVector implements risk.GameState. The winner scores 1, everyone
// else 0; a move-cap draw splits credit evenly.
func (b *Board) UtilityVector() []float64 {
	b.buildDerivedIfNeeded()
	utility := make([]float64, b.numPlayers)
	if b.derived.winner == risk.Unowned {
		share := 1.0 / float64(b.numPlayers)
		for i := range utility {
			utility[i] = share
		}
		return utility
	}
	utility[b.derived.winner] = 1.0
	return utility
}

// HeuristicVector implements risk.GameState: each player's share of total
// territories and total troops on the board, averaged. Used by the search
// core to refine the outcome of non-terminal cut rollouts, and by the
// agent's greedy fallback to rank successors.
func (b *Board) HeuristicVector() []float64 {
	totalTerritories := len(b.territories)
	totalTroops := 0
	for _, t := range b.territories {
		totalTroops += t.Troops
	}
	ownedTerritories := make([]int, b.numPlayers)
	ownedTroops := make([]int, b.numPlayers)
	for _, t := range b.territories {
		if int(t.Owner) >= 0 && int(t.Owner) < b.numPlayers {
			ownedTerritories[t.Owner]++
			ownedTroops[t.Owner] += t.Troops
		}
	}
	heuristic := make([]float64, b.numPlayers)
	for p := 0; p < b.numPlayers; p++ {
		territoryShare := 0.0
		if totalTerritories > 0 {
			territoryShare = float64(ownedTerritories[p]) / float64(totalTerritories)
		}
		troopShare := 0.0
		if totalTroops > 0 {
			troopShare = float64(ownedTroops[p]) / float64(totalTroops)
		}
		heuristic[p] = 0.5*territoryShare + 0.5*troopShare
	}
	return heuristic
}
