package mcts

import (
	"math/rand"

	"github.com/corvidlabs/riskmcts/internal/risk"
)

// projectVector reduces a per-player vector to a scalar in [0,1] for
// player: 1.0 if player holds the strict unique max, 1/k if tied with k-1
// others at the max, 0 otherwise.
func projectVector(vector []float64, player risk.PlayerID) float64 {
	if int(player) < 0 || int(player) >= len(vector) {
		return 0
	}
	max := vector[0]
	for _, v := range vector[1:] {
		if v > max {
			max = v
		}
	}
	if vector[player] != max {
		return 0
	}
	tied := 0
	for _, v := range vector {
		if v == max {
			tied++
		}
	}
	return 1.0 / float64(tied)
}

// hasWon implements the spec's win-determination rule: project the utility
// vector; if the state is non-terminal and the scalar came out positive,
// refine using the heuristic vector instead; a strict win (scalar == 1.0)
// counts as a win, a tie (scalar > 0 but < 1) is credited as a win with
// probability 1/2, anything else is a loss.
func hasWon(state risk.GameState, player risk.PlayerID, rng *rand.Rand) bool {
	scalar := projectVector(state.UtilityVector(), player)
	if !state.IsGameOver() && scalar > 0 {
		scalar = projectVector(state.HeuristicVector(), player)
	}
	switch {
	case scalar == 1.0:
		return true
	case scalar > 0:
		return rng.Float64() < 0.5
	default:
		return false
	}
}
