// Package evaluator scores Risk states for a given player, in [0,1], for
// use as the MCTS rollout bias and to order Risk states in the pre-search
// shortcut.
package evaluator

import (
	"sync"

	"github.com/gomlx/exceptions"

	"github.com/corvidlabs/riskmcts/internal/risk"
)

// cacheKey identifies one (state, player) score.
type cacheKey struct {
	hash   uint64
	player risk.PlayerID
}

// Evaluator scores states under one weighting preset, memoizing every score
// it computes for the lifetime of the instance. It is not safe to share
// across unrelated searches indiscriminately (the cache grows unbounded),
// but is safe for concurrent use by a single search's parallel workers.
type Evaluator struct {
	preset WeightsPreset

	mu    sync.Mutex
	cache map[cacheKey]float64
}

// New creates an Evaluator using the canonical weight table.
func New() *Evaluator {
	return &Evaluator{preset: WeightsCanonical, cache: make(map[cacheKey]float64)}
}

// WithPreset returns an Evaluator using an alternate weighting scheme.
func WithPreset(preset WeightsPreset) *Evaluator {
	return &Evaluator{preset: preset, cache: make(map[cacheKey]float64)}
}

// Score returns state's favorability for player, in [0,1]. Results are
// memoized by (state.Hash(), player).
func (e *Evaluator) Score(state risk.RiskGameState, player risk.PlayerID) float64 {
	if state == nil {
		exceptions.Panicf("riskmcts/evaluator: Score called with a nil state")
	}
	if player < 0 {
		exceptions.Panicf("riskmcts/evaluator: Score called with negative player id %d", player)
	}

	key := cacheKey{hash: state.Hash(), player: player}
	e.mu.Lock()
	if score, ok := e.cache[key]; ok {
		e.mu.Unlock()
		return score
	}
	e.mu.Unlock()

	score := e.compute(state.Board(), player)

	e.mu.Lock()
	e.cache[key] = score
	e.mu.Unlock()
	return score
}

func (e *Evaluator) compute(board risk.RiskBoard, player risk.PlayerID) float64 {
	_, _, _, _, territoryRatio, troopRatio := territoryAndTroopRatios(board, player)
	cat := classify(territoryRatio, troopRatio)
	w := weightsFor(e.preset, cat)

	tScore := territoryScore(board, player)
	trScore := troopScore(board, player)
	cScore := continentScore(board, player)
	aScore := attackPotential(board, player, cat)

	weightSum := w.Territory + w.Troop + w.Continent + w.Attack
	if weightSum == 0 {
		return 0
	}
	numerator := w.Territory*tScore + w.Troop*trScore + w.Continent*cScore + w.Attack*aScore
	return clip01(numerator / weightSum)
}

// Category classifies state from player's point of view, without computing
// a full score. The search core does not call it; the rollout policy
// scores states through Score only.
func (e *Evaluator) Category(state risk.RiskGameState, player risk.PlayerID) PositionCategory {
	_, _, _, _, territoryRatio, troopRatio := territoryAndTroopRatios(state.Board(), player)
	return classify(territoryRatio, troopRatio)
}
