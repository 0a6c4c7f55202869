package mcts

import (
	"math"

	"github.com/corvidlabs/riskmcts/internal/risk"
	"github.com/corvidlabs/riskmcts/internal/searchtree"
)

// rollout simulates from leaf to game-over, an empty legal action set, the
// configured depth cap, or the deadline, then returns whether the result is
// a win for e.player.
func (e *Engine) rollout(leaf searchtree.NodeIndex) bool {
	state := e.tree.Node(leaf).State
	depth := 0
	for !state.IsGameOver() && depth < e.cfg.DepthCap && !e.shouldStop() {
		if state.CurrentPlayer() == risk.ChanceActor {
			state = state.ApplyAuto()
			depth++
			continue
		}
		if len(state.PossibleActions()) == 0 {
			break
		}
		action := e.pickRolloutAction(state)
		state = state.Apply(action)
		depth++
	}
	return hasWon(state, e.player, e.rng)
}

// pickRolloutAction implements the rollout policy from the spec: for Risk
// states, a one-shot UCT pick over (a possibly capped, shuffled subset of)
// the legal action set biased by the evaluator; otherwise, uniform random.
func (e *Engine) pickRolloutAction(state risk.GameState) risk.Action {
	actions := state.PossibleActions()
	if len(actions) == 0 {
		return risk.Action{Kind: risk.EndPhase}
	}

	riskState, ok := state.(risk.RiskGameState)
	if !ok || e.eval == nil {
		return actions[e.rng.Intn(len(actions))]
	}

	if len(actions) > e.cfg.RolloutCap {
		shuffled := append([]risk.Action(nil), actions...)
		e.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		actions = shuffled[:e.cfg.RolloutCap]
	}
	return e.biasedRolloutPick(riskState, actions)
}

// biasedRolloutPick treats each successor as having one prior visit and
// picks the action maximizing score + c*sqrt(ln(totalVisits)/visits), i.e.
// a one-shot UCT over the action set using the evaluator score as the
// successor's value estimate.
func (e *Engine) biasedRolloutPick(state risk.RiskGameState, actions []risk.Action) risk.Action {
	total := math.Log(float64(len(actions)))
	exploration := e.cfg.C * math.Sqrt(total)

	best := 0
	bestScore := math.Inf(-1)
	for i, action := range actions {
		successor := state.Apply(action)
		score := 0.0
		if riskSuccessor, ok := successor.(risk.RiskGameState); ok {
			score = e.eval.Score(riskSuccessor, e.player)
		}
		score += exploration
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return actions[best]
}
