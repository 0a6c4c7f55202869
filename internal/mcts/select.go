package mcts

import (
	"math"

	"github.com/corvidlabs/riskmcts/internal/risk"
	"github.com/corvidlabs/riskmcts/internal/searchtree"
)

// selectAndExpand descends from idx, expanding the first leaf it reaches
// (unless terminal), and returns the node the rollout should start from.
func (e *Engine) selectAndExpand(idx searchtree.NodeIndex) searchtree.NodeIndex {
	for {
		node := e.tree.Node(idx)
		if node.State.IsGameOver() {
			return idx
		}
		if node.State.CurrentPlayer() == risk.ChanceActor {
			idx = e.descendChance(idx)
			continue
		}
		if node.IsLeaf() {
			e.expand(idx)
			if len(e.tree.Node(idx).Children) == 0 {
				return idx
			}
		}
		if e.shouldStop() {
			return idx
		}
		idx = e.selectChild(idx)
	}
}

// descendChance resolves a chance node deterministically, expanding its
// single outcome child the first time it's reached.
func (e *Engine) descendChance(idx searchtree.NodeIndex) searchtree.NodeIndex {
	state := e.tree.Node(idx).State
	action := state.DetermineNextAction()
	if child, ok := e.tree.ChildByAction(idx, action); ok {
		return child
	}
	child := e.tree.AddChild(idx, action, state.Apply(action))
	e.tree.MarkExpanded(idx)
	return child
}

// expand enumerates state's legal actions and creates one child per action.
func (e *Engine) expand(idx searchtree.NodeIndex) {
	state := e.tree.Node(idx).State
	for _, action := range state.PossibleActions() {
		e.tree.AddChild(idx, action, state.Apply(action))
	}
	e.tree.MarkExpanded(idx)
}

// selectChild picks the child of idx maximizing UCT, tie-broken by a stable
// hash of the child state so selection is deterministic given identical
// statistics.
func (e *Engine) selectChild(idx searchtree.NodeIndex) searchtree.NodeIndex {
	node := e.tree.Node(idx)
	parentPlays := node.Plays
	children := node.Children

	best := children[0]
	bestUCT := uct(e.tree.Node(best), parentPlays, e.cfg.C)
	bestHash := e.tree.Node(best).State.Hash()
	for _, c := range children[1:] {
		cn := e.tree.Node(c)
		score := uct(cn, parentPlays, e.cfg.C)
		hash := cn.State.Hash()
		if score > bestUCT || (score == bestUCT && hash < bestHash) {
			best, bestUCT, bestHash = c, score, hash
		}
	}
	return best
}

// uct computes w/n + c*sqrt(ln(N)/n), with n = max(node.Plays, 1) and
// N = max(parentPlays, 1) (so a never-visited parent doesn't produce a
// degenerate ln(0) exploration term).
func uct(node *searchtree.Node, parentPlays int, c float64) float64 {
	n := float64(max(node.Plays, 1))
	N := float64(max(parentPlays, 1))
	exploitation := float64(node.Wins) / n
	exploration := c * math.Sqrt(math.Log(N)/n)
	return exploitation + exploration
}
