package mcts

import (
	"github.com/corvidlabs/riskmcts/internal/risk"
	"github.com/corvidlabs/riskmcts/internal/searchtree"
)

// sortPromisingCandidates walks down an already-populated tree (typically
// one retained from a prior turn) while every sibling at the current depth
// is a non-chance actor, sorting each level's children best-first. If the
// walk reaches a game-over node without ever crossing a chance node or an
// unexpanded leaf, the root action leading to that forced line is the
// answer; otherwise no shortcut applies and the caller must run the MCTS
// loop.
func (e *Engine) sortPromisingCandidates() (risk.Action, bool) {
	root := e.tree.Root()
	if e.tree.Node(root).IsLeaf() {
		return risk.Action{}, false
	}

	var rootAction risk.Action
	idx := root
	for level := 0; ; level++ {
		node := e.tree.Node(idx)
		if len(node.Children) == 0 {
			return risk.Action{}, false
		}
		for _, c := range node.Children {
			if e.tree.Node(c).State.CurrentPlayer() == risk.ChanceActor {
				return risk.Action{}, false
			}
		}
		e.sortChildrenForShortcut(idx)
		best := e.tree.Node(idx).Children[0]
		if level == 0 {
			rootAction = e.tree.Node(best).Action
		}
		idx = best
		if e.tree.Node(idx).State.IsGameOver() {
			return rootAction, true
		}
		if e.tree.Node(idx).IsLeaf() {
			return risk.Action{}, false
		}
	}
}

// sortChildrenForShortcut orders idx's children best-first: by descending
// evaluator score when the states are Risk states, otherwise by the move
// comparator (descending when the acting player is e.player, ascending
// when it's an opponent modeled as minimizing e.player's outcome).
func (e *Engine) sortChildrenForShortcut(idx searchtree.NodeIndex) {
	node := e.tree.Node(idx)
	actor := node.State.CurrentPlayer()
	e.tree.SortChildren(idx, func(a, b searchtree.NodeIndex) bool {
		na, nb := e.tree.Node(a), e.tree.Node(b)
		if riskA, ok := na.State.(risk.RiskGameState); ok {
			if riskB, ok := nb.State.(risk.RiskGameState); ok {
				return e.eval.Score(riskA, e.player) > e.eval.Score(riskB, e.player)
			}
		}
		if actor == e.player {
			return MoveIsBetter(na, nb)
		}
		return MoveIsBetter(nb, na)
	})
}
