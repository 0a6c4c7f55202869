package mcts

import "github.com/corvidlabs/riskmcts/internal/searchtree"

// MoveIsBetter implements the move comparator used both for the Facade's
// final argmax over root children and, for non-Risk states, the pre-search
// shortcut's sibling ordering: more plays wins (the MCTS "robust child"
// criterion); plays tied, more wins; both tied, the state hash breaks the
// tie so the choice is deterministic given identical statistics.
func MoveIsBetter(a, b *searchtree.Node) bool {
	if a.Plays != b.Plays {
		return a.Plays > b.Plays
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	return a.State.Hash() > b.State.Hash()
}
