package ref

import (
	"github.com/corvidlabs/riskmcts/internal/generics"
	"github.com/corvidlabs/riskmcts/internal/risk"
)

// legalActions enumerates the current player's legal moves. It is only
// called (via buildDerivedIfNeeded) for non-terminal, non-chance states.
func (b *Board) legalActions() []risk.Action {
	switch b.phase {
	case phaseReinforce:
		return b.reinforceActions()
	case phaseAttack:
		return b.attackActions()
	case phaseFortify:
		return b.fortifyActions()
	default:
		return nil
	}
}

// reinforceActions returns TradeCards (if a valid set is held) and, unless
// the player is forced to trade in first (5+ cards held), one Reinforce
// action per owned territory.
func (b *Board) reinforceActions() []risk.Action {
	held := b.cards[b.turn]
	var actions []risk.Action
	if _, ok := findCardSet(held); ok {
		actions = append(actions, risk.Action{Kind: risk.TradeCards})
	}
	if len(held) >= 5 {
		return actions
	}
	for id := range generics.SortedKeys(b.territories) {
		if b.territories[id].Owner == b.turn {
			actions = append(actions, risk.Action{Kind: risk.Reinforce, To: id})
		}
	}
	return actions
}

// attackActions returns EndPhase plus one Attack(from, to) per owned
// territory with at least two troops and an adjacent enemy territory.
func (b *Board) attackActions() []risk.Action {
	actions := []risk.Action{{Kind: risk.EndPhase}}
	for id := range generics.SortedKeys(b.territories) {
		t := b.territories[id]
		if t.Owner != b.turn || t.Troops < 2 {
			continue
		}
		for _, n := range b.neighbors[id] {
			if b.territories[n].Owner != b.turn {
				actions = append(actions, risk.Action{Kind: risk.Attack, From: id, To: n})
			}
		}
	}
	return actions
}

// fortifyActions returns EndPhase plus, if the turn's single fortify move
// hasn't been used yet, one Fortify(from, to, troops-1) per owned territory
// with at least two troops and an adjacent owned territory. Only direct
// adjacency is considered; the official rule's connected-owned-chain
// fortify is not modeled.
func (b *Board) fortifyActions() []risk.Action {
	actions := []risk.Action{{Kind: risk.EndPhase}}
	if b.fortifyUsed {
		return actions
	}
	for id := range generics.SortedKeys(b.territories) {
		t := b.territories[id]
		if t.Owner != b.turn || t.Troops < 2 {
			continue
		}
		for _, n := range b.neighbors[id] {
			if b.territories[n].Owner == b.turn {
				actions = append(actions, risk.Action{Kind: risk.Fortify, From: id, To: n, Troops: t.Troops - 1})
			}
		}
	}
	return actions
}

// PossibleActions implements risk.GameState.
func (b *Board) PossibleActions() []risk.Action {
	b.buildDerivedIfNeeded()
	return b.derived.actions
}

// IsValidAction implements risk.GameState.
func (b *Board) IsValidAction(action risk.Action) bool {
	for _, a := range b.PossibleActions() {
		if a.Equal(action) {
			return true
		}
	}
	return false
}
