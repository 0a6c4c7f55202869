package ref

import (
	"github.com/gomlx/exceptions"

	"github.com/corvidlabs/riskmcts/internal/risk"
)

// Apply implements risk.GameState. The receiver is left unmodified; a
// cloned, mutated board is returned.
func (b *Board) Apply(action risk.Action) risk.GameState {
	nb := b.Clone()
	nb.previousAction = action
	nb.moveNumber = b.moveNumber + 1

	switch action.Kind {
	case risk.TradeCards:
		nb.applyTradeCards()
	case risk.Reinforce:
		nb.applyReinforce(action)
	case risk.Attack:
		nb.applyAttack(action)
	case risk.Fortify:
		nb.applyFortify(action)
	case risk.EndPhase:
		nb.applyEndPhase()
	case risk.ResolveCombat:
		nb.applyResolveCombat()
	default:
		exceptions.Panicf("riskmcts/ref: unknown action kind %v", action.Kind)
	}
	return nb
}

func (b *Board) applyTradeCards() {
	held := b.cards[b.turn]
	idx, ok := findCardSet(held)
	if !ok {
		exceptions.Panicf("riskmcts/ref: TradeCards applied with no valid set held by player %d", b.turn)
	}
	b.cards[b.turn] = removeCardsAt(held, idx)
	b.reinforcementsLeft += tradeInBonus(b.tradeInsDone)
	b.tradeInsDone++
}

func (b *Board) applyReinforce(action risk.Action) {
	t, ok := b.territories[action.To]
	if !ok || t.Owner != b.turn {
		exceptions.Panicf("riskmcts/ref: Reinforce target %d not owned by player %d", action.To, b.turn)
	}
	t.Troops += b.reinforcementsLeft
	b.territories[action.To] = t
	b.reinforcementsLeft = 0
	b.phase = phaseAttack
}

func (b *Board) applyAttack(action risk.Action) {
	b.pending = &pendingAttack{player: b.turn, from: action.From, to: action.To}
}

func (b *Board) applyFortify(action risk.Action) {
	from := b.territories[action.From]
	to := b.territories[action.To]
	from.Troops -= action.Troops
	to.Troops += action.Troops
	b.territories[action.From] = from
	b.territories[action.To] = to
	b.fortifyUsed = true
	b.endTurn()
}

func (b *Board) applyEndPhase() {
	switch b.phase {
	case phaseAttack:
		b.phase = phaseFortify
	case phaseFortify:
		b.endTurn()
	default:
		exceptions.Panicf("riskmcts/ref: EndPhase applied during %v", b.phase)
	}
}

// endTurn awards a capture card if one is owed, resets per-turn state,
// advances to the next non-eliminated player and computes their
// reinforcement pool.
func (b *Board) endTurn() {
	if b.capturedThisTurn {
		b.dealCard(b.turn)
		b.capturedThisTurn = false
	}
	b.fortifyUsed = false

	next := b.turn
	for i := 0; i < b.numPlayers; i++ {
		next = risk.PlayerID((int(next) + 1) % b.numPlayers)
		if !b.eliminated.Has(next) {
			break
		}
	}
	b.turn = next
	b.phase = phaseReinforce
	b.reinforcementsLeft = b.computeReinforcements(next)
}
