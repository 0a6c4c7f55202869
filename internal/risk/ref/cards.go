package ref

import "github.com/corvidlabs/riskmcts/internal/risk"

// Card values are symbolic (1, 2 or 3), mirroring the three-symbol Risk deck
// (infantry/cavalry/artillery) without modeling wildcards or territory-bonus
// cards.
const (
	cardInfantry = 1
	cardCavalry  = 2
	cardArtillery = 3
)

// tradeInBonus returns the reinforcement bonus awarded for the
// tradeInsDone'th (0-indexed) card trade-in, following the standard Risk
// escalating schedule: 4, 6, 8, 10, 12, 15, then +5 per further trade-in.
func tradeInBonus(tradeInsDone int) int {
	switch {
	case tradeInsDone < 5:
		return 4 + 2*tradeInsDone
	case tradeInsDone == 5:
		return 15
	default:
		return 15 + 5*(tradeInsDone-5)
	}
}

// isValidCardSet reports whether the three given card indices (into
// b.cards[player]) form a legal trade-in set: three of a kind, or one each
// of the three symbols.
func isValidCardSet(held []int, idx [3]int) bool {
	a, b, c := held[idx[0]], held[idx[1]], held[idx[2]]
	if a == b && b == c {
		return true
	}
	return a != b && b != c && a != c
}

// findCardSet returns the first valid 3-card combination in held, if any.
func findCardSet(held []int) ([3]int, bool) {
	n := len(held)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				idx := [3]int{i, j, k}
				if isValidCardSet(held, idx) {
					return idx, true
				}
			}
		}
	}
	return [3]int{}, false
}

// removeCardsAt removes the three indexed cards from held, returning the
// remainder. idx need not be sorted.
func removeCardsAt(held []int, idx [3]int) []int {
	drop := map[int]bool{idx[0]: true, idx[1]: true, idx[2]: true}
	out := make([]int, 0, len(held)-3)
	for i, c := range held {
		if !drop[i] {
			out = append(out, c)
		}
	}
	return out
}

// computeReinforcements computes the reinforcement pool a player receives at
// the start of their turn: one per three owned territories (minimum three),
// plus the bonus of every continent they fully control.
func (b *Board) computeReinforcements(player risk.PlayerID) int {
	owned := 0
	for _, t := range b.territories {
		if t.Owner == player {
			owned++
		}
	}
	reinforcements := owned / 3
	if reinforcements < 3 {
		reinforcements = 3
	}
	for _, c := range b.continents {
		controlled := true
		for member := range c.Members {
			if b.territories[member].Owner != player {
				controlled = false
				break
			}
		}
		if controlled && len(c.Members) > 0 {
			reinforcements += c.Bonus
		}
	}
	return reinforcements
}

// dealCard awards player one card, cycling deterministically through the
// three symbols in the order captures happened this game, rather than
// drawing from a shuffled deck. This keeps card composition a pure function
// of move history, consistent with Hash/DetermineNextAction determinism.
func (b *Board) dealCard(player risk.PlayerID) {
	total := 0
	for _, held := range b.cards {
		total += len(held)
	}
	symbol := []int{cardInfantry, cardCavalry, cardArtillery}[total%3]
	b.cards[player] = append(b.cards[player], symbol)
}
