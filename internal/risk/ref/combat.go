package ref

import (
	"math/rand"
	"sort"

	"github.com/gomlx/exceptions"

	"github.com/corvidlabs/riskmcts/internal/risk"
)

func rollDice(rng *rand.Rand, n int) []int {
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = rng.Intn(6) + 1
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}

// resolveCombat plays a pending attack to its conclusion: repeated dice
// rounds (attacker rolls min(3, troops-1) dice, defender rolls min(2,
// troops), highest pairs compared, defender wins ties) until the attacker
// can no longer commit two troops or the defender is wiped out. The RNG is
// seeded from the pre-battle board hash, so resolveCombat is a pure,
// repeatable function of the state: two calls on the same Board return the
// same outcome, satisfying DetermineNextAction's determinism requirement,
// while distinct boards (different hash) resolve independently.
func (b *Board) resolveCombat() (attackerTroops, defenderTroops int) {
	seed := int64(b.computeHash())
	rng := rand.New(rand.NewSource(seed))
	attackerTroops = b.territories[b.pending.from].Troops
	defenderTroops = b.territories[b.pending.to].Troops

	for attackerTroops > 1 && defenderTroops > 0 {
		aRolls := rollDice(rng, min(3, attackerTroops-1))
		dRolls := rollDice(rng, min(2, defenderTroops))
		rounds := min(len(aRolls), len(dRolls))
		for i := 0; i < rounds; i++ {
			if aRolls[i] > dRolls[i] {
				defenderTroops--
			} else {
				attackerTroops--
			}
		}
	}
	return attackerTroops, defenderTroops
}

// DetermineNextAction implements risk.GameState for chance states.
func (b *Board) DetermineNextAction() risk.Action {
	if b.pending == nil {
		exceptions.Panicf("riskmcts/ref: DetermineNextAction called on a non-chance state")
	}
	_, defenderTroops := b.resolveCombat()
	return risk.Action{
		Kind:   risk.ResolveCombat,
		From:   b.pending.from,
		To:     b.pending.to,
		Troops: defenderTroops,
	}
}

// ApplyAuto implements risk.GameState.
func (b *Board) ApplyAuto() risk.GameState {
	return b.Apply(b.DetermineNextAction())
}

// applyResolveCombat finishes the pending attack: the attacking territory
// is left with the survivors, and if the defender was wiped out the
// territory changes hands with one occupying troop moved in and the
// previous owner is checked for elimination.
func (b *Board) applyResolveCombat() {
	pending := b.pending
	attackerTroops, defenderTroops := b.resolveCombat()

	from := b.territories[pending.from]
	to := b.territories[pending.to]
	prevOwner := to.Owner

	if defenderTroops == 0 {
		to.Owner = pending.player
		to.Troops = 1
		from.Troops = attackerTroops - 1
		b.capturedThisTurn = true
		if !b.ownsAnyTerritory(prevOwner) {
			b.eliminated.Insert(prevOwner)
		}
	} else {
		from.Troops = attackerTroops
		to.Troops = defenderTroops
	}

	b.territories[pending.from] = from
	b.territories[pending.to] = to
	b.pending = nil
}

func (b *Board) ownsAnyTerritory(player risk.PlayerID) bool {
	for _, t := range b.territories {
		if t.Owner == player {
			return true
		}
	}
	return false
}
