package ref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/riskmcts/internal/risk"
)

func TestTradeInBonusSchedule(t *testing.T) {
	assert.Equal(t, 4, tradeInBonus(0))
	assert.Equal(t, 6, tradeInBonus(1))
	assert.Equal(t, 8, tradeInBonus(2))
	assert.Equal(t, 10, tradeInBonus(3))
	assert.Equal(t, 12, tradeInBonus(4))
	assert.Equal(t, 15, tradeInBonus(5))
	assert.Equal(t, 20, tradeInBonus(6))
	assert.Equal(t, 25, tradeInBonus(7))
}

func TestFindCardSetThreeOfAKind(t *testing.T) {
	idx, ok := findCardSet([]int{cardInfantry, cardInfantry, cardInfantry})
	require.True(t, ok)
	assert.True(t, isValidCardSet([]int{cardInfantry, cardInfantry, cardInfantry}, idx))
}

func TestFindCardSetOneOfEach(t *testing.T) {
	held := []int{cardInfantry, cardCavalry, cardArtillery}
	idx, ok := findCardSet(held)
	require.True(t, ok)
	assert.True(t, isValidCardSet(held, idx))
}

func TestFindCardSetNoneAvailable(t *testing.T) {
	_, ok := findCardSet([]int{cardInfantry, cardInfantry})
	assert.False(t, ok)
}

func TestApplyTradeCardsIncreasesReinforcements(t *testing.T) {
	b := NewCustomGame(2, 0,
		[]TerritorySpec{{ID: 0, Continent: 0, Owner: 0, Troops: 3}},
		[]ContinentSpec{{ID: 0, Bonus: 0}})
	b.cards[0] = []int{cardInfantry, cardCavalry, cardArtillery}
	before := b.reinforcementsLeft

	traded := b.Apply(risk.Action{Kind: risk.TradeCards}).(*Board)
	assert.Equal(t, before+tradeInBonus(0), traded.reinforcementsLeft)
	assert.Empty(t, traded.cards[0])
	assert.Equal(t, 1, traded.tradeInsDone)
}
