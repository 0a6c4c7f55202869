package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/riskmcts/internal/risk"
	"github.com/corvidlabs/riskmcts/internal/risk/ref"
)

// S1 - weight switching: player owns 75% of territories and 90% of troops.
func TestClassifySignificantAdvantage(t *testing.T) {
	territories := make([]ref.TerritorySpec, 0, 8)
	for i := 0; i < 6; i++ {
		territories = append(territories, ref.TerritorySpec{ID: risk.TerritoryID(i), Owner: 0, Troops: 3})
	}
	for i := 6; i < 8; i++ {
		territories = append(territories, ref.TerritorySpec{ID: risk.TerritoryID(i), Owner: 1, Troops: 1})
	}
	b := ref.NewCustomGame(2, 0, territories, nil)

	e := New()
	cat := e.Category(b, 0)
	assert.Equal(t, CategorySignificantAdvantage, cat)

	w := weightsFor(WeightsCanonical, cat)
	assert.Equal(t, weightSet{Territory: 0.05, Troop: 0.10, Continent: 0.05, Attack: 0.80}, w)
}

// S2 - behind mode: player owns 20% of total troops.
func TestClassifyBehindInTroops(t *testing.T) {
	territories := []ref.TerritorySpec{
		{ID: 0, Owner: 0, Troops: 2},
		{ID: 1, Owner: 1, Troops: 8},
	}
	b := ref.NewCustomGame(2, 0, territories, nil)

	e := New()
	cat := e.Category(b, 0)
	assert.Equal(t, CategoryBehindInTroops, cat)

	w := weightsFor(WeightsCanonical, cat)
	assert.Equal(t, weightSet{Territory: 0.30, Troop: 0.40, Continent: 0.20, Attack: 0.10}, w)
}

// S3 - raw attack function under balanced/behind mode.
func TestRawAttackBalancedMode(t *testing.T) {
	assert.InDelta(t, 1.0, rawAttack(10, 4, CategoryBalanced), 1e-9)
	assert.InDelta(t, 0.8, rawAttack(10, 6, CategoryBalanced), 1e-9)
	assert.InDelta(t, 0.1, rawAttack(10, 12, CategoryBalanced), 1e-9)
}

func TestRawAttackSignificantAdvantageMode(t *testing.T) {
	assert.InDelta(t, 1.0, rawAttack(9, 6, CategorySignificantAdvantage), 1e-9)
	assert.InDelta(t, 0.9, rawAttack(4, 4, CategorySignificantAdvantage), 1e-9)
	assert.InDelta(t, 0.5, rawAttack(2, 2, CategorySignificantAdvantage), 1e-9)
	assert.InDelta(t, 0.3, rawAttack(2, 3, CategorySignificantAdvantage), 1e-9)
}

func TestScoreIsMemoized(t *testing.T) {
	b := ref.NewCustomGame(2, 0, []ref.TerritorySpec{
		{ID: 0, Owner: 0, Troops: 3},
		{ID: 1, Owner: 1, Troops: 3},
	}, nil)
	e := New()
	first := e.Score(b, 0)
	second := e.Score(b, 0)
	assert.Equal(t, first, second)
	assert.Len(t, e.cache, 1)
}

func TestScoreRejectsNilState(t *testing.T) {
	e := New()
	assert.Panics(t, func() { e.Score(nil, 0) })
}

func TestScoreRejectsNegativePlayer(t *testing.T) {
	b := ref.NewCustomGame(1, 0, []ref.TerritorySpec{{ID: 0, Owner: 0, Troops: 3}}, nil)
	e := New()
	assert.Panics(t, func() { e.Score(b, -1) })
}

func TestWeightsMaterialOnlyPresetIgnoresContinentAndAttack(t *testing.T) {
	w := weightsFor(WeightsMaterialOnly, CategoryBalanced)
	require.Zero(t, w.Continent)
	require.Zero(t, w.Attack)
	assert.InDelta(t, 1.0, w.Territory+w.Troop, 1e-9)
}

// Property 11 - a player owning nothing has zero attack potential and zero
// troop share, even though the board itself is non-empty.
func TestAttackPotentialZeroWhenNoTerritoriesOwned(t *testing.T) {
	b := ref.NewCustomGame(2, 0, []ref.TerritorySpec{
		{ID: 0, Owner: 1, Troops: 5, Neighbors: []risk.TerritoryID{1}},
		{ID: 1, Owner: 1, Troops: 2, Neighbors: []risk.TerritoryID{0}},
	}, nil)

	assert.Zero(t, attackPotential(b.Board(), 0, CategoryBalanced))
}

func TestTroopScoreZeroWhenNoTerritoriesOwned(t *testing.T) {
	b := ref.NewCustomGame(2, 0, []ref.TerritorySpec{
		{ID: 0, Owner: 1, Troops: 5},
		{ID: 1, Owner: 1, Troops: 2},
	}, nil)

	assert.Zero(t, troopScore(b.Board(), 0))
}

// Property 12 - a continent with no member territories contributes nothing
// to continentScore, rather than being averaged in as a 0 share and
// dragging the result down.
func TestContinentScoreSkipsEmptyContinents(t *testing.T) {
	withEmpty := ref.NewCustomGame(2, 0, []ref.TerritorySpec{
		{ID: 0, Continent: 0, Owner: 0, Troops: 3},
		{ID: 1, Continent: 0, Owner: 0, Troops: 3},
	}, []ref.ContinentSpec{
		{ID: 0, Bonus: 5},
		{ID: 1, Bonus: 8}, // no territory references continent 1: empty.
	})
	withoutEmpty := ref.NewCustomGame(2, 0, []ref.TerritorySpec{
		{ID: 0, Continent: 0, Owner: 0, Troops: 3},
		{ID: 1, Continent: 0, Owner: 0, Troops: 3},
	}, []ref.ContinentSpec{
		{ID: 0, Bonus: 5},
	})

	assert.Equal(t, continentScore(withoutEmpty.Board(), 0), continentScore(withEmpty.Board(), 0))
}
