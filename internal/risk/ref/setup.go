package ref

import (
	"math/rand"

	"github.com/corvidlabs/riskmcts/internal/generics"
	"github.com/corvidlabs/riskmcts/internal/risk"
)

// TerritorySpec describes one territory for board construction.
type TerritorySpec struct {
	ID        risk.TerritoryID
	Continent risk.ContinentID
	Owner     risk.PlayerID
	Troops    int
	Neighbors []risk.TerritoryID
}

// ContinentSpec describes one continent for board construction.
type ContinentSpec struct {
	ID    risk.ContinentID
	Bonus int
}

// NewCustomGame builds a Board from explicit territory/continent specs. It is
// the primary construction path used by tests (and by NewStandardGame
// below) to get an exact, reproducible starting position.
func NewCustomGame(numPlayers int, turn risk.PlayerID, territories []TerritorySpec, continents []ContinentSpec) *Board {
	b := &Board{
		territories: make(map[risk.TerritoryID]risk.Territory, len(territories)),
		continents:  make(map[risk.ContinentID]risk.Continent, len(continents)),
		neighbors:   make(map[risk.TerritoryID][]risk.TerritoryID, len(territories)),
		numPlayers:  numPlayers,
		turn:        turn,
		phase:       phaseReinforce,
		cards:       make([][]int, numPlayers),
		eliminated:  generics.MakeSet[risk.PlayerID](),
		maxMoves:    2000,
	}
	members := make(map[risk.ContinentID]generics.Set[risk.TerritoryID], len(continents))
	for _, c := range continents {
		members[c.ID] = generics.MakeSet[risk.TerritoryID]()
	}
	for _, t := range territories {
		b.territories[t.ID] = risk.Territory{ID: t.ID, Owner: t.Owner, Troops: t.Troops, Continent: t.Continent}
		b.neighbors[t.ID] = append([]risk.TerritoryID(nil), t.Neighbors...)
		if set, ok := members[t.Continent]; ok {
			set.Insert(t.ID)
		}
	}
	for _, c := range continents {
		b.continents[c.ID] = risk.Continent{ID: c.ID, Bonus: c.Bonus, Members: members[c.ID]}
	}
	b.reinforcementsLeft = b.computeReinforcements(turn)
	return b
}

// standardMap is a compact 12-territory, 3-continent reference board used by
// NewStandardGame. It is not a reproduction of the official Risk map (42
// territories, 6 continents); it is sized to keep tests and demonstrations
// fast while still exercising continent bonuses and multi-hop adjacency.
var standardMap = []TerritorySpec{
	{ID: 0, Continent: 0, Neighbors: []risk.TerritoryID{1, 3}},
	{ID: 1, Continent: 0, Neighbors: []risk.TerritoryID{0, 2, 4}},
	{ID: 2, Continent: 0, Neighbors: []risk.TerritoryID{1, 5}},
	{ID: 3, Continent: 0, Neighbors: []risk.TerritoryID{0, 4, 6}},
	{ID: 4, Continent: 1, Neighbors: []risk.TerritoryID{1, 3, 5, 7}},
	{ID: 5, Continent: 1, Neighbors: []risk.TerritoryID{2, 4, 8}},
	{ID: 6, Continent: 1, Neighbors: []risk.TerritoryID{3, 7, 9}},
	{ID: 7, Continent: 1, Neighbors: []risk.TerritoryID{4, 6, 8, 10}},
	{ID: 8, Continent: 2, Neighbors: []risk.TerritoryID{5, 7, 11}},
	{ID: 9, Continent: 2, Neighbors: []risk.TerritoryID{6, 10}},
	{ID: 10, Continent: 2, Neighbors: []risk.TerritoryID{7, 9, 11}},
	{ID: 11, Continent: 2, Neighbors: []risk.TerritoryID{8, 10}},
}

var standardContinents = []ContinentSpec{
	{ID: 0, Bonus: 3},
	{ID: 1, Bonus: 5},
	{ID: 2, Bonus: 4},
}

// NewStandardGame deals the reference map's 12 territories round-robin among
// numPlayers with 3 starting troops each and returns a board with player 0 to
// move. rng drives the deal order; pass a seeded *rand.Rand for a
// reproducible demo/benchmark.
func NewStandardGame(numPlayers int, rng *rand.Rand) *Board {
	order := rng.Perm(len(standardMap))
	specs := make([]TerritorySpec, len(standardMap))
	for i, spec := range standardMap {
		spec.Owner = risk.PlayerID(order[i] % numPlayers)
		spec.Troops = 3
		specs[i] = spec
	}
	return NewCustomGame(numPlayers, 0, specs, standardContinents)
}
