package ref

import (
	"sort"

	"github.com/corvidlabs/riskmcts/internal/generics"
	"github.com/corvidlabs/riskmcts/internal/risk"
)

// boardView adapts *Board to risk.RiskBoard without exposing mutation
// methods to callers outside this package.
type boardView struct{ b *Board }

func (v boardView) Territories() []risk.Territory {
	ids := generics.KeysSlice(v.b.territories)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]risk.Territory, len(ids))
	for i, id := range ids {
		out[i] = v.b.territories[id]
	}
	return out
}

func (v boardView) Territory(id risk.TerritoryID) risk.Territory {
	return v.b.territories[id]
}

func (v boardView) Continents() []risk.Continent {
	ids := generics.KeysSlice(v.b.continents)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]risk.Continent, len(ids))
	for i, id := range ids {
		out[i] = v.b.continents[id]
	}
	return out
}

func (v boardView) Continent(id risk.ContinentID) risk.Continent {
	return v.b.continents[id]
}

func (v boardView) Neighbors(id risk.TerritoryID) []risk.TerritoryID {
	return v.b.neighbors[id]
}

func (v boardView) EnemyNeighbors(id risk.TerritoryID, owner risk.PlayerID) []risk.TerritoryID {
	var out []risk.TerritoryID
	for _, n := range v.b.neighbors[id] {
		if v.b.territories[n].Owner != owner {
			out = append(out, n)
		}
	}
	return out
}

func (v boardView) TotalTroops() int {
	total := 0
	for _, t := range v.b.territories {
		total += t.Troops
	}
	return total
}

func (v boardView) PlayerTroops(player risk.PlayerID) int {
	total := 0
	for _, t := range v.b.territories {
		if t.Owner == player {
			total += t.Troops
		}
	}
	return total
}

func (v boardView) CardCount(player risk.PlayerID) int {
	if int(player) < 0 || int(player) >= len(v.b.cards) {
		return 0
	}
	return len(v.b.cards[player])
}

func (v boardView) TradeInBonus() int {
	return tradeInBonus(v.b.tradeInsDone)
}
