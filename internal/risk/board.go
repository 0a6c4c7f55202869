package risk

import "github.com/corvidlabs/riskmcts/internal/generics"

// Territory is a single node of the board graph.
type Territory struct {
	ID        TerritoryID
	Owner     PlayerID
	Troops    int
	Continent ContinentID
}

// Continent groups territories and grants a reinforcement bonus to whoever
// owns every member.
type Continent struct {
	ID      ContinentID
	Bonus   int
	Members generics.Set[TerritoryID]
}

// RiskBoard is the read-only view of a Risk position that the Evaluator and
// the rollout policy need. It is exposed by any GameState that also
// implements RiskGameState (see gamestate.go); a GameState for some other
// game simply won't implement it, and the core falls back to
// domain-agnostic behavior (uniform-random rollouts).
type RiskBoard interface {
	// Territories returns every territory on the board, in a stable order.
	Territories() []Territory

	// Territory looks up a single territory by id.
	Territory(id TerritoryID) Territory

	// Continents returns every continent, in a stable order.
	Continents() []Continent

	// Continent looks up a single continent by id.
	Continent(id ContinentID) Continent

	// Neighbors returns the territory ids adjacent to id.
	Neighbors(id TerritoryID) []TerritoryID

	// EnemyNeighbors returns the neighbors of id not owned by owner.
	EnemyNeighbors(id TerritoryID, owner PlayerID) []TerritoryID

	// TotalTroops sums troops across every territory on the board.
	TotalTroops() int

	// PlayerTroops sums troops across every territory owned by player.
	PlayerTroops(player PlayerID) int

	// CardCount returns the number of Risk cards held by player.
	CardCount(player PlayerID) int

	// TradeInBonus returns the reinforcement bonus the next card trade-in
	// would grant (it escalates as more sets are traded in match-wide).
	TradeInBonus() int
}
