// Package ref is a minimal, deterministic Risk rules engine implementing
// internal/risk's GameState/RiskGameState capability interfaces. It exists to
// exercise and test the search core end to end; it is not a certified
// implementation of the full Risk rulebook (alliances, mission-specific
// victory conditions and wildcard/territory-bonus cards are omitted).
package ref

import (
	"github.com/corvidlabs/riskmcts/internal/generics"
	"github.com/corvidlabs/riskmcts/internal/risk"
)

// phase tracks where in a player's turn the board currently sits.
type phase uint8

const (
	phaseReinforce phase = iota
	phaseAttack
	phaseFortify
)

func (p phase) String() string {
	switch p {
	case phaseReinforce:
		return "Reinforce"
	case phaseAttack:
		return "Attack"
	case phaseFortify:
		return "Fortify"
	default:
		return "Unknown"
	}
}

// pendingAttack records an in-flight Attack action awaiting dice resolution.
type pendingAttack struct {
	player   risk.PlayerID
	from, to risk.TerritoryID
}

// Board is the concrete, mutable-by-clone Risk position.
//
// Board is compact to clone cheaply: continents and the adjacency graph
// never change after setup, so clones share those maps; only per-territory
// ownership/troops and per-player bookkeeping are deep-copied.
type Board struct {
	territories map[risk.TerritoryID]risk.Territory
	continents  map[risk.ContinentID]risk.Continent
	neighbors   map[risk.TerritoryID][]risk.TerritoryID

	numPlayers int
	turn       risk.PlayerID
	phase      phase

	reinforcementsLeft int
	fortifyUsed        bool
	capturedThisTurn   bool

	cards        [][]int // cards[player] is the list of card values held
	tradeInsDone int

	pending        *pendingAttack
	previousAction risk.Action

	moveNumber int
	maxMoves   int
	eliminated generics.Set[risk.PlayerID]

	// derived caches information recomputed whenever the board changes.
	derived *derived
}

// derived holds information recomputed from the board after every mutation,
// mirroring the teacher engine's Board.Derived cache-once-per-move
// convention.
type derived struct {
	hash     uint64
	actions  []risk.Action
	gameOver bool
	winner   risk.PlayerID // risk.Unowned (-2) used here to mean "no single winner"
}

// Assert Board satisfies the capability interfaces.
var (
	_ risk.GameState     = (*Board)(nil)
	_ risk.RiskGameState = (*Board)(nil)
)

// Clone returns a deep-enough copy of b: ownership/troops, cards and
// elimination bookkeeping are copied; the immutable continent/adjacency maps
// are shared.
func (b *Board) Clone() *Board {
	nb := &Board{}
	*nb = *b
	nb.territories = make(map[risk.TerritoryID]risk.Territory, len(b.territories))
	for id, t := range b.territories {
		nb.territories[id] = t
	}
	nb.cards = make([][]int, len(b.cards))
	for p, held := range b.cards {
		nb.cards[p] = append([]int(nil), held...)
	}
	nb.eliminated = generics.MakeSet[risk.PlayerID](len(b.eliminated))
	for p := range b.eliminated {
		nb.eliminated.Insert(p)
	}
	if b.pending != nil {
		pending := *b.pending
		nb.pending = &pending
	}
	nb.derived = nil
	return nb
}

// NumPlayers implements risk.GameState.
func (b *Board) NumPlayers() int { return b.numPlayers }

// CurrentPlayer implements risk.GameState.
func (b *Board) CurrentPlayer() risk.PlayerID {
	if b.pending != nil {
		return risk.ChanceActor
	}
	return b.turn
}

// PreviousAction implements risk.GameState.
func (b *Board) PreviousAction() risk.Action { return b.previousAction }

// Board implements risk.RiskGameState.
func (b *Board) Board() risk.RiskBoard { return boardView{b} }

func (b *Board) buildDerivedIfNeeded() {
	if b.derived != nil {
		return
	}
	b.derived = &derived{}
	b.derived.hash = b.computeHash()
	b.derived.winner, b.derived.gameOver = b.computeWinner()
	if !b.derived.gameOver && b.pending == nil {
		b.derived.actions = b.legalActions()
	}
}
