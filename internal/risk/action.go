package risk

import "fmt"

// ActionKind distinguishes the handful of move shapes the core needs to
// reason about. It deliberately doesn't try to capture the full Risk
// rulebook (e.g. it has no notion of a blank/wildcard card set), only enough
// structure for selection/expansion/rollout to enumerate and compare moves.
type ActionKind uint8

const (
	// EndPhase ends the current phase (or, during Fortify, the turn)
	// without taking any other action. It is offered in the attack and
	// fortify phases; the reinforce phase offers Reinforce/TradeCards
	// instead. Either way no player is left with an empty action set,
	// mirroring the teacher engine's SkipAction convention.
	EndPhase ActionKind = iota
	TradeCards
	Reinforce
	Attack
	Fortify

	// ResolveCombat is the action DetermineNextAction/ApplyAuto produce on a
	// chance state (CurrentPlayer() == ChanceActor) to resolve a pending
	// Attack's dice. Troops carries the defender's troops left after the
	// battle (0 means the territory is captured); From/To echo the
	// attacker/defender territories.
	ResolveCombat
)

func (k ActionKind) String() string {
	switch k {
	case EndPhase:
		return "EndPhase"
	case TradeCards:
		return "TradeCards"
	case Reinforce:
		return "Reinforce"
	case Attack:
		return "Attack"
	case Fortify:
		return "Fortify"
	case ResolveCombat:
		return "ResolveCombat"
	default:
		return fmt.Sprintf("ActionKind(%d)", uint8(k))
	}
}

// Action describes one legal move. Which fields are meaningful depends on
// Kind:
//
//   - Reinforce: place the whole reinforcement pool onto To.
//   - Attack: commit every eligible attacking troop from From against To.
//   - Fortify: move Troops troops from From to To.
//   - TradeCards, EndPhase: no other field is used.
type Action struct {
	Kind     ActionKind
	From, To TerritoryID
	Troops   int
}

// String returns a human-readable description, used in logs and test failure
// messages.
func (a Action) String() string {
	switch a.Kind {
	case Reinforce:
		return fmt.Sprintf("Reinforce(%d)", a.To)
	case Attack:
		return fmt.Sprintf("Attack(%d->%d)", a.From, a.To)
	case Fortify:
		return fmt.Sprintf("Fortify(%d->%d, %d troops)", a.From, a.To, a.Troops)
	default:
		return a.Kind.String()
	}
}

// Equal reports whether two actions describe the same move.
func (a Action) Equal(other Action) bool {
	return a == other
}
