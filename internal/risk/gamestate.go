package risk

// GameState is the capability the search core requires of whatever game it
// is pointed at. It is intentionally narrow: the core never inspects a
// concrete board directly, only through these methods (plus, optionally,
// RiskGameState below).
type GameState interface {
	// NumPlayers returns the number of real (non-chance) players.
	NumPlayers() int

	// CurrentPlayer returns whose turn it is, or ChanceActor if the state is
	// awaiting an automatic resolution.
	CurrentPlayer() PlayerID

	// PreviousAction returns the action that produced this state from its
	// parent, or the zero Action for the initial state.
	PreviousAction() Action

	// PossibleActions enumerates the legal actions for CurrentPlayer(). It
	// is never empty for a non-terminal, non-chance state (EndPhase in the
	// attack and fortify phases, placement or a card trade-in when
	// reinforcing). Undefined for chance states and terminal states.
	PossibleActions() []Action

	// IsValidAction reports whether action is currently legal.
	IsValidAction(action Action) bool

	// Apply returns the state reached by taking action from this state. The
	// receiver is left unmodified.
	Apply(action Action) GameState

	// DetermineNextAction deterministically resolves a chance state (dice
	// combat, automatic card-bonus computation) into the single action that
	// ApplyAuto would take. Calling it twice on the same state returns the
	// same action, but two distinct chance states generally resolve
	// differently (the resolution is a deterministic function of the
	// state's own content, not of wall-clock time).
	DetermineNextAction() Action

	// ApplyAuto resolves a chance state. Equivalent to
	// Apply(DetermineNextAction()).
	ApplyAuto() GameState

	// IsGameOver reports whether the match has ended.
	IsGameOver() bool

	// UtilityVector returns one terminal-utility scalar per player,
	// meaningful only when IsGameOver is true.
	UtilityVector() []float64

	// HeuristicVector returns one non-terminal heuristic scalar per player,
	// used to refine tied/inconclusive utility projections on cut rollouts.
	HeuristicVector() []float64

	// Hash returns a structural, content-addressed hash of the state (board
	// + phase + cards + turn), used for re-rooting and as a tie-break in the
	// selection/move comparators.
	Hash() uint64
}

// RiskGameState is implemented by GameState values that are specifically
// Risk positions, exposing the board view the Evaluator and the rollout
// policy need. A GameState for some other game simply won't satisfy this,
// and the core degrades to domain-agnostic behavior.
type RiskGameState interface {
	GameState

	// Board exposes the Risk-specific view of this state.
	Board() RiskBoard
}
