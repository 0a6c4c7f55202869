package mcts

import (
	"math/rand"
	"time"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/corvidlabs/riskmcts/internal/evaluator"
	"github.com/corvidlabs/riskmcts/internal/risk"
	"github.com/corvidlabs/riskmcts/internal/searchtree"
)

// Engine runs UCT iterations against a single tree until a deadline. It is
// not safe for concurrent use by multiple goroutines on the same instance;
// independent Engines (independent turns/matches) are fully independent.
type Engine struct {
	cfg    Config
	eval   *evaluator.Evaluator
	player risk.PlayerID
	tree   *searchtree.Tree
	rng    *rand.Rand

	start    time.Time
	deadline time.Time

	iterations int
}

// New creates an Engine that searches root on behalf of player, rooted at a
// fresh single-node tree.
func New(cfg Config, eval *evaluator.Evaluator, player risk.PlayerID, root risk.GameState, rng *rand.Rand) *Engine {
	if root == nil {
		exceptions.Panicf("riskmcts/mcts: New called with a nil root state")
	}
	return &Engine{cfg: cfg, eval: eval, player: player, tree: searchtree.New(root), rng: rng}
}

// NewFromTree creates an Engine reusing an already-populated tree, e.g. one
// retained across turns by rebasing onto the opponent's actual move.
func NewFromTree(cfg Config, eval *evaluator.Evaluator, player risk.PlayerID, tree *searchtree.Tree, rng *rand.Rand) *Engine {
	return &Engine{cfg: cfg, eval: eval, player: player, tree: tree, rng: rng}
}

// Tree exposes the underlying tree, e.g. for the Facade's final move pick
// or for retaining across turns.
func (e *Engine) Tree() *searchtree.Tree { return e.tree }

// Iterations reports how many full selection/expansion/simulation/
// backpropagation cycles Run completed.
func (e *Engine) Iterations() int { return e.iterations }

func (e *Engine) shouldStop() bool {
	return !e.deadline.IsZero() && time.Now().After(e.deadline)
}

// shouldStopProportion returns true when the elapsed time scaled by
// proportion already meets or exceeds the full budget, i.e. a cheap
// estimate that the next unit of work (costing roughly proportion times
// what's elapsed so far) would blow the deadline.
func (e *Engine) shouldStopProportion(proportion float64) bool {
	if e.deadline.IsZero() {
		return false
	}
	budget := e.deadline.Sub(e.start)
	elapsed := time.Since(e.start)
	return elapsed.Seconds()*proportion >= budget.Seconds()
}

// Run executes the pre-search shortcut, and if it doesn't force an answer,
// iterates selection/expansion/simulation/backpropagation until rawDeadline
// (minus the configured safety buffer) passes. It returns the forced action
// and true if the shortcut fired, or the zero Action and false otherwise (in
// which case the caller reads the result off e.Tree()).
func (e *Engine) Run(rawDeadline time.Time) (risk.Action, bool) {
	e.start = time.Now()
	e.deadline = rawDeadline.Add(-e.cfg.SafetyBuffer)

	if action, forced := e.sortPromisingCandidates(); forced {
		return action, true
	}

	for !e.shouldStop() {
		leaf := e.selectAndExpand(e.tree.Root())
		won := e.rollout(leaf)
		e.tree.AddVisit(leaf, won)
		e.iterations++
	}
	if klog.V(2).Enabled() {
		klog.Infof("mcts: %d iterations, tree size %d", e.iterations, e.tree.Len())
	}
	return risk.Action{}, false
}

func isTerminal(state risk.GameState) bool { return state.IsGameOver() }
