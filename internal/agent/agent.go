package agent

import (
	"math/rand"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/corvidlabs/riskmcts/internal/evaluator"
	"github.com/corvidlabs/riskmcts/internal/mcts"
	"github.com/corvidlabs/riskmcts/internal/risk"
	"github.com/corvidlabs/riskmcts/internal/searchtree"
)

// treeReuseDepth bounds how many plies deep SelectAction will search an
// existing tree for the state it was just handed, before giving up and
// rebuilding from scratch. Four plies cover the opponent's reply plus a
// couple of auto-resolved chance nodes in between; deeper chains just fall
// back to a fresh tree, which the spec allows (reuse is best-effort).
const treeReuseDepth = 4

// Agent is the Player-facing wrapper around an mcts.Engine: it owns the
// search tree across turns, re-rooting it onto whatever state it's handed
// next if that state shows up as a descendant, and otherwise starting over.
type Agent struct {
	cfg  mcts.Config
	eval *evaluator.Evaluator
	rng  *rand.Rand

	player     risk.PlayerID
	numPlayers int
	tree       *searchtree.Tree
}

// SetUp assigns the Agent its seat at the table. It must be called before
// the first SelectAction of a match.
func (a *Agent) SetUp(numPlayers int, myPlayerID risk.PlayerID) {
	if numPlayers <= 0 {
		exceptions.Panicf("riskmcts/agent: SetUp called with non-positive numPlayers %d", numPlayers)
	}
	if myPlayerID < 0 || int(myPlayerID) >= numPlayers {
		exceptions.Panicf("riskmcts/agent: SetUp called with out-of-range myPlayerID %d", myPlayerID)
	}
	a.numPlayers = numPlayers
	a.player = myPlayerID
	a.tree = nil
}

// SelectAction runs the search and returns the chosen action for
// currentState, within budget. The tree is retained (rebased) across calls
// when currentState is found among a prior call's descendants.
func (a *Agent) SelectAction(currentState risk.GameState, budget time.Duration) (risk.Action, error) {
	if currentState == nil {
		exceptions.Panicf("riskmcts/agent: SelectAction called with a nil state")
	}

	a.reuseOrReset(currentState)
	eng := mcts.NewFromTree(a.cfg, a.eval, a.player, a.tree, a.rng)

	if action, forced := eng.Run(time.Now().Add(budget)); forced {
		a.advanceTree(action)
		return action, nil
	}

	root := a.tree.Root()
	children := a.tree.Node(root).Children
	if len(children) == 0 {
		// Extreme time pressure: not even one iteration completed. Fall back
		// to a greedy one-ply choice rather than return nothing.
		klog.V(1).Infof("riskmcts/agent: root unexpanded after budget %s, using greedy fallback", budget)
		action, err := greedyFallback(currentState, a.player)
		if err != nil {
			return risk.Action{}, err
		}
		a.tree = nil
		return action, nil
	}

	best := children[0]
	for _, c := range children[1:] {
		if mcts.MoveIsBetter(a.tree.Node(c), a.tree.Node(best)) {
			best = c
		}
	}
	action := a.tree.Node(best).Action
	a.advanceTree(action)
	return action, nil
}

// TearDown releases the Agent's search tree at the end of a match.
func (a *Agent) TearDown() {
	if klog.V(1).Enabled() {
		klog.Infof("riskmcts/agent: tearing down player %d", a.player)
	}
	a.tree = nil
}

// PonderStart and PonderStop are no-ops: this Agent never thinks outside of
// a SelectAction call. They exist so a match runner that offers pondering
// time between turns has something to call without a type switch.
func (a *Agent) PonderStart(risk.GameState) {}
func (a *Agent) PonderStop()                {}

// Destroy releases every reference the Agent holds. After Destroy the Agent
// must not be used again.
func (a *Agent) Destroy() {
	a.tree = nil
	a.eval = nil
}

// reuseOrReset points a.tree at currentState, either by finding it among
// the existing tree's descendants (re-rooting onto it) or, failing that, by
// starting a fresh single-node tree.
func (a *Agent) reuseOrReset(currentState risk.GameState) {
	if a.tree == nil {
		a.tree = searchtree.New(currentState)
		return
	}
	root := a.tree.Root()
	if a.tree.Node(root).State.Hash() == currentState.Hash() {
		return
	}
	if found, ok := findDescendant(a.tree, root, currentState.Hash(), treeReuseDepth); ok {
		a.tree = a.tree.Rebase(found)
		return
	}
	klog.V(1).Infof("riskmcts/agent: tree reuse miss, rebuilding from state hash %d", currentState.Hash())
	a.tree = searchtree.New(currentState)
}

// advanceTree rebases the tree onto the child reached by action, ready for
// the state the environment will hand back next turn. If action isn't
// present as a child of the current root (e.g. the greedy fallback path),
// the tree is dropped instead.
func (a *Agent) advanceTree(action risk.Action) {
	root := a.tree.Root()
	if child, ok := a.tree.ChildByAction(root, action); ok {
		a.tree = a.tree.Rebase(child)
		return
	}
	a.tree = nil
}

// findDescendant searches up to depth plies below idx for a node whose
// state hashes to hash, preferring the shallowest match.
func findDescendant(tree *searchtree.Tree, idx searchtree.NodeIndex, hash uint64, depth int) (searchtree.NodeIndex, bool) {
	if depth <= 0 {
		return 0, false
	}
	for _, c := range tree.Node(idx).Children {
		if tree.Node(c).State.Hash() == hash {
			return c, true
		}
	}
	for _, c := range tree.Node(idx).Children {
		if found, ok := findDescendant(tree, c, hash, depth-1); ok {
			return found, true
		}
	}
	return 0, false
}

// greedyFallback applies every legal action from state and picks the one
// leading to the position that ranks highest for player, used only when the
// search budget was too tight to complete a single iteration. Ties (most
// notably when every successor's vector is identical, e.g. a one-action
// state) break on the successor's state hash for determinism.
func greedyFallback(state risk.GameState, player risk.PlayerID) (risk.Action, error) {
	actions := state.PossibleActions()
	if len(actions) == 0 {
		return risk.Action{}, errors.New("riskmcts/agent: greedy fallback found no legal actions")
	}

	best := actions[0]
	bestScore := -1.0
	var bestHash uint64
	for _, action := range actions {
		next := state.Apply(action)
		score := valueOf(next, player)
		hash := next.Hash()
		if score > bestScore || (score == bestScore && hash > bestHash) {
			best, bestScore, bestHash = action, score, hash
		}
	}
	return best, nil
}

// valueOf reduces state to a single scalar favorability for player: the
// terminal utility if the game is over, otherwise the heuristic estimate.
func valueOf(state risk.GameState, player risk.PlayerID) float64 {
	vector := state.HeuristicVector()
	if state.IsGameOver() {
		vector = state.UtilityVector()
	}
	if int(player) < 0 || int(player) >= len(vector) {
		return 0
	}
	return vector[player]
}
