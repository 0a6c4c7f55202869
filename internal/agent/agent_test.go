package agent

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/riskmcts/internal/risk"
	"github.com/corvidlabs/riskmcts/internal/risk/ref"
)

func twoPlayerBoard() *ref.Board {
	return ref.NewStandardGame(2, rand.New(rand.NewSource(1)))
}

func TestNewRequiresMCTSSelector(t *testing.T) {
	_, err := New("c=1.6")
	assert.Error(t, err)
}

func TestNewRejectsUnknownParameters(t *testing.T) {
	_, err := New("mcts,bogus=1")
	require.Error(t, err)
}

func TestNewRejectsUnknownWeightsPreset(t *testing.T) {
	_, err := New("mcts,weights=made_up")
	require.Error(t, err)
}

func TestNewAppliesOverrides(t *testing.T) {
	a, err := New("mcts,c=1.6,max_time=250ms,depth_cap=10,weights=material_only")
	require.NoError(t, err)
	assert.Equal(t, 1.6, a.cfg.C)
	assert.Equal(t, 250*time.Millisecond, a.cfg.MaxTime)
	assert.Equal(t, 10, a.cfg.DepthCap)
}

func TestSelectActionReturnsLegalAction(t *testing.T) {
	a, err := New("mcts,max_time=200ms")
	require.NoError(t, err)
	a.SetUp(2, 0)

	board := twoPlayerBoard()
	action, err := a.SelectAction(board, 200*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, board.IsValidAction(action))
}

func TestSelectActionRetainsTreeAcrossTurns(t *testing.T) {
	a, err := New("mcts,max_time=150ms")
	require.NoError(t, err)
	a.SetUp(2, 0)

	board := twoPlayerBoard()
	action, err := a.SelectAction(board, 150*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, a.tree)

	next := board.Apply(action)
	// Re-entering with the exact state just played should find it rooted
	// already (or as a direct descendant) rather than rebuild from scratch.
	assert.Equal(t, next.Hash(), a.tree.Node(a.tree.Root()).State.Hash())
	before := a.tree.Len()
	_, err = a.SelectAction(next, 150*time.Millisecond)
	require.NoError(t, err)
	assert.NotNil(t, a.tree)
	_ = before
}

func TestSelectActionWithZeroBudgetUsesGreedyFallback(t *testing.T) {
	a, err := New("mcts")
	require.NoError(t, err)
	a.SetUp(2, 0)

	board := twoPlayerBoard()
	action, err := a.SelectAction(board, 0)
	require.NoError(t, err)
	assert.True(t, board.IsValidAction(action))
	// Only the greedy fallback path drops the tree after choosing.
	assert.Nil(t, a.tree)
}

func TestTearDownDropsTree(t *testing.T) {
	a, err := New("mcts,max_time=100ms")
	require.NoError(t, err)
	a.SetUp(2, 0)
	_, err = a.SelectAction(twoPlayerBoard(), 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, a.tree)

	a.TearDown()
	assert.Nil(t, a.tree)
}

func TestGreedyFallbackPrefersHigherValuedSuccessor(t *testing.T) {
	winning := risk.Action{Kind: risk.Reinforce, To: 0}
	losing := risk.Action{Kind: risk.Reinforce, To: 1}
	state := fallbackStub{
		actions: []risk.Action{losing, winning},
		results: map[risk.Action]float64{winning: 0.9, losing: 0.1},
	}

	action, err := greedyFallback(state, 0)
	require.NoError(t, err)
	assert.Equal(t, winning, action)
}

// fallbackStub is a minimal risk.GameState used to drive greedyFallback
// without depending on the rules engine's own heuristic weighting.
type fallbackStub struct {
	actions []risk.Action
	results map[risk.Action]float64
}

func (s fallbackStub) NumPlayers() int                { return 2 }
func (fallbackStub) CurrentPlayer() risk.PlayerID     { return 0 }
func (fallbackStub) PreviousAction() risk.Action      { return risk.Action{} }
func (s fallbackStub) PossibleActions() []risk.Action { return s.actions }
func (fallbackStub) IsValidAction(risk.Action) bool   { return true }
func (s fallbackStub) Apply(action risk.Action) risk.GameState {
	return fallbackLeaf{value: s.results[action]}
}
func (fallbackStub) DetermineNextAction() risk.Action { return risk.Action{} }
func (s fallbackStub) ApplyAuto() risk.GameState      { return s }
func (fallbackStub) IsGameOver() bool                 { return false }
func (fallbackStub) UtilityVector() []float64         { return []float64{0, 0} }
func (fallbackStub) HeuristicVector() []float64       { return []float64{0, 0} }
func (fallbackStub) Hash() uint64                     { return 0 }

type fallbackLeaf struct{ value float64 }

func (fallbackLeaf) NumPlayers() int                  { return 2 }
func (fallbackLeaf) CurrentPlayer() risk.PlayerID      { return 0 }
func (fallbackLeaf) PreviousAction() risk.Action       { return risk.Action{} }
func (fallbackLeaf) PossibleActions() []risk.Action    { return nil }
func (fallbackLeaf) IsValidAction(risk.Action) bool    { return false }
func (l fallbackLeaf) Apply(risk.Action) risk.GameState { return l }
func (fallbackLeaf) DetermineNextAction() risk.Action  { return risk.Action{} }
func (l fallbackLeaf) ApplyAuto() risk.GameState       { return l }
func (fallbackLeaf) IsGameOver() bool                  { return false }
func (fallbackLeaf) UtilityVector() []float64          { return []float64{0, 0} }
func (l fallbackLeaf) HeuristicVector() []float64      { return []float64{l.value, 1 - l.value} }
func (l fallbackLeaf) Hash() uint64                    { return uint64(l.value * 1000) }
