package searchtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/riskmcts/internal/risk"
	"github.com/corvidlabs/riskmcts/internal/risk/ref"
)

func smallBoard() *ref.Board {
	return ref.NewCustomGame(2, 0, []ref.TerritorySpec{
		{ID: 0, Continent: 0, Owner: 0, Troops: 5, Neighbors: []risk.TerritoryID{1}},
		{ID: 1, Continent: 0, Owner: 1, Troops: 1, Neighbors: []risk.TerritoryID{0}},
	}, []ref.ContinentSpec{{ID: 0, Bonus: 0}})
}

func TestNewTreeHasSingleRoot(t *testing.T) {
	tr := New(smallBoard())
	assert.Equal(t, 1, tr.Len())
	root := tr.Node(tr.Root())
	assert.True(t, root.IsLeaf())
	assert.Equal(t, NoParent, root.Parent)
}

func TestAddChildLinksParentAndChild(t *testing.T) {
	tr := New(smallBoard())
	root := tr.Root()
	action := risk.Action{Kind: risk.Reinforce, To: 0}
	child := tr.AddChild(root, action, smallBoard().Apply(action))
	tr.MarkExpanded(root)

	assert.Equal(t, 2, tr.Len())
	assert.False(t, tr.Node(root).IsLeaf())
	require.Len(t, tr.Node(root).Children, 1)
	assert.Equal(t, child, tr.Node(root).Children[0])
	assert.Equal(t, root, tr.Node(child).Parent)
}

func TestAddVisitPropagatesToRoot(t *testing.T) {
	tr := New(smallBoard())
	root := tr.Root()
	c1 := tr.AddChild(root, risk.Action{Kind: risk.Reinforce, To: 0}, smallBoard())
	c2 := tr.AddChild(c1, risk.Action{Kind: risk.EndPhase}, smallBoard())

	tr.AddVisit(c2, true)
	tr.AddVisit(c2, false)

	assert.Equal(t, 2, tr.Node(c2).Plays)
	assert.Equal(t, 1, tr.Node(c2).Wins)
	assert.Equal(t, 2, tr.Node(c1).Plays)
	assert.Equal(t, 1, tr.Node(c1).Wins)
	assert.Equal(t, 2, tr.Node(root).Plays)
	assert.Equal(t, 1, tr.Node(root).Wins)

	assert.LessOrEqual(t, tr.Node(c2).Wins, tr.Node(c2).Plays)
}

func TestChildByActionAndHash(t *testing.T) {
	tr := New(smallBoard())
	root := tr.Root()
	action := risk.Action{Kind: risk.Reinforce, To: 0}
	state := smallBoard().Apply(action)
	child := tr.AddChild(root, action, state)

	found, ok := tr.ChildByAction(root, action)
	require.True(t, ok)
	assert.Equal(t, child, found)

	foundByHash, ok := tr.ChildByStateHash(root, state.Hash())
	require.True(t, ok)
	assert.Equal(t, child, foundByHash)

	_, ok = tr.ChildByAction(root, risk.Action{Kind: risk.EndPhase})
	assert.False(t, ok)
}

func TestSortChildrenIsStable(t *testing.T) {
	tr := New(smallBoard())
	root := tr.Root()
	a := tr.AddChild(root, risk.Action{Kind: risk.Reinforce, To: 0}, smallBoard())
	b := tr.AddChild(root, risk.Action{Kind: risk.Reinforce, To: 1}, smallBoard())
	c := tr.AddChild(root, risk.Action{Kind: risk.EndPhase}, smallBoard())

	tr.Node(a).Plays, tr.Node(a).Wins = 10, 5
	tr.Node(b).Plays, tr.Node(b).Wins = 10, 5
	tr.Node(c).Plays, tr.Node(c).Wins = 3, 1

	tr.SortChildren(root, func(x, y NodeIndex) bool {
		return tr.Node(x).Plays > tr.Node(y).Plays
	})

	children := tr.Node(root).Children
	require.Len(t, children, 3)
	assert.Equal(t, c, children[2])
	// a and b tie on Plays; stable sort keeps their relative (creation) order.
	assert.Equal(t, a, children[0])
	assert.Equal(t, b, children[1])
}

// Property 8: re-rooting preserves plays/wins of retained subtree nodes.
func TestRebasePreservesStatsOfRetainedSubtree(t *testing.T) {
	tr := New(smallBoard())
	root := tr.Root()
	keep := tr.AddChild(root, risk.Action{Kind: risk.Reinforce, To: 0}, smallBoard())
	grandchild := tr.AddChild(keep, risk.Action{Kind: risk.EndPhase}, smallBoard())
	pruned := tr.AddChild(root, risk.Action{Kind: risk.Reinforce, To: 1}, smallBoard())

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		tr.AddVisit(grandchild, rng.Intn(2) == 0)
	}
	keepPlays, keepWins := tr.Node(keep).Plays, tr.Node(keep).Wins
	grandchildPlays, grandchildWins := tr.Node(grandchild).Plays, tr.Node(grandchild).Wins
	_ = pruned

	rebased := tr.Rebase(keep)

	newRoot := rebased.Root()
	assert.Equal(t, keepPlays, rebased.Node(newRoot).Plays)
	assert.Equal(t, keepWins, rebased.Node(newRoot).Wins)
	assert.Equal(t, NoParent, rebased.Node(newRoot).Parent)

	require.Len(t, rebased.Node(newRoot).Children, 1)
	newGrandchild := rebased.Node(newRoot).Children[0]
	assert.Equal(t, grandchildPlays, rebased.Node(newGrandchild).Plays)
	assert.Equal(t, grandchildWins, rebased.Node(newGrandchild).Wins)

	// The pruned sibling subtree is gone: rebased is strictly smaller than
	// the retained subtree's original node count would suggest if it had
	// been included.
	assert.Equal(t, 2, rebased.Len())
}

func TestNewPanicsOnNilState(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}
