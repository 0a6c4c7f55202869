// Package searchtree owns the MCTS tree's memory: an arena of nodes indexed
// by position rather than linked by pointer, so that re-rooting (dropping
// everything outside the subtree reached by the move actually played) is a
// single copy into a fresh arena instead of a mark-and-sweep walk over
// pointers.
package searchtree

import (
	"sort"

	"github.com/gomlx/exceptions"

	"github.com/corvidlabs/riskmcts/internal/risk"
)

// NodeIndex addresses a Node within a Tree's arena. The zero value is the
// root of a freshly created Tree.
type NodeIndex int32

// NoParent marks the root node, which has no parent index.
const NoParent NodeIndex = -1

// Node is one position in the search tree. The store never mutates Plays or
// Wins itself; only the Engine does, via AddVisit.
type Node struct {
	Parent   NodeIndex
	Action   risk.Action // action that produced this node from Parent; zero Action at the root.
	State    risk.GameState
	Children []NodeIndex

	Plays int
	Wins  int

	// expanded marks whether Children has already been populated; a leaf
	// with expanded == false may still have zero legal actions (terminal).
	expanded bool
}

// IsLeaf reports whether n has not yet been expanded.
func (n *Node) IsLeaf() bool { return !n.expanded }

// Tree is an arena of Nodes. The zero Tree is not usable; use New.
type Tree struct {
	nodes []Node
}

// New creates a Tree with a single root node wrapping root.
func New(root risk.GameState) *Tree {
	if root == nil {
		exceptions.Panicf("riskmcts/searchtree: New called with a nil root state")
	}
	return &Tree{nodes: []Node{{Parent: NoParent, State: root}}}
}

// Root returns the index of the tree's root node.
func (t *Tree) Root() NodeIndex { return 0 }

// Len returns the number of nodes currently in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a pointer to the node at idx. The pointer is valid until the
// next AddChild call (which may grow the backing slice).
func (t *Tree) Node(idx NodeIndex) *Node {
	return &t.nodes[idx]
}

// MarkExpanded records that parent's children have been populated, even if
// Children ends up empty (a terminal state).
func (t *Tree) MarkExpanded(parent NodeIndex) {
	t.nodes[parent].expanded = true
}

// AddChild appends a new node for state, reached from parent via action, and
// links it as one of parent's children.
func (t *Tree) AddChild(parent NodeIndex, action risk.Action, state risk.GameState) NodeIndex {
	idx := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, Node{Parent: parent, Action: action, State: state})
	t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
	return idx
}

// AddVisit records the outcome of one rollout along the path from idx to the
// root, incrementing Plays (and, if won, Wins) on idx and every ancestor.
// Plays is always incremented before Wins is considered, so wins <= plays
// holds after every call.
func (t *Tree) AddVisit(idx NodeIndex, won bool) {
	for idx != NoParent {
		n := &t.nodes[idx]
		n.Plays++
		if won {
			n.Wins++
		}
		idx = n.Parent
	}
}

// ChildByAction returns the child of parent reached by action, if one
// exists among its already-expanded children.
func (t *Tree) ChildByAction(parent NodeIndex, action risk.Action) (NodeIndex, bool) {
	for _, c := range t.nodes[parent].Children {
		if t.nodes[c].Action.Equal(action) {
			return c, true
		}
	}
	return 0, false
}

// ChildByStateHash returns the child of parent whose State hashes to hash,
// if any. Only parent's direct children are searched; the Agent's
// re-rooting does its own multi-level hash search rather than calling this.
func (t *Tree) ChildByStateHash(parent NodeIndex, hash uint64) (NodeIndex, bool) {
	for _, c := range t.nodes[parent].Children {
		if t.nodes[c].State.Hash() == hash {
			return c, true
		}
	}
	return 0, false
}

// SortChildren stably sorts parent's Children slice in place using less,
// which compares two child NodeIndex values. Stability matters because ties
// in the comparator (equal plays/wins/hash) should preserve creation order
// rather than reshuffle on every call.
func (t *Tree) SortChildren(parent NodeIndex, less func(a, b NodeIndex) bool) {
	children := t.nodes[parent].Children
	sort.SliceStable(children, func(i, j int) bool {
		return less(children[i], children[j])
	})
}
