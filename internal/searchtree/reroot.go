package searchtree

// Rebase builds a fresh Tree whose root is the subtree of t currently rooted
// at newRoot, preserving every descendant's Plays/Wins/State/Action.
// Everything outside that subtree (siblings, the old root, ancestors) is
// dropped by simply not being copied; there is no mark-and-sweep step.
func (t *Tree) Rebase(newRoot NodeIndex) *Tree {
	fresh := &Tree{nodes: make([]Node, 0, len(t.nodes))}
	var copySubtree func(old NodeIndex, newParent NodeIndex) NodeIndex
	copySubtree = func(old NodeIndex, newParent NodeIndex) NodeIndex {
		oldNode := t.nodes[old]
		idx := NodeIndex(len(fresh.nodes))
		fresh.nodes = append(fresh.nodes, Node{
			Parent:   newParent,
			Action:   oldNode.Action,
			State:    oldNode.State,
			Plays:    oldNode.Plays,
			Wins:     oldNode.Wins,
			expanded: oldNode.expanded,
		})
		for _, oldChild := range oldNode.Children {
			childIdx := copySubtree(oldChild, idx)
			fresh.nodes[idx].Children = append(fresh.nodes[idx].Children, childIdx)
		}
		return idx
	}
	copySubtree(newRoot, NoParent)
	return fresh
}
