package searcher

import "draught/game"

// BoardNode is a state in the search tree. A parent owns its children; the
// tree is dropped once the search returns.
type BoardNode struct {
	position game.Position
	move     game.Move
	hasMove  bool
	children []*BoardNode
	score    int
}

func (n *BoardNode) Position() game.Position {
	return n.position
}

// Move returns the move that produced this node; the root has none
func (n *BoardNode) Move() (game.Move, bool) {
	return n.move, n.hasMove
}

func (n *BoardNode) Children() []*BoardNode {
	return n.children
}

func (n *BoardNode) Score() int {
	return n.score
}

// Size counts the nodes of the subtree rooted at n
func (n *BoardNode) Size() int {
	size := 1
	for _, child := range n.children {
		size += child.Size()
	}
	return size
}

// best returns the first child with the maximal score
func (n *BoardNode) best() *BoardNode {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.score > best.score {
			best = child
		}
	}
	return best
}
