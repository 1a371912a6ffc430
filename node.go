package modeltree

import "gonum.org/v1/gonum/mat"

// Estimator is a fitted predictive model attached to a tree node. Leaf
// estimators produce the tree's predictions; internal nodes may also carry
// one (some model-tree variants blend internal-node predictions into the
// leaf output). This package only stores and forwards the reference -- it
// never calls Predict, and the estimator's lifecycle belongs to the fitting
// driver that created it.
type Estimator interface {
	// Predict computes model outputs for each row of X.
	Predict(X mat.Matrix) (*mat.Dense, error)
}

// Node is one vertex of a binary model tree. A node is either a leaf (no
// split, no children) or an internal node (a split plus exactly two
// children); the two constructors are the only ways to build one, so no
// other shape is representable.
//
// A node holds no behavior of its own: fitting and prediction are the
// external driver's job, which reads the node's fields through the
// accessors and interprets them under its own traversal policy.
type Node struct {
	depth     int
	estimator Estimator
	split     *Split
	left      *Node
	right     *Node
}

// NewLeaf returns a terminal node at the given zero-based depth. By the
// usual driver convention a leaf carries the estimator used for
// predictions, but this package does not require one.
func NewLeaf(depth int, estimator Estimator) *Node {
	return &Node{depth: depth, estimator: estimator}
}

// NewInternal returns an internal node at the given zero-based depth whose
// split routes samples between the two children: left receives the rows
// the split sends to child 0, right the rest. Both children must be
// non-nil; the estimator is optional. Depth consistency (child depth =
// parent depth + 1) is the caller's responsibility and is not checked.
func NewInternal(depth int, estimator Estimator, split Split, left, right *Node) *Node {
	return &Node{
		depth:     depth,
		estimator: estimator,
		split:     &split,
		left:      left,
		right:     right,
	}
}

// Depth returns the node's zero-based depth in the tree.
func (n *Node) Depth() int { return n.depth }

// Estimator returns the model attached to the node, or nil if none was set.
func (n *Node) Estimator() Estimator { return n.estimator }

// IsLeaf reports whether the node is terminal.
func (n *Node) IsLeaf() bool { return n.split == nil }

// Split returns the node's splitting rule. ok is false on a leaf.
func (n *Node) Split() (s Split, ok bool) {
	if n.split == nil {
		return Split{}, false
	}
	return *n.split, true
}

// Children returns the node's two children, left (child 0) first.
// Both are nil on a leaf.
func (n *Node) Children() (left, right *Node) { return n.left, n.right }

// NumLeaves returns the number of terminal nodes in the subtree rooted at n.
func (n *Node) NumLeaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.left.NumLeaves() + n.right.NumLeaves()
}

// Height returns the number of edges on the longest path from n down to a
// leaf. A leaf has height 0.
func (n *Node) Height() int {
	if n.IsLeaf() {
		return 0
	}
	h := n.left.Height()
	if r := n.right.Height(); r > h {
		h = r
	}
	return h + 1
}

// Walk visits every node of the subtree rooted at root in pre-order, left
// child before right. If visit returns false the subtree below that node
// is skipped. A nil root is a no-op.
func Walk(root *Node, visit func(*Node) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	Walk(root.left, visit)
	Walk(root.right, visit)
}
