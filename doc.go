// Package modeltree provides the structural core of a model tree: a binary
// recursive partition of a feature space whose leaves hold fitted predictive
// models instead of the constant values of a classical decision tree.
//
// The package supplies the two primitives every model-tree algorithm is built
// on. Node is one vertex of the binary tree, carrying its depth, an attached
// estimator, and (on internal nodes) a split plus exactly two children. Split
// is the single-feature threshold rule an internal node uses to route samples
// to those children. Growing a tree, choosing splits, and traversing it for
// prediction belong to an external driver; this package defines what a node
// and a split are, not how a tree decides to use them.
//
// Basic usage:
//
//	s := modeltree.Split{Feature: 0, Threshold: 5}
//	left, right, err := s.Apply(X) // stable partition of X's rows
//
//	leafA := modeltree.NewLeaf(1, estA)
//	leafB := modeltree.NewLeaf(1, estB)
//	root := modeltree.NewInternal(0, nil, s, leafA, leafB)
//
// Feature matrices and targets are gonum values: inputs are accepted as
// mat.Matrix, partitioned subsets come back as *mat.Dense. A fully one-sided
// split is a valid outcome; the empty side is returned as gonum's empty
// matrix (the zero value of mat.Dense).
//
// # Splitting rule
//
// A Split routes a sample by a single comparison: rows with
// X[row, Feature] <= Threshold go to child 0 ("left"), all other rows go to
// child 1 ("right"). Ties at the threshold always go left. Both output
// subsets preserve the relative row order of the input, so a target matrix
// partitioned alongside the features stays row-aligned with them.
//
// # Concurrency
//
// Split application is a pure function: it never mutates its inputs and
// holds no state beyond the two Split fields, so the same Split may be
// applied concurrently from any number of goroutines. Node values carry no
// internal synchronization; a tree that is shared across goroutines must be
// fully built first and treated as immutable afterwards.
package modeltree
