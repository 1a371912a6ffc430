package modeltree

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Split is a single-feature threshold rule that partitions samples between
// a node's two children. A row goes to child 0 ("left") when its value in
// the Feature column is less than or equal to Threshold, and to child 1
// ("right") otherwise. Ties at the threshold always go left.
//
// A Split is a plain immutable value with no state beyond its two fields;
// applying it never mutates the inputs.
type Split struct {
	// Feature is the column index of the feature the rule inspects. It must
	// be a valid column index of any matrix the split is applied to.
	Feature int

	// Threshold is the comparison threshold.
	Threshold float64
}

// Subset pairs the feature rows and target rows routed to one child.
// The two matrices are row-aligned: row i of Y is the target of row i of X.
type Subset struct {
	X *mat.Dense
	Y *mat.Dense
}

// Left reports whether a sample whose split feature has the given value is
// routed to child 0. Values equal to the threshold go left.
func (s Split) Left(value float64) bool { return value <= s.Threshold }

// Apply partitions the rows of X into the left (child 0) and right (child 1)
// subsets. Both outputs keep all feature columns and preserve the relative
// row order of the input. A fully one-sided split yields an empty matrix on
// the other side, and a 0-row X yields two empty matrices; neither is an
// error. Apply returns an error when s.Feature is not a valid column index
// of X.
func (s Split) Apply(X mat.Matrix) (left, right *mat.Dense, err error) {
	leftRows, rightRows, err := s.partition(X)
	if err != nil {
		return nil, nil, err
	}
	return takeRows(X, leftRows), takeRows(X, rightRows), nil
}

// ApplyWithTarget partitions X and a row-aligned target y together, applying
// the same row mask to both so each returned Subset stays row-aligned. y may
// be a column vector (an n×1 matrix) or an n×k matrix of k outputs per
// sample. In addition to the Apply contract, it returns an error when y's
// row count does not match X's.
func (s Split) ApplyWithTarget(X, y mat.Matrix) (left, right Subset, err error) {
	xRows, _ := X.Dims()
	yRows, _ := y.Dims()
	if yRows != xRows {
		return Subset{}, Subset{}, fmt.Errorf("modeltree: target has %d rows, feature matrix has %d", yRows, xRows)
	}

	leftRows, rightRows, err := s.partition(X)
	if err != nil {
		return Subset{}, Subset{}, err
	}

	left = Subset{X: takeRows(X, leftRows), Y: takeRows(y, leftRows)}
	right = Subset{X: takeRows(X, rightRows), Y: takeRows(y, rightRows)}
	return left, right, nil
}

// partition computes row membership for X: indices of rows with
// X[i, s.Feature] <= s.Threshold in leftRows and the remaining indices in
// rightRows, each in input order. A 0-row X partitions to two empty sides
// before any bounds check, since there are no rows to inspect.
func (s Split) partition(X mat.Matrix) (leftRows, rightRows []int, err error) {
	rows, cols := X.Dims()
	if rows == 0 {
		return nil, nil, nil
	}
	if s.Feature < 0 || s.Feature >= cols {
		return nil, nil, fmt.Errorf("modeltree: split feature %d out of range for matrix with %d columns", s.Feature, cols)
	}

	for i := 0; i < rows; i++ {
		if X.At(i, s.Feature) <= s.Threshold {
			leftRows = append(leftRows, i)
		} else {
			rightRows = append(rightRows, i)
		}
	}
	return leftRows, rightRows, nil
}

// takeRows copies the given rows of m, in order, into a freshly allocated
// matrix. An empty row set yields gonum's empty matrix, since a Dense
// cannot be allocated with zero rows.
func takeRows(m mat.Matrix, rowIdx []int) *mat.Dense {
	if len(rowIdx) == 0 {
		return &mat.Dense{}
	}

	_, cols := m.Dims()
	out := mat.NewDense(len(rowIdx), cols, nil)

	// Row-copy fast path for Dense inputs; SetRow copies the view.
	if d, ok := m.(*mat.Dense); ok {
		for i, r := range rowIdx {
			out.SetRow(i, d.RawRowView(r))
		}
		return out
	}

	for i, r := range rowIdx {
		for j := 0; j < cols; j++ {
			out.Set(i, j, m.At(r, j))
		}
	}
	return out
}
