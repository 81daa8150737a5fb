// SPDX-License-Identifier: MIT

// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Let callers that already hold gonum matrices reduce them without
//     hand-copying, and hand the result back to gonum for further algebra.
//
// Notes:
//   - gonum forbids zero-sized *mat.Dense, so ToGonum reports
//     ErrInvalidDimensions for the empty results of degenerate reductions.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxFromGonum = "FromGonum"
	ctxToGonum   = "ToGonum"
)

// FromGonum copies any gonum matrix into a new *Dense.
// MAIN DESCRIPTION:
//   - Deep copy through mat.Matrix.At in row-major order; *mat.Dense sources
//     are copied row by row through RawRowView.
//
// Errors:
//   - ErrNilMatrix for a nil source; ErrNaNInf under the finite policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := a.Dims()
	m, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, err)
	}
	m.validateNaNInf = o.validateNaNInf

	var i, j int
	if src, ok := a.(*mat.Dense); ok {
		for i = 0; i < r; i++ {
			copy(m.row(i), src.RawRowView(i))
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				m.data[i*c+j] = a.At(i, j)
			}
		}
	}

	if m.validateNaNInf {
		if err = ValidateFinite(m); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxFromGonum, err)
		}
	}

	return m, nil
}

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrInvalidDimensions when m has zero rows or columns.
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("%s: %w", ctxToGonum, ErrInvalidDimensions)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}
