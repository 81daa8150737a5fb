// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan reduction to reduced row echelon form (RREF).
//
// Purpose:
//   - Reduce any rectangular real matrix (square or not, singular or not) to
//     its reduced row echelon form with partial pivoting and an absolute
//     tolerance eps (DefaultEpsilon unless WithEpsilon is given).
//
// Algorithm (fixed order, deterministic):
//   - Forward pass: columns left→right; the first row at or below the pivot
//     cursor with |a[i][c]| > eps is swapped up, divided by its pivot value and
//     used to clear column c in EVERY other row (above and below). The pivot
//     column of each pivot row is recorded as it is placed.
//   - Backward pass: pivot rows bottom→top; the recorded pivot column is
//     cleared from every row above. After the bidirectional forward pass this
//     is normally a no-op; it stays so that the result is reduced even when
//     guarded skips left residue above a pivot.
//   - Cleanup: every |x| < eps becomes exactly +0.0 (no -0.0 in the output).
//
// Numeric policy:
//   - eps is absolute, never scaled by the magnitude of the input.
//   - After every row update (division or subtraction) residues below eps are
//     snapped to 0 in the updated row.
//
// Concurrency:
//   - Pure: the input is deep-copied on entry and never mutated; no shared
//     state besides the package logger. Safe for concurrent calls.

package matrix

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opRREF     = "RREF"
	opRREFRows = "RREFRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RREF returns the reduced row echelon form of m as a new *Dense.
// MAIN DESCRIPTION:
//   - Two-pass Gauss-Jordan elimination with partial pivoting (first
//     sufficiently large entry, not the largest) and a final zero snap.
//
// Implementation:
//   - Stage 1: ValidateNotNil; resolve options; degenerate shapes short-circuit.
//   - Stage 2: deep-copy m into a working *Dense; enforce the finite policy.
//   - Stage 3: forward pass, backward pass, cleanup.
//
// Behavior highlights:
//   - Total over finite rectangular input: singular, rank-deficient, all-zero
//     and non-square matrices all reduce without error.
//   - Output has the same shape as m. Each non-zero row leads with exactly 1.0,
//     pivot columns strictly increase downwards, pivot columns are zero outside
//     their pivot row, and all-zero rows sit at the bottom.
//   - m.Rows()==0 or m.Cols()==0 returns an empty 0×0 Dense and nil error.
//
// Inputs:
//   - m   : any Matrix; never mutated.
//   - opts: WithEpsilon, WithNoValidateNaNInf.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (policy ON), or errors from a foreign m.At.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c) for the working copy.
func RREF(m Matrix, opts ...Option) (*Dense, error) {
	return RREFContext(context.Background(), m, opts...)
}

// RREFContext is RREF with cooperative cancellation: ctx is checked before
// each pivot column is processed. On cancellation the partial work is
// discarded and ctx.Err() is returned wrapped with the operation tag.
func RREFContext(ctx context.Context, m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	o := gatherOptions(opts...)

	// Degenerate: nothing to reduce.
	if m.Rows() == 0 || m.Cols() == 0 {
		return newDenseZeroOK(0, 0)
	}

	work, err := workingCopy(m)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	work.validateNaNInf = o.validateNaNInf
	if o.validateNaNInf {
		if err = ValidateFinite(work); err != nil {
			return nil, matrixErrorf(opRREF, err)
		}
	}

	pivots, err := forwardEliminate(ctx, work, o.eps)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	backEliminate(work, pivots, o.eps)
	work.snapAll(o.eps)

	Logger().Debug("rref: reduced",
		slog.Int("rows", work.r),
		slog.Int("cols", work.c),
		slog.Int("pivots", len(pivots)),
		slog.Float64("eps", o.eps),
	)

	return work, nil
}

// RREFRows reduces a [][]float64 and returns a freshly allocated [][]float64
// of the same shape.
//
// Zero rows, or an empty first row, yield an empty (non-nil) result and nil
// error. Ragged input yields ErrBadShape. The input slices are never mutated
// or aliased by the result.
func RREFRows(rows [][]float64, opts ...Option) ([][]float64, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return [][]float64{}, nil
	}
	d, err := NewDenseFromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opRREFRows, err)
	}
	res, err := RREF(d, opts...)
	if err != nil {
		return nil, matrixErrorf(opRREFRows, err)
	}

	return res.ToRows(), nil
}

// workingCopy returns an owned *Dense with m's contents.
// *Dense inputs are cloned in one copy; other implementations go through At.
func workingCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}

	w, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < w.r; i++ {
		for j = 0; j < w.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			w.data[i*w.c+j] = v
		}
	}

	return w, nil
}

// forwardEliminate runs the forward pass in place and returns the pivot
// column of each pivot row: pivots[k] is the column whose leading 1 lives in
// row k. len(pivots) is the number of pivots placed.
func forwardEliminate(ctx context.Context, a *Dense, eps float64) ([]int, error) {
	pivots := make([]int, 0, min(a.r, a.c))
	log := Logger()

	var pivotRow, c, i, r int
	var pv, f float64
	for c = 0; c < a.c; c++ {
		if pivotRow >= a.r {
			break // no rows left to host a pivot; remaining columns are free
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// First row at or below the cursor with a usable entry in column c.
		i = pivotRow
		for i < a.r && math.Abs(a.data[i*a.c+c]) <= eps {
			i++
		}
		if i == a.r {
			continue // free column
		}
		a.swapRows(i, pivotRow)

		pv = a.data[pivotRow*a.c+c]
		if math.Abs(pv) > eps {
			a.divRow(pivotRow, pv)
			a.snapRow(pivotRow, eps)
		}

		for r = 0; r < a.r; r++ {
			if r == pivotRow {
				continue
			}
			f = a.data[r*a.c+c]
			if math.Abs(f) > eps {
				a.subScaledRow(r, pivotRow, f)
				a.snapRow(r, eps)
			}
		}

		log.Debug("rref: pivot placed",
			slog.Int("row", pivotRow),
			slog.Int("col", c),
			slog.Int("swappedFrom", i),
			slog.Float64("value", pv),
		)
		pivots = append(pivots, c)
		pivotRow++
	}

	return pivots, nil
}

// backEliminate clears every recorded pivot column above its pivot row,
// walking pivot rows from the bottom up.
func backEliminate(a *Dense, pivots []int, eps float64) {
	var k, r, pc int
	var f float64
	for k = len(pivots) - 1; k >= 0; k-- {
		pc = pivots[k]
		for r = 0; r < k; r++ {
			f = a.data[r*a.c+pc]
			if math.Abs(f) > eps {
				a.subScaledRow(r, k, f)
				a.snapRow(r, eps)
			}
		}
	}
}
