// SPDX-License-Identifier: MIT

package matrix

import "context"

// Test-Bridge (White-Box) for the private elimination passes and options.
//
// Purpose:
//   - Expose the unexported forward/backward passes and the resolved Options
//     to matrix_test ONLY (this file is compiled with tests, never in builds).

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like public facades do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// ForwardEliminateRows_TestOnly runs only the forward pass on a copy of rows.
func ForwardEliminateRows_TestOnly(rows [][]float64, eps float64) ([][]float64, []int, error) {
	d, err := NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, err
	}
	pivots, err := forwardEliminate(context.Background(), d, eps)
	if err != nil {
		return nil, nil, err
	}

	return d.ToRows(), pivots, nil
}

// BackEliminateRows_TestOnly runs only the backward pass on a copy of rows
// with caller-supplied pivot columns.
func BackEliminateRows_TestOnly(rows [][]float64, pivots []int, eps float64) ([][]float64, error) {
	d, err := NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}
	backEliminate(d, pivots, eps)

	return d.ToRows(), nil
}
