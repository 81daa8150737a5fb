// Package matrix reduces real matrices to reduced row echelon form.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and an
//     optional finite-only numeric policy.
//   - RREF / RREFContext / RREFRows: Gauss-Jordan elimination with partial
//     pivoting and an absolute tolerance (DefaultEpsilon = 1e-9).
//   - FromGonum / (*Dense).ToGonum for gonum.org/v1/gonum/mat interop.
//   - SetLogger to route debug records of each reduction to a *slog.Logger.
//
// Quick example:
//
//	out, err := matrix.RREFRows([][]float64{
//		{1, 2},
//		{2, 4},
//	})
//	// out == [[1 2] [0 0]]
//
// The engine is pure: inputs are deep-copied on entry and a new matrix is
// returned. Non-finite input is rejected with ErrNaNInf unless
// WithNoValidateNaNInf is given.
package matrix
