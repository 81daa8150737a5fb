// Package rref reduces real matrices to reduced row echelon form (RREF).
//
// 🚀 What is rref?
//
//	A small, dependency-light Gauss-Jordan engine plus an interactive
//	calculator built on top of it:
//		• Engine: partial pivoting with an absolute tolerance (default 1e-9)
//		• Totality: singular, rank-deficient, all-zero and non-square input
//		• Clean output: near-zero residue snapped to exactly 0.0, no -0.0
//		• Interop: copy to and from gonum mat.Dense
//		• CLI: prompt row by row (or read a file), print aligned results
//
// ✨ Why choose rref?
//
//   - Deterministic – fixed loop orders, first-usable pivot, no randomness
//   - Pure – input is deep-copied and never mutated
//   - Cancellable – RREFContext checks its context between pivot columns
//   - Quiet by default – slog debug records only after matrix.SetLogger
//
// Under the hood, everything is organized under these packages:
//
//	matrix/           — Dense storage, validators, options and the RREF engine
//	internal/console/ — interactive prompting, file reading and rendering
//	internal/config/  — command-line flags of the calculator
//	cmd/rref/         — the "Matrix RREF Calculator" program
//	examples/         — runnable demos (linear systems, rank, null space)
//
// Quick example:
//
//	[1 2]        [1 2]
//	[2 4]  RREF→ [0 0]
//
//	the second row is twice the first, so the rank is 1.
//
//	go install github.com/katalvlaran/rref/cmd/rref@latest
package rref
