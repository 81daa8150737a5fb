// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the RREF engine.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/stretchr/testify/require"
)

// closeTol is the absolute tolerance for comparing results whose exact
// floating value depends on the elimination order.
const closeTol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (At-based) copy path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows BUILDS a *Dense from row-major fixtures or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows")

	return m
}

// MustRREF REDUCES rows through the row-slice facade or fails the test.
func MustRREF(t testing.TB, rows [][]float64, opts ...matrix.Option) [][]float64 {
	t.Helper()
	out, err := matrix.RREFRows(rows, opts...)
	require.NoError(t, err, "RREFRows(%v)", rows)

	return out
}

// copyRows DEEP-COPIES a row-slice fixture.
func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = append([]float64(nil), rows[i]...)
	}

	return out
}

// RandomIntRows FILLS an r×c fixture with integers in [lo, hi] from rng.
// Small integers keep elimination residue far below the default tolerance.
func RandomIntRows(rng *rand.Rand, r, c, lo, hi int) [][]float64 {
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = float64(lo + rng.Intn(hi-lo+1))
		}
	}

	return out
}

// RankDeficientRows BUILDS an r×c fixture whose last rows are integer
// combinations of the first `rank` rows.
func RankDeficientRows(rng *rand.Rand, r, c, rank int) [][]float64 {
	out := RandomIntRows(rng, rank, c, -4, 4)
	for i := rank; i < r; i++ {
		row := make([]float64, c)
		for k := 0; k < rank; k++ {
			f := float64(rng.Intn(5) - 2)
			for j := 0; j < c; j++ {
				row[j] += f * out[k][j]
			}
		}
		out = append(out, row)
	}

	return out
}

// permuteRows RETURNS rows reordered so that out[i] = rows[perm[i]].
func permuteRows(rows [][]float64, perm []int) [][]float64 {
	out := make([][]float64, len(rows))
	for i, p := range perm {
		out[i] = append([]float64(nil), rows[p]...)
	}

	return out
}

// nonZeroRows COUNTS rows holding at least one non-zero entry.
func nonZeroRows(rows [][]float64) int {
	n := 0
	for _, row := range rows {
		for _, v := range row {
			if v != 0 {
				n++
				break
			}
		}
	}

	return n
}

// RequireRowsClose COMPARES two row-slice matrices entry by entry within tol.
func RequireRowsClose(t testing.TB, want, got [][]float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want), "row count")
	for i := range want {
		require.Len(t, got[i], len(want[i]), "row %d length", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], got[i][j], tol, "entry [%d,%d]", i, j)
		}
	}
}

// RequireReducedForm CHECKS the structural definition of RREF:
//   - every non-zero row leads with exactly 1.0;
//   - leading columns strictly increase from top to bottom;
//   - a leading column is zero in every other row;
//   - all-zero rows come after every non-zero row.
func RequireReducedForm(t testing.TB, rows [][]float64) {
	t.Helper()
	prevLead := -1
	seenZero := false
	for i, row := range rows {
		lead := -1
		for j, v := range row {
			if v != 0 {
				lead = j
				break
			}
		}
		if lead < 0 {
			seenZero = true
			continue
		}
		require.False(t, seenZero, "non-zero row %d below a zero row", i)
		require.Equal(t, 1.0, row[lead], "row %d leading entry", i)
		require.Greater(t, lead, prevLead, "row %d pivot column must move right", i)
		for k := range rows {
			if k != i {
				require.Zero(t, rows[k][lead], "column %d must be zero in row %d", lead, k)
			}
		}
		prevLead = lead
	}
}
