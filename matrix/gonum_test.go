// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	d, err := matrix.FromGonum(src)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, d.ToRows())

	// Non-*mat.Dense sources go through At (a transpose view here).
	dt, err := matrix.FromGonum(src.T())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, dt.ToRows())

	back, err := d.ToGonum()
	require.NoError(t, err)
	require.True(t, mat.Equal(src, back))

	// The copy is independent of the source.
	src.Set(0, 0, 99)
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestGonumErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(mat.NewDense(1, 2, []float64{1, math.NaN()}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.FromGonum(mat.NewDense(1, 2, []float64{1, math.NaN()}), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	empty := MustFromRows(t, nil)
	_, err = empty.ToGonum()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRREF_RankMatchesSVD cross-checks the number of non-zero RREF rows
// against the numerical rank reported by gonum's SVD.
func TestRREF_RankMatchesSVD(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	for n := 0; n < 60; n++ {
		r, c := 2+rng.Intn(5), 2+rng.Intn(5)
		rank := 1 + rng.Intn(min(r, c))
		in := RankDeficientRows(rng, r, c, rank)

		t.Run(fmt.Sprintf("case%02d_%dx%d", n, r, c), func(t *testing.T) {
			src := MustFromRows(t, in)
			g, err := src.ToGonum()
			require.NoError(t, err)

			var svd mat.SVD
			require.True(t, svd.Factorize(g, mat.SVDNone))
			want := svd.Rank(1e-10)

			reduced, err := matrix.RREF(src)
			require.NoError(t, err)
			require.Equal(t, want, nonZeroRows(reduced.ToRows()))
		})
	}
}
