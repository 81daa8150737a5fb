package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rref/matrix"
)

// ExampleRREFRows reduces a rank-deficient matrix: the second row is twice
// the first, so it is eliminated entirely.
func ExampleRREFRows() {
	out, err := matrix.RREFRows([][]float64{
		{1, 2},
		{2, 4},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)

	// Output:
	// [[1 2] [0 0]]
}

// ExampleRREF solves x+y+z=6, 2x+y-z=1, 3x-y+z=4 by reducing the augmented
// matrix; the last column holds the solution.
func ExampleRREF() {
	aug, _ := matrix.NewDenseFromRows([][]float64{
		{1, 1, 1, 6},
		{2, 1, -1, 1},
		{3, -1, 1, 4},
	})
	red, err := matrix.RREF(aug)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range red.ToRows() {
		fmt.Printf("%.3f\n", row[3])
	}

	// Output:
	// 1.000
	// 2.000
	// 3.000
}
