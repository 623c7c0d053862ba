package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/symnmf/matrix"
)

// ExampleMul multiplies a factor by its transpose, the H·Hᵀ reconstruction.
func ExampleMul() {
	h, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 2}})
	ht, _ := matrix.Transpose(h)
	hht, _ := matrix.Mul(h, ht)
	fmt.Print(hht)
	// Output:
	// [1, 0]
	// [0, 4]
}

// ExampleScaleRows normalizes a similarity matrix by 1/sqrt(degree) on both sides.
func ExampleScaleRows() {
	a, _ := matrix.NewDenseFromRows([][]float64{{0, 4}, {4, 0}})
	s := []float64{0.5, 0.5}
	rows, _ := matrix.ScaleRows(a, s)
	w, _ := matrix.ScaleCols(rows, s)
	fmt.Print(w)
	// Output:
	// [0, 1]
	// [1, 0]
}
