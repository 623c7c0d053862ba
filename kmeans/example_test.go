package kmeans_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/matrix"
)

func ExampleRefine() {
	points, _ := matrix.NewDenseFromRows([][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}})
	initial, _ := matrix.NewDenseFromRows([][]float64{{0, 0}, {10, 10}})

	res, err := kmeans.Refine(points, initial)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Iterations, res.Converged)
	fmt.Print(res.Centroids)
	// Output:
	// 2 true
	// [0, 0.5]
	// [10, 10.5]
}

func ExampleSeed() {
	points, _ := matrix.NewDenseFromRows([][]float64{{0, 0}, {0, 0.001}, {100, 100}, {100, 100.001}})
	_, idx, _ := kmeans.Seed(points, 2, rand.New(rand.NewSource(1234)))
	fmt.Println(len(idx), idx[0]/2 != idx[1]/2)
	// Output:
	// 2 true
}
