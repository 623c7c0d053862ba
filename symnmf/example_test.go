package symnmf_test

import (
	"fmt"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/similarity"
	"github.com/katalvlaran/symnmf/symnmf"
)

// ExampleRun factors the normalized similarity of two tight pairs of points
// and reads the clustering off the factor.
func ExampleRun() {
	points, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0}, {0, 0.5}, {0.5, 0},
		{4, 4}, {4, 4.5}, {4.5, 4},
	})
	w, _ := similarity.Norm(points)

	res, err := symnmf.Run(w, 2, symnmf.WithSeed(1234))
	if err != nil {
		fmt.Println(err)
		return
	}
	labels, _ := cluster.FromFactor(res.H)
	fmt.Println(labels[0] == labels[1], labels[1] == labels[2], labels[0] != labels[3], labels[3] == labels[5])
	// Output:
	// true true true true
}
