package silhouette_test

import (
	"fmt"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/silhouette"
)

func ExampleCompare() {
	points, _ := matrix.NewDenseFromRows([][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}})

	good, bad, err := silhouette.Compare(points, cluster.Labels{0, 0, 1, 1}, cluster.Labels{0, 1, 0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f %.4f\n", good, bad)
	// Output:
	// 0.9293 -0.4640
}
