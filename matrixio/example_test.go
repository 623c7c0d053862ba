package matrixio_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/symnmf/matrixio"
)

func ExampleRead() {
	m, err := matrixio.Read(strings.NewReader("1,2.5\n-0.125,4\n"))
	if err != nil {
		return
	}
	_ = matrixio.Write(os.Stdout, m)
	// Output:
	// 1.0000,2.5000
	// -0.1250,4.0000
}
