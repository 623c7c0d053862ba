// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/symnmf/matrix"
)

// Write prints m row by row, values formatted "%.4f" and joined by ','.
func Write(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio.Write: %w", err)
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("matrixio.Write: %w", err)
			}
			if j > 0 {
				_ = bw.WriteByte(',')
			}
			buf = strconv.AppendFloat(buf[:0], v, 'f', 4, 64)
			_, _ = bw.Write(buf)
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Print writes m to standard output.
func Print(m matrix.Matrix) error {
	return Write(os.Stdout, m)
}

// WriteIndices prints idx on one comma-joined line.
func WriteIndices(w io.Writer, idx []int) error {
	bw := bufio.NewWriter(w)
	for i, v := range idx {
		if i > 0 {
			_ = bw.WriteByte(',')
		}
		_, _ = bw.WriteString(strconv.Itoa(v))
	}
	_ = bw.WriteByte('\n')

	return bw.Flush()
}
