// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/symnmf/matrix"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 16 << 20

// Read parses comma-separated rows from r into a Dense matrix.
// Blank lines are skipped; every other line must carry the same number of
// finite numeric values as the first.
//
// Errors: ErrMalformedInput (wrapped with the 1-based line number).
// Complexity: O(n*d).
func Read(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		data       []float64
		cols, rows int
		line       int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, malformedf(line, "%d values, want %d", len(fields), cols)
		}
		for _, tok := range fields {
			tok = strings.TrimSpace(tok)
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, malformedf(line, "token %q", tok)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, malformedf(line, "non-finite value %q", tok)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrixio.Read: line %d: %w", line+1, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("matrixio.Read: no rows: %w", ErrMalformedInput)
	}

	return matrix.NewDenseFromData(rows, cols, data)
}

// ReadFile loads a local (optionally compressed) matrix file.
func ReadFile(path string) (*matrix.Dense, error) {
	return Load(context.Background(), path)
}

// Load opens src with Open and parses it with Read.
func Load(ctx context.Context, src string, opts ...Option) (*matrix.Dense, error) {
	rc, err := Open(ctx, src, opts...)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	m, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	return m, nil
}
