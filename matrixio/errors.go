// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned for non-numeric tokens, NaN/Inf values,
	// ragged rows or an input without rows.
	ErrMalformedInput = errors.New("matrixio: malformed input")

	// ErrInvalidSource is returned when a source string cannot be resolved.
	ErrInvalidSource = errors.New("matrixio: invalid source")

	// ErrNotFound is returned when the object-store key does not exist.
	ErrNotFound = errors.New("matrixio: object not found")
)

func malformedf(line int, format string, args ...any) error {
	return fmt.Errorf("matrixio: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrMalformedInput)
}
