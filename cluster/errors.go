// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClusterCount is returned when k falls outside (1, n).
	ErrInvalidClusterCount = errors.New("cluster: cluster count out of range")

	// ErrInvalidIterationBound is returned when an iteration cap falls outside
	// the range a solver accepts.
	ErrInvalidIterationBound = errors.New("cluster: iteration bound out of range")

	// ErrInvalidLabel is returned for a negative cluster label.
	ErrInvalidLabel = errors.New("cluster: negative label")
)

// Iteration bounds enforced at the command boundary (exclusive on both ends).
const (
	MinIterExclusive = 1
	MaxIterExclusive = 1000
)

// ValidateK checks 1 < k < n.
func ValidateK(k, n int) error {
	if k <= 1 || k >= n {
		return fmt.Errorf("k=%d with n=%d: %w", k, n, ErrInvalidClusterCount)
	}

	return nil
}

// ValidateMaxIter checks 1 < maxIter < 1000.
func ValidateMaxIter(maxIter int) error {
	if maxIter <= MinIterExclusive || maxIter >= MaxIterExclusive {
		return fmt.Errorf("max_iter=%d: %w", maxIter, ErrInvalidIterationBound)
	}

	return nil
}
