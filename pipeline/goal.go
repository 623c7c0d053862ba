// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/symnmf/matrix"
)

// ErrUnknownGoal is returned by ParseGoal and RunGoal.
var ErrUnknownGoal = errors.New("pipeline: unknown goal")

// Goal is a printable pipeline product.
type Goal int

const (
	// GoalSym is the similarity matrix A.
	GoalSym Goal = iota
	// GoalDdg is the diagonal degree matrix D.
	GoalDdg
	// GoalNorm is the normalized similarity W.
	GoalNorm
	// GoalSymNMF is the factor H.
	GoalSymNMF
)

var goalNames = [...]string{
	GoalSym:    "sym",
	GoalDdg:    "ddg",
	GoalNorm:   "norm",
	GoalSymNMF: "symnmf",
}

func (g Goal) String() string {
	if g < 0 || int(g) >= len(goalNames) {
		return fmt.Sprintf("Goal(%d)", int(g))
	}
	return goalNames[g]
}

// ParseGoal maps a goal name (case-insensitive) to its Goal.
func ParseGoal(s string) (Goal, error) {
	for g, name := range goalNames {
		if strings.EqualFold(s, name) {
			return Goal(g), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownGoal)
}

// RunGoal computes the matrix for g. k is only used by GoalSymNMF.
func RunGoal(points matrix.Matrix, g Goal, k int, opts ...Option) (*matrix.Dense, error) {
	switch g {
	case GoalSym:
		return ComputeSimilarity(points, opts...)
	case GoalDdg:
		return ComputeDegree(points, opts...)
	case GoalNorm:
		return ComputeNormalized(points, opts...)
	case GoalSymNMF:
		res, err := RunSymNMF(points, k, opts...)
		if err != nil {
			return nil, err
		}
		return res.H, nil
	default:
		return nil, fmt.Errorf("pipeline.RunGoal: %s: %w", g, ErrUnknownGoal)
	}
}
