// SPDX-License-Identifier: MIT

// Package parallel fans row-indexed work out over a bounded errgroup.
//
// Every task owns a contiguous block of row indices. Callers whose fn(i)
// calls write disjoint cells produce bit-identical results for any worker
// count.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers normalizes a requested worker count: values ≤ 0 mean GOMAXPROCS.
func Workers(requested int) int {
	if requested <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return requested
}

// ForEachRow calls fn(i) for every i in [0, n), splitting the range into at
// most workers contiguous blocks. The first error cancels the remaining blocks
// and is returned. Calls for different i may run concurrently, so the cells
// fn(i) writes must not overlap those of any other index; they need not lie
// in row i.
func ForEachRow(ctx context.Context, n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers = Workers(workers)
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	block := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += block {
		lo := lo
		hi := min(lo+block, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
