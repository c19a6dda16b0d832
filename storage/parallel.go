// SPDX-License-Identifier: MIT

package storage

import "golang.org/x/sync/errgroup"

// forRange runs fn over [0,n) split into contiguous blocks.
// Blocks are disjoint, so kernels writing only inside their block never
// alias. Runs inline when n is below the policy threshold or one worker is
// configured.
func forRange(n int, o Options, fn func(lo, hi int)) {
	workers := o.Workers()
	if n == 0 {
		return
	}
	if workers <= 1 || n < o.parallelThreshold || n < 2 {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // kernels never fail
}
