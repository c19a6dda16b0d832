// SPDX-License-Identifier: MIT

// Package storage: functional configuration of the element-wise kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: the policy travels with each storage instance and is
//     carried through Copy, ToDense and ToSparse.
//   - No dead switches: each field changes how dense kernels schedule work.
//
// Notes:
//   - Sparse kernels never run in parallel; their fill pass must preserve
//     ascending index order. Sparse storages still carry the policy so that a
//     dense round-trip keeps it.
package storage

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the dense cell count at which element-wise
	// kernels start splitting rows across goroutines.
	DefaultParallelThreshold = 1 << 16

	// DefaultWorkers of 0 resolves to runtime.GOMAXPROCS(0) at kernel time.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "storage: WithParallelThreshold: threshold must be >= 0"
	panicWorkersInvalid   = "storage: WithWorkers: workers must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective kernel policy after applying Option setters.
// Fields are unexported; constructors accept ...Option.
type Options struct {
	parallelThreshold int // cells; 0 disables the sequential fast path entirely
	workers           int // 0 => GOMAXPROCS
}

// WithParallelThreshold sets the cell count from which dense kernels fan out
// over row blocks. A threshold of 0 makes every non-empty kernel parallel.
// Panics when cells < 0.
func WithParallelThreshold(cells int) Option {
	if cells < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = cells }
}

// WithSequential disables parallel dense kernels regardless of size.
func WithSequential() Option {
	return func(o *Options) {
		o.workers = 1
	}
}

// WithWorkers caps the number of goroutines used by one dense kernel.
// Zero restores the GOMAXPROCS default. Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		parallelThreshold: DefaultParallelThreshold,
		workers:           DefaultWorkers,
	}
}

// gatherOptions folds opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ParallelThreshold reports the configured fan-out threshold.
func (o Options) ParallelThreshold() int { return o.parallelThreshold }

// Workers reports the resolved worker cap (never 0).
func (o Options) Workers() int {
	if o.workers == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.workers
}
