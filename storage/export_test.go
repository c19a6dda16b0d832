// SPDX-License-Identifier: MIT

package storage

// Test bridge: exposes unexported panic messages to storage_test.
const (
	PanicThresholdInvalid_TestOnly = panicThresholdInvalid
	PanicWorkersInvalid_TestOnly   = panicWorkersInvalid
)

// ForRange_TestOnly forwards to the private block scheduler.
func ForRange_TestOnly(n int, o Options, fn func(lo, hi int)) { forRange(n, o, fn) }
