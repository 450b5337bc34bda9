package dexdecode

import "go.uber.org/atomic"

// Counters are optional, lock-free performance counters. They are
// non-functional: decode behavior never branches on them. Disabled by
// default (all increments are no-ops) since even an uncontended atomic add
// is overhead the hot path doesn't need unless a caller asked for it.
type Counters struct {
	enabled   atomic.Bool
	decoded   atomic.Int64
	rejected  atomic.Int64
}

var globalCounters Counters

// EnableCounters turns on global counting. Call from Warmup or at process
// start; toggling mid-stream is safe but the counts won't reflect work done
// before the toggle.
func EnableCounters(on bool) {
	globalCounters.enabled.Store(on)
}

func (c *Counters) recordDecoded() {
	if c.enabled.Load() {
		c.decoded.Inc()
	}
}

func (c *Counters) recordRejected() {
	if c.enabled.Load() {
		c.rejected.Inc()
	}
}

// Snapshot returns the current counter values. Not synchronized as a pair;
// each field is independently consistent, the two together are not.
func (c *Counters) Snapshot() (decoded, rejected int64) {
	return c.decoded.Load(), c.rejected.Load()
}

// GlobalCounters returns the process-wide counters instance.
func GlobalCounters() *Counters { return &globalCounters }
