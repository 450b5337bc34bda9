package dexdecode

import (
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// recvClock abstracts the "what time did we first see this fact" read behind
// a single interface with two implementations, mirroring the coarse-vs-precise
// realtime clock selection the source makes on a per-platform basis: a coarse
// clock amortizes the syscall/vDSO cost of a precise read across a background
// tick, a precise clock pays it on every call.
type recvClock interface {
	NowMicros() int64
}

// preciseClock reads wall-clock time on every call via benbjohnson/clock's
// Clock interface, which also makes the receive-time read substitutable in
// tests (clock.NewMock()).
type preciseClock struct {
	c clock.Clock
}

func newPreciseClock() *preciseClock {
	return &preciseClock{c: clock.New()}
}

func (p *preciseClock) NowMicros() int64 {
	return p.c.Now().UnixMicro()
}

// coarseClock refreshes a cached timestamp on a background ticker instead of
// reading the wall clock on every decode call. It trades a bounded amount of
// staleness (one tick interval) for avoiding a syscall on the hot path.
type coarseClock struct {
	underlying clock.Clock
	cachedUs   atomic.Int64
	stop       chan struct{}
}

const coarseClockTick = 100 * time.Microsecond

func newCoarseClock(underlying clock.Clock) *coarseClock {
	c := &coarseClock{underlying: underlying, stop: make(chan struct{})}
	c.cachedUs.Store(underlying.Now().UnixMicro())
	ticker := underlying.Ticker(coarseClockTick)
	go func() {
		for {
			select {
			case <-ticker.C:
				c.cachedUs.Store(c.underlying.Now().UnixMicro())
			case <-c.stop:
				ticker.Stop()
				return
			}
		}
	}()
	return c
}

func (c *coarseClock) NowMicros() int64 {
	return c.cachedUs.Load()
}

func (c *coarseClock) Close() {
	close(c.stop)
}

// clockHolder holds the process-wide receive-clock used by the metadata
// builder whenever the caller doesn't supply grpc_recv_us itself. It starts
// out precise; Warmup swaps in the coarse implementation. atomic.Value gives
// concurrent readers a safe handoff across that swap.
var clockHolder atomic.Value

func init() {
	clockHolder.Store(recvClockBox{newPreciseClock()})
}

// recvClockBox exists only so the concrete type stored in clockHolder is
// fixed (atomic.Value panics if successive Store calls use different
// concrete types, and recvClock is an interface).
type recvClockBox struct{ c recvClock }

func currentClock() recvClock {
	return clockHolder.Load().(recvClockBox).c
}

func upgradeToCoarseClock() {
	clockHolder.Store(recvClockBox{newCoarseClock(clock.New())})
}
