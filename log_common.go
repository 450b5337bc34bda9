package dexdecode

import (
	"bytes"
	"encoding/base64"
	"strings"
	"sync"
)

const programDataPrefix = "Program data: "

// stackBufSize bounds the pooled scratch buffer extractProgramData decodes
// into. No protocol's widest known log record exceeds it; the init in
// warmup.go asserts this. A record wider than this falls back to
// a heap allocation rather than being silently truncated.
const stackBufSize = 2048

// programDataScratchPool hands out fixed-size buffers for extractProgramData
// to base64-decode into, so decoding a log line doesn't allocate a fresh
// slice on every call. Grounded on the same reuse-the-backing-array
// discipline the low-latency market-data examples use for hot-path buffers.
var programDataScratchPool = sync.Pool{
	New: func() any { return new([stackBufSize]byte) },
}

func noopRelease() {}

// extractProgramData finds the literal "Program data: " prefix in a log
// line, trims surrounding whitespace from the base64 tail, and decodes it
// into a pooled scratch buffer instead of allocating on every line. Lines
// without the prefix, or whose tail fails to base64-decode, are discarded
// silently — this is the single funnel every protocol's log decoder runs
// its line through before looking at a discriminator.
//
// On ok=true the caller owns the returned payload until it calls release;
// every decoder in this package copies fields out of the payload (into
// fixed-size arrays or converted strings) before constructing its event, so
// nothing ever observes the payload's contents after release runs. Callers
// that get ok=false should not call release (it's a no-op in that case, but
// there's nothing to release).
func extractProgramData(line string) (payload []byte, release func(), ok bool) {
	idx := programDataFinder.indexByte([]byte(line))
	if idx < 0 {
		return nil, noopRelease, false
	}
	tail := strings.TrimSpace(line[idx+len(programDataPrefix):])
	if tail == "" {
		return nil, noopRelease, false
	}

	n := base64.StdEncoding.DecodedLen(len(tail))
	if n > stackBufSize {
		decoded, err := base64.StdEncoding.DecodeString(tail)
		if err != nil {
			return nil, noopRelease, false
		}
		return decoded, noopRelease, true
	}

	buf := programDataScratchPool.Get().(*[stackBufSize]byte)
	written, err := base64.StdEncoding.Decode(buf[:n], []byte(tail))
	if err != nil {
		programDataScratchPool.Put(buf)
		return nil, noopRelease, false
	}
	return buf[:written], func() { programDataScratchPool.Put(buf) }, true
}

// substringFinder wraps the byte-slice prefix search used on every log line.
// The corpus has no SIMD string-search dependency to reach for, so this is
// deliberately the one concern in the log path built on the standard
// library (bytes.Index). Warmup exercises it once against a throwaway line so
// the first real call on the hot path isn't also the first page-fault on its
// code path.
type substringFinder struct {
	needle []byte
}

func (f *substringFinder) indexByte(haystack []byte) int {
	return bytes.Index(haystack, f.needle)
}

var programDataFinder = &substringFinder{needle: []byte(programDataPrefix)}
