package dexdecode

import "sync"

var warmupOnce sync.Once

// maxKnownLogRecordLen is the widest log record body any protocol decoder in
// this package reads. The init below asserts it fits the pooled
// scratch-buffer budget; a protocol added later that exceeds stackBufSize falls back to a
// heap allocation per record rather than corrupting data, but this assertion
// catches the regression at process start instead of letting it go unnoticed
// on the hot path.
const maxKnownLogRecordLen = pumpswapBuyRecordLen

func init() {
	if maxKnownLogRecordLen > stackBufSize {
		panic("dexdecode: a protocol's log record exceeds stackBufSize; widen it")
	}
}

// Warmup pays the one-time initialization cost of the process-wide shared
// resources eagerly, so the first record on the hot path doesn't pay it.
// Safe to call more than once and from more than one goroutine; only the
// first call does work.
func Warmup() {
	warmupOnce.Do(func() {
		programDataFinder.indexByte([]byte(programDataPrefix))
		if _, release, ok := extractProgramData(programDataPrefix + "AAAA"); ok {
			release()
		}
		upgradeToCoarseClock()
		defaultLogger.WithField("component", "bonk").
			Warn("Bonk log discriminators are unverified placeholders pending IDL confirmation")
	})
}
