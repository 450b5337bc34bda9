// Package anchor derives Anchor-framework instruction and event
// discriminators. The decoders for protocols without a literal 8-byte table
// (PumpFun, Raydium CPMM, Meteora DLMM/Pools instructions, Bonk
// instructions) define their discriminators with it.
package anchor

import "crypto/sha256"

// Discriminator computes the 8-byte Anchor discriminator for a namespaced
// name, e.g. Discriminator("global", "buy") for an instruction or
// Discriminator("event", "TradeEvent") for an emitted event.
func Discriminator(namespace, name string) [8]byte {
	sum := sha256.Sum256([]byte(namespace + ":" + name))
	var out [8]byte
	copy(out[:], sum[:8])
	return out
}
