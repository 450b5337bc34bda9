package dexdecode

import "github.com/gagliardetto/solana-go"

// DecodeAccount routes an account snapshot through the owner/discriminator
// checks in order of narrowest match first: a PumpSwap-owned account with a
// recognized discriminator, then the System Program's durable-nonce magic,
// then the generic SPL mint/token-account fallback. A System Program-owned
// account without the initialized-nonce magic (e.g. an uninitialized nonce
// account) is never tried as a token account. An account matching none of
// these decodes to nothing.
func DecodeAccount(a AccountFact, signature solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if ev, ok := decodePumpSwapAccount(a, signature, slot, txIndex, blockTimeUs); ok {
		return ev
	}
	if isNonceAccount(a.Data) {
		if ev, ok := decodeNonceAccount(a, signature, slot, txIndex, blockTimeUs); ok {
			return ev
		}
		return nil
	}
	if a.Owner.Equals(SystemProgramID) {
		return nil
	}
	return decodeTokenAccount(a, signature, slot, txIndex, blockTimeUs)
}
