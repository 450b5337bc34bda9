package dexdecode

import "github.com/gagliardetto/solana-go"

// System Program nonce account layout: version u32, state u32, authority
// pubkey, durable nonce (a blockhash), fee calculator (lamports-per-signature
// u64). Go has no bundled nonce-account parser to call into, so this is a
// direct translation of that well-known on-chain layout.
const (
	nonceVersionOffset    = 0
	nonceStateOffset      = 4
	nonceAuthorityOffset  = 8
	nonceBlockhashOffset  = 40
	nonceMinLen           = 72
	nonceStateUninitialized uint32 = 0
	nonceStateInitialized   uint32 = 1
)

func isNonceAccount(data []byte) bool {
	if len(data) < len(nonceAccountMagic) {
		return false
	}
	var prefix [8]byte
	copy(prefix[:], data[:8])
	return prefix == nonceAccountMagic
}

// decodeNonceAccount emits a NonceAccount only for the Initialized state;
// Uninitialized nonce accounts decode to nothing, matching the upstream
// behavior this follows.
func decodeNonceAccount(a AccountFact, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) (*NonceAccount, bool) {
	if len(a.Data) < nonceMinLen {
		return nil, false
	}
	state, ok := readU32LE(a.Data, nonceStateOffset)
	if !ok || state != nonceStateInitialized {
		return nil, false
	}
	authority, ok := readPubkey(a.Data, nonceAuthorityOffset)
	if !ok {
		return nil, false
	}
	blockhashPk, ok := readPubkey(a.Data, nonceBlockhashOffset)
	if !ok {
		return nil, false
	}
	return &NonceAccount{
		baseEvent:  baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)},
		Pubkey:     a.Pubkey,
		Executable: a.Executable,
		Lamports:   a.Lamports,
		Owner:      a.Owner,
		RentEpoch:  a.RentEpoch,
		Nonce:      solana.Hash(blockhashPk),
		Authority:  authority,
	}, true
}
