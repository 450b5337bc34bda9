package dexdecode

import (
	"github.com/AlekSi/pointer"
	"github.com/gagliardetto/solana-go"
)

// AccountFact is the fully-formed account snapshot this decoder's account
// entry point is handed. Data length and Owner together determine which
// decode path, if any, applies.
type AccountFact struct {
	Pubkey     solana.PublicKey
	Owner      solana.PublicKey
	Executable bool
	Lamports   uint64
	RentEpoch  uint64
	Data       []byte
}

type TokenInfo struct {
	baseEvent
	Pubkey     solana.PublicKey
	Executable bool
	Lamports   uint64
	Owner      solana.PublicKey
	RentEpoch  uint64
	Supply     uint64
	Decimals   uint8
}

// TokenAccount's TokenOwner is deliberately the owning *program*
// (account.Owner), not the SPL "owner" field at byte offset 32 of the
// account body — a known quirk carried over unchanged; do not read
// TokenOwner as the beneficial owner.
type TokenAccount struct {
	baseEvent
	Pubkey     solana.PublicKey
	Executable bool
	Lamports   uint64
	Owner      solana.PublicKey
	RentEpoch  uint64
	Amount     *uint64
	TokenOwner solana.PublicKey
}

type NonceAccount struct {
	baseEvent
	Pubkey     solana.PublicKey
	Executable bool
	Lamports   uint64
	Owner      solana.PublicKey
	RentEpoch  uint64
	Nonce      solana.Hash
	Authority  solana.PublicKey
}

func amountPtr(v uint64) *uint64 { return pointer.To(v) }
