package dexdecode

import (
	ag_binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	pumpswapAcctDiscPool         = [8]byte{241, 154, 109, 4, 17, 177, 109, 188}
	pumpswapAcctDiscGlobalConfig = [8]byte{149, 8, 156, 202, 160, 252, 176, 217}
)

// PumpSwapPool is the Borsh body of a pool account, decoded via
// ag_binary the same way the Jupiter route event is.
type PumpSwapPool struct {
	baseEvent
	Pubkey          solana.PublicKey
	PoolBump        uint8
	Index           uint16
	Creator         solana.PublicKey
	BaseMint        solana.PublicKey
	QuoteMint       solana.PublicKey
	LpMint          solana.PublicKey
	PoolBaseAccount solana.PublicKey
	PoolQuoteAccount solana.PublicKey
	LpSupply        uint64
}

type pumpSwapPoolBody struct {
	PoolBump         uint8
	Index            uint16
	Creator          solana.PublicKey
	BaseMint         solana.PublicKey
	QuoteMint        solana.PublicKey
	LpMint           solana.PublicKey
	PoolBaseAccount  solana.PublicKey
	PoolQuoteAccount solana.PublicKey
	LpSupply         uint64
}

// PumpSwapGlobalConfig is the Borsh body of the singleton global-config
// account: protocol-wide fee basis points and the fee authority.
type PumpSwapGlobalConfig struct {
	baseEvent
	Pubkey               solana.PublicKey
	Admin                solana.PublicKey
	LpFeeBasisPoints     uint64
	ProtocolFeeBasisPoints uint64
	ProtocolFeeRecipient solana.PublicKey
}

type pumpSwapGlobalConfigBody struct {
	Admin                  solana.PublicKey
	LpFeeBasisPoints       uint64
	ProtocolFeeBasisPoints uint64
	ProtocolFeeRecipient   solana.PublicKey
}

// decodePumpSwapAccount detects a PumpSwap-owned account by its owner and
// leading 8-byte discriminator, decoding the pool and global-config shapes.
// Any other owner, or an unrecognized discriminator under this owner,
// reports no match so the caller can fall through to the generic account
// decode paths.
func decodePumpSwapAccount(a AccountFact, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) (DexEvent, bool) {
	if !a.Owner.Equals(PumpSwapProgramID) || len(a.Data) < 8 {
		return nil, false
	}
	var disc [8]byte
	copy(disc[:], a.Data[:8])
	body := a.Data[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case pumpswapAcctDiscPool:
		var p pumpSwapPoolBody
		if err := ag_binary.NewBorshDecoder(body).Decode(&p); err != nil {
			return nil, false
		}
		return &PumpSwapPool{
			baseEvent: meta(), Pubkey: a.Pubkey, PoolBump: p.PoolBump, Index: p.Index,
			Creator: p.Creator, BaseMint: p.BaseMint, QuoteMint: p.QuoteMint, LpMint: p.LpMint,
			PoolBaseAccount: p.PoolBaseAccount, PoolQuoteAccount: p.PoolQuoteAccount, LpSupply: p.LpSupply,
		}, true
	case pumpswapAcctDiscGlobalConfig:
		var c pumpSwapGlobalConfigBody
		if err := ag_binary.NewBorshDecoder(body).Decode(&c); err != nil {
			return nil, false
		}
		return &PumpSwapGlobalConfig{
			baseEvent: meta(), Pubkey: a.Pubkey, Admin: c.Admin, LpFeeBasisPoints: c.LpFeeBasisPoints,
			ProtocolFeeBasisPoints: c.ProtocolFeeBasisPoints, ProtocolFeeRecipient: c.ProtocolFeeRecipient,
		}, true
	default:
		return nil, false
	}
}
