package dexdecode

import "github.com/gagliardetto/solana-go"

// PumpFunCreate is emitted by the bonding-curve program's token/pool
// creation instruction.
type PumpFunCreate struct {
	baseEvent
	Name          string
	Symbol        string
	Uri           string
	Mint          solana.PublicKey
	BondingCurve  solana.PublicKey
	Creator       solana.PublicKey
}

// PumpFunTrade covers both Buy and Sell; IsBuy distinguishes direction.
type PumpFunTrade struct {
	baseEvent
	IsBuy              bool
	AmountIn           uint64
	MinimumAmountOut   uint64
	Mint               solana.PublicKey
	BondingCurve       solana.PublicKey
	User               solana.PublicKey

	// Fused in from a subsequent TradeEvent log.
	SolAmount     uint64
	TokenAmount   uint64
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
}

// PumpFunComplete marks a bonding curve's migration to PumpSwap.
type PumpFunComplete struct {
	baseEvent
	Mint         solana.PublicKey
	BondingCurve solana.PublicKey
}
