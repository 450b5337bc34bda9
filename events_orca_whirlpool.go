package dexdecode

import (
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

type OrcaWhirlpoolSwap struct {
	baseEvent
	Amount                  uint64
	OtherAmountThreshold    uint64
	SqrtPriceLimit          uint128.Uint128
	AmountSpecifiedIsInput  bool
	AToB                    bool
	Whirlpool               solana.PublicKey
	TokenAuthority          solana.PublicKey

	// Fields fused in from a subsequent Traded log; zero until then.
	PreSqrtPrice  uint128.Uint128
	PostSqrtPrice uint128.Uint128
	InputAmount   uint64
	OutputAmount  uint64
	LpFee         uint64
	ProtocolFee   uint64
}

type OrcaWhirlpoolLiquidityIncreased struct {
	baseEvent
	Liquidity   uint128.Uint128
	TokenAMax   uint64
	TokenBMax   uint64
	Whirlpool   solana.PublicKey
	Position    solana.PublicKey
}

type OrcaWhirlpoolLiquidityDecreased struct {
	baseEvent
	Liquidity   uint128.Uint128
	TokenAMin   uint64
	TokenBMin   uint64
	Whirlpool   solana.PublicKey
	Position    solana.PublicKey
}

type OrcaWhirlpoolPoolInitialized struct {
	baseEvent
	TickSpacing       uint16
	InitialSqrtPrice  uint128.Uint128
	Whirlpool         solana.PublicKey
	TokenMintA        solana.PublicKey
	TokenMintB        solana.PublicKey
}
