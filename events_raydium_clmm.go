package dexdecode

import (
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

type RaydiumClmmSwap struct {
	baseEvent
	Amount          uint64
	OtherThreshold  uint64
	SqrtPriceLimit  uint128.Uint128
	IsBaseInput     bool
	Pool            solana.PublicKey
	Payer           solana.PublicKey
}

type RaydiumClmmIncreaseLiquidity struct {
	baseEvent
	Liquidity uint64
	AmountAMax uint64
	AmountBMax uint64
	Pool       solana.PublicKey
	Position   solana.PublicKey
}

type RaydiumClmmDecreaseLiquidity struct {
	baseEvent
	Liquidity uint64
	AmountAMin uint64
	AmountBMin uint64
	Pool       solana.PublicKey
	Position   solana.PublicKey
}

type RaydiumClmmCreatePool struct {
	baseEvent
	SqrtPrice uint64
	OpenTime  uint64
	Pool      solana.PublicKey
	Creator   solana.PublicKey
}

type RaydiumClmmOpenPosition struct {
	baseEvent
	TickLowerIndex   int32
	TickUpperIndex   int32
	TickArrayLower   int32
	TickArrayUpper   int32
	Liquidity        uint64
	AmountAMax       uint64
	AmountBMax       uint64
	Pool             solana.PublicKey
	Position         solana.PublicKey
	Owner            solana.PublicKey
}

type RaydiumClmmClosePosition struct {
	baseEvent
	Pool     solana.PublicKey
	Position solana.PublicKey
	Owner    solana.PublicKey
}
