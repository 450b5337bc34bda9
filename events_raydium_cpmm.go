package dexdecode

import "github.com/gagliardetto/solana-go"

type RaydiumCpmmSwap struct {
	baseEvent
	AmountIn  uint64
	MinAmountOut uint64
	PoolState solana.PublicKey
	Payer     solana.PublicKey
}

type RaydiumCpmmDeposit struct {
	baseEvent
	LpTokenAmount uint64
	MaxAmountA    uint64
	MaxAmountB    uint64
	PoolState     solana.PublicKey
	Owner         solana.PublicKey
}

type RaydiumCpmmWithdraw struct {
	baseEvent
	LpTokenAmount uint64
	MinAmountA    uint64
	MinAmountB    uint64
	PoolState     solana.PublicKey
	Owner         solana.PublicKey
}

type RaydiumCpmmInitialize struct {
	baseEvent
	InitAmountA uint64
	InitAmountB uint64
	OpenTime    uint64
	PoolState   solana.PublicKey
	Creator     solana.PublicKey
}
