package dexdecode

import "github.com/gagliardetto/solana-go"

type MeteoraPoolsSwap struct {
	baseEvent
	Pool     solana.PublicKey
	AmountIn uint64
	AmountOut uint64
}

type MeteoraPoolsAddLiquidity struct {
	baseEvent
	Pool        solana.PublicKey
	TokenAAmount uint64
	TokenBAmount uint64
}

type MeteoraPoolsRemoveLiquidity struct {
	baseEvent
	Pool        solana.PublicKey
	TokenAAmount uint64
	TokenBAmount uint64
}

type MeteoraPoolsBootstrapLiquidity struct {
	baseEvent
	Pool        solana.PublicKey
	TokenAAmount uint64
	TokenBAmount uint64
}

type MeteoraPoolsPoolCreated struct {
	baseEvent
	Pool     solana.PublicKey
	TokenAMint solana.PublicKey
	TokenBMint solana.PublicKey
}

type MeteoraPoolsSetPoolFees struct {
	baseEvent
	Pool          solana.PublicKey
	TradeFeeBps   uint64
	ProtocolFeeBps uint64
}
