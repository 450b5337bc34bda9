package dexdecode

import "github.com/gagliardetto/solana-go"

type MeteoraDlmmSwap struct {
	baseEvent
	AmountIn  uint64
	MinOut    uint64
	LbPair    solana.PublicKey
	User      solana.PublicKey
}

type MeteoraDlmmAddLiquidity struct {
	baseEvent
	AmountX uint64
	AmountY uint64
	LbPair  solana.PublicKey
	Position solana.PublicKey
}

type MeteoraDlmmRemoveLiquidity struct {
	baseEvent
	AmountX uint64
	AmountY uint64
	LbPair  solana.PublicKey
	Position solana.PublicKey
}

type MeteoraDlmmInitializePool struct {
	baseEvent
	ActiveID int32
	BinStep  uint16
	LbPair   solana.PublicKey
}

type MeteoraDlmmCreatePosition struct {
	baseEvent
	LbPair   solana.PublicKey
	Position solana.PublicKey
	Owner    solana.PublicKey
}

type MeteoraDlmmClosePosition struct {
	baseEvent
	LbPair   solana.PublicKey
	Position solana.PublicKey
	Owner    solana.PublicKey
}

type MeteoraDlmmClaimFee struct {
	baseEvent
	LbPair   solana.PublicKey
	Position solana.PublicKey
	FeeX     uint64
	FeeY     uint64
}
