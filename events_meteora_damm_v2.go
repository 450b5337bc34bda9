package dexdecode

import "github.com/gagliardetto/solana-go"

type MeteoraDammV2Swap struct {
	baseEvent
	AmountIn uint64
	MinOut   uint64
	Pool     solana.PublicKey
}

type MeteoraDammV2AddLiquidity struct {
	baseEvent
	Pool     solana.PublicKey
	Position solana.PublicKey
}

type MeteoraDammV2RemoveLiquidity struct {
	baseEvent
	Pool     solana.PublicKey
	Position solana.PublicKey
}

type MeteoraDammV2InitializeLbPair struct {
	baseEvent
	ActiveID int32
	BinStep  uint16
	Pool     solana.PublicKey
}

type MeteoraDammV2InitializePosition struct {
	baseEvent
	Pool     solana.PublicKey
	Position solana.PublicKey
	Owner    solana.PublicKey
}

type MeteoraDammV2ClosePosition struct {
	baseEvent
	Pool     solana.PublicKey
	Position solana.PublicKey
	Owner    solana.PublicKey
}

type MeteoraDammV2ClaimReward struct {
	baseEvent
	Pool     solana.PublicKey
	Position solana.PublicKey
	RewardIndex uint8
	Amount      uint64
}

type MeteoraDammV2ClaimPositionFee struct {
	baseEvent
	Pool     solana.PublicKey
	Position solana.PublicKey
	FeeA     uint64
	FeeB     uint64
}

type MeteoraDammV2FundReward struct {
	baseEvent
	Pool        solana.PublicKey
	RewardIndex uint8
	Amount      uint64
}

type MeteoraDammV2InitializeReward struct {
	baseEvent
	Pool        solana.PublicKey
	RewardIndex uint8
}
