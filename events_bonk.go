package dexdecode

import "github.com/gagliardetto/solana-go"

type BonkTradeDirection uint8

const (
	BonkTradeDirectionBuy BonkTradeDirection = iota
	BonkTradeDirectionSell
)

type BonkTrade struct {
	baseEvent
	PoolState      solana.PublicKey
	User           solana.PublicKey
	AmountIn       uint64
	AmountOut      uint64
	IsBuy          bool
	TradeDirection BonkTradeDirection
	ExactIn        bool
}

// BonkBaseMintParam carries the new token's display metadata. The PoolCreate
// log decoder does not read these strings from the record: it fills them
// with fixed placeholder values ("BONK", "Bonk Pool", "https://bonk.com",
// decimals 5).
type BonkBaseMintParam struct {
	Symbol   string
	Name     string
	Uri      string
	Decimals uint8
}

type BonkPoolCreate struct {
	baseEvent
	BaseMintParam BonkBaseMintParam
	PoolState     solana.PublicKey
	Creator       solana.PublicKey
}

type BonkMigrateAmm struct {
	baseEvent
	OldPool         solana.PublicKey
	NewPool         solana.PublicKey
	User            solana.PublicKey
	LiquidityAmount uint64
}
