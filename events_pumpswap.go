package dexdecode

import "github.com/gagliardetto/solana-go"

// PumpSwapBuy carries the instruction-supplied bounds (SolAmount, Slippage)
// when synthesized from an instruction, and the full log economic context
// when synthesized from a Buy log record. Fields only the log supplies are
// zero-initialized on the instruction path.
type PumpSwapBuy struct {
	baseEvent
	PoolID solana.PublicKey
	User   solana.PublicKey
	TokenMint solana.PublicKey

	SolAmount uint64
	Slippage  uint16

	Timestamp                int64
	BaseAmountOut            uint64
	MaxQuoteAmountIn         uint64
	UserBaseTokenReserves    uint64
	UserQuoteTokenReserves   uint64
	PoolBaseTokenReserves    uint64
	PoolQuoteTokenReserves   uint64
	QuoteAmountIn            uint64
	LpFeeBasisPoints         uint64
	LpFee                    uint64
	ProtocolFeeBasisPoints   uint64
	ProtocolFee              uint64
	QuoteAmountInWithLpFee   uint64
	UserQuoteAmountIn        uint64
	Pool                     solana.PublicKey
	UserBaseTokenAccount     solana.PublicKey
	UserQuoteTokenAccount    solana.PublicKey
	ProtocolFeeRecipient     solana.PublicKey
	ProtocolFeeRecipientTokenAccount solana.PublicKey
	CoinCreator              solana.PublicKey
	CoinCreatorFeeBasisPoints uint64
	CoinCreatorFee           uint64
	TrackVolume              bool
	TotalUnclaimedTokens     uint64
	TotalClaimedTokens       uint64
	CurrentSolVolume         uint64
	LastUpdateTimestamp      int64
}

type PumpSwapSell struct {
	baseEvent
	PoolID solana.PublicKey
	User   solana.PublicKey
	TokenMint solana.PublicKey

	TokenAmount uint64
	Slippage    uint16

	Timestamp                 int64
	BaseAmountIn              uint64
	MinQuoteAmountOut         uint64
	UserBaseTokenReserves     uint64
	UserQuoteTokenReserves    uint64
	PoolBaseTokenReserves     uint64
	PoolQuoteTokenReserves    uint64
	QuoteAmountOut            uint64
	LpFeeBasisPoints          uint64
	LpFee                     uint64
	ProtocolFeeBasisPoints    uint64
	ProtocolFee               uint64
	QuoteAmountOutWithoutLpFee uint64
	UserQuoteAmountOut        uint64
	Pool                      solana.PublicKey
	UserBaseTokenAccount      solana.PublicKey
	UserQuoteTokenAccount     solana.PublicKey
	ProtocolFeeRecipient      solana.PublicKey
	ProtocolFeeRecipientTokenAccount solana.PublicKey
	CoinCreator               solana.PublicKey
	CoinCreatorFeeBasisPoints uint64
	CoinCreatorFee            uint64
}

type PumpSwapCreatePool struct {
	baseEvent
	PoolID    solana.PublicKey
	Creator   solana.PublicKey
	TokenMint solana.PublicKey

	InitialSolAmount   uint64
	InitialTokenAmount uint64
	FeeRate            uint64
}

type PumpSwapLiquidityAdded struct {
	baseEvent
	Pool           solana.PublicKey
	User           solana.PublicKey
	BaseAmount     uint64
	QuoteAmount    uint64
	LpTokenAmount  uint64
}

type PumpSwapLiquidityRemoved struct {
	baseEvent
	Pool           solana.PublicKey
	User           solana.PublicKey
	BaseAmount     uint64
	QuoteAmount    uint64
	LpTokenAmount  uint64
}
