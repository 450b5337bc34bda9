package dexdecode

import "github.com/gagliardetto/solana-go"

// RaydiumAmmV4Swap covers both SwapBaseIn and SwapBaseOut; the side not
// supplied by the matched instruction variant is left at its zero value.
type RaydiumAmmV4Swap struct {
	baseEvent
	AmountIn           uint64
	MinimumAmountOut   uint64
	MaxAmountIn        uint64
	AmountOut          uint64
	TokenProgram       solana.PublicKey
	Amm                solana.PublicKey
	AmmAuthority       solana.PublicKey
	AmmOpenOrders      solana.PublicKey
	AmmTargetOrders    solana.PublicKey
	PoolCoinTokenAccount solana.PublicKey
	PoolPcTokenAccount   solana.PublicKey
	SerumProgram         solana.PublicKey
	SerumMarket          solana.PublicKey
	SerumBids            solana.PublicKey
	SerumAsks            solana.PublicKey
	SerumEventQueue      solana.PublicKey
	SerumCoinVaultAccount solana.PublicKey
	SerumPcVaultAccount   solana.PublicKey
	SerumVaultSigner      solana.PublicKey
	UserSourceTokenAccount      solana.PublicKey
	UserDestinationTokenAccount solana.PublicKey
	UserSourceOwner             solana.PublicKey
}

type RaydiumAmmV4Deposit struct {
	baseEvent
	MaxCoinAmount uint64
	MaxPcAmount   uint64
	BaseSide      uint64
	Amm           solana.PublicKey
	UserOwner     solana.PublicKey
}

type RaydiumAmmV4Withdraw struct {
	baseEvent
	Amount    uint64
	Amm       solana.PublicKey
	UserOwner solana.PublicKey
}

type RaydiumAmmV4Initialize2 struct {
	baseEvent
	Nonce      uint8
	OpenTime   uint64
	InitPcAmount   uint64
	InitCoinAmount uint64
	Amm        solana.PublicKey
	UserWallet solana.PublicKey
}

type RaydiumAmmV4WithdrawPnl struct {
	baseEvent
	Amm solana.PublicKey
}
