package dexdecode

import "github.com/gagliardetto/solana-go"

const (
	raydiumAmmV4Initialize2 uint8 = 1
	raydiumAmmV4Deposit     uint8 = 3
	raydiumAmmV4Withdraw    uint8 = 4
	raydiumAmmV4WithdrawPnl uint8 = 7
	raydiumAmmV4SwapBaseIn  uint8 = 9
	raydiumAmmV4SwapBaseOut uint8 = 11
)

// decodeRaydiumAmmV4Instruction dispatches on the single-byte discriminator
// that prefixes every Raydium AMM V4 instruction payload.
func decodeRaydiumAmmV4Instruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) == 0 {
		return nil
	}
	disc, data := payload[0], payload[1:]
	switch disc {
	case raydiumAmmV4SwapBaseIn:
		return decodeRaydiumSwapBaseIn(data, accounts, sig, slot, txIndex, blockTimeUs)
	case raydiumAmmV4SwapBaseOut:
		return decodeRaydiumSwapBaseOut(data, accounts, sig, slot, txIndex, blockTimeUs)
	case raydiumAmmV4Deposit:
		return decodeRaydiumDeposit(data, accounts, sig, slot, txIndex, blockTimeUs)
	case raydiumAmmV4Withdraw:
		return decodeRaydiumWithdraw(data, accounts, sig, slot, txIndex, blockTimeUs)
	case raydiumAmmV4Initialize2:
		return decodeRaydiumInitialize2(data, accounts, sig, slot, txIndex, blockTimeUs)
	case raydiumAmmV4WithdrawPnl:
		return decodeRaydiumWithdrawPnl(accounts, sig, slot, txIndex, blockTimeUs)
	default:
		return nil
	}
}

func decodeRaydiumSwapBaseIn(data []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	amountIn, ok := readU64LE(data, 0)
	if !ok {
		return nil
	}
	minOut, ok := readU64LE(data, 8)
	if !ok {
		return nil
	}
	amm, ok := getAccount(accounts, 1)
	if !ok {
		return nil
	}
	return &RaydiumAmmV4Swap{
		baseEvent:            baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)},
		AmountIn:             amountIn,
		MinimumAmountOut:     minOut,
		TokenProgram:         getAccountOr(accounts, 0, solana.PublicKey{}),
		Amm:                  amm,
		AmmAuthority:         getAccountOr(accounts, 2, solana.PublicKey{}),
		AmmOpenOrders:        getAccountOr(accounts, 3, solana.PublicKey{}),
		AmmTargetOrders:      getAccountOr(accounts, 4, solana.PublicKey{}),
		PoolCoinTokenAccount: getAccountOr(accounts, 5, solana.PublicKey{}),
		PoolPcTokenAccount:   getAccountOr(accounts, 6, solana.PublicKey{}),
		SerumProgram:         getAccountOr(accounts, 7, solana.PublicKey{}),
		SerumMarket:          getAccountOr(accounts, 8, solana.PublicKey{}),
		SerumBids:            getAccountOr(accounts, 9, solana.PublicKey{}),
		SerumAsks:            getAccountOr(accounts, 10, solana.PublicKey{}),
		SerumEventQueue:      getAccountOr(accounts, 11, solana.PublicKey{}),
		SerumCoinVaultAccount: getAccountOr(accounts, 12, solana.PublicKey{}),
		SerumPcVaultAccount:   getAccountOr(accounts, 13, solana.PublicKey{}),
		SerumVaultSigner:      getAccountOr(accounts, 14, solana.PublicKey{}),
		UserSourceTokenAccount:      getAccountOr(accounts, 15, solana.PublicKey{}),
		UserDestinationTokenAccount: getAccountOr(accounts, 16, solana.PublicKey{}),
		UserSourceOwner:             getAccountOr(accounts, 17, solana.PublicKey{}),
	}
}

func decodeRaydiumSwapBaseOut(data []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	maxAmountIn, ok := readU64LE(data, 0)
	if !ok {
		return nil
	}
	amountOut, ok := readU64LE(data, 8)
	if !ok {
		return nil
	}
	amm, ok := getAccount(accounts, 1)
	if !ok {
		return nil
	}
	return &RaydiumAmmV4Swap{
		baseEvent:        baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)},
		MaxAmountIn:      maxAmountIn,
		AmountOut:        amountOut,
		TokenProgram:     getAccountOr(accounts, 0, solana.PublicKey{}),
		Amm:              amm,
		AmmAuthority:     getAccountOr(accounts, 2, solana.PublicKey{}),
		AmmOpenOrders:    getAccountOr(accounts, 3, solana.PublicKey{}),
		AmmTargetOrders:  getAccountOr(accounts, 4, solana.PublicKey{}),
		PoolCoinTokenAccount: getAccountOr(accounts, 5, solana.PublicKey{}),
		PoolPcTokenAccount:   getAccountOr(accounts, 6, solana.PublicKey{}),
		SerumProgram:         getAccountOr(accounts, 7, solana.PublicKey{}),
		SerumMarket:          getAccountOr(accounts, 8, solana.PublicKey{}),
		SerumBids:            getAccountOr(accounts, 9, solana.PublicKey{}),
		SerumAsks:            getAccountOr(accounts, 10, solana.PublicKey{}),
		SerumEventQueue:      getAccountOr(accounts, 11, solana.PublicKey{}),
		SerumCoinVaultAccount: getAccountOr(accounts, 12, solana.PublicKey{}),
		SerumPcVaultAccount:   getAccountOr(accounts, 13, solana.PublicKey{}),
		SerumVaultSigner:      getAccountOr(accounts, 14, solana.PublicKey{}),
		UserSourceTokenAccount:      getAccountOr(accounts, 15, solana.PublicKey{}),
		UserDestinationTokenAccount: getAccountOr(accounts, 16, solana.PublicKey{}),
		UserSourceOwner:             getAccountOr(accounts, 17, solana.PublicKey{}),
	}
}

func decodeRaydiumDeposit(data []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	maxCoin, ok := readU64LE(data, 0)
	if !ok {
		return nil
	}
	maxPc, ok := readU64LE(data, 8)
	if !ok {
		return nil
	}
	baseSide, ok := readU64LE(data, 16)
	if !ok {
		return nil
	}
	amm, ok := getAccount(accounts, 1)
	if !ok {
		return nil
	}
	return &RaydiumAmmV4Deposit{
		baseEvent:     baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)},
		MaxCoinAmount: maxCoin,
		MaxPcAmount:   maxPc,
		BaseSide:      baseSide,
		Amm:           amm,
		UserOwner:     getAccountOr(accounts, 11, solana.PublicKey{}),
	}
}

func decodeRaydiumWithdraw(data []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	amount, ok := readU64LE(data, 0)
	if !ok {
		return nil
	}
	amm, ok := getAccount(accounts, 1)
	if !ok {
		return nil
	}
	return &RaydiumAmmV4Withdraw{
		baseEvent: baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)},
		Amount:    amount,
		Amm:       amm,
		UserOwner: getAccountOr(accounts, 16, solana.PublicKey{}),
	}
}

func decodeRaydiumInitialize2(data []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	nonce, ok := readU8(data, 0)
	if !ok {
		return nil
	}
	openTime, ok := readU64LE(data, 1)
	if !ok {
		return nil
	}
	initPc, ok := readU64LE(data, 9)
	if !ok {
		return nil
	}
	initCoin, ok := readU64LE(data, 17)
	if !ok {
		return nil
	}
	amm, ok := getAccount(accounts, 4)
	if !ok {
		return nil
	}
	return &RaydiumAmmV4Initialize2{
		baseEvent:      baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)},
		Nonce:          nonce,
		OpenTime:       openTime,
		InitPcAmount:   initPc,
		InitCoinAmount: initCoin,
		Amm:            amm,
		UserWallet:     getAccountOr(accounts, 17, solana.PublicKey{}),
	}
}

func decodeRaydiumWithdrawPnl(accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	amm, ok := getAccount(accounts, 1)
	if !ok {
		return nil
	}
	return &RaydiumAmmV4WithdrawPnl{
		baseEvent: baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)},
		Amm:       amm,
	}
}
