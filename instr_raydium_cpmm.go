package dexdecode

import (
	"github.com/denislavrentyev/dexdecode/anchor"
	"github.com/gagliardetto/solana-go"
)

var (
	cpmmInstrDiscSwapBaseIn  = anchor.Discriminator("global", "swapBaseInput")
	cpmmInstrDiscSwapBaseOut = anchor.Discriminator("global", "swapBaseOutput")
	cpmmInstrDiscDeposit     = anchor.Discriminator("global", "deposit")
	cpmmInstrDiscWithdraw    = anchor.Discriminator("global", "withdraw")
	cpmmInstrDiscInitialize  = anchor.Discriminator("global", "initialize")
)

func decodeRaydiumCpmmInstruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case cpmmInstrDiscSwapBaseIn, cpmmInstrDiscSwapBaseOut:
		amountIn, ok1 := readU64LE(data, 0)
		minOut, ok2 := readU64LE(data, 8)
		poolState, ok3 := getAccount(accounts, 2)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &RaydiumCpmmSwap{
			baseEvent: meta(), AmountIn: amountIn, MinAmountOut: minOut, PoolState: poolState,
			Payer: getAccountOr(accounts, 0, solana.PublicKey{}),
		}
	case cpmmInstrDiscDeposit:
		lp, ok1 := readU64LE(data, 0)
		maxA, ok2 := readU64LE(data, 8)
		maxB, ok3 := readU64LE(data, 16)
		poolState, ok4 := getAccount(accounts, 2)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil
		}
		return &RaydiumCpmmDeposit{
			baseEvent: meta(), LpTokenAmount: lp, MaxAmountA: maxA, MaxAmountB: maxB, PoolState: poolState,
			Owner: getAccountOr(accounts, 0, solana.PublicKey{}),
		}
	case cpmmInstrDiscWithdraw:
		lp, ok1 := readU64LE(data, 0)
		minA, ok2 := readU64LE(data, 8)
		minB, ok3 := readU64LE(data, 16)
		poolState, ok4 := getAccount(accounts, 2)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil
		}
		return &RaydiumCpmmWithdraw{
			baseEvent: meta(), LpTokenAmount: lp, MinAmountA: minA, MinAmountB: minB, PoolState: poolState,
			Owner: getAccountOr(accounts, 0, solana.PublicKey{}),
		}
	case cpmmInstrDiscInitialize:
		initA, ok1 := readU64LE(data, 0)
		initB, ok2 := readU64LE(data, 8)
		openTime, ok3 := readU64LE(data, 16)
		poolState, ok4 := getAccount(accounts, 2)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil
		}
		return &RaydiumCpmmInitialize{
			baseEvent: meta(), InitAmountA: initA, InitAmountB: initB, OpenTime: openTime, PoolState: poolState,
			Creator: getAccountOr(accounts, 0, solana.PublicKey{}),
		}
	default:
		return nil
	}
}
