package dexdecode

import (
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

// 8-byte Anchor instruction discriminators, as embedded in the source.
var (
	clmmDiscSwap              = [8]byte{248, 198, 158, 145, 225, 117, 135, 200}
	clmmDiscIncreaseLiquidity = [8]byte{133, 29, 89, 223, 69, 238, 176, 10}
	clmmDiscDecreaseLiquidity = [8]byte{160, 38, 208, 111, 104, 91, 44, 1}
	clmmDiscCreatePool        = [8]byte{233, 146, 209, 142, 207, 104, 64, 188}
	clmmDiscOpenPosition      = [8]byte{135, 128, 47, 77, 15, 152, 240, 49}
	clmmDiscClosePosition     = [8]byte{123, 134, 81, 0, 49, 68, 98, 98}
)

func decodeRaydiumClmmInstruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case clmmDiscSwap:
		amount, ok1 := readU64LE(data, 0)
		otherThreshold, ok2 := readU64LE(data, 8)
		sqrtLimitU64, ok3 := readU64LE(data, 16)
		isBaseInput, ok4 := readBool(data, 24)
		pool, ok5 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
			return nil
		}
		return &RaydiumClmmSwap{
			baseEvent: meta(), Amount: amount, OtherThreshold: otherThreshold,
			SqrtPriceLimit: uint128.From64(sqrtLimitU64), IsBaseInput: isBaseInput, Pool: pool,
			Payer: getAccountOr(accounts, 1, solana.PublicKey{}),
		}
	case clmmDiscIncreaseLiquidity:
		liq, ok1 := readU64LE(data, 0)
		aMax, ok2 := readU64LE(data, 8)
		bMax, ok3 := readU64LE(data, 16)
		pool, ok4 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil
		}
		return &RaydiumClmmIncreaseLiquidity{
			baseEvent: meta(), Liquidity: liq, AmountAMax: aMax, AmountBMax: bMax,
			Pool: pool, Position: getAccountOr(accounts, 1, solana.PublicKey{}),
		}
	case clmmDiscDecreaseLiquidity:
		liq, ok1 := readU64LE(data, 0)
		aMin, ok2 := readU64LE(data, 8)
		bMin, ok3 := readU64LE(data, 16)
		pool, ok4 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil
		}
		return &RaydiumClmmDecreaseLiquidity{
			baseEvent: meta(), Liquidity: liq, AmountAMin: aMin, AmountBMin: bMin,
			Pool: pool, Position: getAccountOr(accounts, 1, solana.PublicKey{}),
		}
	case clmmDiscCreatePool:
		sqrtPrice, ok1 := readU64LE(data, 0)
		openTime, ok2 := readU64LE(data, 8)
		pool, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &RaydiumClmmCreatePool{
			baseEvent: meta(), SqrtPrice: sqrtPrice, OpenTime: openTime, Pool: pool,
			Creator: getAccountOr(accounts, 1, solana.PublicKey{}),
		}
	case clmmDiscOpenPosition:
		lower, ok1 := readI32LE(data, 0)
		upper, ok2 := readI32LE(data, 4)
		arrLower, ok3 := readI32LE(data, 8)
		arrUpper, ok4 := readI32LE(data, 12)
		liq, ok5 := readU64LE(data, 16)
		aMax, ok6 := readU64LE(data, 24)
		bMax, ok7 := readU64LE(data, 32)
		pool, ok8 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 || !ok8 {
			return nil
		}
		return &RaydiumClmmOpenPosition{
			baseEvent: meta(), TickLowerIndex: lower, TickUpperIndex: upper,
			TickArrayLower: arrLower, TickArrayUpper: arrUpper, Liquidity: liq,
			AmountAMax: aMax, AmountBMax: bMax, Pool: pool,
			Owner:    getAccountOr(accounts, 1, solana.PublicKey{}),
			Position: getAccountOr(accounts, 2, solana.PublicKey{}),
		}
	case clmmDiscClosePosition:
		pool, ok := getAccount(accounts, 0)
		if !ok {
			return nil
		}
		return &RaydiumClmmClosePosition{
			baseEvent: meta(), Pool: pool,
			Owner:    getAccountOr(accounts, 1, solana.PublicKey{}),
			Position: getAccountOr(accounts, 2, solana.PublicKey{}),
		}
	default:
		return nil
	}
}
