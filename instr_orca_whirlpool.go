package dexdecode

import "github.com/gagliardetto/solana-go"

var (
	whirlpoolDiscSwap              = [8]byte{248, 198, 158, 145, 225, 117, 135, 200}
	whirlpoolDiscSwapV2             = [8]byte{43, 4, 237, 11, 26, 201, 30, 98}
	whirlpoolDiscIncreaseLiquidity = [8]byte{46, 156, 243, 118, 13, 205, 251, 178}
	whirlpoolDiscDecreaseLiquidity = [8]byte{160, 38, 208, 111, 104, 91, 44, 1}
	whirlpoolDiscInitializePool    = [8]byte{17, 43, 80, 74, 168, 202, 6, 113}
)

func decodeOrcaWhirlpoolInstruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case whirlpoolDiscSwap, whirlpoolDiscSwapV2:
		amount, ok1 := readU64LE(data, 0)
		otherThreshold, ok2 := readU64LE(data, 8)
		sqrtLimit, ok3 := readU128LE(data, 16)
		specIsInput, ok4 := readBool(data, 32)
		aToB, ok5 := readBool(data, 33)
		whirlpool, ok6 := getAccount(accounts, 1)
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
			return nil
		}
		return &OrcaWhirlpoolSwap{
			baseEvent: meta(), Amount: amount, OtherAmountThreshold: otherThreshold,
			SqrtPriceLimit: sqrtLimit, AmountSpecifiedIsInput: specIsInput, AToB: aToB,
			Whirlpool: whirlpool, TokenAuthority: getAccountOr(accounts, 0, solana.PublicKey{}),
		}
	case whirlpoolDiscIncreaseLiquidity:
		liq, ok1 := readU128LE(data, 0)
		aMax, ok2 := readU64LE(data, 16)
		bMax, ok3 := readU64LE(data, 24)
		whirlpool, ok4 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil
		}
		return &OrcaWhirlpoolLiquidityIncreased{
			baseEvent: meta(), Liquidity: liq, TokenAMax: aMax, TokenBMax: bMax,
			Whirlpool: whirlpool, Position: getAccountOr(accounts, 2, solana.PublicKey{}),
		}
	case whirlpoolDiscDecreaseLiquidity:
		liq, ok1 := readU128LE(data, 0)
		aMin, ok2 := readU64LE(data, 16)
		bMin, ok3 := readU64LE(data, 24)
		whirlpool, ok4 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil
		}
		return &OrcaWhirlpoolLiquidityDecreased{
			baseEvent: meta(), Liquidity: liq, TokenAMin: aMin, TokenBMin: bMin,
			Whirlpool: whirlpool, Position: getAccountOr(accounts, 2, solana.PublicKey{}),
		}
	case whirlpoolDiscInitializePool:
		tickSpacing, ok1 := readU16LE(data, 0)
		initialSqrtPrice, ok2 := readU128LE(data, 2)
		whirlpool, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &OrcaWhirlpoolPoolInitialized{
			baseEvent: meta(), TickSpacing: tickSpacing, InitialSqrtPrice: initialSqrtPrice,
			Whirlpool:  whirlpool,
			TokenMintA: getAccountOr(accounts, 1, solana.PublicKey{}),
			TokenMintB: getAccountOr(accounts, 2, solana.PublicKey{}),
		}
	default:
		return nil
	}
}
