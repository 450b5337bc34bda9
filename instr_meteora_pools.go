package dexdecode

import (
	"github.com/denislavrentyev/dexdecode/anchor"
	"github.com/gagliardetto/solana-go"
)

var (
	meteoraPoolsInstrDiscSwap        = anchor.Discriminator("global", "swap")
	meteoraPoolsInstrDiscAddLiquidity = anchor.Discriminator("global", "addBalanceLiquidity")
)

func decodeMeteoraPoolsInstruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case meteoraPoolsInstrDiscSwap:
		amountIn, ok1 := readU64LE(data, 0)
		amountOut, ok2 := readU64LE(data, 8)
		pool, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &MeteoraPoolsSwap{baseEvent: meta(), Pool: pool, AmountIn: amountIn, AmountOut: amountOut}
	case meteoraPoolsInstrDiscAddLiquidity:
		a, ok1 := readU64LE(data, 0)
		b, ok2 := readU64LE(data, 8)
		pool, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &MeteoraPoolsAddLiquidity{baseEvent: meta(), Pool: pool, TokenAAmount: a, TokenBAmount: b}
	default:
		return nil
	}
}
