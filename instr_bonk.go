package dexdecode

import (
	"github.com/denislavrentyev/dexdecode/anchor"
	"github.com/gagliardetto/solana-go"
)

var (
	bonkInstrDiscBuyExactIn  = anchor.Discriminator("global", "buyExactIn")
	bonkInstrDiscSellExactIn = anchor.Discriminator("global", "sellExactIn")
)

func decodeBonkInstruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case bonkInstrDiscBuyExactIn, bonkInstrDiscSellExactIn:
		amountIn, ok1 := readU64LE(data, 0)
		amountOut, ok2 := readU64LE(data, 8)
		poolState, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		isBuy := disc == bonkInstrDiscBuyExactIn
		dir := BonkTradeDirectionSell
		if isBuy {
			dir = BonkTradeDirectionBuy
		}
		return &BonkTrade{
			baseEvent: meta(), PoolState: poolState, AmountIn: amountIn, AmountOut: amountOut,
			IsBuy: isBuy, TradeDirection: dir, ExactIn: true,
			User: getAccountOr(accounts, 1, solana.PublicKey{}),
		}
	default:
		return nil
	}
}
