package dexdecode

import "github.com/gagliardetto/solana-go"

// These three discriminators are unverified placeholder sequences in the
// source this decoder is modeled on — [1..8], [2..9], [3..10] — rather than
// values recovered from the live Raydium Launchpad program IDL. They are
// kept as-is and flagged here rather than silently "fixed" to something
// plausible: callers matching Bonk events should not trust these until the
// real IDL values are substituted.
var (
	bonkDiscTrade      = [8]byte{2, 3, 4, 5, 6, 7, 8, 9}
	bonkDiscPoolCreate = [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	bonkDiscMigrateAmm = [8]byte{3, 4, 5, 6, 7, 8, 9, 10}
)

func decodeBonkLog(line string, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
	payload, release, ok := extractProgramData(line)
	if !ok || len(payload) < 8 {
		return nil
	}
	defer release()
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataFrom(sig, slot, txIndex, blockTimeUs, grpcRecvUs)} }

	switch disc {
	case bonkDiscTrade:
		const need = 32 + 32 + 8 + 8 + 1 + 1
		if len(data) < need {
			return nil
		}
		poolState, _ := readPubkey(data, 0)
		user, _ := readPubkey(data, 32)
		amountIn, _ := readU64LE(data, 64)
		amountOut, _ := readU64LE(data, 72)
		isBuy, _ := readBool(data, 80)
		exactIn, _ := readBool(data, 81)
		dir := BonkTradeDirectionSell
		if isBuy {
			dir = BonkTradeDirectionBuy
		}
		return &BonkTrade{
			baseEvent: meta(), PoolState: poolState, User: user, AmountIn: amountIn,
			AmountOut: amountOut, IsBuy: isBuy, TradeDirection: dir, ExactIn: exactIn,
		}
	case bonkDiscPoolCreate:
		const need = 32 + 32 + 32 + 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		poolState, _ := readPubkey(data, 0)
		creator, _ := readPubkey(data, 96)
		return &BonkPoolCreate{
			baseEvent: meta(),
			BaseMintParam: BonkBaseMintParam{
				Symbol: "BONK", Name: "Bonk Pool", Uri: "https://bonk.com", Decimals: 5,
			},
			PoolState: poolState,
			Creator:   creator,
		}
	case bonkDiscMigrateAmm:
		const need = 32 + 32 + 32 + 8
		if len(data) < need {
			return nil
		}
		oldPool, _ := readPubkey(data, 0)
		newPool, _ := readPubkey(data, 32)
		user, _ := readPubkey(data, 64)
		liquidityAmount, _ := readU64LE(data, 96)
		return &BonkMigrateAmm{baseEvent: meta(), OldPool: oldPool, NewPool: newPool, User: user, LiquidityAmount: liquidityAmount}
	default:
		return nil
	}
}
