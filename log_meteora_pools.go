package dexdecode

import "github.com/gagliardetto/solana-go"

// Discriminators from the source's logs/meteora_amm.rs table — the
// pre-DLMM constant-product pool family.
var (
	meteoraPoolsDiscSwap               = [8]byte{81, 108, 227, 190, 205, 208, 10, 196}
	meteoraPoolsDiscAddLiquidity       = [8]byte{31, 94, 125, 90, 227, 52, 61, 186}
	meteoraPoolsDiscRemoveLiquidity    = [8]byte{116, 244, 97, 232, 103, 31, 152, 58}
	meteoraPoolsDiscBootstrapLiquidity = [8]byte{121, 127, 38, 136, 92, 55, 14, 247}
	meteoraPoolsDiscPoolCreated        = [8]byte{202, 44, 41, 88, 104, 220, 157, 82}
	meteoraPoolsDiscSetPoolFees        = [8]byte{245, 26, 198, 164, 88, 18, 75, 9}
)

func decodeMeteoraPoolsLog(line string, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
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
	case meteoraPoolsDiscSwap:
		const need = 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		pool, _ := readPubkey(data, 0)
		amountIn, _ := readU64LE(data, 32)
		amountOut, _ := readU64LE(data, 40)
		return &MeteoraPoolsSwap{baseEvent: meta(), Pool: pool, AmountIn: amountIn, AmountOut: amountOut}
	case meteoraPoolsDiscAddLiquidity:
		const need = 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		pool, _ := readPubkey(data, 0)
		a, _ := readU64LE(data, 32)
		b, _ := readU64LE(data, 40)
		return &MeteoraPoolsAddLiquidity{baseEvent: meta(), Pool: pool, TokenAAmount: a, TokenBAmount: b}
	case meteoraPoolsDiscRemoveLiquidity:
		const need = 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		pool, _ := readPubkey(data, 0)
		a, _ := readU64LE(data, 32)
		b, _ := readU64LE(data, 40)
		return &MeteoraPoolsRemoveLiquidity{baseEvent: meta(), Pool: pool, TokenAAmount: a, TokenBAmount: b}
	case meteoraPoolsDiscBootstrapLiquidity:
		const need = 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		pool, _ := readPubkey(data, 0)
		a, _ := readU64LE(data, 32)
		b, _ := readU64LE(data, 40)
		return &MeteoraPoolsBootstrapLiquidity{baseEvent: meta(), Pool: pool, TokenAAmount: a, TokenBAmount: b}
	case meteoraPoolsDiscPoolCreated:
		const need = 32 + 32 + 32
		if len(data) < need {
			return nil
		}
		pool, _ := readPubkey(data, 0)
		mintA, _ := readPubkey(data, 32)
		mintB, _ := readPubkey(data, 64)
		return &MeteoraPoolsPoolCreated{baseEvent: meta(), Pool: pool, TokenAMint: mintA, TokenBMint: mintB}
	case meteoraPoolsDiscSetPoolFees:
		const need = 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		pool, _ := readPubkey(data, 0)
		tradeFee, _ := readU64LE(data, 32)
		protocolFee, _ := readU64LE(data, 40)
		return &MeteoraPoolsSetPoolFees{baseEvent: meta(), Pool: pool, TradeFeeBps: tradeFee, ProtocolFeeBps: protocolFee}
	default:
		return nil
	}
}
