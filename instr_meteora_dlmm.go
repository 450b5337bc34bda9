package dexdecode

import (
	"github.com/denislavrentyev/dexdecode/anchor"
	"github.com/gagliardetto/solana-go"
)

var (
	dlmmInstrDiscSwap           = anchor.Discriminator("global", "swap")
	dlmmInstrDiscAddLiquidity   = anchor.Discriminator("global", "addLiquidity")
	dlmmInstrDiscRemoveLiquidity = anchor.Discriminator("global", "removeLiquidity")
)

func decodeMeteoraDlmmInstruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case dlmmInstrDiscSwap:
		amountIn, ok1 := readU64LE(data, 0)
		minOut, ok2 := readU64LE(data, 8)
		lbPair, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &MeteoraDlmmSwap{
			baseEvent: meta(), AmountIn: amountIn, MinOut: minOut, LbPair: lbPair,
			User: getAccountOr(accounts, 1, solana.PublicKey{}),
		}
	case dlmmInstrDiscAddLiquidity:
		amountX, ok1 := readU64LE(data, 0)
		amountY, ok2 := readU64LE(data, 8)
		lbPair, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &MeteoraDlmmAddLiquidity{
			baseEvent: meta(), AmountX: amountX, AmountY: amountY, LbPair: lbPair,
			Position: getAccountOr(accounts, 1, solana.PublicKey{}),
		}
	case dlmmInstrDiscRemoveLiquidity:
		lbPair, ok := getAccount(accounts, 0)
		if !ok {
			return nil
		}
		return &MeteoraDlmmRemoveLiquidity{
			baseEvent: meta(), LbPair: lbPair,
			Position: getAccountOr(accounts, 1, solana.PublicKey{}),
		}
	default:
		return nil
	}
}
