package dexdecode

import "github.com/gagliardetto/solana-go"

var (
	dlmmDiscSwap             = [8]byte{143, 190, 90, 218, 196, 30, 51, 222}
	dlmmDiscAddLiquidity     = [8]byte{181, 157, 89, 67, 143, 182, 52, 72}
	dlmmDiscRemoveLiquidity  = [8]byte{80, 85, 209, 72, 24, 206, 35, 178}
	dlmmDiscInitializePool   = [8]byte{95, 180, 10, 172, 84, 174, 232, 40}
	dlmmDiscCreatePosition   = [8]byte{123, 233, 11, 43, 146, 180, 97, 119}
	dlmmDiscClosePosition    = [8]byte{94, 168, 102, 45, 59, 122, 137, 54}
	dlmmDiscClaimFee         = [8]byte{152, 70, 208, 111, 104, 91, 44, 1}
)

func decodeMeteoraDlmmLog(line string, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
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
	case dlmmDiscSwap:
		const need = 32 + 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		lbPair, _ := readPubkey(data, 0)
		user, _ := readPubkey(data, 32)
		amountIn, _ := readU64LE(data, 64)
		minOut, _ := readU64LE(data, 72)
		return &MeteoraDlmmSwap{baseEvent: meta(), LbPair: lbPair, User: user, AmountIn: amountIn, MinOut: minOut}
	case dlmmDiscAddLiquidity:
		const need = 32 + 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		lbPair, _ := readPubkey(data, 0)
		position, _ := readPubkey(data, 32)
		amountX, _ := readU64LE(data, 64)
		amountY, _ := readU64LE(data, 72)
		return &MeteoraDlmmAddLiquidity{baseEvent: meta(), LbPair: lbPair, Position: position, AmountX: amountX, AmountY: amountY}
	case dlmmDiscRemoveLiquidity:
		const need = 32 + 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		lbPair, _ := readPubkey(data, 0)
		position, _ := readPubkey(data, 32)
		amountX, _ := readU64LE(data, 64)
		amountY, _ := readU64LE(data, 72)
		return &MeteoraDlmmRemoveLiquidity{baseEvent: meta(), LbPair: lbPair, Position: position, AmountX: amountX, AmountY: amountY}
	case dlmmDiscInitializePool:
		const need = 32 + 4 + 2
		if len(data) < need {
			return nil
		}
		lbPair, _ := readPubkey(data, 0)
		activeID, _ := readI32LE(data, 32)
		binStep, _ := readU16LE(data, 36)
		return &MeteoraDlmmInitializePool{baseEvent: meta(), LbPair: lbPair, ActiveID: activeID, BinStep: binStep}
	case dlmmDiscCreatePosition:
		const need = 32 + 32 + 32
		if len(data) < need {
			return nil
		}
		lbPair, _ := readPubkey(data, 0)
		position, _ := readPubkey(data, 32)
		owner, _ := readPubkey(data, 64)
		return &MeteoraDlmmCreatePosition{baseEvent: meta(), LbPair: lbPair, Position: position, Owner: owner}
	case dlmmDiscClosePosition:
		const need = 32 + 32 + 32
		if len(data) < need {
			return nil
		}
		lbPair, _ := readPubkey(data, 0)
		position, _ := readPubkey(data, 32)
		owner, _ := readPubkey(data, 64)
		return &MeteoraDlmmClosePosition{baseEvent: meta(), LbPair: lbPair, Position: position, Owner: owner}
	case dlmmDiscClaimFee:
		const need = 32 + 32 + 8 + 8
		if len(data) < need {
			return nil
		}
		lbPair, _ := readPubkey(data, 0)
		position, _ := readPubkey(data, 32)
		feeX, _ := readU64LE(data, 64)
		feeY, _ := readU64LE(data, 72)
		return &MeteoraDlmmClaimFee{baseEvent: meta(), LbPair: lbPair, Position: position, FeeX: feeX, FeeY: feeY}
	default:
		return nil
	}
}
