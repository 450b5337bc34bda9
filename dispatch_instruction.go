package dexdecode

import "github.com/gagliardetto/solana-go"

// ParseInstructionUnified routes a single instruction to its protocol
// decoder by program ID. Order mirrors observed call frequency on mainnet,
// so the common case resolves after the fewest comparisons. An unmatched
// program ID, or a payload the matched decoder rejects, returns nil — never
// an error; instructions from programs this decoder doesn't understand are
// expected, not exceptional.
func ParseInstructionUnified(programID solana.PublicKey, payload []byte, accounts []solana.PublicKey, signature solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) == 0 {
		return nil
	}
	ev := dispatchInstruction(programID, payload, accounts, signature, slot, txIndex, blockTimeUs)
	if ev != nil {
		globalCounters.recordDecoded()
	} else {
		globalCounters.recordRejected()
	}
	return ev
}

func dispatchInstruction(programID solana.PublicKey, payload []byte, accounts []solana.PublicKey, signature solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	switch {
	case programID.Equals(PumpFunProgramID):
		return decodePumpFunInstruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	case programID.Equals(RaydiumAmmV4ProgramID):
		return decodeRaydiumAmmV4Instruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	case programID.Equals(RaydiumClmmProgramID):
		return decodeRaydiumClmmInstruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	case programID.Equals(OrcaWhirlpoolProgramID):
		return decodeOrcaWhirlpoolInstruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	case programID.Equals(RaydiumCpmmProgramID):
		return decodeRaydiumCpmmInstruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	case programID.Equals(MeteoraDammV2ProgramID):
		return decodeMeteoraDammV2Instruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	case programID.Equals(MeteoraDlmmProgramID):
		return decodeMeteoraDlmmInstruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	case programID.Equals(RaydiumLaunchpadProgramID):
		return decodeBonkInstruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	case programID.Equals(PumpSwapProgramID):
		return decodePumpSwapInstruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	case programID.Equals(MeteoraPoolsProgramID):
		return decodeMeteoraPoolsInstruction(payload, accounts, signature, slot, txIndex, blockTimeUs)
	default:
		return nil
	}
}
