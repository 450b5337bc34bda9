package dexdecode

import "github.com/gagliardetto/solana-go"

// Program identifies which protocol's log decoder ParseLog should use. Only
// protocols that emit "Program data:" event logs are represented here; the
// others (Raydium AMM V4, CLMM, CPMM, Meteora DAMM v2) carry no log decoder
// in this package.
type Program int

const (
	ProgramPumpFun Program = iota
	ProgramPumpSwap
	ProgramOrcaWhirlpool
	ProgramMeteoraDlmm
	ProgramMeteoraPools
	ProgramBonk
)

// ParseLog decodes one log line under the caller-asserted protocol. Use this
// when the caller already knows which program emitted the line; otherwise
// use ParseLogLine, which tries each protocol's decoder in turn.
func ParseLog(program Program, line string, signature solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
	switch program {
	case ProgramPumpFun:
		return decodePumpFunLog(line, signature, slot, txIndex, blockTimeUs, grpcRecvUs)
	case ProgramPumpSwap:
		return decodePumpSwapLog(line, signature, slot, txIndex, blockTimeUs, grpcRecvUs)
	case ProgramOrcaWhirlpool:
		return decodeOrcaWhirlpoolLog(line, signature, slot, txIndex, blockTimeUs, grpcRecvUs)
	case ProgramMeteoraDlmm:
		return decodeMeteoraDlmmLog(line, signature, slot, txIndex, blockTimeUs, grpcRecvUs)
	case ProgramMeteoraPools:
		return decodeMeteoraPoolsLog(line, signature, slot, txIndex, blockTimeUs, grpcRecvUs)
	case ProgramBonk:
		return decodeBonkLog(line, signature, slot, txIndex, blockTimeUs, grpcRecvUs)
	default:
		return nil
	}
}

var logLineDecoders = [...]func(string, solana.Signature, uint64, uint64, int64, int64) DexEvent{
	decodePumpFunLog,
	decodePumpSwapLog,
	decodeOrcaWhirlpoolLog,
	decodeMeteoraDlmmLog,
	decodeMeteoraPoolsLog,
	decodeBonkLog,
}

// ParseLogLine pre-filters on the "Program data: " marker once, then tries
// each protocol's log decoder in turn. Each decoder already rejects lines
// whose discriminator doesn't match its own table, so a non-matching
// protocol costs one more base64 decode of the line and a discriminator
// compare, not a full parse attempt.
func ParseLogLine(line string, signature solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
	_, release, ok := extractProgramData(line)
	if !ok {
		return nil
	}
	release()
	for _, decode := range logLineDecoders {
		if ev := decode(line, signature, slot, txIndex, blockTimeUs, grpcRecvUs); ev != nil {
			return ev
		}
	}
	return nil
}
