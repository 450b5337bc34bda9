package dexdecode

import (
	"github.com/denislavrentyev/dexdecode/anchor"
	"github.com/gagliardetto/solana-go"
)

var (
	pumpfunLogDiscTrade    = anchor.Discriminator("event", "TradeEvent")
	pumpfunLogDiscComplete = anchor.Discriminator("event", "CompleteEvent")
)

const pumpfunTradeRecordLen = 32 + 8 + 8 + 1 + 8 + 8 + 32 // mint, sol_amount, token_amount, is_buy, virtual_sol_reserves, virtual_token_reserves, user

func decodePumpFunLog(line string, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
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
	case pumpfunLogDiscTrade:
		if len(data) < pumpfunTradeRecordLen {
			return nil
		}
		mint, _ := readPubkey(data, 0)
		solAmount, _ := readU64LE(data, 32)
		tokenAmount, _ := readU64LE(data, 40)
		isBuy, _ := readBool(data, 48)
		virtualSol, _ := readU64LE(data, 49)
		virtualToken, _ := readU64LE(data, 57)
		user, _ := readPubkey(data, 65)
		return &PumpFunTrade{
			baseEvent: meta(), Mint: mint, SolAmount: solAmount, TokenAmount: tokenAmount,
			IsBuy: isBuy, VirtualSolReserves: virtualSol, VirtualTokenReserves: virtualToken,
			User: user,
		}
	case pumpfunLogDiscComplete:
		if len(data) < 64 {
			return nil
		}
		mint, _ := readPubkey(data, 0)
		bondingCurve, _ := readPubkey(data, 32)
		return &PumpFunComplete{baseEvent: meta(), Mint: mint, BondingCurve: bondingCurve}
	default:
		return nil
	}
}
