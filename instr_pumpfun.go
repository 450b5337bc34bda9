package dexdecode

import (
	"github.com/denislavrentyev/dexdecode/anchor"
	"github.com/gagliardetto/solana-go"
)

var (
	pumpfunDiscCreate = anchor.Discriminator("global", "create")
	pumpfunDiscBuy    = anchor.Discriminator("global", "buy")
	pumpfunDiscSell   = anchor.Discriminator("global", "sell")
)

// readBorshString reads a Borsh-encoded string: a little-endian u32 byte
// length followed by that many UTF-8 bytes.
func readBorshString(data []byte, offset int) (string, int, bool) {
	n, ok := readU32LE(data, offset)
	if !ok {
		return "", 0, false
	}
	strBytes, ok := readBytes(data, offset+4, int(n))
	if !ok {
		return "", 0, false
	}
	return string(strBytes), offset + 4 + int(n), true
}

func decodePumpFunInstruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case pumpfunDiscCreate:
		name, off, ok := readBorshString(data, 0)
		if !ok {
			return nil
		}
		symbol, off, ok := readBorshString(data, off)
		if !ok {
			return nil
		}
		uri, _, ok := readBorshString(data, off)
		if !ok {
			return nil
		}
		mint, ok := getAccount(accounts, 0)
		if !ok {
			return nil
		}
		return &PumpFunCreate{
			baseEvent: meta(), Name: name, Symbol: symbol, Uri: uri, Mint: mint,
			BondingCurve: getAccountOr(accounts, 2, solana.PublicKey{}),
			Creator:      getAccountOr(accounts, 7, solana.PublicKey{}),
		}
	case pumpfunDiscBuy:
		amountIn, ok1 := readU64LE(data, 0)
		minOut, ok2 := readU64LE(data, 8)
		mint, ok3 := getAccount(accounts, 2)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &PumpFunTrade{
			baseEvent: meta(), IsBuy: true, AmountIn: amountIn, MinimumAmountOut: minOut,
			Mint: mint, BondingCurve: getAccountOr(accounts, 3, solana.PublicKey{}),
			User: getAccountOr(accounts, 6, solana.PublicKey{}),
		}
	case pumpfunDiscSell:
		amountIn, ok1 := readU64LE(data, 0)
		minOut, ok2 := readU64LE(data, 8)
		mint, ok3 := getAccount(accounts, 2)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &PumpFunTrade{
			baseEvent: meta(), IsBuy: false, AmountIn: amountIn, MinimumAmountOut: minOut,
			Mint: mint, BondingCurve: getAccountOr(accounts, 3, solana.PublicKey{}),
			User: getAccountOr(accounts, 6, solana.PublicKey{}),
		}
	default:
		return nil
	}
}
