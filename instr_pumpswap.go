package dexdecode

import "github.com/gagliardetto/solana-go"

var (
	pumpswapInstrDiscBuy        = [8]byte{102, 6, 61, 18, 1, 218, 235, 234}
	pumpswapInstrDiscSell       = [8]byte{51, 230, 133, 164, 1, 127, 131, 173}
	pumpswapInstrDiscCreatePool = [8]byte{233, 146, 209, 142, 207, 104, 64, 188}
)

func decodePumpSwapInstruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case pumpswapInstrDiscBuy:
		solAmount, ok1 := readU64LE(data, 0)
		slippage, ok2 := readU16LE(data, 8)
		tokenMint, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &PumpSwapBuy{
			baseEvent: meta(), SolAmount: solAmount, Slippage: slippage, TokenMint: tokenMint,
			PoolID: getAccountOr(accounts, 1, solana.PublicKey{}),
			User:   getAccountOr(accounts, 2, solana.PublicKey{}),
		}
	case pumpswapInstrDiscSell:
		tokenAmount, ok1 := readU64LE(data, 0)
		slippage, ok2 := readU16LE(data, 8)
		tokenMint, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &PumpSwapSell{
			baseEvent: meta(), TokenAmount: tokenAmount, Slippage: slippage, TokenMint: tokenMint,
			PoolID: getAccountOr(accounts, 1, solana.PublicKey{}),
			User:   getAccountOr(accounts, 2, solana.PublicKey{}),
		}
	case pumpswapInstrDiscCreatePool:
		initialSol, ok1 := readU64LE(data, 0)
		initialToken, ok2 := readU64LE(data, 8)
		tokenMint, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &PumpSwapCreatePool{
			baseEvent: meta(), InitialSolAmount: initialSol, InitialTokenAmount: initialToken,
			TokenMint: tokenMint,
			Creator:   getAccountOr(accounts, 1, solana.PublicKey{}),
			PoolID:    getAccountOr(accounts, 2, solana.PublicKey{}),
			FeeRate:   100,
		}
	default:
		return nil
	}
}
