package dexdecode

import "github.com/gagliardetto/solana-go"

// decodeTokenAccount mirrors the SPL account decode path: a short account
// body (len<=100) is tried as a mint first; anything else falls through to
// the token-account shape. The mint path requires the full 82-byte mint
// size; the token-account path requires only the 72 bytes up to the end of
// the amount field, not the full 165-byte account size.
func decodeTokenAccount(a AccountFact, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	if len(a.Data) <= 100 {
		if info, ok := decodeMintFast(a, meta); ok {
			return info
		}
	}
	if acct, ok := decodeTokenFast(a, meta); ok {
		return acct
	}
	return nil
}

const (
	mintMinLen  = 82 // MINT_SIZE
	tokenMinLen = 72 // AMOUNT_OFFSET(64) + 8
)

func decodeMintFast(a AccountFact, meta func() baseEvent) (*TokenInfo, bool) {
	if len(a.Data) < mintMinLen {
		return nil, false
	}
	supply, ok := readU64LE(a.Data, 36)
	if !ok {
		return nil, false
	}
	decimals, ok := readU8(a.Data, 44)
	if !ok {
		return nil, false
	}
	return &TokenInfo{
		baseEvent: meta(), Pubkey: a.Pubkey, Executable: a.Executable, Lamports: a.Lamports,
		Owner: a.Owner, RentEpoch: a.RentEpoch, Supply: supply, Decimals: decimals,
	}, true
}

// decodeTokenFast deliberately reports TokenOwner as the owning program
// (a.Owner), not the SPL "owner" field embedded at byte offset 32 of the
// account body — this follows the account decoder this is grounded on.
func decodeTokenFast(a AccountFact, meta func() baseEvent) (*TokenAccount, bool) {
	if len(a.Data) < tokenMinLen {
		return nil, false
	}
	amount, ok := readU64LE(a.Data, 64)
	if !ok {
		return nil, false
	}
	return &TokenAccount{
		baseEvent: meta(), Pubkey: a.Pubkey, Executable: a.Executable, Lamports: a.Lamports,
		Owner: a.Owner, RentEpoch: a.RentEpoch, Amount: amountPtr(amount), TokenOwner: a.Owner,
	}, true
}
