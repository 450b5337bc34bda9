package dexdecode

import "github.com/gagliardetto/solana-go"

// Embedded program identifiers for the ten protocols this decoder understands,
// plus the two system-level owners (SPL Token, nonce/System) account decoding
// needs to classify account snapshots.
//
// Several of these (marked below) are placeholders pending confirmation
// against a live program IDL — the dispatch tables that key off them are
// still exhaustive and closed, only the concrete byte values are provisional.
var (
	RaydiumAmmV4ProgramID    = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp9")
	RaydiumClmmProgramID     = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")
	RaydiumCpmmProgramID     = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")
	OrcaWhirlpoolProgramID   = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
	PumpFunProgramID         = solana.MustPublicKeyFromBase58("Eh63kEvm5bRhpXWYrpnrBUaLJ9iSFM7Y2BEdF9nrQJBz") // placeholder
	PumpSwapProgramID        = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	MeteoraDlmmProgramID     = solana.MustPublicKeyFromBase58("53QJ9XP1o56c2dSm4Xp173FxPVg87azSiFwQAxuVbFwu") // placeholder
	MeteoraDammV2ProgramID   = solana.MustPublicKeyFromBase58("DHppsA3np22d5sPbnAb8D6aMJnsk5Ye94Y7g66bWF2uj") // placeholder
	MeteoraPoolsProgramID    = solana.MustPublicKeyFromBase58("DjkwfsqMSoSPiRXThsadvqa395Yf1YqM3KEtv9CmoUFF") // placeholder
	RaydiumLaunchpadProgramID = solana.MustPublicKeyFromBase58("BUQcEaiLAES4A9khvKcQsvM12h38dsBYpXfUfJNW7JPD") // placeholder

	SplTokenProgramID = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	SystemProgramID   = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
)

// nonceAccountMagic is the 8-byte prefix every System Program nonce account
// begins with: a little-endian u32 version (1) followed by a little-endian
// u32 state tag (1 = Initialized).
var nonceAccountMagic = [8]byte{1, 0, 0, 0, 1, 0, 0, 0}
