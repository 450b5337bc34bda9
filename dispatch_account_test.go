package dexdecode

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func nonceAccountBody(authority, blockhash [32]byte, feeLamportsPerSig uint64) []byte {
	buf := make([]byte, 80)
	binary.LittleEndian.PutUint32(buf[0:4], 1) // version
	binary.LittleEndian.PutUint32(buf[4:8], 1) // state = Initialized
	copy(buf[8:40], authority[:])
	copy(buf[40:72], blockhash[:])
	binary.LittleEndian.PutUint64(buf[72:80], feeLamportsPerSig)
	return buf
}

func TestDecodeAccountNonceInitialized(t *testing.T) {
	var authority, blockhash [32]byte
	for i := range authority {
		authority[i] = 7
		blockhash[i] = 8
	}
	a := AccountFact{
		Pubkey: solana.PublicKey{1}, Owner: SystemProgramID, Lamports: 1_000_000,
		Data: nonceAccountBody(authority, blockhash, 5000),
	}
	ev := DecodeAccount(a, solana.Signature{}, 10, 0, 0)
	require.NotNil(t, ev)
	nonce, ok := ev.(*NonceAccount)
	require.True(t, ok)
	require.Equal(t, solana.PublicKey(authority), nonce.Authority)
	require.Equal(t, solana.Hash(blockhash), nonce.Nonce)
}

func TestDecodeAccountNonceUninitializedIsAbsent(t *testing.T) {
	body := nonceAccountBody([32]byte{}, [32]byte{}, 0)
	binary.LittleEndian.PutUint32(body[4:8], 0) // state = Uninitialized
	a := AccountFact{Pubkey: solana.PublicKey{1}, Owner: SystemProgramID, Data: body}
	ev := DecodeAccount(a, solana.Signature{}, 10, 0, 0)
	require.Nil(t, ev)
}

func TestDecodeAccountMintVsTokenAccount(t *testing.T) {
	mintBody := make([]byte, mintMinLen)
	binary.LittleEndian.PutUint64(mintBody[36:44], 1_000_000_000) // supply
	mintBody[44] = 6                                               // decimals

	mintAccount := AccountFact{Pubkey: solana.PublicKey{2}, Owner: SplTokenProgramID, Data: mintBody}
	ev := DecodeAccount(mintAccount, solana.Signature{}, 1, 0, 0)
	require.NotNil(t, ev)
	mint, ok := ev.(*TokenInfo)
	require.True(t, ok)
	require.Equal(t, uint64(1_000_000_000), mint.Supply)
	require.Equal(t, uint8(6), mint.Decimals)

	tokenBody := make([]byte, tokenMinLen+100) // long enough to skip the mint path
	binary.LittleEndian.PutUint64(tokenBody[64:72], 42)

	tokenAccount := AccountFact{Pubkey: solana.PublicKey{3}, Owner: SplTokenProgramID, Data: tokenBody}
	ev = DecodeAccount(tokenAccount, solana.Signature{}, 1, 0, 0)
	require.NotNil(t, ev)
	acct, ok := ev.(*TokenAccount)
	require.True(t, ok)
	require.Equal(t, uint64(42), *acct.Amount)
	require.Equal(t, SplTokenProgramID, acct.TokenOwner)
}
