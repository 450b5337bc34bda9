package dexdecode

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func pubkeys(n int) []solana.PublicKey {
	accounts := make([]solana.PublicKey, n)
	for i := range accounts {
		var pk solana.PublicKey
		pk[0] = byte(i + 1)
		pk[31] = byte(i + 1)
		accounts[i] = pk
	}
	return accounts
}

func TestRaydiumAmmV4SwapBaseIn(t *testing.T) {
	accounts := pubkeys(18)
	payload := []byte{9, 64, 66, 15, 0, 0, 0, 0, 0, 240, 126, 14, 0, 0, 0, 0, 0}

	ev := ParseInstructionUnified(RaydiumAmmV4ProgramID, payload, accounts, solana.Signature{1}, 42, 3, 1_700_000_000_000)
	require.NotNil(t, ev)

	swap, ok := ev.(*RaydiumAmmV4Swap)
	require.True(t, ok)
	require.Equal(t, uint64(1_000_000), swap.AmountIn)
	require.Equal(t, uint64(950_000), swap.MinimumAmountOut)
	require.Equal(t, accounts[1], swap.Amm)
	require.Equal(t, accounts[17], swap.UserSourceOwner)
	require.Equal(t, uint64(42), swap.Metadata().Slot)
}

func TestParseInstructionUnifiedUnknownProgram(t *testing.T) {
	var unknown solana.PublicKey
	unknown[0] = 0xFF
	ev := ParseInstructionUnified(unknown, []byte{1, 2, 3}, pubkeys(3), solana.Signature{}, 1, 0, 0)
	require.Nil(t, ev)
}

func TestParseInstructionUnifiedEmptyPayload(t *testing.T) {
	ev := ParseInstructionUnified(RaydiumAmmV4ProgramID, nil, pubkeys(18), solana.Signature{}, 1, 0, 0)
	require.Nil(t, ev)
}

func TestRaydiumAmmV4SwapBaseInTruncated(t *testing.T) {
	accounts := pubkeys(18)
	payload := []byte{9, 64, 66, 15, 0, 0, 0, 0, 0, 48, 27} // missing trailing bytes of min_out

	ev := ParseInstructionUnified(RaydiumAmmV4ProgramID, payload, accounts, solana.Signature{}, 1, 0, 0)
	require.Nil(t, ev)
}
