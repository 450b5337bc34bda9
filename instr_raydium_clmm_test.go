package dexdecode

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func clmmSwapPayload(amount, otherThreshold, sqrtPriceLimitX64 uint64, isBaseInput bool) []byte {
	buf := make([]byte, 8+25)
	copy(buf[0:8], clmmDiscSwap[:])
	binary.LittleEndian.PutUint64(buf[8:16], amount)
	binary.LittleEndian.PutUint64(buf[16:24], otherThreshold)
	binary.LittleEndian.PutUint64(buf[24:32], sqrtPriceLimitX64)
	if isBaseInput {
		buf[32] = 1
	}
	return buf
}

func TestRaydiumClmmSwap(t *testing.T) {
	accounts := pubkeys(3)
	payload := clmmSwapPayload(5_000_000, 4_900_000, 79_226_673_521_066, true)

	ev := ParseInstructionUnified(RaydiumClmmProgramID, payload, accounts, solana.Signature{1}, 11, 0, 0)
	require.NotNil(t, ev)

	swap, ok := ev.(*RaydiumClmmSwap)
	require.True(t, ok)
	require.Equal(t, uint64(5_000_000), swap.Amount)
	require.Equal(t, uint64(4_900_000), swap.OtherThreshold)
	require.Equal(t, uint128.From64(79_226_673_521_066), swap.SqrtPriceLimit)
	require.True(t, swap.IsBaseInput)
	require.Equal(t, accounts[0], swap.Pool)
	require.Equal(t, accounts[1], swap.Payer)
}

// A spec-conforming swap payload is exactly 8 (amount) + 8 (other_amount_threshold)
// + 8 (sqrt_price_limit_x64) + 1 (is_base_input) = 25 bytes after the discriminator.
// Reading sqrt_price_limit_x64 as a full 16-byte u128 would reject this record.
func TestRaydiumClmmSwapExactMinimumLength(t *testing.T) {
	accounts := pubkeys(2)
	payload := clmmSwapPayload(1, 1, 1, false)
	require.Len(t, payload, 33)

	ev := ParseInstructionUnified(RaydiumClmmProgramID, payload, accounts, solana.Signature{}, 1, 0, 0)
	require.NotNil(t, ev)
}

func TestRaydiumClmmSwapTruncated(t *testing.T) {
	accounts := pubkeys(2)
	payload := clmmSwapPayload(1, 1, 1, false)
	payload = payload[:len(payload)-1] // drop is_base_input

	ev := ParseInstructionUnified(RaydiumClmmProgramID, payload, accounts, solana.Signature{}, 1, 0, 0)
	require.Nil(t, ev)
}
