package dexdecode

import (
	"encoding/base64"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

const pumpSwapBuyLogB64 = "Z/RSHyz1d3cA8VNlAAAAABAnAAAAAAAAQEIPAAAAAABvAAAAAAAAAN4AAAAAAAAATQEAAAAAAAC8AQAAAAAAADAbDwAAAAAAHgAAAAAAAAADAAAAAAAAAAUAAAAAAAAABwAAAAAAAAC4Lg8AAAAAAKAyDwAAAAAAAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQECAgICAgICAgICAgICAgICAgICAgICAgICAgICAgICAgMDAwMDAwMDAwMDAwMDAwMDAwMDAwMDAwMDAwMDAwMDBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQYGBgYGBgYGBgYGBgYGBgYGBgYGBgYGBgYGBgYGBgYGBwcHBwcHBwcHBwcHBwcHBwcHBwcHBwcHBwcHBwcHBwcKAAAAAAAAAAEAAAAAAAAAAXsAAAAAAAAAyAEAAAAAAAAVAwAAAAAAAGTxU2UAAAAA"

// 153 bytes decoded (8-byte discriminator + 145-byte body), matching the
// seed scenario's stated record length; the body carries the documented
// 97-byte Traded layout followed by 48 bytes of zero padding this decoder
// never reads (whirlpoolTradedRecordLen only enforces a minimum length).
const orcaWhirlpoolTradedLogB64 = "4cpJr5MroJYJCQkJCQkJCQkJCQkJCQkJCQkJCQkJCQkJCQkJCQkJCQFAQg8AAAAAAAAAAAAAAAAAWD4PAAAAAAAAAAAAAAAAAIgTAAAAAAAAJBMAAAAAAAAKAAAAAAAAAAIAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func TestPumpSwapBuyLog(t *testing.T) {
	line := "Program data: " + pumpSwapBuyLogB64
	ev := ParseLog(ProgramPumpSwap, line, solana.Signature{9}, 7, 2, 1_700_000_000_000, 123)
	require.NotNil(t, ev)

	buy, ok := ev.(*PumpSwapBuy)
	require.True(t, ok)
	require.Equal(t, uint64(10_000), buy.BaseAmountOut)
	require.Equal(t, uint64(1_000_000), buy.MaxQuoteAmountIn)
	require.Greater(t, buy.Metadata().GrpcRecvUs, int64(0))
	require.Equal(t, int64(123), buy.Metadata().GrpcRecvUs)
}

func TestPumpSwapBuyLogTruncated(t *testing.T) {
	full, err := base64.StdEncoding.DecodeString(pumpSwapBuyLogB64)
	require.NoError(t, err)
	truncated := base64.StdEncoding.EncodeToString(full[:len(full)-1]) // drop the record's last byte
	line := "Program data: " + truncated
	ev := ParseLog(ProgramPumpSwap, line, solana.Signature{}, 1, 0, 0, 0)
	require.Nil(t, ev)
}

func TestOrcaWhirlpoolTradedLog(t *testing.T) {
	line := "Program data: " + orcaWhirlpoolTradedLogB64
	ev := ParseLog(ProgramOrcaWhirlpool, line, solana.Signature{}, 5, 1, 0, 0)
	require.NotNil(t, ev)

	swap, ok := ev.(*OrcaWhirlpoolSwap)
	require.True(t, ok)
	require.True(t, swap.AToB)
	require.Equal(t, uint64(5_000), swap.InputAmount)
	require.Equal(t, uint64(4_900), swap.OutputAmount)
	require.Equal(t, uint64(10), swap.LpFee)
	require.Equal(t, uint64(2), swap.ProtocolFee)
}

func TestParseLogLineNoProgramDataPrefix(t *testing.T) {
	ev := ParseLogLine("some unrelated log text", solana.Signature{}, 1, 0, 0, 0)
	require.Nil(t, ev)
}

func TestParseLogLineRoutesAcrossProtocols(t *testing.T) {
	line := "Program data: " + pumpSwapBuyLogB64
	ev := ParseLogLine(line, solana.Signature{}, 1, 0, 0, 0)
	require.NotNil(t, ev)
	_, ok := ev.(*PumpSwapBuy)
	require.True(t, ok)
}
