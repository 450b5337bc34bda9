package dexdecode

import (
	"github.com/denislavrentyev/dexdecode/dexerr"
	"github.com/gagliardetto/solana-go"
)

var (
	pumpswapLogDiscBuy             = [8]byte{103, 244, 82, 31, 44, 245, 119, 119}
	pumpswapLogDiscSell            = [8]byte{62, 47, 55, 10, 165, 3, 220, 42}
	pumpswapLogDiscCreatePool      = [8]byte{177, 49, 12, 210, 160, 118, 167, 116}
	pumpswapLogDiscAddLiquidity    = [8]byte{120, 248, 61, 83, 31, 142, 107, 144}
	pumpswapLogDiscRemoveLiquidity = [8]byte{22, 9, 133, 26, 160, 44, 71, 192}
)

// pumpswapBuyRecordLen is the exact byte length of a Buy log record's body
// (after the 8-byte discriminator): 14 u64/i64 fields, 7 public keys, the
// coin-creator fee pair, one bool, and four trailing volume-tracking fields.
const pumpswapBuyRecordLen = 14*8 + 7*32 + 2*8 + 1 + 4*8

const pumpswapSellRecordLen = 14*8 + 7*32 + 2*8

const pumpswapCreatePoolMinLen = 8 + 2 + 32 + 32 + 32 + 1 + 1 + 8*7 + 1 + 32 + 32 + 32

const pumpswapLiquidityRecordLen = 32 + 32 + 8 + 8 + 8

func decodePumpSwapLog(line string, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
	payload, release, ok := extractProgramData(line)
	if !ok || len(payload) < 8 {
		return nil
	}
	defer release()
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]

	switch disc {
	case pumpswapLogDiscBuy:
		return decodePumpSwapBuyLog(data, sig, slot, txIndex, blockTimeUs, grpcRecvUs)
	case pumpswapLogDiscSell:
		return decodePumpSwapSellLog(data, sig, slot, txIndex, blockTimeUs, grpcRecvUs)
	case pumpswapLogDiscCreatePool:
		return decodePumpSwapCreatePoolLog(data, sig, slot, txIndex, blockTimeUs, grpcRecvUs)
	case pumpswapLogDiscAddLiquidity:
		return decodePumpSwapAddLiquidityLog(data, sig, slot, txIndex, blockTimeUs, grpcRecvUs)
	case pumpswapLogDiscRemoveLiquidity:
		return decodePumpSwapRemoveLiquidityLog(data, sig, slot, txIndex, blockTimeUs, grpcRecvUs)
	default:
		return nil
	}
}

// decodePumpSwapBuyLog is the ultra-low-latency path called out in the
// design notes: one up-front length check, then unchecked reads for every
// field. The length check above is exhaustive for every offset read below —
// widening this record without updating pumpswapBuyRecordLen would be
// unsound.
func decodePumpSwapBuyLog(data []byte, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
	if len(data) < pumpswapBuyRecordLen {
		return nil
	}
	timestamp := uncheckedI64LE(data, 0)
	baseAmountOut := uncheckedU64LE(data, 8)
	maxQuoteAmountIn := uncheckedU64LE(data, 16)
	userBaseTokenReserves := uncheckedU64LE(data, 24)
	userQuoteTokenReserves := uncheckedU64LE(data, 32)
	poolBaseTokenReserves := uncheckedU64LE(data, 40)
	poolQuoteTokenReserves := uncheckedU64LE(data, 48)
	quoteAmountIn := uncheckedU64LE(data, 56)
	lpFeeBasisPoints := uncheckedU64LE(data, 64)
	lpFee := uncheckedU64LE(data, 72)
	protocolFeeBasisPoints := uncheckedU64LE(data, 80)
	protocolFee := uncheckedU64LE(data, 88)
	quoteAmountInWithLpFee := uncheckedU64LE(data, 96)
	userQuoteAmountIn := uncheckedU64LE(data, 104)
	pool := uncheckedPubkey(data, 112)
	user := uncheckedPubkey(data, 144)
	userBaseTokenAccount := uncheckedPubkey(data, 176)
	userQuoteTokenAccount := uncheckedPubkey(data, 208)
	protocolFeeRecipient := uncheckedPubkey(data, 240)
	protocolFeeRecipientTokenAccount := uncheckedPubkey(data, 272)
	coinCreator := uncheckedPubkey(data, 304)
	coinCreatorFeeBasisPoints := uncheckedU64LE(data, 336)
	coinCreatorFee := uncheckedU64LE(data, 344)
	trackVolume := uncheckedBool(data, 352)
	totalUnclaimedTokens := uncheckedU64LE(data, 353)
	totalClaimedTokens := uncheckedU64LE(data, 361)
	currentSolVolume := uncheckedU64LE(data, 369)
	lastUpdateTimestamp := uncheckedI64LE(data, 377)

	return &PumpSwapBuy{
		baseEvent:              baseEvent{buildMetadataFrom(sig, slot, txIndex, blockTimeUs, grpcRecvUs)},
		Timestamp:              timestamp,
		BaseAmountOut:          baseAmountOut,
		MaxQuoteAmountIn:       maxQuoteAmountIn,
		UserBaseTokenReserves:  userBaseTokenReserves,
		UserQuoteTokenReserves: userQuoteTokenReserves,
		PoolBaseTokenReserves:  poolBaseTokenReserves,
		PoolQuoteTokenReserves: poolQuoteTokenReserves,
		QuoteAmountIn:          quoteAmountIn,
		LpFeeBasisPoints:       lpFeeBasisPoints,
		LpFee:                  lpFee,
		ProtocolFeeBasisPoints: protocolFeeBasisPoints,
		ProtocolFee:            protocolFee,
		QuoteAmountInWithLpFee: quoteAmountInWithLpFee,
		UserQuoteAmountIn:      userQuoteAmountIn,
		Pool:                   pool,
		PoolID:                 pool,
		User:                   user,
		UserBaseTokenAccount:   userBaseTokenAccount,
		UserQuoteTokenAccount:  userQuoteTokenAccount,
		ProtocolFeeRecipient:   protocolFeeRecipient,
		ProtocolFeeRecipientTokenAccount: protocolFeeRecipientTokenAccount,
		CoinCreator:              coinCreator,
		CoinCreatorFeeBasisPoints: coinCreatorFeeBasisPoints,
		CoinCreatorFee:            coinCreatorFee,
		TrackVolume:               trackVolume,
		TotalUnclaimedTokens:      totalUnclaimedTokens,
		TotalClaimedTokens:        totalClaimedTokens,
		CurrentSolVolume:          currentSolVolume,
		LastUpdateTimestamp:       lastUpdateTimestamp,
	}
}

func decodePumpSwapSellLog(data []byte, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
	if len(data) < pumpswapSellRecordLen {
		return nil
	}
	timestamp, _ := readI64LE(data, 0)
	baseAmountIn, _ := readU64LE(data, 8)
	minQuoteAmountOut, _ := readU64LE(data, 16)
	userBaseTokenReserves, _ := readU64LE(data, 24)
	userQuoteTokenReserves, _ := readU64LE(data, 32)
	poolBaseTokenReserves, _ := readU64LE(data, 40)
	poolQuoteTokenReserves, _ := readU64LE(data, 48)
	quoteAmountOut, _ := readU64LE(data, 56)
	lpFeeBasisPoints, _ := readU64LE(data, 64)
	lpFee, _ := readU64LE(data, 72)
	protocolFeeBasisPoints, _ := readU64LE(data, 80)
	protocolFee, _ := readU64LE(data, 88)
	quoteAmountOutWithoutLpFee, _ := readU64LE(data, 96)
	userQuoteAmountOut, _ := readU64LE(data, 104)
	pool, _ := readPubkey(data, 112)
	user, _ := readPubkey(data, 144)
	userBaseTokenAccount, _ := readPubkey(data, 176)
	userQuoteTokenAccount, _ := readPubkey(data, 208)
	protocolFeeRecipient, _ := readPubkey(data, 240)
	protocolFeeRecipientTokenAccount, _ := readPubkey(data, 272)
	coinCreator, _ := readPubkey(data, 304)
	coinCreatorFeeBasisPoints, _ := readU64LE(data, 336)
	coinCreatorFee, _ := readU64LE(data, 344)

	return &PumpSwapSell{
		baseEvent:                  baseEvent{buildMetadataFrom(sig, slot, txIndex, blockTimeUs, grpcRecvUs)},
		Timestamp:                  timestamp,
		BaseAmountIn:               baseAmountIn,
		MinQuoteAmountOut:          minQuoteAmountOut,
		UserBaseTokenReserves:      userBaseTokenReserves,
		UserQuoteTokenReserves:     userQuoteTokenReserves,
		PoolBaseTokenReserves:      poolBaseTokenReserves,
		PoolQuoteTokenReserves:     poolQuoteTokenReserves,
		QuoteAmountOut:             quoteAmountOut,
		LpFeeBasisPoints:           lpFeeBasisPoints,
		LpFee:                      lpFee,
		ProtocolFeeBasisPoints:     protocolFeeBasisPoints,
		ProtocolFee:                protocolFee,
		QuoteAmountOutWithoutLpFee: quoteAmountOutWithoutLpFee,
		UserQuoteAmountOut:         userQuoteAmountOut,
		Pool:                   pool,
		PoolID:                 pool,
		User:                   user,
		UserBaseTokenAccount:   userBaseTokenAccount,
		UserQuoteTokenAccount:  userQuoteTokenAccount,
		ProtocolFeeRecipient:   protocolFeeRecipient,
		ProtocolFeeRecipientTokenAccount: protocolFeeRecipientTokenAccount,
		CoinCreator:              coinCreator,
		CoinCreatorFeeBasisPoints: coinCreatorFeeBasisPoints,
		CoinCreatorFee:            coinCreatorFee,
	}
}

func decodePumpSwapCreatePoolLog(data []byte, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
	if len(data) < pumpswapCreatePoolMinLen {
		return nil
	}
	creator, _ := readPubkey(data, 10)
	baseMint, _ := readPubkey(data, 42)
	_ = baseMint
	baseAmountIn, _ := readU64LE(data, 108)
	quoteAmountIn, _ := readU64LE(data, 116)
	lpTokenAmountOut, _ := readU64LE(data, 156)
	pool, _ := readPubkey(data, 165)

	return &PumpSwapCreatePool{
		baseEvent:          baseEvent{buildMetadataFrom(sig, slot, txIndex, blockTimeUs, grpcRecvUs)},
		PoolID:             pool,
		Creator:            creator,
		TokenMint:          baseMint,
		InitialSolAmount:   quoteAmountIn,
		InitialTokenAmount: baseAmountIn,
		FeeRate:            lpTokenAmountOut,
	}
}

func decodePumpSwapAddLiquidityLog(data []byte, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
	if len(data) < pumpswapLiquidityRecordLen {
		return nil
	}
	pool, _ := readPubkey(data, 0)
	user, _ := readPubkey(data, 32)
	baseAmount, _ := readU64LE(data, 64)
	quoteAmount, _ := readU64LE(data, 72)
	lpTokenAmount, _ := readU64LE(data, 80)
	return &PumpSwapLiquidityAdded{
		baseEvent: baseEvent{buildMetadataFrom(sig, slot, txIndex, blockTimeUs, grpcRecvUs)},
		Pool: pool, User: user, BaseAmount: baseAmount, QuoteAmount: quoteAmount, LpTokenAmount: lpTokenAmount,
	}
}

func decodePumpSwapRemoveLiquidityLog(data []byte, sig solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) DexEvent {
	if len(data) < pumpswapLiquidityRecordLen {
		return nil
	}
	pool, _ := readPubkey(data, 0)
	user, _ := readPubkey(data, 32)
	baseAmount, _ := readU64LE(data, 64)
	quoteAmount, _ := readU64LE(data, 72)
	lpTokenAmount, _ := readU64LE(data, 80)
	return &PumpSwapLiquidityRemoved{
		baseEvent: baseEvent{buildMetadataFrom(sig, slot, txIndex, blockTimeUs, grpcRecvUs)},
		Pool: pool, User: user, BaseAmount: baseAmount, QuoteAmount: quoteAmount, LpTokenAmount: lpTokenAmount,
	}
}

// DecodePumpSwapBuyLogDiag is the diagnostic counterpart of
// decodePumpSwapBuyLog: instead of silent absence, it reports exactly which
// check rejected the line. Intended for offline debugging of a feed that's
// producing unexpected gaps, never for the hot path.
func DecodePumpSwapBuyLogDiag(line string) (*PumpSwapBuy, error) {
	payload, release, ok := extractProgramData(line)
	if !ok {
		return nil, dexerr.New(dexerr.InvalidLogFormat, "missing or undecodable \"Program data: \" payload")
	}
	defer release()
	if len(payload) < 8 {
		return nil, dexerr.ShortRead(dexerr.InsufficientData, 0, 8, len(payload))
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	if disc != pumpswapLogDiscBuy {
		return nil, dexerr.New(dexerr.InvalidDiscriminator, "discriminator does not match PumpSwap Buy")
	}
	data := payload[8:]
	if len(data) < pumpswapBuyRecordLen {
		return nil, dexerr.ShortRead(dexerr.InsufficientData, 8, pumpswapBuyRecordLen, len(data))
	}
	ev := decodePumpSwapBuyLog(data, solana.Signature{}, 0, 0, 0, 0)
	buy, ok := ev.(*PumpSwapBuy)
	if !ok {
		return nil, dexerr.New(dexerr.UnknownEventType, "Buy record decode unexpectedly failed after bounds check")
	}
	return buy, nil
}
