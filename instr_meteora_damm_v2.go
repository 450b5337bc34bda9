package dexdecode

import "github.com/gagliardetto/solana-go"

// Discriminators from the source's instr/meteora_damm.rs table.
var (
	dammV2DiscInitializeLbPair    = [8]byte{228, 50, 246, 85, 203, 66, 134, 37}
	dammV2DiscInitializeReward    = [8]byte{129, 91, 188, 3, 246, 52, 185, 249}
	dammV2DiscAddLiquidity        = [8]byte{175, 242, 8, 157, 30, 247, 185, 169}
	dammV2DiscRemoveLiquidity     = [8]byte{87, 46, 88, 98, 175, 96, 34, 91}
	dammV2DiscInitializePosition  = [8]byte{156, 15, 119, 198, 29, 181, 221, 55}
	dammV2DiscClosePosition       = [8]byte{20, 145, 144, 68, 143, 142, 214, 178}
	dammV2DiscSwap                = [8]byte{27, 60, 21, 213, 138, 170, 187, 147}
	dammV2DiscClaimReward         = [8]byte{218, 86, 147, 200, 235, 188, 215, 231}
	dammV2DiscClaimPositionFee    = [8]byte{198, 182, 183, 52, 97, 12, 49, 56}
	dammV2DiscFundReward          = [8]byte{104, 233, 237, 122, 199, 191, 121, 85}
)

func decodeMeteoraDammV2Instruction(payload []byte, accounts []solana.PublicKey, sig solana.Signature, slot, txIndex uint64, blockTimeUs int64) DexEvent {
	if len(payload) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], payload[:8])
	data := payload[8:]
	meta := func() baseEvent { return baseEvent{buildMetadataNow(sig, slot, txIndex, blockTimeUs)} }

	switch disc {
	case dammV2DiscSwap:
		amountIn, ok1 := readU64LE(data, 0)
		minOut, ok2 := readU64LE(data, 8)
		pool, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &MeteoraDammV2Swap{baseEvent: meta(), AmountIn: amountIn, MinOut: minOut, Pool: pool}
	case dammV2DiscAddLiquidity:
		pool, ok := getAccount(accounts, 0)
		if !ok {
			return nil
		}
		return &MeteoraDammV2AddLiquidity{baseEvent: meta(), Pool: pool, Position: getAccountOr(accounts, 1, solana.PublicKey{})}
	case dammV2DiscRemoveLiquidity:
		pool, ok := getAccount(accounts, 0)
		if !ok {
			return nil
		}
		return &MeteoraDammV2RemoveLiquidity{baseEvent: meta(), Pool: pool, Position: getAccountOr(accounts, 1, solana.PublicKey{})}
	case dammV2DiscInitializeLbPair:
		activeID, ok1 := readI32LE(data, 0)
		binStep, ok2 := readU16LE(data, 4)
		pool, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &MeteoraDammV2InitializeLbPair{baseEvent: meta(), ActiveID: activeID, BinStep: binStep, Pool: pool}
	case dammV2DiscInitializePosition:
		pool, ok := getAccount(accounts, 0)
		if !ok {
			return nil
		}
		return &MeteoraDammV2InitializePosition{
			baseEvent: meta(), Pool: pool,
			Position: getAccountOr(accounts, 1, solana.PublicKey{}),
			Owner:    getAccountOr(accounts, 2, solana.PublicKey{}),
		}
	case dammV2DiscClosePosition:
		pool, ok := getAccount(accounts, 0)
		if !ok {
			return nil
		}
		return &MeteoraDammV2ClosePosition{
			baseEvent: meta(), Pool: pool,
			Position: getAccountOr(accounts, 1, solana.PublicKey{}),
			Owner:    getAccountOr(accounts, 2, solana.PublicKey{}),
		}
	case dammV2DiscClaimReward:
		rewardIndex, ok1 := readU8(data, 0)
		pool, ok2 := getAccount(accounts, 0)
		if !ok1 || !ok2 {
			return nil
		}
		return &MeteoraDammV2ClaimReward{
			baseEvent: meta(), Pool: pool, RewardIndex: rewardIndex,
			Position: getAccountOr(accounts, 1, solana.PublicKey{}),
		}
	case dammV2DiscClaimPositionFee:
		pool, ok := getAccount(accounts, 0)
		if !ok {
			return nil
		}
		return &MeteoraDammV2ClaimPositionFee{baseEvent: meta(), Pool: pool, Position: getAccountOr(accounts, 1, solana.PublicKey{})}
	case dammV2DiscFundReward:
		rewardIndex, ok1 := readU8(data, 0)
		amount, ok2 := readU64LE(data, 1)
		pool, ok3 := getAccount(accounts, 0)
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		return &MeteoraDammV2FundReward{baseEvent: meta(), Pool: pool, RewardIndex: rewardIndex, Amount: amount}
	case dammV2DiscInitializeReward:
		rewardIndex, ok1 := readU8(data, 0)
		pool, ok2 := getAccount(accounts, 0)
		if !ok1 || !ok2 {
			return nil
		}
		return &MeteoraDammV2InitializeReward{baseEvent: meta(), Pool: pool, RewardIndex: rewardIndex}
	default:
		return nil
	}
}
