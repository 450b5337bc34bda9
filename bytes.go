package dexdecode

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

// Bounds-checked little-endian readers. Every reader returns ok=false
// instead of panicking when the read would run past the end of buf; callers
// must treat a false return as "no event" and stop decoding immediately —
// none of these ever return a partially valid value.

func readU8(buf []byte, offset int) (uint8, bool) {
	if offset+1 > len(buf) {
		return 0, false
	}
	return buf[offset], true
}

func readBool(buf []byte, offset int) (bool, bool) {
	v, ok := readU8(buf, offset)
	return v != 0, ok
}

func readU16LE(buf []byte, offset int) (uint16, bool) {
	if offset+2 > len(buf) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(buf[offset : offset+2]), true
}

func readU32LE(buf []byte, offset int) (uint32, bool) {
	if offset+4 > len(buf) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(buf[offset : offset+4]), true
}

func readI32LE(buf []byte, offset int) (int32, bool) {
	v, ok := readU32LE(buf, offset)
	return int32(v), ok
}

func readU64LE(buf []byte, offset int) (uint64, bool) {
	if offset+8 > len(buf) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(buf[offset : offset+8]), true
}

func readI64LE(buf []byte, offset int) (int64, bool) {
	v, ok := readU64LE(buf, offset)
	return int64(v), ok
}

// readU128LE reads a little-endian 128-bit unsigned integer. uint128.FromBytes
// reads a big-endian slice, which is the wrong convention for this wire
// format, so the value is assembled from its two little-endian 64-bit halves
// instead.
func readU128LE(buf []byte, offset int) (uint128.Uint128, bool) {
	if offset+16 > len(buf) {
		return uint128.Zero, false
	}
	lo := binary.LittleEndian.Uint64(buf[offset : offset+8])
	hi := binary.LittleEndian.Uint64(buf[offset+8 : offset+16])
	return uint128.New(lo, hi), true
}

func readPubkey(buf []byte, offset int) (solana.PublicKey, bool) {
	if offset+32 > len(buf) {
		return solana.PublicKey{}, false
	}
	var pk solana.PublicKey
	copy(pk[:], buf[offset:offset+32])
	return pk, true
}

func readBytes(buf []byte, offset, length int) ([]byte, bool) {
	if length < 0 || offset+length > len(buf) {
		return nil, false
	}
	return buf[offset : offset+length], true
}

// getAccount returns the account public key at idx, or ok=false if accounts
// is too short. Callers on the non-identity slots fall back to the zero
// public key per the instruction-decoder account-indexing contract; callers
// on a primary identity slot must treat ok=false as "no event".
func getAccount(accounts []solana.PublicKey, idx int) (solana.PublicKey, bool) {
	if idx < 0 || idx >= len(accounts) {
		return solana.PublicKey{}, false
	}
	return accounts[idx], true
}

func getAccountOr(accounts []solana.PublicKey, idx int, fallback solana.PublicKey) solana.PublicKey {
	if pk, ok := getAccount(accounts, idx); ok {
		return pk
	}
	return fallback
}

// --- Unchecked readers: private to the PumpSwap hot log path. ---
//
// These must only be called after the caller has verified, once, that the
// buffer is at least as long as the declared record size for the variant
// being read. Every field offset in that variant must then be within bounds
// by construction; these never perform their own bounds check.

func uncheckedU64LE(buf []byte, offset int) uint64 {
	return binary.LittleEndian.Uint64(buf[offset : offset+8])
}

func uncheckedI64LE(buf []byte, offset int) int64 {
	return int64(uncheckedU64LE(buf, offset))
}

func uncheckedU16LE(buf []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(buf[offset : offset+2])
}

func uncheckedBool(buf []byte, offset int) bool {
	return buf[offset] != 0
}

func uncheckedPubkey(buf []byte, offset int) solana.PublicKey {
	var pk solana.PublicKey
	copy(pk[:], buf[offset:offset+32])
	return pk
}
