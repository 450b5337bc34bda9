package dexdecode

import "github.com/gagliardetto/solana-go"

// EventMetadata is attached to every emitted event. GrpcRecvUs is set exactly
// once, at decode entry, and never rewritten afterward.
type EventMetadata struct {
	Signature   solana.Signature
	Slot        uint64
	TxIndex     uint64
	BlockTimeUs int64
	GrpcRecvUs  int64
}

// buildMetadataNow stamps GrpcRecvUs from the process clock. Used by the
// instruction and account decode paths, whose external entry points don't
// carry a caller-supplied receive timestamp.
func buildMetadataNow(signature solana.Signature, slot, txIndex uint64, blockTimeUs int64) EventMetadata {
	return EventMetadata{
		Signature:   signature,
		Slot:        slot,
		TxIndex:     txIndex,
		BlockTimeUs: blockTimeUs,
		GrpcRecvUs:  currentClock().NowMicros(),
	}
}

// buildMetadataFrom uses a caller-supplied receive timestamp. Used by the log
// decode path, whose entry point already carries grpc_recv_us (stamped
// upstream, at the moment the feed handed the decoder the log line).
func buildMetadataFrom(signature solana.Signature, slot, txIndex uint64, blockTimeUs, grpcRecvUs int64) EventMetadata {
	return EventMetadata{
		Signature:   signature,
		Slot:        slot,
		TxIndex:     txIndex,
		BlockTimeUs: blockTimeUs,
		GrpcRecvUs:  grpcRecvUs,
	}
}
