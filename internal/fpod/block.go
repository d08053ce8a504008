package fpod

// blockKind is the decoded record kind of one fixed-size data block. The
// on-disk format has no explicit record-type tags; kind is inferred from a
// discriminant byte whose position depends on the device family.
type blockKind int

const (
	blockClick blockKind = iota
	blockTrain
	blockWave
	blockMinute
	blockUnknown
)

// classifyFPOD keys on the block's first byte.
func classifyFPOD(buf []byte) blockKind {
	switch b := buf[0]; {
	case b < 184:
		return blockClick
	case b == 249:
		return blockTrain
	case b == 250:
		return blockWave
	case b == 254:
		return blockMinute
	default:
		return blockUnknown
	}
}

// classifyCPOD keys on the block's last byte: 254 marks a minute marker,
// everything else is a click.
func classifyCPOD(buf []byte) blockKind {
	if buf[len(buf)-1] == 254 {
		return blockMinute
	}
	return blockClick
}

// isTerminator reports whether the block is an end-of-data marker in the
// CPOD family: all bytes 0xFF, with a tolerance of 5.
func isTerminator(buf []byte) bool {
	n := 0
	for _, b := range buf {
		if b == 0xFF {
			n++
		}
	}
	return n >= len(buf)-5
}
