package fpod

import (
	"strconv"

	"github.com/podtools/podscan/internal/format"
	"github.com/podtools/podscan/pkg/core"
)

// decodeCPODHeader parses the fixed-size CPOD header block. The pod
// identifier is a 4-byte text field; depths are big-endian 16-bit pairs.
func decodeCPODHeader(buf []byte, f format.Format) core.Header {
	h := core.Header{Format: string(f)}

	h.PodID = textField(buf, 164, 4)
	h.FirstLoggedMin = int32(bigEndian(buf, 256, 4))
	h.LastLoggedMin = int32(bigEndian(buf, 260, 4))
	h.WaterDepth = uint16(buf[31])<<8 | uint16(buf[32])
	h.DeploymentDepth = uint16(buf[29])<<8 | uint16(buf[30])
	h.LatText = textField(buf, 13, 8)
	h.LonText = textField(buf, 21, 8)
	h.LocationText = textField(buf, 33, 31)
	h.NotesText = textField(buf, 211, 50)

	if f == format.CP3 {
		h.PriorClicks = bigEndian(buf, 128, 4)
		h.HasPriorClicks = true
	}
	return h
}

// decodeFPODHeader parses the fixed-size FPOD header block. The pod
// identifier is numeric (100*byte[3] + byte[4]); the FPGA version field
// doubles as the extended-amplitudes capability flag.
func decodeFPODHeader(buf []byte, f format.Format) core.Header {
	h := core.Header{Format: string(f)}

	h.PodNumber = 100*int(buf[3]) + int(buf[4])
	h.PodID = strconv.Itoa(h.PodNumber)
	h.FirstLoggedMin = int32(bigEndian(buf, 256, 4))
	h.LastLoggedMin = int32(bigEndian(buf, 260, 4))
	h.WaterDepth = uint16(buf[131])<<8 + uint16(buf[132])
	h.DeploymentDepth = uint16(buf[129])<<8 + uint16(buf[130])
	h.LatText = textField(buf, 133, 11)
	h.LonText = textField(buf, 145, 11)
	h.LocationText = textField(buf, 157, 30)
	h.NotesText = textField(buf, 188, 43)
	h.GMTText = textField(buf, 232, 11)

	h.PicVer = buf[37]
	h.FpgaVer = uint16(buf[39])<<8 | uint16(buf[40])
	h.ExtendedAmps = h.FpgaVer > 0

	if f == format.FP3 {
		h.PriorClicks = bigEndian(buf, 231, 8)
		h.HasPriorClicks = true
	}
	return h
}
