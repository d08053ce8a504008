package fpod

import (
	"testing"

	"github.com/podtools/podscan/internal/format"
	"github.com/stretchr/testify/assert"
)

func TestDecodeCPODHeader(t *testing.T) {
	buf := make([]byte, 360)

	copy(buf[13:], "57 30.1N")
	copy(buf[21:], "004 10.2")
	copy(buf[33:], "Outer Moray Firth")
	copy(buf[164:], "0123")
	copy(buf[211:], "deployed from RV Example")

	buf[29], buf[30] = 0x00, 0x14 // deployment depth 20
	buf[31], buf[32] = 0x00, 0x28 // water depth 40
	buf[256], buf[257], buf[258], buf[259] = 0x00, 0x10, 0x00, 0x00
	buf[260], buf[261], buf[262], buf[263] = 0x00, 0x10, 0x20, 0x00

	h := decodeCPODHeader(buf, format.CP1)

	assert.Equal(t, "CP1", h.Format)
	assert.Equal(t, "0123", h.PodID)
	assert.Equal(t, int32(0x100000), h.FirstLoggedMin)
	assert.Equal(t, int32(0x102000), h.LastLoggedMin)
	assert.Equal(t, uint16(20), h.DeploymentDepth)
	assert.Equal(t, uint16(40), h.WaterDepth)
	assert.Equal(t, "57 30.1N", h.LatText)
	assert.Equal(t, "004 10.2", h.LonText)
	// fixed-width fields keep their trailing padding
	assert.Len(t, h.LocationText, 31)
	assert.Equal(t, "Outer Moray Firth", h.LocationText[:17])
	assert.Len(t, h.NotesText, 50)
	assert.False(t, h.ExtendedAmps)
	assert.False(t, h.HasPriorClicks)
}

func TestDecodeCPODHeaderPriorClicks(t *testing.T) {
	buf := make([]byte, 720)
	buf[128], buf[129], buf[130], buf[131] = 0x00, 0x01, 0x00, 0x00

	h := decodeCPODHeader(buf, format.CP3)
	assert.True(t, h.HasPriorClicks)
	assert.Equal(t, uint64(0x10000), h.PriorClicks)
}

func TestDecodeFPODHeader(t *testing.T) {
	buf := make([]byte, 1024)

	buf[3], buf[4] = 12, 34 // pod 1234
	buf[37] = 28            // processor version
	buf[39], buf[40] = 0x01, 0x05
	buf[129], buf[130] = 0x00, 0x0A
	buf[131], buf[132] = 0x00, 0x1E
	copy(buf[133:], "57 30.100 N")
	copy(buf[145:], "004 10.20 W")
	copy(buf[157:], "Hebrides shelf")
	copy(buf[188:], "second deployment")
	copy(buf[232:], "GMT+0      ")
	buf[256], buf[257], buf[258], buf[259] = 0x00, 0x20, 0x00, 0x00

	h := decodeFPODHeader(buf, format.FP1)

	assert.Equal(t, "FP1", h.Format)
	assert.Equal(t, 1234, h.PodNumber)
	assert.Equal(t, "1234", h.PodID)
	assert.Equal(t, int32(0x200000), h.FirstLoggedMin)
	assert.Equal(t, uint16(10), h.DeploymentDepth)
	assert.Equal(t, uint16(30), h.WaterDepth)
	assert.Equal(t, "57 30.100 N", h.LatText)
	assert.Equal(t, "004 10.20 W", h.LonText)
	assert.Equal(t, "GMT+0      ", h.GMTText)
	assert.Equal(t, uint8(28), h.PicVer)
	assert.Equal(t, uint16(0x0105), h.FpgaVer)
	assert.True(t, h.ExtendedAmps)
	assert.False(t, h.HasPriorClicks)
}

func TestDecodeFPODHeaderPriorClicks(t *testing.T) {
	buf := make([]byte, 1024)
	buf[237], buf[238] = 0x01, 0xF4 // low bytes of the 64-bit count

	h := decodeFPODHeader(buf, format.FP3)
	assert.True(t, h.HasPriorClicks)
	assert.Equal(t, uint64(500), h.PriorClicks)
	assert.False(t, h.ExtendedAmps)
}
