package fpod

import (
	"io"

	"github.com/podtools/podscan/internal/format"
	"github.com/podtools/podscan/pkg/core"
)

// trainInfo is pending click-train metadata. A train block annotates the
// next click to be decoded, not the current one, so the decoder holds it
// until that click materializes.
type trainInfo struct {
	trainID      int
	species      string
	qualityLevel int
	echo         bool
}

// fpodDecoder is the record state machine for the FPOD family. Blocks are
// classified by their first byte; train and waveform blocks describe the
// click that follows them in the stream.
type fpodDecoder struct {
	f          format.Format
	recordSize int
	picVer     uint8
}

func (d *fpodDecoder) run(r io.Reader, ds *core.Dataset) error {
	buf := make([]byte, d.recordSize)

	currentClick := -1
	currentMin := -1
	var pendingTrain *trainInfo
	var waves waveAccumulator

	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return err
		}

		switch classifyFPOD(buf) {
		case blockClick:
			currentClick++
			c := core.Click{
				Minute:       currentMin,
				ClickNo:      currentClick + 1,
				Microsec:     microsec(buf),
				NCyc:         int(buf[3]),
				PkAt:         int(buf[4]&0xF0) >> 4,
				IPIRange:     ipiRange(buf[4] & 0xF),
				IPIPreMax:    int(buf[5]) + 1,
				IPIAtMax:     int(buf[6]) + 1,
				AmpAtMax:     max(2, int(buf[10])),
				AmpReversals: int(buf[13] & 15),
				// integer division; a derived duration code, not seconds
				Duration: float64((int(buf[13]&240)*16 + int(buf[14])) / 5),
			}
			if pendingTrain != nil {
				c.TrainID = pendingTrain.trainID
				c.Species = pendingTrain.species
				c.QualityLevel = pendingTrain.qualityLevel
				c.Echo = pendingTrain.echo
				pendingTrain = nil
			}
			c.HasWav = waves.clickDecoded()
			ds.Clicks = append(ds.Clicks, c)

		case blockTrain:
			pendingTrain = &trainInfo{
				trainID:      int(buf[15]),
				species:      format.SpeciesFromCode((buf[14]>>2)&3, d.f),
				qualityLevel: int(buf[14] & 3),
				echo:         buf[14]&32 == 32,
			}

		case blockWave:
			// keyed by click number, not index, of the next click
			waves.add(currentClick+2, waveformChunk(buf))

		case blockMinute:
			currentMin++
			env := core.EnvSample{
				Minute:   currentMin + 1,
				TempDegC: int(buf[7]),
			}
			// Firmware before version 28 used a shifted battery-byte
			// layout; the guard distinguishes it from the current one.
			if d.picVer < 28 && buf[11] == 0 && buf[13] != 0 {
				env.Bat1 = int(buf[12])
				env.Bat2 = int(buf[13])
			} else {
				env.Bat1 = int(buf[11])
				env.Bat2 = int(buf[12])
			}
			ds.Env = append(ds.Env, env)

		case blockUnknown:
			// consumed, no record produced
		}
	}

	ds.Waves = waves.series
	return nil
}

// ipiRange decodes the inter-pulse-interval range class from the low
// nibble of byte 4.
func ipiRange(nibble uint8) int {
	switch {
	case nibble == 15:
		return 65
	case nibble&0x8 == 0x8:
		return int((nibble&0x7)+1) << 3
	default:
		return int(nibble & 0x7)
	}
}

// microsec converts the 24-bit tick counter at the start of a block to the
// microsecond offset within the current minute (5 us ticks).
func microsec(buf []byte) int {
	return int(float64(bigEndian(buf, 0, 3)) / 200.0 * 1000.0)
}
