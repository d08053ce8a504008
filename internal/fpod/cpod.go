package fpod

import (
	"io"

	"github.com/podtools/podscan/internal/format"
	"github.com/podtools/podscan/pkg/core"
)

// cpodDecoder is the record state machine for the CPOD family. Blocks are
// classified by their last byte; the end of the data region is signalled by
// two consecutive terminator blocks rather than by file length.
type cpodDecoder struct {
	f          format.Format
	recordSize int
}

func (d *cpodDecoder) run(r io.Reader, ds *core.Dataset) error {
	buf := make([]byte, d.recordSize)

	// starting at -1 makes the first click/minute increment land on 0
	currentClick := -1
	currentMin := -1
	fileEnds := 0

	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				// truncated tail, clean end of stream
				break
			}
			return err
		}

		// Two consecutive terminator blocks end the data region. The first
		// one still falls through and is decoded as a click, matching the
		// recorded files' established read behavior; the final truncation
		// below drops it again.
		if isTerminator(buf) {
			fileEnds++
			if fileEnds == 2 {
				break
			}
		} else {
			fileEnds = 0
		}

		switch classifyCPOD(buf) {
		case blockMinute:
			currentMin++

		case blockClick:
			currentClick++
			c := core.Click{
				Minute:   currentMin,
				ClickNo:  currentClick + 1,
				Microsec: microsec(buf),
				NCyc:     int(buf[3]),
				KHz:      int(buf[5]),
				AmpAtMax: int(buf[5]),
			}
			if buf[5] > 0 {
				c.Duration = float64(buf[3]) / float64(buf[5])
			}
			if d.f == format.CP3 {
				c.TrainID = int(buf[39])
				c.Species = format.SpeciesFromCode(buf[36]>>3, d.f)
				c.QualityLevel = int(buf[36] & 3)
			}
			ds.Clicks = append(ds.Clicks, c)
		}
	}

	// The reported click count is one short of the last decoded index; in a
	// well-formed file the dropped record is the first terminator block.
	if len(ds.Clicks) > 0 {
		ds.Clicks = ds.Clicks[:len(ds.Clicks)-1]
	}
	return nil
}
