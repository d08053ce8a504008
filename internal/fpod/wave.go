package fpod

import "github.com/podtools/podscan/pkg/core"

// waveformChunk extracts the 7 (IPI, SPL) sample pairs from a waveform
// record. Pairs are stored back-to-front in the block, so extraction walks
// the byte offsets in descending order; the resulting in-chunk order is a
// compatibility contract.
func waveformChunk(buf []byte) core.WaveformChunk {
	var c core.WaveformChunk
	i := 0
	for pos := 12; pos >= 0; pos -= 2 {
		c.IPI[i] = buf[pos+1]
		c.SPL[i] = buf[pos+2]
		i++
	}
	return c
}

// waveAccumulator collects waveform chunks for the next click to be
// decoded. Waveform records physically precede the click they describe; a
// series is opened on the first record seen for a click and every further
// record appends a chunk to it, until the click materializes and the
// accumulator is rearmed.
type waveAccumulator struct {
	series []core.WaveformSeries
	open   bool
}

// add appends a chunk for the click with the given 1-based number, opening
// a new series if none is pending.
func (a *waveAccumulator) add(clickNo int, chunk core.WaveformChunk) {
	if !a.open {
		a.open = true
		a.series = append(a.series, core.WaveformSeries{ClickNo: clickNo})
	}
	last := &a.series[len(a.series)-1]
	last.Chunks = append(last.Chunks, chunk)
}

// clickDecoded tells the accumulator its pending click has materialized.
// It reports whether that click has waveform data and rearms for the next
// one. A series whose click never materializes stays in the output keyed
// by its forward-referencing click number.
func (a *waveAccumulator) clickDecoded() bool {
	had := a.open
	a.open = false
	return had
}
