// pkg/core holds the decoded data model shared by the decoder and the
// storage backends. Types here are plain values with no storage or GIS
// dependencies.
package core

// Header is the decoded file header. Text fields are copied byte-for-byte
// from their fixed-width header ranges, trailing padding included; callers
// that want trimmed values must trim their own copies.
type Header struct {
	Format   string `json:"format"`
	Filename string `json:"filename"`

	// PodID is the pod identifier: a 4-byte text field for CPOD files,
	// the decimal pod number for FPOD files.
	PodID     string `json:"podId"`
	PodNumber int    `json:"podNumber,omitempty"` // FPOD only

	FirstLoggedMin int32 `json:"firstLoggedMin"`
	LastLoggedMin  int32 `json:"lastLoggedMin"`

	WaterDepth      uint16 `json:"waterDepth"`
	DeploymentDepth uint16 `json:"deploymentDepth"`

	LatText      string `json:"latText"`
	LonText      string `json:"lonText"`
	LocationText string `json:"locationText"`
	NotesText    string `json:"notesText"`
	GMTText      string `json:"gmtText,omitempty"` // FPOD only

	PicVer       uint8  `json:"picVer,omitempty"`  // FPOD processor version
	FpgaVer      uint16 `json:"fpgaVer,omitempty"` // FPOD FPGA version
	ExtendedAmps bool   `json:"extendedAmps"`

	// PriorClicks is the total click count carried over from the raw
	// recording, present only in CP3/FP3 files.
	PriorClicks    uint64 `json:"priorClicks,omitempty"`
	HasPriorClicks bool   `json:"-"`
}

// Click is a single detected acoustic transient event.
type Click struct {
	Minute   int `json:"minute"`   // -1 before the first minute marker
	Microsec int `json:"microsec"` // offset within the minute
	ClickNo  int `json:"clickNo"`  // 1-based sequence number

	// Train annotation (CP3/FP3 only; zero values otherwise).
	TrainID      int    `json:"trainId"`
	Species      string `json:"species"`
	QualityLevel int    `json:"qualityLevel"`
	Echo         bool   `json:"echo"`

	NCyc         int     `json:"ncyc"`
	PkAt         int     `json:"pkat"`
	IPIRange     int     `json:"clkIpiRange"`
	IPIPreMax    int     `json:"ipiPreMax"`
	IPIAtMax     int     `json:"ipiAtMax"`
	KHz          int     `json:"khz"`
	AmpAtMax     int     `json:"ampAtMax"`
	AmpReversals int     `json:"ampReversals"`
	Duration     float64 `json:"duration"`
	HasWav       bool    `json:"hasWav"`
}

// WaveformChunkSamples is the number of (IPI, SPL) pairs in one waveform
// record.
const WaveformChunkSamples = 7

// WaveformChunk holds the sample pairs extracted from one waveform record.
type WaveformChunk struct {
	IPI [WaveformChunkSamples]uint8 `json:"ipi"`
	SPL [WaveformChunkSamples]uint8 `json:"spl"`
}

// WaveformSeries collects the waveform chunks recorded for one click.
// ClickNo is the 1-based number of the click the snippet belongs to; the
// device transmits waveform records before the click they describe, so the
// referenced click may not exist if the stream was truncated.
type WaveformSeries struct {
	ClickNo int             `json:"clickNo"`
	Chunks  []WaveformChunk `json:"chunks"`
}

// WaveformSample is one flattened (click, IPI, SPL) row.
type WaveformSample struct {
	ClickNo int `json:"clickNo"`
	IPI     int `json:"ipi"`
	SPL     int `json:"spl"`
}

// EnvSample is one environmental reading, taken at each minute marker.
type EnvSample struct {
	Minute   int `json:"minute"` // 1-based
	TempDegC int `json:"degC"`
	Bat1     int `json:"bat1v"`
	Bat2     int `json:"bat2v"`
}

// Dataset is the complete decoded content of one recording file.
type Dataset struct {
	Header Header           `json:"header"`
	Clicks []Click          `json:"clicks"`
	Env    []EnvSample      `json:"env,omitempty"`
	Waves  []WaveformSeries `json:"wav,omitempty"`
}

// FlattenWaves flattens the waveform series into (click, IPI, SPL) rows.
// Within each series the chunks are traversed in reverse insertion order,
// preserving each chunk's internal pair order; that is the device's
// chronological transmission order and a compatibility contract for
// downstream consumers.
func (d *Dataset) FlattenWaves() []WaveformSample {
	var n int
	for i := range d.Waves {
		n += len(d.Waves[i].Chunks) * WaveformChunkSamples
	}
	out := make([]WaveformSample, 0, n)
	for i := range d.Waves {
		w := &d.Waves[i]
		for c := len(w.Chunks) - 1; c >= 0; c-- {
			chunk := &w.Chunks[c]
			for j := 0; j < WaveformChunkSamples; j++ {
				out = append(out, WaveformSample{
					ClickNo: w.ClickNo,
					IPI:     int(chunk.IPI[j]),
					SPL:     int(chunk.SPL[j]),
				})
			}
		}
	}
	return out
}
