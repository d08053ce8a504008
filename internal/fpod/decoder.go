package fpod

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/podtools/podscan/internal/format"
	"github.com/podtools/podscan/pkg/core"
)

// Source is the byte source a decode consumes: sequential reads, a total
// size for pre-sizing the output, and a filename whose extension selects
// the format variant.
type Source interface {
	io.Reader
	Size() int64
	Filename() string
}

type fileSource struct {
	*os.File
	size int64
	name string
}

func (s *fileSource) Size() int64      { return s.size }
func (s *fileSource) Filename() string { return s.name }

// Open opens a recording file as a Source.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to stat file %s: %w", path, err)
	}
	return &fileSource{File: f, size: info.Size(), name: path}, nil
}

// Decoder decodes CPOD/FPOD recording files. Each Decode call owns its own
// state machine and output buffers, so one Decoder may be shared across
// goroutines decoding different files.
type Decoder struct {
	logger *slog.Logger
}

// NewDecoder creates a decoder with only a logger dependency.
func NewDecoder(logger *slog.Logger) *Decoder {
	return &Decoder{logger: logger}
}

// DecodeFile opens and decodes a recording file.
func (d *Decoder) DecodeFile(path string) (*core.Dataset, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if c, ok := src.(io.Closer); ok {
			c.Close()
		}
	}()
	return d.Decode(src)
}

// Decode reads the header block and then consumes the remainder of the
// source block by block, returning the assembled dataset. Truncation mid
// record is a clean end of stream; everything decoded so far is kept.
func (d *Decoder) Decode(src Source) (*core.Dataset, error) {
	f, err := format.FromFilename(src.Filename())
	if err != nil {
		return nil, err
	}
	headerSize, recordSize := f.Sizes()

	hbuf := make([]byte, headerSize)
	if _, err := io.ReadFull(src, hbuf); err != nil {
		return nil, fmt.Errorf("unable to read header from %s: %w", src.Filename(), err)
	}

	// upper bound; train/wave/minute blocks interspersed among clicks make
	// the real count lower
	maxClicks := (src.Size() - int64(headerSize)) / int64(recordSize)
	if maxClicks < 0 {
		maxClicks = 0
	}

	ds := &core.Dataset{
		Clicks: make([]core.Click, 0, maxClicks),
	}

	switch f.Family() {
	case format.FamilyCPOD:
		ds.Header = decodeCPODHeader(hbuf, f)
		err = (&cpodDecoder{f: f, recordSize: recordSize}).run(src, ds)
	default:
		ds.Header = decodeFPODHeader(hbuf, f)
		err = (&fpodDecoder{f: f, recordSize: recordSize, picVer: ds.Header.PicVer}).run(src, ds)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", src.Filename(), err)
	}

	ds.Header.Filename = src.Filename()

	d.logger.Debug("Decoded recording",
		"file", src.Filename(),
		"format", string(f),
		"clicks", len(ds.Clicks),
		"minutes", len(ds.Env),
		"waveSeries", len(ds.Waves))

	return ds, nil
}
