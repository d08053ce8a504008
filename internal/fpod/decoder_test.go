package fpod

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSource struct {
	*bytes.Reader
	size int64
	name string
}

func (m *memSource) Size() int64      { return m.size }
func (m *memSource) Filename() string { return m.name }

func newMemSource(name string, parts ...[]byte) *memSource {
	b := bytes.Join(parts, nil)
	return &memSource{Reader: bytes.NewReader(b), size: int64(len(b)), name: name}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeUnknownExtension(t *testing.T) {
	d := NewDecoder(testLogger())
	_, err := d.Decode(newMemSource("recording.wav", make([]byte, 2048)))
	require.Error(t, err)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	d := NewDecoder(testLogger())
	_, err := d.Decode(newMemSource("short.FP1", make([]byte, 100)))
	require.Error(t, err)
}

func TestDecodeEndToEndCPOD(t *testing.T) {
	d := NewDecoder(testLogger())

	ds, err := d.Decode(newMemSource("pod.CP1",
		make([]byte, 360),
		cp1Click(200, 8, 130),
		cp1Terminator(),
		cp1Terminator(),
	))
	require.NoError(t, err)

	assert.Equal(t, "CP1", ds.Header.Format)
	assert.Equal(t, "pod.CP1", ds.Header.Filename)
	require.Len(t, ds.Clicks, 1)
}

func TestDecodeEndToEndFPOD(t *testing.T) {
	hdr := make([]byte, 1024)
	hdr[3], hdr[4] = 0, 42 // pod 42
	hdr[37] = 30           // processor version, current battery layout

	d := NewDecoder(testLogger())
	ds, err := d.Decode(newMemSource("pod.FP3",
		hdr,
		fp3Minute(11, 90, 85, 0),
		fp3Click(200),
		fp3Train(5, 1<<2|2),
		fp3Click(400),
	))
	require.NoError(t, err)

	assert.Equal(t, 42, ds.Header.PodNumber)
	require.Len(t, ds.Clicks, 2)
	assert.Equal(t, 5, ds.Clicks[1].TrainID)
	assert.Equal(t, "OtherCet", ds.Clicks[1].Species)
	require.Len(t, ds.Env, 1)
	assert.Equal(t, 90, ds.Env[0].Bat1)
	assert.Equal(t, 85, ds.Env[0].Bat2)
}

func TestDecodeIdempotent(t *testing.T) {
	parts := [][]byte{
		make([]byte, 1024),
		fp3Minute(10, 90, 85, 0),
		fp3Wave(1),
		fp3Click(100),
		fp3Train(3, 1),
		fp3Click(200),
	}

	d := NewDecoder(testLogger())
	first, err := d.Decode(newMemSource("pod.FP3", parts...))
	require.NoError(t, err)
	second, err := d.Decode(newMemSource("pod.FP3", parts...))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deploy.FP1")
	content := bytes.Join([][]byte{
		make([]byte, 1024),
		fp3Minute(10, 90, 85, 0),
		fp3Click(100),
	}, nil)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	d := NewDecoder(testLogger())
	ds, err := d.DecodeFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, ds.Header.Filename)
	require.Len(t, ds.Clicks, 1)
	require.Len(t, ds.Env, 1)
}

func TestDecodeFileMissing(t *testing.T) {
	d := NewDecoder(testLogger())
	_, err := d.DecodeFile(filepath.Join(t.TempDir(), "nope.CP1"))
	require.Error(t, err)
}
