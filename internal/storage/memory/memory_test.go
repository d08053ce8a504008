package memory

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/podtools/podscan/internal/config"
	"github.com/podtools/podscan/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset(filename string) *core.Dataset {
	return &core.Dataset{
		Header: core.Header{
			Format:   "CP1",
			Filename: filename,
			PodID:    "0417",
		},
		Clicks: []core.Click{
			{Minute: 0, Microsec: 1000, ClickNo: 1, NCyc: 8, KHz: 130},
		},
	}
}

func TestStoreDataset_WritesGzipExport(t *testing.T) {
	dir := t.TempDir()
	b := New(config.MemoryConfig{OutputDir: dir, CompressOutput: true})
	require.NoError(t, b.Init())
	defer b.Close()

	require.NoError(t, b.StoreDataset(sampleDataset("site_a.CP1")))

	path := filepath.Join(dir, "site_a.CP1.json.gz")
	assert.Equal(t, path, b.LastExportPath())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gz.Close()

	var got core.Dataset
	require.NoError(t, json.NewDecoder(gz).Decode(&got))
	assert.Equal(t, "0417", got.Header.PodID)
	require.Len(t, got.Clicks, 1)
	assert.Equal(t, 1000, got.Clicks[0].Microsec)
}

func TestStoreDataset_WritesPlainExport(t *testing.T) {
	dir := t.TempDir()
	b := New(config.MemoryConfig{OutputDir: dir, CompressOutput: false})

	require.NoError(t, b.StoreDataset(sampleDataset("site_b.FP1")))

	data, err := os.ReadFile(filepath.Join(dir, "site_b.FP1.json"))
	require.NoError(t, err)

	var got core.Dataset
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "site_b.FP1", got.Header.Filename)
}

func TestStoreDataset_SanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	b := New(config.MemoryConfig{OutputDir: dir, CompressOutput: false})

	require.NoError(t, b.StoreDataset(sampleDataset("/data/pods/my deployment.CP3")))
	assert.Equal(t, filepath.Join(dir, "my_deployment.CP3.json"), b.LastExportPath())
}

func TestStoreDataset_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	b := New(config.MemoryConfig{OutputDir: dir, CompressOutput: false})

	require.NoError(t, b.StoreDataset(sampleDataset("x.CP1")))
	_, err := os.Stat(filepath.Join(dir, "x.CP1.json"))
	assert.NoError(t, err)
}

func TestDatasets_ReturnsStored(t *testing.T) {
	b := New(config.MemoryConfig{OutputDir: t.TempDir(), CompressOutput: false})

	require.NoError(t, b.StoreDataset(sampleDataset("a.CP1")))
	require.NoError(t, b.StoreDataset(sampleDataset("b.CP1")))

	got := b.Datasets()
	require.Len(t, got, 2)
	assert.Equal(t, "a.CP1", got[0].Header.Filename)
	assert.Equal(t, "b.CP1", got[1].Header.Filename)
}
