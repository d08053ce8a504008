package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenWavesReversesChunkOrder(t *testing.T) {
	chunk := func(fill uint8) WaveformChunk {
		var c WaveformChunk
		for i := range c.IPI {
			c.IPI[i] = fill
			c.SPL[i] = fill + 100
		}
		return c
	}

	ds := &Dataset{
		Waves: []WaveformSeries{
			{ClickNo: 4, Chunks: []WaveformChunk{chunk(1), chunk(2), chunk(3)}},
			{ClickNo: 9, Chunks: []WaveformChunk{chunk(7)}},
		},
	}

	flat := ds.FlattenWaves()
	require.Len(t, flat, 4*WaveformChunkSamples)

	// chunks for one click flatten last-appended first
	assert.Equal(t, 3, flat[0].IPI)
	assert.Equal(t, 103, flat[0].SPL)
	assert.Equal(t, 2, flat[7].IPI)
	assert.Equal(t, 1, flat[14].IPI)

	for _, s := range flat[:21] {
		assert.Equal(t, 4, s.ClickNo)
	}
	for _, s := range flat[21:] {
		assert.Equal(t, 9, s.ClickNo)
		assert.Equal(t, 7, s.IPI)
	}
}

func TestFlattenWavesEmpty(t *testing.T) {
	ds := &Dataset{}
	assert.Empty(t, ds.FlattenWaves())
}
