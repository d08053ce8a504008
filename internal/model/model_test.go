package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "recordings", (&Recording{}).TableName())
	assert.Equal(t, "clicks", (&Click{}).TableName())
	assert.Equal(t, "waveform_samples", (&WaveformSample{}).TableName())
	assert.Equal(t, "env_samples", (&EnvSample{}).TableName())
}

func TestDatabaseModelsCoverAllTables(t *testing.T) {
	assert.Len(t, DatabaseModels, 4)
}
