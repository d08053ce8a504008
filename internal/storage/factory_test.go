package storage

import (
	"testing"

	"github.com/podtools/podscan/internal/config"
	"github.com/podtools/podscan/internal/storage/db"
	"github.com/podtools/podscan/internal/storage/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackend_Memory(t *testing.T) {
	b, err := NewBackend(config.StorageConfig{Type: "memory"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &memory.Backend{}, b)
}

func TestNewBackend_Database(t *testing.T) {
	b, err := NewBackend(config.StorageConfig{Type: "database"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &db.Backend{}, b)
}

func TestNewBackend_Unknown(t *testing.T) {
	_, err := NewBackend(config.StorageConfig{Type: "csv"}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage type")
}
