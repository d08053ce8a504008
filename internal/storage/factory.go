// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/podtools/podscan/internal/config"
	"github.com/podtools/podscan/internal/storage/db"
	"github.com/podtools/podscan/internal/storage/memory"
	"github.com/rs/zerolog"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "database":
		return db.New(log), nil
	case "memory":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
