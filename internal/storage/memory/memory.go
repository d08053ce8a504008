// internal/storage/memory/memory.go
package memory

import (
	"sync"

	"github.com/podtools/podscan/internal/config"
	"github.com/podtools/podscan/pkg/core"
)

// Backend keeps decoded recordings in memory and exports each one to a
// JSON file as it is stored.
type Backend struct {
	cfg      config.MemoryConfig
	datasets []*core.Dataset

	lastExportPath string
	mu             sync.Mutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// StoreDataset keeps the dataset and writes its JSON export.
func (b *Backend) StoreDataset(ds *core.Dataset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.datasets = append(b.datasets, ds)
	return b.exportJSON(ds)
}

// Datasets returns all recordings stored so far.
func (b *Backend) Datasets() []*core.Dataset {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*core.Dataset, len(b.datasets))
	copy(out, b.datasets)
	return out
}

// LastExportPath returns the path of the most recently written export file.
func (b *Backend) LastExportPath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastExportPath
}
