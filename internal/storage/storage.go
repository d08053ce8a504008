// internal/storage/storage.go
package storage

import "github.com/podtools/podscan/pkg/core"

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// StoreDataset persists one fully decoded recording.
	StoreDataset(ds *core.Dataset) error
}

// Exportable is an optional interface for storage backends that write
// result files to disk.
type Exportable interface {
	LastExportPath() string
}
