// internal/storage/db/db.go
package db

import (
	"fmt"

	"github.com/podtools/podscan/internal/database"
	"github.com/podtools/podscan/internal/model/convert"
	"github.com/podtools/podscan/pkg/core"
	"github.com/rs/zerolog"
)

// Backend persists decoded recordings through the database manager.
type Backend struct {
	manager *database.Manager
	log     zerolog.Logger
}

// New creates a database-backed storage backend.
func New(log zerolog.Logger) *Backend {
	return &Backend{
		manager: database.NewManager(log),
		log:     log,
	}
}

// Init connects to the database and migrates the schema.
func (b *Backend) Init() error {
	if err := b.manager.Connect(); err != nil {
		return err
	}
	return b.manager.Setup()
}

// Close releases the underlying connection pool.
func (b *Backend) Close() error {
	if b.manager.SqlDB != nil {
		return b.manager.SqlDB.Close()
	}
	return nil
}

// StoreDataset writes the recording row and its click, waveform and
// environmental rows.
func (b *Backend) StoreDataset(ds *core.Dataset) error {
	rec, err := convert.RecordingFromDataset(ds)
	if err != nil {
		return err
	}
	if err := b.manager.DB.Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to store recording: %w", err)
	}

	if rows := convert.ClicksFromDataset(ds, rec.ID); len(rows) > 0 {
		if err := b.manager.DB.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to store clicks: %w", err)
		}
	}

	if rows := convert.WaveformSamplesFromDataset(ds, rec.ID); len(rows) > 0 {
		if err := b.manager.DB.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to store waveform samples: %w", err)
		}
	}

	if rows := convert.EnvSamplesFromDataset(ds, rec.ID); len(rows) > 0 {
		if err := b.manager.DB.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to store env samples: %w", err)
		}
	}

	b.log.Info().
		Str("filename", ds.Header.Filename).
		Int("clicks", len(ds.Clicks)).
		Int("envSamples", len(ds.Env)).
		Msg("Stored recording")
	return nil
}
