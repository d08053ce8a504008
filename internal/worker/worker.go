// Package worker decodes recording files concurrently and hands each
// result to the storage backend.
package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/podtools/podscan/internal/fpod"
	"github.com/podtools/podscan/internal/storage"
	"github.com/podtools/podscan/pkg/core"
)

// Result is the outcome of decoding and storing one file.
type Result struct {
	Path    string
	Dataset *core.Dataset
	Err     error
}

// Manager fans file paths out to a fixed pool of decode workers.
// Files are independent, so decode order does not matter; backends
// serialize their own writes.
type Manager struct {
	decoder *fpod.Decoder
	backend storage.Backend
	logger  *slog.Logger
	workers int
}

// NewManager creates a worker manager with the given pool size.
func NewManager(decoder *fpod.Decoder, backend storage.Backend, logger *slog.Logger, workers int) *Manager {
	if workers < 1 {
		workers = 1
	}
	return &Manager{
		decoder: decoder,
		backend: backend,
		logger:  logger,
		workers: workers,
	}
}

// Run decodes all paths and returns one result per input, in completion
// order. A canceled context stops workers from picking up further files;
// files already in flight finish normally.
func (m *Manager) Run(ctx context.Context, paths []string) []Result {
	jobs := make(chan string)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < m.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- m.process(path)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result, 0, len(paths))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func (m *Manager) process(path string) Result {
	ds, err := m.decoder.DecodeFile(path)
	if err != nil {
		m.logger.Error("Failed to decode file", "path", path, "error", err)
		return Result{Path: path, Err: err}
	}

	m.logger.Info("Decoded file",
		"path", path,
		"format", ds.Header.Format,
		"clicks", len(ds.Clicks),
		"envSamples", len(ds.Env),
		"waveSeries", len(ds.Waves),
	)

	if err := m.backend.StoreDataset(ds); err != nil {
		m.logger.Error("Failed to store dataset", "path", path, "error", err)
		return Result{Path: path, Dataset: ds, Err: err}
	}

	return Result{Path: path, Dataset: ds}
}
