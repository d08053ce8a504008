// podscan decodes CPOD/FPOD click-detector recordings and stores the
// results in the configured backend.
//
// Usage:
//
//	podscan decode <file>...
//	podscan setupdb
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/podtools/podscan/internal/config"
	"github.com/podtools/podscan/internal/fpod"
	"github.com/podtools/podscan/internal/influx"
	"github.com/podtools/podscan/internal/logging"
	"github.com/podtools/podscan/internal/otel"
	"github.com/podtools/podscan/internal/storage"
	"github.com/podtools/podscan/internal/worker"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: podscan decode <file>... | podscan setupdb")
	}

	if err := config.Load("."); err != nil {
		// defaults still apply without a config file
		fmt.Fprintln(os.Stderr, err)
	}

	app, err := setup()
	if err != nil {
		return err
	}
	defer app.shutdown()

	switch strings.ToLower(args[0]) {
	case "decode":
		if len(args) < 2 {
			return fmt.Errorf("no input files provided")
		}
		return app.decode(args[1:])
	case "setupdb":
		return app.setupDB()
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

type application struct {
	logManager   *logging.SlogManager
	otelProvider *otel.Provider
	logFile      *os.File
	backend      storage.Backend
	influx       *influx.Manager
	zlog         zerolog.Logger
}

// setup wires logging, OTel, storage and the optional InfluxDB client
// from configuration.
func setup() (*application, error) {
	app := &application{
		logManager: logging.NewSlogManager(),
	}

	sessionStart := time.Now()
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := logging.LogFilePath(logsDir, "podscan", sessionStart)
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	app.logFile = logFile

	otelCfg := config.GetOTelConfig()
	app.otelProvider, err = otel.New(otel.Config{
		Enabled:      otelCfg.Enabled,
		ServiceName:  otelCfg.ServiceName,
		BatchTimeout: otelCfg.BatchTimeout,
		LogWriter:    logFile,
		Endpoint:     otelCfg.Endpoint,
		Insecure:     otelCfg.Insecure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OTel: %w", err)
	}

	app.logManager.Setup(logFile, config.GetString("logLevel"), app.otelProvider.LoggerProvider())

	app.zlog = zerolog.New(logFile).With().Timestamp().Logger()

	app.backend, err = storage.NewBackend(config.GetStorageConfig(), app.zlog)
	if err != nil {
		return nil, err
	}
	if err := app.backend.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage backend: %w", err)
	}

	if config.GetBool("influx.enabled") {
		backupPath := logging.LogFilePath(logsDir, "podscan.influx_backup", sessionStart) + ".gz"
		app.influx = influx.NewManager(app.zlog, backupPath)
		if err := app.influx.Connect(); err != nil {
			app.logManager.Logger().Warn("InfluxDB unavailable", "error", err)
			app.influx = nil
		}
	}

	return app, nil
}

func (app *application) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.backend != nil {
		if err := app.backend.Close(); err != nil {
			app.logManager.Logger().Error("Failed to close storage backend", "error", err)
		}
	}
	_ = app.logManager.Flush(ctx)
	if app.otelProvider != nil {
		_ = app.otelProvider.Shutdown(ctx)
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}

// decode runs the decoder pool over the input files and stores the
// results.
func (app *application) decode(paths []string) error {
	logger := app.logManager.Logger()
	pool := worker.NewManager(fpod.NewDecoder(logger), app.backend, logger, runtime.NumCPU())

	start := time.Now()
	results := pool.Run(context.Background(), paths)

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		if app.influx != nil {
			if err := app.influx.WriteDataset(context.Background(), r.Dataset, start); err != nil {
				logger.Warn("Failed to write InfluxDB points", "path", r.Path, "error", err)
			}
		}
	}

	if exp, ok := app.backend.(storage.Exportable); ok && exp.LastExportPath() != "" {
		logger.Info("Wrote exports", "lastPath", exp.LastExportPath())
	}
	logger.Info("Finished", "files", len(paths), "failed", failed, "duration", time.Since(start))

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

// setupDB connects to the configured database and migrates the schema.
func (app *application) setupDB() error {
	cfg := config.GetStorageConfig()
	if cfg.Type != "database" {
		return fmt.Errorf("storage.type is %q, setupdb requires \"database\"", cfg.Type)
	}
	// Init already connected and migrated; report where we ended up.
	app.logManager.Logger().Info("Database schema ready",
		"host", viper.GetString("db.host"),
		"database", viper.GetString("db.database"),
	)
	return nil
}
