package app

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"FormationImporter/internal/config"
	"FormationImporter/internal/infrastructure/reader"
	"FormationImporter/internal/infrastructure/storage"
	"FormationImporter/internal/logging"
	"FormationImporter/internal/ports"
	"FormationImporter/internal/source"
	"FormationImporter/internal/usecase"
)

// Application wires configuration to sources, store, and import jobs.
type Application struct {
	cfg     config.Config
	logger  *slog.Logger
	store   ports.EntityStore
	sources *source.Registry
	db      *sql.DB
}

// Options tunes the wiring.
type Options struct {
	// DryRun swaps the Postgres store for an in-memory one; nothing is
	// persisted beyond the process.
	DryRun bool

	// Delimiter forces the CSV field delimiter; zero means auto-detect.
	Delimiter rune
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger, opts Options) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	app := &Application{cfg: cfg, logger: baseLogger}

	registry := source.NewRegistry()
	registry.Register(&reader.CSVSource{Delimiter: opts.Delimiter})
	registry.Register(&reader.XLSXSource{})
	app.sources = registry

	switch {
	case opts.DryRun:
		app.store = storage.NewMemoryStore()
	case cfg.Database.DSN == "":
		return nil, fmt.Errorf("database DSN is not configured (set DATABASE_DSN or use --dry-run)")
	default:
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		app.db = db
		app.store = storage.NewPostgresStore(db)
	}

	return app, nil
}

// Sources exposes the input-format registry.
func (a *Application) Sources() *source.Registry {
	return a.sources
}

// NewJob builds an import job for the named profile.
func (a *Application) NewJob(profileName string, progress ports.ProgressFunc) (*usecase.Job, error) {
	profile, err := usecase.NewProfile(profileName, a.cfg.Imports)
	if err != nil {
		return nil, err
	}

	return usecase.NewJob(usecase.JobDeps{
		Profile:  profile,
		Store:    a.store,
		Progress: progress,
		Logger:   a.logger.With("component", "importer", "profile", profileName),
	}), nil
}

// Close releases the database handle, if any.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
