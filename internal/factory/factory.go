package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/soccermanager/internal/services/roster"
	"github.com/mcoot/soccermanager/internal/services/validation"
	"github.com/mcoot/soccermanager/internal/storage"
	"github.com/mcoot/soccermanager/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	Logger *slog.Logger

	// Storage
	Storage storage.Store

	// Services
	Validator validation.Validator
	Roster    *roster.Service
	// SharedRoster guards Roster for concurrent callers such as the HTTP API
	SharedRoster *roster.Synchronized
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Validator overrides the create-time rules (optional)
	// If nil, validation.NewCreateValidator() is used
	Validator validation.Validator
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	validator := cfg.Validator
	if validator == nil {
		validator = validation.NewCreateValidator()
	}

	return newWithDependencies(memory.New(), validator, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, validator validation.Validator, logger *slog.Logger) *App {
	rosterService := roster.NewWithStore(store, validator, logger)

	return &App{
		Logger:       logger,
		Storage:      store,
		Validator:    validator,
		Roster:       rosterService,
		SharedRoster: roster.NewSynchronized(rosterService),
	}
}
