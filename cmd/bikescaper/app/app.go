// Package app provides the application context and dependency management
// for the bikescaper CLI. It centralizes configuration, logging, and the
// tracker instance behind a single App type that commands pull their
// dependencies from.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	bikescaper "github.com/RolandGoud/bikescaper"
)

// App represents the bikescaper application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Tracker instance (lazy-initialized, singleton)
	mu      sync.RWMutex
	tracker bikescaper.Tracker
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Tracker returns the tracker instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Tracker() (bikescaper.Tracker, error) {
	a.mu.RLock()
	if a.tracker != nil {
		tracker := a.tracker
		a.mu.RUnlock()
		return tracker, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.tracker != nil {
		return a.tracker, nil
	}

	tracker, err := bikescaper.New(a.buildTrackerOptions()...)
	if err != nil {
		return nil, err
	}

	a.tracker = tracker
	return tracker, nil
}

// buildTrackerOptions constructs tracker options from the app configuration.
func (a *App) buildTrackerOptions() []bikescaper.Option {
	opts := []bikescaper.Option{
		bikescaper.WithDataDir(a.config.DataDir),
		bikescaper.WithReports(a.config.Reports),
		bikescaper.WithHistory(a.config.History),
		bikescaper.WithSidecar(a.config.Sidecar),
	}
	if len(a.config.ArchiveDirs) > 0 {
		opts = append(opts, bikescaper.WithArchiveDirs(a.config.ArchiveDirs...))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithTracker sets a custom tracker instance (useful for testing).
func WithTracker(tracker bikescaper.Tracker) Option {
	return func(a *App) error {
		a.tracker = tracker
		return nil
	}
}
