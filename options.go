package bikescaper

import (
	"time"

	"github.com/RolandGoud/bikescaper/pkg/errors"
)

// config holds the tracker configuration assembled from options.
type config struct {
	dataDir     string
	archiveDirs []string
	clock       func() time.Time
	keepHistory bool
	sidecar     bool
	reports     bool
}

func defaultConfig() *config {
	return &config{
		dataDir:     "data",
		clock:       time.Now,
		keepHistory: true,
		sidecar:     true,
		reports:     true,
	}
}

func (c *config) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Option is a function that configures a Tracker instance.
type Option func(*config) error

// WithDataDir sets the root data directory.
func WithDataDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return &errors.ValidationError{
				Field:   "dataDir",
				Message: "cannot be empty",
			}
		}
		c.dataDir = dir
		return nil
	}
}

// WithArchiveDirs overrides the directories searched for archive
// candidates.
func WithArchiveDirs(dirs ...string) Option {
	return func(c *config) error {
		c.archiveDirs = dirs
		return nil
	}
}

// WithClock sets the time source.
func WithClock(clock func() time.Time) Option {
	return func(c *config) error {
		if clock == nil {
			return &errors.ValidationError{
				Field:   "clock",
				Message: "cannot be nil",
			}
		}
		c.clock = clock
		return nil
	}
}

// WithHistory controls whether current snapshots are retained as
// historical copies after each update.
func WithHistory(enabled bool) Option {
	return func(c *config) error {
		c.keepHistory = enabled
		return nil
	}
}

// WithSidecar controls whether the structured master sidecar is written.
func WithSidecar(enabled bool) Option {
	return func(c *config) error {
		c.sidecar = enabled
		return nil
	}
}

// WithReports controls whether updates also regenerate status reports.
func WithReports(enabled bool) Option {
	return func(c *config) error {
		c.reports = enabled
		return nil
	}
}
