package reconciler

import (
	"time"

	"github.com/RolandGoud/bikescaper/pkg/errors"
)

// options configures a reconciler.
type options struct {
	dataDir     string
	archiveDirs []string
	clock       func() time.Time
	keepHistory bool
	sidecar     bool
}

func defaultOptions() *options {
	return &options{
		dataDir:     "data",
		clock:       time.Now,
		keepHistory: true,
		sidecar:     true,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithDataDir sets the root data directory holding snapshots and the
// per-brand directory trees.
func WithDataDir(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return &errors.ValidationError{
				Field:   "dataDir",
				Message: "cannot be empty",
			}
		}
		o.dataDir = dir
		return nil
	}
}

// WithArchiveDirs overrides the directories searched for archive
// candidates. By default the brand's standard archive locations are used.
func WithArchiveDirs(dirs ...string) Option {
	return func(o *options) error {
		o.archiveDirs = dirs
		return nil
	}
}

// WithClock sets the time source, letting tests run against a fixed date.
func WithClock(clock func() time.Time) Option {
	return func(o *options) error {
		if clock == nil {
			return &errors.ValidationError{
				Field:   "clock",
				Message: "cannot be nil",
			}
		}
		o.clock = clock
		return nil
	}
}

// WithHistory controls whether the current snapshot is retained as a
// historical copy after a successful run.
func WithHistory(enabled bool) Option {
	return func(o *options) error {
		o.keepHistory = enabled
		return nil
	}
}

// WithSidecar controls whether the structured master sidecar is written
// alongside the CSV master store.
func WithSidecar(enabled bool) Option {
	return func(o *options) error {
		o.sidecar = enabled
		return nil
	}
}
