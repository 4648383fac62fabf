// Package reconciler maintains the per-brand master store. Each run folds
// the freshest scraped snapshot, the existing master store, and the best
// archived snapshot into an updated master store, classifying every entry
// ever observed as new, available, or discontinued.
package reconciler

import (
	"context"
	stderrors "errors"
	"os"
	"time"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/RolandGoud/bikescaper/internal/brandfiles"
	"github.com/RolandGoud/bikescaper/internal/fileutil"
	"github.com/RolandGoud/bikescaper/pkg/archive"
	"github.com/RolandGoud/bikescaper/pkg/catalog"
	"github.com/RolandGoud/bikescaper/pkg/dates"
	"github.com/RolandGoud/bikescaper/pkg/errors"
	"github.com/RolandGoud/bikescaper/pkg/logging"
)

// Reconciler updates one brand's master store per call.
type Reconciler interface {
	// Brand reconciles a single brand: load current snapshot and master
	// store, select an archive, classify and merge, persist the updated
	// master store. A failure leaves the master store untouched.
	Brand(ctx context.Context, brand string) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	dataDir     string
	archiveDirs []string
	clock       func() time.Time
	keepHistory bool
	sidecar     bool
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &reconciler{
		dataDir:     options.dataDir,
		archiveDirs: options.archiveDirs,
		clock:       options.clock,
		keepHistory: options.keepHistory,
		sidecar:     options.sidecar,
	}, nil
}

// brandContext holds shared state for one brand's reconciliation.
type brandContext struct {
	layout  *brandfiles.Layout
	logger  *zerolog.Logger
	today   string
	stamp   string
	current *catalog.Snapshot
	master  *catalog.Snapshot
	arch    *archive.Selection
}

// Brand performs reconciliation for one brand with clean step-by-step flow.
func (r *reconciler) Brand(ctx context.Context, brand string) (*Result, error) {
	result := NewResult(brand)

	// Step 1: initialize context and take the single-writer lock
	bctx, err := r.initialize(ctx, brand)
	if err != nil {
		return nil, err
	}

	lock, err := fileutil.AcquireLock(bctx.layout.MasterCSV())
	if err != nil {
		return nil, errors.WrapReconcile(brand, "lock", err)
	}
	defer lock.Release()

	// Step 2: load inputs; a missing current snapshot is fatal for the brand
	if err := r.collect(bctx, result); err != nil {
		return nil, err
	}

	// Step 3: classify and merge into the updated master store
	updated := r.merge(bctx, result)

	// Step 4: persist the master store atomically
	if err := catalog.Save(updated, bctx.layout.MasterCSV()); err != nil {
		return nil, errors.WrapReconcile(brand, "save", err)
	}

	// Step 5: best-effort artifacts that must not fail the run
	r.writeSidecar(bctx, updated, result)
	r.retainHistory(bctx, result)

	// Step 6: finalize result
	result.Master = updated
	result.MasterPath = bctx.layout.MasterCSV()
	result.Counts = updated.CountByStatus()
	result.Finalize()

	bctx.logger.Info().
		Str("brand", brand).
		Int("total", updated.Len()).
		Int("new", result.Counts[catalog.StatusNew]).
		Int("available", result.Counts[catalog.StatusAvailable]).
		Int("discontinued", result.Counts[catalog.StatusDiscontinued]).
		Msg("Master store updated")

	return result, nil
}

// initialize sets up the per-brand context.
func (r *reconciler) initialize(ctx context.Context, brand string) (*brandContext, error) {
	if brand == "" {
		return nil, &errors.ValidationError{
			Field:   "brand",
			Message: "cannot be empty",
		}
	}

	layout := brandfiles.New(r.dataDir, brand)
	if err := layout.EnsureDirs(); err != nil {
		return nil, errors.WrapReconcile(brand, "init", err)
	}

	now := r.clock()
	return &brandContext{
		layout: layout,
		logger: logging.FromContext(ctx),
		today:  dates.Format(now),
		stamp:  utc.New(now).Format(time.RFC3339),
	}, nil
}

// collect loads the current snapshot, the master store, and the best
// archive. Only the current snapshot is mandatory.
func (r *reconciler) collect(bctx *brandContext, result *Result) error {
	brand := bctx.layout.Brand

	current, err := catalog.Load(bctx.layout.LatestCSV())
	if err != nil {
		return errors.WrapReconcile(brand, "load", err)
	}
	bctx.current = current

	master, err := catalog.Load(bctx.layout.MasterCSV())
	switch {
	case err == nil:
		bctx.master = master
	case isNotExist(err):
		// First run for this brand: every current entry becomes New
		bctx.logger.Info().Str("brand", brand).Msg("Creating new master store")
		bctx.master = catalog.NewSnapshot()
	default:
		// An existing but unreadable master store must not be silently
		// replaced by a from-scratch rebuild
		return errors.WrapReconcile(brand, "load", err)
	}

	dirs := r.archiveDirs
	if len(dirs) == 0 {
		dirs = bctx.layout.ArchiveDirs()
	}
	sel, err := archive.Select(brand, dirs...)
	if err != nil {
		bctx.logger.Warn().Err(err).Str("brand", brand).Msg("Archive selection failed, proceeding without archive")
		result.Warnings = append(result.Warnings, "archive selection failed: "+err.Error())
	} else {
		bctx.arch = sel
	}

	if bctx.arch != nil {
		result.ArchivePath = bctx.arch.Path
		result.ArchiveDate = bctx.arch.Date
	}

	bctx.logger.Debug().
		Str("brand", brand).
		Int("current", bctx.current.Len()).
		Int("known", bctx.master.Len()).
		Bool("archive", bctx.arch != nil).
		Msg("Collected reconciliation inputs")

	return nil
}

// writeSidecar writes the structured master sidecar; failure is a warning.
func (r *reconciler) writeSidecar(bctx *brandContext, updated *catalog.Snapshot, result *Result) {
	if !r.sidecar {
		return
	}
	if err := catalog.SaveYAML(updated, bctx.layout.MasterYAML()); err != nil {
		bctx.logger.Warn().Err(err).Str("brand", bctx.layout.Brand).Msg("Failed to write master sidecar")
		result.Warnings = append(result.Warnings, "sidecar write failed: "+err.Error())
	}
}

// retainHistory copies the current snapshot into the historical directory
// so future runs have archive candidates; failure is a warning.
func (r *reconciler) retainHistory(bctx *brandContext, result *Result) {
	if !r.keepHistory {
		return
	}
	dst := bctx.layout.HistoricalCopy(r.clock())
	if err := fileutil.CopyFile(bctx.layout.LatestCSV(), dst); err != nil {
		bctx.logger.Warn().Err(err).Str("brand", bctx.layout.Brand).Msg("Failed to retain historical snapshot")
		result.Warnings = append(result.Warnings, "historical copy failed: "+err.Error())
	}
}

// isNotExist walks the error chain looking for a missing-file condition.
func isNotExist(err error) bool {
	var sle *errors.SnapshotLoadError
	if stderrors.As(err, &sle) && sle.Err != nil {
		return os.IsNotExist(sle.Err)
	}
	return os.IsNotExist(err)
}
