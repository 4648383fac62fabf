// Package bikescaper tracks bike catalogs over time. Each brand's
// scraper drops a current snapshot CSV into the data directory; the
// tracker folds it into the brand's master store, classifies every model
// ever observed as new, available, or discontinued, and regenerates the
// status reports.
package bikescaper

import (
	"context"

	"github.com/RolandGoud/bikescaper/internal/brandfiles"
	"github.com/RolandGoud/bikescaper/pkg/catalog"
	"github.com/RolandGoud/bikescaper/pkg/errors"
	"github.com/RolandGoud/bikescaper/pkg/logging"
	"github.com/RolandGoud/bikescaper/pkg/reconciler"
	"github.com/RolandGoud/bikescaper/pkg/report"
)

// Tracker is the top-level API over the per-brand master stores.
type Tracker interface {
	// Update reconciles the given brands, or every detected brand when
	// none are named. One brand's failure never aborts the others.
	Update(ctx context.Context, brands ...string) (*UpdateSummary, error)

	// Report regenerates the status reports from the persisted master
	// stores without touching them.
	Report(ctx context.Context, brands ...string) error

	// Status returns the per-brand lifecycle counts from the persisted
	// master stores.
	Status(ctx context.Context, brands ...string) ([]BrandStatus, error)

	// Brands lists the brands detected from current snapshot files in
	// the data directory.
	Brands() ([]string, error)
}

// tracker is the internal implementation of the Tracker interface.
type tracker struct {
	config     *config
	reconciler reconciler.Reconciler
}

// New creates a new Tracker with the given options.
func New(opts ...Option) (Tracker, error) {
	c := defaultConfig()
	if err := c.apply(opts...); err != nil {
		return nil, err
	}

	rec, err := reconciler.New(
		reconciler.WithDataDir(c.dataDir),
		reconciler.WithArchiveDirs(c.archiveDirs...),
		reconciler.WithClock(c.clock),
		reconciler.WithHistory(c.keepHistory),
		reconciler.WithSidecar(c.sidecar),
	)
	if err != nil {
		return nil, err
	}

	return &tracker{config: c, reconciler: rec}, nil
}

// BrandFailure records one brand that could not be reconciled.
type BrandFailure struct {
	Brand string
	Err   error
}

// UpdateSummary aggregates the outcome of a multi-brand update.
type UpdateSummary struct {
	Results  []*reconciler.Result
	Failures []BrandFailure
}

// Succeeded returns the number of brands updated.
func (s *UpdateSummary) Succeeded() int { return len(s.Results) }

// Failed returns the number of brands that could not be updated.
func (s *UpdateSummary) Failed() int { return len(s.Failures) }

// AllFailed reports whether no brand was updated.
func (s *UpdateSummary) AllFailed() bool {
	return len(s.Results) == 0 && len(s.Failures) > 0
}

// BrandStatus is one brand's lifecycle tally.
type BrandStatus struct {
	Brand  string
	Total  int
	Counts map[catalog.Status]int
}

// Update reconciles brands sequentially. Per-brand failures are
// collected in the summary rather than aborting the run.
func (t *tracker) Update(ctx context.Context, brands ...string) (*UpdateSummary, error) {
	brands, err := t.resolveBrands(brands)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	summary := &UpdateSummary{}
	var brandSummaries []report.BrandSummary

	for _, brand := range brands {
		result, err := t.reconciler.Brand(ctx, brand)
		if err != nil {
			logger.Error().Err(err).Str("brand", brand).Msg("Brand update failed")
			summary.Failures = append(summary.Failures, BrandFailure{Brand: brand, Err: err})
			continue
		}

		if t.config.reports {
			layout := brandfiles.New(t.config.dataDir, brand)
			if err := report.Generate(layout, result.Master, t.config.clock()); err != nil {
				logger.Warn().Err(err).Str("brand", brand).Msg("Report generation failed")
				result.Warnings = append(result.Warnings, "report generation failed: "+err.Error())
			}
		}

		summary.Results = append(summary.Results, result)
		brandSummaries = append(brandSummaries, report.BrandSummary{Brand: brand, Counts: result.Counts})
	}

	if t.config.reports && len(brandSummaries) > 0 {
		if err := report.Combined(t.config.dataDir, brandSummaries, t.config.clock()); err != nil {
			logger.Warn().Err(err).Msg("Combined summary failed")
		}
	}

	return summary, nil
}

// Report regenerates the status reports from the persisted masters.
func (t *tracker) Report(ctx context.Context, brands ...string) error {
	brands, err := t.resolveBrands(brands)
	if err != nil {
		return err
	}

	var brandSummaries []report.BrandSummary
	for _, brand := range brands {
		layout := brandfiles.New(t.config.dataDir, brand)
		master, err := catalog.Load(layout.MasterCSV())
		if err != nil {
			return errors.WrapReconcile(brand, "load", err)
		}
		if err := report.Generate(layout, master, t.config.clock()); err != nil {
			return err
		}
		brandSummaries = append(brandSummaries, report.BrandSummary{
			Brand:  brand,
			Counts: master.CountByStatus(),
		})
	}

	return report.Combined(t.config.dataDir, brandSummaries, t.config.clock())
}

// Status loads the persisted masters and tallies lifecycle counts.
func (t *tracker) Status(ctx context.Context, brands ...string) ([]BrandStatus, error) {
	brands, err := t.resolveBrands(brands)
	if err != nil {
		return nil, err
	}

	statuses := make([]BrandStatus, 0, len(brands))
	for _, brand := range brands {
		layout := brandfiles.New(t.config.dataDir, brand)
		master, err := catalog.Load(layout.MasterCSV())
		if err != nil {
			return nil, errors.WrapReconcile(brand, "load", err)
		}
		statuses = append(statuses, BrandStatus{
			Brand:  brand,
			Total:  master.Len(),
			Counts: master.CountByStatus(),
		})
	}
	return statuses, nil
}

// Brands lists the detected brands.
func (t *tracker) Brands() ([]string, error) {
	return brandfiles.DetectBrands(t.config.dataDir)
}

// resolveBrands falls back to auto-detection when no brands are named.
func (t *tracker) resolveBrands(brands []string) ([]string, error) {
	if len(brands) > 0 {
		return brands, nil
	}
	detected, err := brandfiles.DetectBrands(t.config.dataDir)
	if err != nil {
		return nil, err
	}
	if len(detected) == 0 {
		return nil, &errors.ValidationError{
			Field:   "brands",
			Message: "no brands named and no current snapshots found in " + t.config.dataDir,
		}
	}
	return detected, nil
}
