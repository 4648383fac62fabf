package reconciler

import (
	"fmt"
	"time"

	"github.com/RolandGoud/bikescaper/pkg/catalog"
)

// Result represents the outcome of one brand's reconciliation.
type Result struct {
	// Brand that was reconciled
	Brand string

	// Master is the updated master store
	Master *catalog.Snapshot

	// MasterPath is where the master store was written
	MasterPath string

	// Counts tallies entries per lifecycle status
	Counts map[catalog.Status]int

	// ArchivePath and ArchiveDate identify the selected archive, if any
	ArchivePath string
	ArchiveDate string

	// Metadata about the reconciliation run
	Metadata ResultMetadata

	// Stats about processing
	Stats ResultStatistics

	// Warnings raised by best-effort steps
	Warnings []string
}

// ResultMetadata contains timing metadata about the reconciliation.
type ResultMetadata struct {
	// StartTime when reconciliation started
	StartTime time.Time

	// EndTime when reconciliation completed
	EndTime time.Time

	// Duration of the reconciliation
	Duration time.Duration
}

// ResultStatistics contains statistics about the reconciliation.
type ResultStatistics struct {
	EntriesProcessed int
}

// Total returns the number of entries in the updated master store.
func (r *Result) Total() int {
	total := 0
	for _, count := range r.Counts {
		total += count
	}
	return total
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	return fmt.Sprintf("%s: %d tracked (%d new, %d available, %d discontinued)",
		r.Brand,
		r.Total(),
		r.Counts[catalog.StatusNew],
		r.Counts[catalog.StatusAvailable],
		r.Counts[catalog.StatusDiscontinued],
	)
}

// NewResult creates a new result with defaults.
func NewResult(brand string) *Result {
	return &Result{
		Brand:  brand,
		Counts: make(map[catalog.Status]int),
		Metadata: ResultMetadata{
			StartTime: time.Now(),
		},
	}
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}
