// Package brandfiles defines the on-disk layout for a brand's catalog
// data: the latest snapshot at the data dir root, and a per-brand
// directory tree holding the master store, status reports, and retained
// historical snapshots.
//
//	data/
//	  canyon_bikes_latest.csv
//	  master_database_summary.txt
//	  Canyon/
//	    master/      master_canyon_bikes_all.csv, master_canyon_bikes_all.yaml
//	    reports/     canyon_bikes_{new,available,discontinued}.csv, canyon_status_summary.txt
//	    historical/  timestamped snapshot copies
package brandfiles

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/RolandGoud/bikescaper/pkg/constants"
	"github.com/RolandGoud/bikescaper/pkg/errors"
)

var titleCaser = cases.Title(language.English)

// Layout resolves the file paths for one brand under a data directory.
type Layout struct {
	DataDir string
	Brand   string
}

// New creates a layout for a brand.
func New(dataDir, brand string) *Layout {
	return &Layout{DataDir: dataDir, Brand: brand}
}

// lower is the brand name as used in file names.
func (l *Layout) lower() string {
	return strings.ToLower(l.Brand)
}

// BrandDir is the brand's own directory.
func (l *Layout) BrandDir() string {
	return filepath.Join(l.DataDir, l.Brand)
}

// MasterDir holds the master store files.
func (l *Layout) MasterDir() string {
	return filepath.Join(l.BrandDir(), "master")
}

// ReportsDir holds the status report files.
func (l *Layout) ReportsDir() string {
	return filepath.Join(l.BrandDir(), "reports")
}

// HistoricalDir holds retained copies of older current snapshots.
func (l *Layout) HistoricalDir() string {
	return filepath.Join(l.BrandDir(), "historical")
}

// LatestCSV is the current snapshot produced by the brand's scraper.
func (l *Layout) LatestCSV() string {
	return filepath.Join(l.DataDir, l.lower()+constants.LatestSnapshotSuffix)
}

// MasterCSV is the persisted master store.
func (l *Layout) MasterCSV() string {
	return filepath.Join(l.MasterDir(), "master_"+l.lower()+"_bikes_all.csv")
}

// MasterYAML is the structured sidecar of the master store.
func (l *Layout) MasterYAML() string {
	return filepath.Join(l.MasterDir(), "master_"+l.lower()+"_bikes_all.yaml")
}

// NewCSV is the report of entries with status New.
func (l *Layout) NewCSV() string {
	return filepath.Join(l.ReportsDir(), l.lower()+"_bikes_new.csv")
}

// AvailableCSV is the report of entries with status Available.
func (l *Layout) AvailableCSV() string {
	return filepath.Join(l.ReportsDir(), l.lower()+"_bikes_available.csv")
}

// DiscontinuedCSV is the report of entries with status Discontinued.
func (l *Layout) DiscontinuedCSV() string {
	return filepath.Join(l.ReportsDir(), l.lower()+"_bikes_discontinued.csv")
}

// StatusSummary is the per-brand human-readable summary.
func (l *Layout) StatusSummary() string {
	return filepath.Join(l.ReportsDir(), l.lower()+"_status_summary.txt")
}

// HistoricalCopy is the destination for retaining the current snapshot
// after a run, with a timestamp token future archive selection can parse.
func (l *Layout) HistoricalCopy(t time.Time) string {
	return filepath.Join(l.HistoricalDir(), l.lower()+"_bikes_"+t.Format("2006-01-02")+".csv")
}

// ArchiveDirs lists the directories searched for archive candidates, in
// the order the original data layouts used them.
func (l *Layout) ArchiveDirs() []string {
	return []string{
		filepath.Join(l.DataDir, "archive", l.Brand),
		l.BrandDir(),
		l.HistoricalDir(),
	}
}

// EnsureDirs creates the brand directory tree.
func (l *Layout) EnsureDirs() error {
	for _, dir := range []string{l.BrandDir(), l.MasterDir(), l.ReportsDir(), l.HistoricalDir()} {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	return nil
}

// CombinedSummary is the cross-brand summary file for one invocation.
func CombinedSummary(dataDir string) string {
	return filepath.Join(dataDir, constants.CombinedSummaryFile)
}

// DetectBrands scans the data directory for current snapshot files and
// derives title-cased brand names from them.
func DetectBrands(dataDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dataDir, "*"+constants.LatestSnapshotSuffix))
	if err != nil {
		return nil, errors.WrapIO("scan", dataDir, err)
	}

	brands := make([]string, 0, len(matches))
	for _, path := range matches {
		base := filepath.Base(path)
		raw := strings.TrimSuffix(base, constants.LatestSnapshotSuffix)
		if raw == "" {
			continue
		}
		brands = append(brands, titleCaser.String(raw))
	}
	sort.Strings(brands)
	return brands, nil
}
