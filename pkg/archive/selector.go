// Package archive selects the best historical snapshot for a brand.
// Archives are retained copies of older current snapshots; the selector
// ranks them by completeness so that entries which have vanished from the
// live catalog keep the richest field data still on disk.
package archive

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/RolandGoud/bikescaper/pkg/catalog"
	"github.com/RolandGoud/bikescaper/pkg/dates"
	"github.com/RolandGoud/bikescaper/pkg/logging"
)

// Selection is the chosen archive: its entries, the nominal "as of" date
// parsed from the filename (or the Unknown sentinel), and the file it
// came from.
type Selection struct {
	Snapshot *catalog.Snapshot
	Date     string
	Path     string
}

// candidate pairs a loaded archive with its ranking inputs.
type candidate struct {
	path    string
	snap    *catalog.Snapshot
	score   int
	modTime time.Time
}

// Select scans the given directories for archived snapshots of a brand
// and returns the single most information-rich one. The completeness
// score is row count times column count; ties prefer the newer
// modification time, then the lexicographically greatest filename.
// Unreadable candidates are logged and skipped. With no usable
// candidate, Select returns nil.
//
// A recently truncated scrape scores low, so an older but fuller archive
// wins over it rather than letting poor data overwrite good history.
func Select(brand string, dirs ...string) (*Selection, error) {
	pattern := strings.ToLower(brand) + "_bikes_*.csv"

	var best *candidate
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			logging.Warn().
				Err(err).
				Str("brand", brand).
				Str("dir", dir).
				Msg("Bad archive search pattern")
			continue
		}

		for _, path := range matches {
			cand := load(brand, path)
			if cand == nil {
				continue
			}
			if better(cand, best) {
				best = cand
			}
		}
	}

	if best == nil {
		return nil, nil
	}

	date := dates.FromFilename(filepath.Base(best.path))
	logging.Info().
		Str("brand", brand).
		Str("archive", best.path).
		Int("score", best.score).
		Str("archive_date", date).
		Msg("Selected archive snapshot")

	return &Selection{
		Snapshot: best.snap,
		Date:     date,
		Path:     best.path,
	}, nil
}

// load reads one candidate file, returning nil when it is unusable.
func load(brand, path string) *candidate {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}

	snap, err := catalog.Load(path)
	if err != nil {
		logging.Warn().
			Err(err).
			Str("brand", brand).
			Str("archive", path).
			Msg("Skipping unreadable archive candidate")
		return nil
	}

	return &candidate{
		path:    path,
		snap:    snap,
		score:   snap.Score(),
		modTime: info.ModTime(),
	}
}

// better reports whether a should replace the current best.
func better(a, best *candidate) bool {
	if best == nil {
		return true
	}
	if a.score != best.score {
		return a.score > best.score
	}
	if !a.modTime.Equal(best.modTime) {
		return a.modTime.After(best.modTime)
	}
	return filepath.Base(a.path) > filepath.Base(best.path)
}
