package reconciler

import (
	"sort"

	"github.com/RolandGoud/bikescaper/pkg/catalog"
	"github.com/RolandGoud/bikescaper/pkg/dates"
	"github.com/RolandGoud/bikescaper/pkg/lifecycle"
)

// merge builds the updated master store for every key in the union of the
// current snapshot, the prior master store, and the selected archive.
//
// Field-value precedence per key:
//  1. current snapshot, as a full replace (no per-field merge with the
//     master record; a sub-field the scraper missed this run goes blank)
//  2. archive, when the key is absent from the master or the master's
//     copy holds fewer non-empty fields than the archive's
//  3. the existing master entry, unchanged
func (r *reconciler) merge(bctx *brandContext, result *Result) *catalog.Snapshot {
	updated := catalog.NewSnapshot()

	for _, name := range unionNames(bctx.current, bctx.master, archiveSnapshot(bctx)) {
		entry := r.mergeOne(bctx, name)

		if entry.Brand == "" {
			entry.Brand = bctx.layout.Brand
		}
		entry.LastUpdated = bctx.stamp

		updated.Add(entry)
		result.Stats.EntriesProcessed++
	}

	return updated
}

// mergeOne resolves a single key to its updated master entry.
func (r *reconciler) mergeOne(bctx *brandContext, name string) *catalog.Entry {
	currentEntry, inCurrent := bctx.current.Get(name)
	masterEntry, inMaster := bctx.master.Get(name)
	archiveEntry, inArchive := archiveGet(bctx, name)

	switch {
	case inCurrent:
		cls := lifecycle.Classify(name, true, inMaster, masterEntry, bctx.today)
		entry := currentEntry.Clone()
		applyClassification(entry, cls)
		return entry

	case inArchive && (!inMaster || masterEntry.Completeness() < archiveEntry.Completeness()):
		// The archive is the richest remaining evidence for this entry.
		// Its observation date is the best available proxy for both
		// lifecycle bounds; the exact history before master tracking
		// began is not recoverable.
		entry := archiveEntry.Clone()
		entry.Status = catalog.StatusDiscontinued
		switch {
		case !dates.IsUnknown(bctx.archDate()):
			entry.FirstSeen = bctx.archDate()
			entry.LastSeen = bctx.archDate()
		case inMaster:
			cls := lifecycle.Classify(name, false, true, masterEntry, bctx.today)
			entry.FirstSeen = cls.FirstSeen
			entry.LastSeen = cls.LastSeen
		default:
			entry.FirstSeen = dates.Unknown
			entry.LastSeen = dates.Unknown
		}
		return entry

	case inMaster:
		cls := lifecycle.Classify(name, false, true, masterEntry, bctx.today)
		entry := masterEntry.Clone()
		applyClassification(entry, cls)
		return entry

	default:
		// Unreachable under the union invariant
		cls := lifecycle.Classify(name, false, false, nil, bctx.today)
		entry := catalog.NewEntry(name)
		applyClassification(entry, cls)
		return entry
	}
}

// applyClassification stamps the lifecycle attributes onto an entry.
func applyClassification(entry *catalog.Entry, cls lifecycle.Classification) {
	entry.Status = cls.Status
	entry.FirstSeen = cls.FirstSeen
	entry.LastSeen = cls.LastSeen
}

// archDate returns the selected archive's nominal date, or Unknown.
func (b *brandContext) archDate() string {
	if b.arch == nil {
		return dates.Unknown
	}
	return b.arch.Date
}

// archiveSnapshot returns the selected archive's entries, or nil.
func archiveSnapshot(bctx *brandContext) *catalog.Snapshot {
	if bctx.arch == nil {
		return nil
	}
	return bctx.arch.Snapshot
}

// archiveGet looks a key up in the selected archive.
func archiveGet(bctx *brandContext, name string) (*catalog.Entry, bool) {
	snap := archiveSnapshot(bctx)
	if snap == nil {
		return nil, false
	}
	return snap.Get(name)
}

// unionNames returns the sorted union of entry names across snapshots.
func unionNames(snaps ...*catalog.Snapshot) []string {
	seen := make(map[string]bool)
	var names []string
	for _, snap := range snaps {
		if snap == nil {
			continue
		}
		for _, name := range snap.Names() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
