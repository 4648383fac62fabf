// Package lifecycle maps an entry's presence history to its status and
// lifecycle dates. Classification is a pure function of set membership;
// the reconciler may later adjust dates when archive data is recovered.
package lifecycle

import (
	"github.com/RolandGoud/bikescaper/pkg/catalog"
	"github.com/RolandGoud/bikescaper/pkg/dates"
	"github.com/RolandGoud/bikescaper/pkg/logging"
)

// Classification is the outcome for one entry: its status and the pair
// of lifecycle dates in day-month-year form.
type Classification struct {
	Status    catalog.Status
	FirstSeen string
	LastSeen  string
}

// Classify determines an entry's lifecycle state for the current run.
//
//	in current, not in master  -> New, both dates today
//	in current, in master      -> Available, first seen preserved, last seen today
//	not in current, in master  -> Discontinued, both dates preserved
//	in neither                 -> unreachable under the union invariant;
//	                              treated as New with a warning, never a crash
//
// existing is the master store's copy when inMaster is true, and today is
// the run date in day-month-year form.
func Classify(name string, inCurrent, inMaster bool, existing *catalog.Entry, today string) Classification {
	switch {
	case inCurrent && !inMaster:
		return Classification{
			Status:    catalog.StatusNew,
			FirstSeen: today,
			LastSeen:  today,
		}

	case inCurrent && inMaster:
		return Classification{
			Status:    catalog.StatusAvailable,
			FirstSeen: firstSeen(existing, today),
			LastSeen:  today,
		}

	case !inCurrent && inMaster:
		return Classification{
			Status:    catalog.StatusDiscontinued,
			FirstSeen: firstSeen(existing, dates.Unknown),
			LastSeen:  lastSeen(existing),
		}

	default:
		logging.Warn().
			Str("name", name).
			Msg("Entry reachable from no source, treating as new")
		return Classification{
			Status:    catalog.StatusNew,
			FirstSeen: today,
			LastSeen:  today,
		}
	}
}

// firstSeen normalizes the existing first seen date, falling back when
// the master record predates date tracking.
func firstSeen(existing *catalog.Entry, fallback string) string {
	if existing == nil {
		return fallback
	}
	return dates.Normalize(existing.FirstSeen, fallback)
}

// lastSeen preserves the existing last seen date for discontinued entries.
func lastSeen(existing *catalog.Entry) string {
	if existing == nil {
		return dates.Unknown
	}
	return dates.Normalize(existing.LastSeen, dates.Unknown)
}
