package catalog

import (
	"sort"

	"github.com/RolandGoud/bikescaper/pkg/constants"
)

// Snapshot is a set of entries captured at one instant. It remembers the
// order extension columns were first observed so that saving a loaded
// snapshot reproduces the original column layout.
type Snapshot struct {
	entries []*Entry
	index   map[string]int
	columns []string
	colSeen map[string]bool

	// loadedColumns is the column count of the file this snapshot was
	// loaded from, used for archive completeness scoring. Zero for
	// snapshots built in memory.
	loadedColumns int
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		index:   make(map[string]int),
		colSeen: make(map[string]bool),
	}
}

// Add inserts an entry, replacing any existing entry with the same name.
// Extension columns not seen before are appended to the column order.
func (s *Snapshot) Add(e *Entry) {
	if e == nil || e.Name == "" {
		return
	}

	if i, ok := s.index[e.Name]; ok {
		s.entries[i] = e
	} else {
		s.index[e.Name] = len(s.entries)
		s.entries = append(s.entries, e)
	}

	for col := range e.Fields {
		s.observeColumn(col)
	}
}

// observeColumn records an extension column in first-appearance order.
func (s *Snapshot) observeColumn(col string) {
	if col == "" || s.colSeen[col] {
		return
	}
	switch col {
	case constants.NameColumn, constants.BrandColumn, constants.StatusColumn,
		constants.FirstSeenColumn, constants.LastSeenColumn, constants.LastUpdatedColumn:
		return // lifecycle core has fixed positions
	}
	s.colSeen[col] = true
	s.columns = append(s.columns, col)
}

// Get returns the entry with the given name.
func (s *Snapshot) Get(name string) (*Entry, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i], true
}

// Has reports whether an entry with the given name exists.
func (s *Snapshot) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns the entries in insertion order.
func (s *Snapshot) Entries() []*Entry {
	return s.entries
}

// Names returns all entry names in sorted order for deterministic iteration.
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Columns returns the extension columns in first-appearance order.
func (s *Snapshot) Columns() []string {
	return s.columns
}

// Filter returns a new snapshot holding the entries that satisfy keep,
// preserving entry and column order.
func (s *Snapshot) Filter(keep func(*Entry) bool) *Snapshot {
	out := NewSnapshot()
	out.columns = append([]string(nil), s.columns...)
	for _, col := range s.columns {
		out.colSeen[col] = true
	}
	for _, e := range s.entries {
		if keep(e) {
			out.Add(e)
		}
	}
	return out
}

// ByStatus returns the entries with the given lifecycle status.
func (s *Snapshot) ByStatus(status Status) *Snapshot {
	return s.Filter(func(e *Entry) bool { return e.Status == status })
}

// CountByStatus tallies entries per lifecycle status.
func (s *Snapshot) CountByStatus() map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, e := range s.entries {
		counts[e.Status]++
	}
	return counts
}

// Score is the completeness score used to rank archive candidates:
// row count multiplied by column count. For loaded snapshots the column
// count is taken from the source file's header; for snapshots built in
// memory it falls back to the canonical header width.
func (s *Snapshot) Score() int {
	cols := s.loadedColumns
	if cols == 0 {
		cols = len(s.Header())
	}
	return len(s.entries) * cols
}
