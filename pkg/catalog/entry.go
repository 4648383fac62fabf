// Package catalog defines the entry and snapshot data model and the
// row-oriented CSV persistence shared by every component. The schema is
// deliberately open: a fixed lifecycle core plus a string-keyed extension
// map for whatever columns a brand's scraper happens to produce.
package catalog

import (
	"maps"

	"github.com/RolandGoud/bikescaper/pkg/constants"
)

// Entry is one product, identified by Name within a brand's namespace.
// The lifecycle attributes (Status, FirstSeen, LastSeen, LastUpdated) are
// owned exclusively by the reconciler; everything the scraper produced
// beyond name and brand lives in Fields.
type Entry struct {
	Name        string            `yaml:"name"`
	Brand       string            `yaml:"brand,omitempty"`
	Status      Status            `yaml:"status,omitempty"`
	FirstSeen   string            `yaml:"first_seen_date,omitempty"`
	LastSeen    string            `yaml:"last_seen_date,omitempty"`
	LastUpdated string            `yaml:"last_updated,omitempty"`
	Fields      map[string]string `yaml:"fields,omitempty"`
}

// NewEntry creates an entry with an initialized extension map.
func NewEntry(name string) *Entry {
	return &Entry{
		Name:   name,
		Fields: make(map[string]string),
	}
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := *e
	clone.Fields = make(map[string]string, len(e.Fields))
	maps.Copy(clone.Fields, e.Fields)
	return &clone
}

// Field returns the extension field value for key, or empty.
func (e *Entry) Field(key string) string {
	if e.Fields == nil {
		return ""
	}
	return e.Fields[key]
}

// SetField sets an extension field value.
func (e *Entry) SetField(key, value string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[key] = value
}

// Value returns the entry's value for a named column, covering both the
// lifecycle core and the extension map.
func (e *Entry) Value(column string) string {
	switch column {
	case constants.NameColumn:
		return e.Name
	case constants.BrandColumn:
		return e.Brand
	case constants.StatusColumn:
		return string(e.Status)
	case constants.FirstSeenColumn:
		return e.FirstSeen
	case constants.LastSeenColumn:
		return e.LastSeen
	case constants.LastUpdatedColumn:
		return e.LastUpdated
	default:
		return e.Field(column)
	}
}

// Completeness counts the entry's non-empty data values. It is the
// per-entry analogue of the archive completeness score: the reconciler
// uses it to judge whether an archive copy of an entry carries richer
// data than the master's copy.
func (e *Entry) Completeness() int {
	count := 0
	if e.Name != "" {
		count++
	}
	if e.Brand != "" {
		count++
	}
	for _, v := range e.Fields {
		if v != "" {
			count++
		}
	}
	return count
}
