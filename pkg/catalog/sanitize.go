package catalog

import "strings"

// Sanitize normalizes a field value for tabular output: newlines, carriage
// returns, and tabs become spaces, runs of whitespace collapse to one
// space, and the result is trimmed. Sanitize is idempotent and never
// introduces a delimiter character.
func Sanitize(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// SanitizeEntry returns a copy of the entry with every string value
// sanitized, ready for export.
func SanitizeEntry(e *Entry) *Entry {
	clean := e.Clone()
	clean.Name = Sanitize(e.Name)
	clean.Brand = Sanitize(e.Brand)
	clean.FirstSeen = Sanitize(e.FirstSeen)
	clean.LastSeen = Sanitize(e.LastSeen)
	clean.LastUpdated = Sanitize(e.LastUpdated)
	for k, v := range e.Fields {
		clean.Fields[k] = Sanitize(v)
	}
	return clean
}
