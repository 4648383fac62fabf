package catalog

// Status classifies an entry's presence history across scraper runs.
type Status string

// Lifecycle statuses. Discontinued is reversible: an entry that reappears
// in a later current snapshot transitions back to Available.
const (
	// StatusNew marks an entry observed for the first time this run
	StatusNew Status = "New"

	// StatusAvailable marks an entry present in both the current snapshot
	// and the master store
	StatusAvailable Status = "Available"

	// StatusDiscontinued marks an entry no longer present in the current
	// snapshot but preserved in the master store
	StatusDiscontinued Status = "Discontinued"
)

// Statuses lists all lifecycle statuses in report order.
var Statuses = []Status{StatusNew, StatusAvailable, StatusDiscontinued}

// Valid reports whether s is one of the three lifecycle statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusAvailable, StatusDiscontinued:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
