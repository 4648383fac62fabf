// Package constants provides shared constants used throughout the bikescaper
// codebase. This includes file permissions, naming conventions, and other
// configuration values that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Column names owned by the reconciler. Every master store file carries
// these in addition to the brand-specific scraped columns.
const (
	// NameColumn is the key column identifying an entry within a brand
	NameColumn = "name"

	// BrandColumn holds the brand an entry belongs to
	BrandColumn = "brand"

	// StatusColumn holds the lifecycle status
	StatusColumn = "status"

	// FirstSeenColumn holds the date an entry was first observed
	FirstSeenColumn = "first_seen_date"

	// LastSeenColumn holds the date an entry was last observed
	LastSeenColumn = "last_seen_date"

	// LastUpdatedColumn holds the timestamp of the run that last touched the entry
	LastUpdatedColumn = "last_updated"

	// DateDiscontinuedColumn is the derived column added to discontinued reports
	DateDiscontinuedColumn = "date_discontinued"
)

// File naming conventions shared by the store, selector, and reports
const (
	// LatestSnapshotSuffix is the suffix of per-brand current snapshot files
	LatestSnapshotSuffix = "_bikes_latest.csv"

	// CombinedSummaryFile is the cross-brand summary written once per invocation
	CombinedSummaryFile = "master_database_summary.txt"
)
