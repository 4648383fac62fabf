package catalog

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/RolandGoud/bikescaper/pkg/constants"
	"github.com/RolandGoud/bikescaper/pkg/errors"
	"github.com/RolandGoud/bikescaper/pkg/logging"
)

// Load reads a snapshot from a CSV file. Columns beyond the lifecycle
// core become extension fields; absent optional columns simply yield
// empty attributes. A file without the name key column, or one that
// cannot be parsed at all, fails with a SnapshotLoadError.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewSnapshotLoadError(path, err.Error(), err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read decodes a snapshot from r. The name parameter is used only for
// error reporting.
func Read(r io.Reader, name string) (*Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; missing cells read as empty

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewSnapshotLoadError(name, err.Error(), err)
	}
	if len(records) == 0 {
		return nil, errors.NewSnapshotLoadError(name, "empty file, no header row", nil)
	}

	header := records[0]
	nameIdx := -1
	for i, col := range header {
		if col == constants.NameColumn {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return nil, errors.NewSnapshotLoadError(name, "missing "+constants.NameColumn+" column", nil)
	}

	snap := NewSnapshot()
	snap.loadedColumns = len(header)

	// Remember extension column order from the header even for columns
	// that turn out to hold only empty values.
	for _, col := range header {
		snap.observeColumn(col)
	}

	for rowNum, row := range records[1:] {
		if nameIdx >= len(row) || row[nameIdx] == "" {
			logging.Warn().
				Str("file", name).
				Int("row", rowNum+2).
				Msg("Skipping row without a name value")
			continue
		}

		entry := NewEntry(row[nameIdx])
		for i, col := range header {
			if i == nameIdx || i >= len(row) {
				continue
			}
			setColumn(entry, col, row[i])
		}
		snap.Add(entry)
	}

	return snap, nil
}

// setColumn routes a cell value into the entry's lifecycle core or
// extension map.
func setColumn(entry *Entry, col, value string) {
	switch col {
	case constants.BrandColumn:
		entry.Brand = value
	case constants.StatusColumn:
		entry.Status = Status(value)
	case constants.FirstSeenColumn:
		entry.FirstSeen = value
	case constants.LastSeenColumn:
		entry.LastSeen = value
	case constants.LastUpdatedColumn:
		entry.LastUpdated = value
	default:
		entry.Fields[col] = value
	}
}
