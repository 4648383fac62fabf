package catalog

import (
	"bytes"
	"io"
	"strings"

	"github.com/RolandGoud/bikescaper/internal/fileutil"
	"github.com/RolandGoud/bikescaper/pkg/constants"
	"github.com/RolandGoud/bikescaper/pkg/errors"
)

// Header returns the canonical column order for saving: the key column,
// brand, the extension columns in first-appearance order, then the
// lifecycle columns.
func (s *Snapshot) Header() []string {
	header := make([]string, 0, len(s.columns)+6)
	header = append(header, constants.NameColumn, constants.BrandColumn)
	header = append(header, s.columns...)
	header = append(header,
		constants.StatusColumn,
		constants.FirstSeenColumn,
		constants.LastSeenColumn,
		constants.LastUpdatedColumn,
	)
	return header
}

// Save writes the snapshot to path as strictly quoted CSV. The write is
// atomic: data lands in a temp file that is renamed into place, so a
// failed save never leaves a truncated table behind.
func Save(snap *Snapshot, path string) error {
	var buf bytes.Buffer
	if err := Write(&buf, snap); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Write encodes the snapshot to w using the canonical header.
func Write(w io.Writer, snap *Snapshot) error {
	header := snap.Header()
	rows := make([][]string, 0, snap.Len())
	for _, e := range snap.Entries() {
		clean := SanitizeEntry(e)
		row := make([]string, len(header))
		for i, col := range header {
			row[i] = clean.Value(col)
		}
		rows = append(rows, row)
	}
	return WriteTable(w, header, rows)
}

// WriteTable writes one header row and the given data rows with every
// field quoted, independent of content. Sanitization has already removed
// embedded line breaks, so quoting here is belt and braces against
// commas and quote characters inside values.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	if err := writeRow(w, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeRow emits one fully quoted CSV record.
func writeRow(w io.Writer, fields []string) error {
	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
