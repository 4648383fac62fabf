// Package report generates the downstream artifacts derived from a
// brand's master store: one CSV per lifecycle status, a per-brand plain
// text summary, and a combined summary across all brands of a run.
// Reports are projections; regenerating them never changes the master
// store.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/RolandGoud/bikescaper/internal/brandfiles"
	"github.com/RolandGoud/bikescaper/internal/fileutil"
	"github.com/RolandGoud/bikescaper/pkg/catalog"
	"github.com/RolandGoud/bikescaper/pkg/constants"
	"github.com/RolandGoud/bikescaper/pkg/errors"
)

// generatedLayout is the timestamp format in report headers.
const generatedLayout = "2006-01-02 15:04:05"

// Generate writes the three status CSVs and the status summary for a
// brand's master store. The file paths come from the brand layout.
func Generate(layout *brandfiles.Layout, master *catalog.Snapshot, now time.Time) error {
	if err := layout.EnsureDirs(); err != nil {
		return &errors.ReportError{Brand: layout.Brand, Path: layout.ReportsDir(), Err: err}
	}

	available := master.ByStatus(catalog.StatusAvailable)
	fresh := master.ByStatus(catalog.StatusNew)
	discontinued := master.ByStatus(catalog.StatusDiscontinued)

	if err := writeStatusCSV(layout.Brand, layout.AvailableCSV(), available); err != nil {
		return err
	}
	if err := writeStatusCSV(layout.Brand, layout.NewCSV(), fresh); err != nil {
		return err
	}
	if err := writeDiscontinuedCSV(layout.Brand, layout.DiscontinuedCSV(), discontinued); err != nil {
		return err
	}

	summary := renderSummary(layout.Brand, master, fresh, discontinued, now)
	if err := fileutil.WriteFileAtomic(layout.StatusSummary(), []byte(summary)); err != nil {
		return &errors.ReportError{Brand: layout.Brand, Path: layout.StatusSummary(), Err: err}
	}
	return nil
}

// writeStatusCSV saves a status subset with the canonical column order.
func writeStatusCSV(brand, path string, snap *catalog.Snapshot) error {
	var buf bytes.Buffer
	if err := catalog.Write(&buf, snap); err != nil {
		return &errors.ReportError{Brand: brand, Path: path, Err: err}
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return &errors.ReportError{Brand: brand, Path: path, Err: err}
	}
	return nil
}

// writeDiscontinuedCSV saves the discontinued subset with the derived
// date_discontinued column in second position, where a reader scanning
// the file sees it immediately after the name. The discontinuation date
// is the entry's last sighting.
func writeDiscontinuedCSV(brand, path string, snap *catalog.Snapshot) error {
	base := snap.Header()
	header := make([]string, 0, len(base)+1)
	header = append(header, base[0], constants.DateDiscontinuedColumn)
	header = append(header, base[1:]...)

	rows := make([][]string, 0, snap.Len())
	for _, e := range snap.Entries() {
		clean := catalog.SanitizeEntry(e)
		row := make([]string, len(header))
		for i, col := range header {
			if col == constants.DateDiscontinuedColumn {
				row[i] = clean.LastSeen
				continue
			}
			row[i] = clean.Value(col)
		}
		rows = append(rows, row)
	}

	var buf bytes.Buffer
	if err := catalog.WriteTable(&buf, header, rows); err != nil {
		return &errors.ReportError{Brand: brand, Path: path, Err: err}
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return &errors.ReportError{Brand: brand, Path: path, Err: err}
	}
	return nil
}

// renderSummary builds the per-brand status summary text.
func renderSummary(brand string, master, fresh, discontinued *catalog.Snapshot, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s Bikes Status Summary\n", brand)
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format(generatedLayout))

	counts := master.CountByStatus()
	sb.WriteString("OVERVIEW:\n")
	fmt.Fprintf(&sb, "Total bikes tracked: %d\n", master.Len())
	fmt.Fprintf(&sb, "Available: %d\n", counts[catalog.StatusAvailable])
	fmt.Fprintf(&sb, "New: %d\n", counts[catalog.StatusNew])
	fmt.Fprintf(&sb, "Discontinued: %d\n\n", counts[catalog.StatusDiscontinued])

	if fresh.Len() > 0 {
		sb.WriteString("NEW BIKES:\n")
		for _, e := range fresh.Entries() {
			fmt.Fprintf(&sb, "   - %s (%s) - Added %s\n", e.Name, priceLabel(e), e.FirstSeen)
		}
		sb.WriteString("\n")
	}

	if discontinued.Len() > 0 {
		sb.WriteString("DISCONTINUED BIKES:\n")
		for _, e := range discontinued.Entries() {
			fmt.Fprintf(&sb, "   - %s (%s) - Last seen %s\n", e.Name, priceLabel(e), e.LastSeen)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// priceLabel formats an entry's price field for the summary listings.
func priceLabel(e *catalog.Entry) string {
	price := e.Field("price")
	if price == "" {
		return "Price N/A"
	}
	return "€" + price
}

// BrandSummary is one brand's contribution to the combined summary.
type BrandSummary struct {
	Brand  string
	Counts map[catalog.Status]int
}

// total sums a brand's counts across statuses.
func (b BrandSummary) total() int {
	total := 0
	for _, count := range b.Counts {
		total += count
	}
	return total
}

// Combined writes the cross-brand summary for one invocation into the
// data directory.
func Combined(dataDir string, summaries []BrandSummary, now time.Time) error {
	var sb strings.Builder

	sb.WriteString("BIKE SCRAPER - MASTER DATABASE SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format(generatedLayout))

	var totalBikes, totalAvailable, totalNew, totalDiscontinued int
	for _, s := range summaries {
		fmt.Fprintf(&sb, "%s:\n", strings.ToUpper(s.Brand))
		fmt.Fprintf(&sb, "   Total bikes: %d\n", s.total())
		fmt.Fprintf(&sb, "   Available: %d\n", s.Counts[catalog.StatusAvailable])
		fmt.Fprintf(&sb, "   New: %d\n", s.Counts[catalog.StatusNew])
		fmt.Fprintf(&sb, "   Discontinued: %d\n\n", s.Counts[catalog.StatusDiscontinued])

		totalBikes += s.total()
		totalAvailable += s.Counts[catalog.StatusAvailable]
		totalNew += s.Counts[catalog.StatusNew]
		totalDiscontinued += s.Counts[catalog.StatusDiscontinued]
	}

	sb.WriteString("TOTAL ACROSS ALL BRANDS:\n")
	fmt.Fprintf(&sb, "   Total bikes tracked: %d\n", totalBikes)
	fmt.Fprintf(&sb, "   Available: %d\n", totalAvailable)
	fmt.Fprintf(&sb, "   New: %d\n", totalNew)
	fmt.Fprintf(&sb, "   Discontinued: %d\n", totalDiscontinued)

	path := brandfiles.CombinedSummary(dataDir)
	if err := fileutil.WriteFileAtomic(path, []byte(sb.String())); err != nil {
		return &errors.ReportError{Path: path, Err: err}
	}
	return nil
}
