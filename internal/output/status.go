package output

import (
	"strconv"

	"github.com/olekukonko/tablewriter/tw"

	"github.com/RolandGoud/bikescaper/pkg/catalog"
)

// BrandRow is the serializable form of one brand's lifecycle tally,
// used for the json and yaml output formats.
type BrandRow struct {
	Brand        string `json:"brand" yaml:"brand"`
	Total        int    `json:"total" yaml:"total"`
	New          int    `json:"new" yaml:"new"`
	Available    int    `json:"available" yaml:"available"`
	Discontinued int    `json:"discontinued" yaml:"discontinued"`
}

// NewBrandRow builds a BrandRow from a brand's status counts.
func NewBrandRow(brand string, counts map[catalog.Status]int) BrandRow {
	row := BrandRow{
		Brand:        brand,
		New:          counts[catalog.StatusNew],
		Available:    counts[catalog.StatusAvailable],
		Discontinued: counts[catalog.StatusDiscontinued],
	}
	row.Total = row.New + row.Available + row.Discontinued
	return row
}

// BrandRowsToTableData converts brand rows into table output form with
// numeric columns right-aligned.
func BrandRowsToTableData(rows []BrandRow) Data {
	data := Data{
		Headers: []string{"Brand", "Total", "New", "Available", "Discontinued"},
		ColumnAlignment: []tw.Align{
			tw.AlignLeft,
			tw.AlignRight,
			tw.AlignRight,
			tw.AlignRight,
			tw.AlignRight,
		},
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, []string{
			row.Brand,
			strconv.Itoa(row.Total),
			strconv.Itoa(row.New),
			strconv.Itoa(row.Available),
			strconv.Itoa(row.Discontinued),
		})
	}
	return data
}
