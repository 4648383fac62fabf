package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RolandGoud/bikescaper/pkg/catalog"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "JSON", ""} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, valid)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	rows := []BrandRow{NewBrandRow("Canyon", map[catalog.Status]int{
		catalog.StatusAvailable: 3,
		catalog.StatusNew:       1,
	})}

	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, rows))

	assert.Contains(t, buf.String(), `"brand": "Canyon"`)
	assert.Contains(t, buf.String(), `"total": 4`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	rows := []BrandRow{NewBrandRow("Trek", map[catalog.Status]int{
		catalog.StatusDiscontinued: 2,
	})}

	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, rows))

	assert.Contains(t, buf.String(), "brand: Trek")
	assert.Contains(t, buf.String(), "discontinued: 2")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := BrandRowsToTableData([]BrandRow{
		NewBrandRow("Canyon", map[catalog.Status]int{catalog.StatusNew: 1}),
	})

	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))

	out := buf.String()
	assert.Contains(t, out, "BRAND")
	assert.Contains(t, out, "Canyon")
	assert.Equal(t, 1, strings.Count(out, "Canyon"))
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("yaml"))
	assert.Equal(t, FormatTable, DetectFormat("TABLE"))
}
