package brandfiles

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutPaths(t *testing.T) {
	l := New("data", "Canyon")

	assert.Equal(t, filepath.Join("data", "canyon_bikes_latest.csv"), l.LatestCSV())
	assert.Equal(t, filepath.Join("data", "Canyon", "master", "master_canyon_bikes_all.csv"), l.MasterCSV())
	assert.Equal(t, filepath.Join("data", "Canyon", "master", "master_canyon_bikes_all.yaml"), l.MasterYAML())
	assert.Equal(t, filepath.Join("data", "Canyon", "reports", "canyon_bikes_new.csv"), l.NewCSV())
	assert.Equal(t, filepath.Join("data", "Canyon", "reports", "canyon_bikes_available.csv"), l.AvailableCSV())
	assert.Equal(t, filepath.Join("data", "Canyon", "reports", "canyon_bikes_discontinued.csv"), l.DiscontinuedCSV())
	assert.Equal(t, filepath.Join("data", "Canyon", "reports", "canyon_status_summary.txt"), l.StatusSummary())
}

func TestHistoricalCopyHasParseableTimestamp(t *testing.T) {
	l := New("data", "Trek")
	ts := time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)

	assert.Equal(t,
		filepath.Join("data", "Trek", "historical", "trek_bikes_2024-06-01.csv"),
		l.HistoricalCopy(ts))
}

func TestEnsureDirs(t *testing.T) {
	dataDir := t.TempDir()
	l := New(dataDir, "Canyon")

	require.NoError(t, l.EnsureDirs())

	for _, dir := range []string{l.BrandDir(), l.MasterDir(), l.ReportsDir(), l.HistoricalDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestDetectBrands(t *testing.T) {
	dataDir := t.TempDir()
	for _, name := range []string{
		"canyon_bikes_latest.csv",
		"trek_bikes_latest.csv",
		"unrelated.csv",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte("name\n"), 0o644))
	}

	brands, err := DetectBrands(dataDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Canyon", "Trek"}, brands)
}

func TestDetectBrandsEmptyDir(t *testing.T) {
	brands, err := DetectBrands(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, brands)
}
