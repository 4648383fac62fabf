package reconciler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RolandGoud/bikescaper/internal/brandfiles"
	"github.com/RolandGoud/bikescaper/internal/fileutil"
	"github.com/RolandGoud/bikescaper/pkg/catalog"
	"github.com/RolandGoud/bikescaper/pkg/errors"
	"github.com/RolandGoud/bikescaper/pkg/reconciler"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newReconciler(t *testing.T, opts ...reconciler.Option) reconciler.Reconciler {
	t.Helper()
	r, err := reconciler.New(opts...)
	require.NoError(t, err)
	return r
}

func TestReconcilerFirstRun(t *testing.T) {
	dataDir := t.TempDir()
	layout := brandfiles.New(dataDir, "Canyon")
	writeFile(t, layout.LatestCSV(), "name,price\nAeroad CF SLX,6499\nGrail CF SL,3299\n")

	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	r := newReconciler(t,
		reconciler.WithDataDir(dataDir),
		reconciler.WithClock(fixedClock(day)),
	)

	result, err := r.Brand(context.Background(), "Canyon")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Canyon", result.Brand)
	assert.Equal(t, 2, result.Master.Len())
	assert.Equal(t, 2, result.Counts[catalog.StatusNew])
	assert.Equal(t, 2, result.Stats.EntriesProcessed)
	assert.Empty(t, result.Warnings)
	assert.False(t, result.Metadata.EndTime.IsZero())

	entry, ok := result.Master.Get("Aeroad CF SLX")
	require.True(t, ok)
	assert.Equal(t, catalog.StatusNew, entry.Status)
	assert.Equal(t, "14-03-2026", entry.FirstSeen)
	assert.Equal(t, "14-03-2026", entry.LastSeen)
	assert.Equal(t, "Canyon", entry.Brand)
	assert.Equal(t, "6499", entry.Field("price"))
	assert.NotEmpty(t, entry.LastUpdated)

	// persisted artifacts
	assert.FileExists(t, layout.MasterCSV())
	assert.FileExists(t, layout.MasterYAML())
	assert.FileExists(t, layout.HistoricalCopy(day))

	// the persisted master round-trips
	reloaded, err := catalog.Load(layout.MasterCSV())
	require.NoError(t, err)
	if diff := cmp.Diff(result.Master.Entries(), reloaded.Entries()); diff != "" {
		t.Errorf("reloaded master store mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcilerLifecycleTransitions(t *testing.T) {
	dataDir := t.TempDir()
	layout := brandfiles.New(dataDir, "Canyon")

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	r := newReconciler(t,
		reconciler.WithDataDir(dataDir),
		reconciler.WithClock(func() time.Time { return now }),
	)

	// day one: A and B are current
	writeFile(t, layout.LatestCSV(), "name,price\nModel A,1000\nModel B,2000\n")
	_, err := r.Brand(context.Background(), "Canyon")
	require.NoError(t, err)

	// day two: B survives, A disappears, C appears
	now = now.AddDate(0, 0, 7)
	writeFile(t, layout.LatestCSV(), "name,price\nModel B,2100\nModel C,3000\n")
	result, err := r.Brand(context.Background(), "Canyon")
	require.NoError(t, err)

	// the union of everything ever observed is retained
	require.Equal(t, 3, result.Master.Len())
	assert.Equal(t, []string{"Model A", "Model B", "Model C"}, result.Master.Names())
	assert.Equal(t, 1, result.Counts[catalog.StatusNew])
	assert.Equal(t, 1, result.Counts[catalog.StatusAvailable])
	assert.Equal(t, 1, result.Counts[catalog.StatusDiscontinued])

	a, _ := result.Master.Get("Model A")
	assert.Equal(t, catalog.StatusDiscontinued, a.Status)
	assert.Equal(t, "14-03-2026", a.FirstSeen, "first seen date survives discontinuation")
	assert.Equal(t, "14-03-2026", a.LastSeen, "last seen stays at the last sighting")
	assert.Equal(t, "1000", a.Field("price"), "last known data survives discontinuation")

	b, _ := result.Master.Get("Model B")
	assert.Equal(t, catalog.StatusAvailable, b.Status)
	assert.Equal(t, "14-03-2026", b.FirstSeen)
	assert.Equal(t, "21-03-2026", b.LastSeen)
	assert.Equal(t, "2100", b.Field("price"), "current data replaces the master copy")

	c, _ := result.Master.Get("Model C")
	assert.Equal(t, catalog.StatusNew, c.Status)
	assert.Equal(t, "21-03-2026", c.FirstSeen)
	assert.Equal(t, "21-03-2026", c.LastSeen)
}

func TestReconcilerRerunIsStable(t *testing.T) {
	dataDir := t.TempDir()
	layout := brandfiles.New(dataDir, "Canyon")
	writeFile(t, layout.LatestCSV(), "name,price\nModel A,1000\nModel B,2000\n")

	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	r := newReconciler(t,
		reconciler.WithDataDir(dataDir),
		reconciler.WithClock(fixedClock(day)),
	)

	ctx := context.Background()
	_, err := r.Brand(ctx, "Canyon")
	require.NoError(t, err)
	_, err = r.Brand(ctx, "Canyon")
	require.NoError(t, err)
	second, err := os.ReadFile(layout.MasterCSV())
	require.NoError(t, err)

	_, err = r.Brand(ctx, "Canyon")
	require.NoError(t, err)
	third, err := os.ReadFile(layout.MasterCSV())
	require.NoError(t, err)

	assert.Equal(t, string(second), string(third), "rerunning with identical inputs reproduces the master store")
}

func TestReconcilerArchiveOnlyEntry(t *testing.T) {
	dataDir := t.TempDir()
	archiveDir := t.TempDir()
	layout := brandfiles.New(dataDir, "Canyon")

	writeFile(t, layout.LatestCSV(), "name,price\nModel A,1000\n")
	archivePath := filepath.Join(archiveDir, "canyon_bikes_15-01-2024.csv")
	writeFile(t, archivePath, "name,price\nModel A,900\nModel D,4500\n")

	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	r := newReconciler(t,
		reconciler.WithDataDir(dataDir),
		reconciler.WithClock(fixedClock(day)),
		reconciler.WithArchiveDirs(archiveDir),
	)

	result, err := r.Brand(context.Background(), "Canyon")
	require.NoError(t, err)

	assert.Equal(t, archivePath, result.ArchivePath)
	assert.Equal(t, "15-01-2024", result.ArchiveDate)

	// D was only ever seen in the archive: discontinued, bounded by the
	// archive's own date
	d, ok := result.Master.Get("Model D")
	require.True(t, ok)
	assert.Equal(t, catalog.StatusDiscontinued, d.Status)
	assert.Equal(t, "15-01-2024", d.FirstSeen)
	assert.Equal(t, "15-01-2024", d.LastSeen)
	assert.Equal(t, "4500", d.Field("price"))

	// A is current, so the archive's older copy of it is ignored
	a, ok := result.Master.Get("Model A")
	require.True(t, ok)
	assert.Equal(t, catalog.StatusNew, a.Status)
	assert.Equal(t, "1000", a.Field("price"))
}

func TestReconcilerArchiveUpgradesSparseMasterEntry(t *testing.T) {
	dataDir := t.TempDir()
	archiveDir := t.TempDir()
	layout := brandfiles.New(dataDir, "Canyon")

	writeFile(t, layout.LatestCSV(), "name,price\nModel A,1000\n")
	writeFile(t, layout.MasterCSV(),
		"name,brand,price,status,first_seen_date,last_seen_date,last_updated\n"+
			"Model A,Canyon,1000,Available,01-02-2025,01-03-2025,\n"+
			"Grail,Canyon,,Available,01-02-2025,01-03-2025,\n")
	writeFile(t, filepath.Join(archiveDir, "canyon_bikes_10-04-2025.csv"),
		"name,price,color\nGrail,2999,red\n")

	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	r := newReconciler(t,
		reconciler.WithDataDir(dataDir),
		reconciler.WithClock(fixedClock(day)),
		reconciler.WithArchiveDirs(archiveDir),
	)

	result, err := r.Brand(context.Background(), "Canyon")
	require.NoError(t, err)

	// the archive copy of Grail carries more data than the master's,
	// so its fields win
	grail, ok := result.Master.Get("Grail")
	require.True(t, ok)
	assert.Equal(t, catalog.StatusDiscontinued, grail.Status)
	assert.Equal(t, "2999", grail.Field("price"))
	assert.Equal(t, "red", grail.Field("color"))
	assert.Equal(t, "10-04-2025", grail.FirstSeen)
	assert.Equal(t, "10-04-2025", grail.LastSeen)
}

func TestReconcilerMissingCurrentSnapshot(t *testing.T) {
	dataDir := t.TempDir()
	layout := brandfiles.New(dataDir, "Canyon")
	masterBefore := "name,brand,price,status,first_seen_date,last_seen_date,last_updated\n" +
		"Model A,Canyon,1000,Available,01-02-2025,01-03-2025,\n"
	writeFile(t, layout.MasterCSV(), masterBefore)

	r := newReconciler(t, reconciler.WithDataDir(dataDir))

	result, err := r.Brand(context.Background(), "Canyon")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsSnapshotLoad(err))

	// a failed run leaves the master store untouched
	after, readErr := os.ReadFile(layout.MasterCSV())
	require.NoError(t, readErr)
	assert.Equal(t, masterBefore, string(after))
}

func TestReconcilerCorruptMaster(t *testing.T) {
	dataDir := t.TempDir()
	layout := brandfiles.New(dataDir, "Canyon")
	writeFile(t, layout.LatestCSV(), "name,price\nModel A,1000\n")

	// an existing master store without the key column must abort the
	// run rather than be rebuilt from scratch
	corrupt := "model,price\nModel A,1000\n"
	writeFile(t, layout.MasterCSV(), corrupt)

	r := newReconciler(t, reconciler.WithDataDir(dataDir))

	_, err := r.Brand(context.Background(), "Canyon")
	require.Error(t, err)
	assert.True(t, errors.IsSnapshotLoad(err))

	after, readErr := os.ReadFile(layout.MasterCSV())
	require.NoError(t, readErr)
	assert.Equal(t, corrupt, string(after))
}

func TestReconcilerEmptyBrand(t *testing.T) {
	r := newReconciler(t, reconciler.WithDataDir(t.TempDir()))

	_, err := r.Brand(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestReconcilerHeldLock(t *testing.T) {
	dataDir := t.TempDir()
	layout := brandfiles.New(dataDir, "Canyon")
	require.NoError(t, layout.EnsureDirs())
	writeFile(t, layout.LatestCSV(), "name,price\nModel A,1000\n")

	lock, err := fileutil.AcquireLock(layout.MasterCSV())
	require.NoError(t, err)
	defer lock.Release()

	r := newReconciler(t, reconciler.WithDataDir(dataDir))

	_, err = r.Brand(context.Background(), "Canyon")
	require.Error(t, err)
	assert.True(t, errors.IsLocked(err))
}

func TestReconcilerOptions(t *testing.T) {
	_, err := reconciler.New(reconciler.WithDataDir(""))
	require.Error(t, err)

	_, err = reconciler.New(reconciler.WithClock(nil))
	require.Error(t, err)
}

func TestReconcilerDisabledArtifacts(t *testing.T) {
	dataDir := t.TempDir()
	layout := brandfiles.New(dataDir, "Canyon")
	writeFile(t, layout.LatestCSV(), "name,price\nModel A,1000\n")

	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	r := newReconciler(t,
		reconciler.WithDataDir(dataDir),
		reconciler.WithClock(fixedClock(day)),
		reconciler.WithHistory(false),
		reconciler.WithSidecar(false),
	)

	_, err := r.Brand(context.Background(), "Canyon")
	require.NoError(t, err)

	assert.FileExists(t, layout.MasterCSV())
	assert.NoFileExists(t, layout.MasterYAML())
	assert.NoFileExists(t, layout.HistoricalCopy(day))
}
