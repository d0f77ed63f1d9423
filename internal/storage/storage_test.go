package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/stride/internal/config"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/plan"
	"github.com/misterclayt0n/stride/internal/tracker"
)

var now = time.Date(2026, 3, 2, 8, 0, 0, 123456789, time.UTC)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	st, err := New(context.Background(), db)
	require.NoError(t, err)
	return st
}

func newProgram(race string) *models.Program {
	return newProgramAt(race, now)
}

func newProgramAt(race string, created time.Time) *models.Program {
	return plan.Generate(models.Settings{
		Distance:        models.DistanceMarathon,
		Level:           models.LevelAdvanced,
		RaceName:        race,
		RaceDate:        now.AddDate(0, 0, 120),
		SessionsPerWeek: 5,
		TimeObjective:   "3h15",
		VMA:             16.5,
		RaceInfo:        &models.RaceInfo{Name: race, Date: now.AddDate(0, 0, 120), Elevation: 620},
	}, created)
}

func TestActiveProgramRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	p := newProgram("Berlin Marathon")
	p, err := tracker.ToggleComplete(p, "w01-tue-interval")
	require.NoError(t, err)
	p, err = tracker.SetFeedback(p, "w01-tue-interval", models.FeedbackHard)
	require.NoError(t, err)

	require.NoError(t, st.SaveActiveProgram(ctx, p))

	got, err := st.LoadActiveProgram(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSaveActiveProgramReplaces(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	require.NoError(t, st.SaveActiveProgram(ctx, newProgram("First")))
	require.NoError(t, st.SaveActiveProgram(ctx, newProgram("Second")))

	got, err := st.LoadActiveProgram(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", got.RaceName)

	var n int
	require.NoError(t, st.DB.QueryRow("SELECT COUNT(*) FROM programs").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestLoadActiveProgramEmpty(t *testing.T) {
	st := newTestStorage(t)

	_, err := st.LoadActiveProgram(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveProgram)

	ok, err := st.HasActiveProgram(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArchiveActiveProgram(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	paris, err := tracker.ToggleComplete(newProgram("Paris"), "w01-tue-interval")
	require.NoError(t, err)
	require.NoError(t, st.SaveActiveProgram(ctx, paris))
	_, err = st.ArchiveActiveProgram(ctx, now.AddDate(0, 0, 10))
	require.NoError(t, err)

	require.NoError(t, st.SaveActiveProgram(ctx, newProgramAt("Valencia", now.Add(time.Hour))))
	archived, err := st.ArchiveActiveProgram(ctx, now.AddDate(0, 0, 20))
	require.NoError(t, err)
	require.NotNil(t, archived.ArchivedAt)

	_, err = st.LoadActiveProgram(ctx)
	assert.ErrorIs(t, err, ErrNoActiveProgram)

	history, err := st.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Valencia", history[0].RaceName, "newest first")
	assert.Equal(t, "Paris", history[1].RaceName)
	assert.Equal(t, models.DistanceMarathon, history[1].Distance)
	assert.Equal(t, paris.TotalWeeks, history[1].TotalWeeks)
	assert.Equal(t, 1, history[1].Progress.Completed)
	assert.Equal(t, tracker.ComputeProgress(paris).Planned, history[1].Progress.Planned)
	assert.Zero(t, history[0].Progress.Completed)

	got, err := st.GetArchived(ctx, history[0].ID)
	require.NoError(t, err)
	assert.Equal(t, archived, got)

	byProgram, err := st.GetArchived(ctx, history[1].ProgramID)
	require.NoError(t, err)
	assert.Equal(t, "Paris", byProgram.RaceName)

	_, err = st.GetArchived(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := st.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	history, err = st.ListHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetArchivedSharedProgramID(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	// Same creation instant, so both programs carry the same ID.
	first, second := newProgram("Paris"), newProgram("Valencia")
	require.Equal(t, first.ID, second.ID)

	require.NoError(t, st.SaveActiveProgram(ctx, first))
	_, err := st.ArchiveActiveProgram(ctx, now.AddDate(0, 0, 10))
	require.NoError(t, err)
	require.NoError(t, st.SaveActiveProgram(ctx, second))
	_, err = st.ArchiveActiveProgram(ctx, now.AddDate(0, 0, 20))
	require.NoError(t, err)

	history, err := st.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)

	for _, e := range history {
		got, err := st.GetArchived(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.RaceName, got.RaceName)
	}

	newest, err := st.GetArchived(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Valencia", newest.RaceName)
}

func TestInitializeDBAddsHistorySummaryColumns(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE program_history (
        id TEXT PRIMARY KEY,
        program_id TEXT NOT NULL,
        race_name TEXT,
        archived_at TEXT NOT NULL,
        data TEXT NOT NULL
    )`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO program_history (id, program_id, race_name, archived_at, data)
        VALUES ('h1', 'p1', 'Old Race', '2025-10-01T10:00:00Z', '{}')`)
	require.NoError(t, err)

	st, err := New(ctx, db)
	require.NoError(t, err)
	require.NoError(t, InitializeDB(ctx, db), "second run is a no-op")

	history, err := st.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Old Race", history[0].RaceName)
	assert.Zero(t, history[0].TotalWeeks)
	assert.Zero(t, history[0].Progress.Percent())
}

func TestArchiveWithoutActiveProgram(t *testing.T) {
	_, err := newTestStorage(t).ArchiveActiveProgram(context.Background(), now)
	assert.ErrorIs(t, err, ErrNoActiveProgram)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	empty, err := st.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Profile{}, empty)

	p := &models.Profile{Name: "Sam", Level: models.LevelIntermediate, VMA: 15.2, Weight: 64}
	require.NoError(t, st.SaveProfile(ctx, p))
	p.VMA = 15.6
	require.NoError(t, st.SaveProfile(ctx, p))

	got, err := st.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15.6, got.VMA)
	assert.Equal(t, "Sam", got.Name)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestTOMLDumpRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestStorage(t)

	require.NoError(t, src.SaveActiveProgram(ctx, newProgram("Chicago")))
	_, err := src.ArchiveActiveProgram(ctx, now)
	require.NoError(t, err)
	p := newProgram("Boston")
	require.NoError(t, src.SaveActiveProgram(ctx, p))
	require.NoError(t, src.SaveProfile(ctx, &models.Profile{Name: "Sam", VMA: 15}))

	path := filepath.Join(t.TempDir(), "dump.toml")
	require.NoError(t, src.ExportDBToTOML(ctx, path))

	dst := newTestStorage(t)
	require.NoError(t, dst.SaveActiveProgram(ctx, newProgram("Overwritten")))
	require.NoError(t, dst.ImportDBFromTOML(ctx, path))

	got, err := dst.LoadActiveProgram(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	history, err := dst.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Chicago", history[0].RaceName)

	profile, err := dst.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sam", profile.Name)
}

func TestDriverFor(t *testing.T) {
	tests := []struct {
		name, conn, token string
		driver, dsn       string
	}{
		{"local file", "file:./stride.db", "", "sqlite", "file:./stride.db"},
		{"memory", ":memory:", "", "sqlite", ":memory:"},
		{"turso", "libsql://runs.turso.io", "", "libsql", "libsql://runs.turso.io"},
		{"turso with token", "libsql://runs.turso.io", "abc", "libsql", "libsql://runs.turso.io?authToken=abc"},
		{"http", "http://127.0.0.1:8080", "", "libsql", "http://127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, dsn, err := driverFor(tt.conn, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.dsn, dsn)
		})
	}

	_, _, err := driverFor("", "")
	assert.Error(t, err)
}

func TestNewStorageLocalFile(t *testing.T) {
	cfg := config.Default()
	cfg.DB.ConnectionString = "file:" + filepath.Join(t.TempDir(), "stride.db")

	st, err := NewStorage(context.Background(), cfg)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.SaveActiveProgram(context.Background(), newProgram("Local")))
}
