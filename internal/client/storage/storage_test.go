package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/jobhunt/internal/client/config"
	"github.com/dmitrijs2005/jobhunt/internal/client/repositories/metadata"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = filepath.Join(t.TempDir(), "data")
	return cfg
}

func TestOpen_SQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, sqliteConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NotNil(t, st.DB)
	require.True(t, tableExists(t, st.DB, "goose_db_version"))
	require.True(t, tableExists(t, st.DB, "metadata"))

	_, ok := st.Metadata.(*metadata.SQLiteRepository)
	require.True(t, ok)
}

func TestOpen_SQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t)

	st, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, st.Metadata.Set(ctx, "jh_v2", []byte(`{"theme":"light"}`)))
	require.NoError(t, st.Close())

	st, err = Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	v, err := st.Metadata.Get(ctx, "jh_v2")
	require.NoError(t, err)
	require.JSONEq(t, `{"theme":"light"}`, string(v))
}

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{StorageDriver: config.DriverMemory}
	st, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	require.Nil(t, st.DB)
	require.NoError(t, st.Close())

	_, ok := st.Metadata.(*metadata.MemoryRepository)
	require.True(t, ok)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StorageDriver: "mongo"})
	require.ErrorContains(t, err, "unknown storage driver")
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db, "sqlite3"))
	require.NoError(t, RunMigrations(ctx, db, "sqlite3"))
	require.True(t, tableExists(t, db, "metadata"))
}

func TestRunMigrations_ErrorsAreWrapped(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("boom")
	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return boom
	}

	err := RunMigrations(context.Background(), &sql.DB{}, "postgres")
	require.ErrorIs(t, err, boom)
	require.Equal(t, "postgres", gotDir)

	err = RunMigrations(context.Background(), &sql.DB{}, "no-such-dialect")
	require.ErrorContains(t, err, "goose dialect")
}
