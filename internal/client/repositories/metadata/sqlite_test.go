package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T, schema string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// :memory: is per connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

const kvSchema = `CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`

func newSQLiteRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db := openSQLite(t, kvSchema)
	return NewSQLiteRepository(db), db
}

func TestSQLite_StoresEachRecordKind(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()

	records := map[string][]byte{
		"jh_users":        []byte(`[{"id":1,"name":"Ada","email":"a@x.io"}]`),
		"jh_current_user": []byte("eyJhbGciOiJIUzI1NiJ9.e30.sig"),
		"jh_session_key":  {0x00, 0xff, 0x10, 0x80},
		"jh_v2":           []byte(`{"savedJobs":[],"applications":[],"postedJobs":[],"theme":"dark"}`),
	}
	for k, v := range records {
		require.NoError(t, r.Set(ctx, k, v))
	}

	for k, want := range records {
		got, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.Equal(t, want, got, k)
	}

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, all)
}

func TestSQLite_MissingKeyIsNilNil(t *testing.T) {
	r, _ := newSQLiteRepo(t)

	v, err := r.Get(context.Background(), "jh_users")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLite_SetOverwrites(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "jh_v2", []byte(`{"theme":"dark"}`)))
	require.NoError(t, r.Set(ctx, "jh_v2", []byte(`{"theme":"light"}`)))

	v, err := r.Get(ctx, "jh_v2")
	require.NoError(t, err)
	require.JSONEq(t, `{"theme":"light"}`, string(v))
}

func TestSQLite_DeleteAndClear(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "jh_users", []byte("[]")))
	require.NoError(t, r.Set(ctx, "jh_current_user", []byte("token")))

	require.NoError(t, r.Delete(ctx, "jh_current_user"))
	require.NoError(t, r.Delete(ctx, "jh_current_user"))
	v, err := r.Get(ctx, "jh_current_user")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Clear(ctx))
	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestSQLite_ClosedDBErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(r *SQLiteRepository) error
		want string
	}{
		{"get", func(r *SQLiteRepository) error { _, err := r.Get(ctx, "k"); return err }, "failed to get metadata[k]"},
		{"set", func(r *SQLiteRepository) error { return r.Set(ctx, "k", []byte("v")) }, "failed to set metadata[k]"},
		{"delete", func(r *SQLiteRepository) error { return r.Delete(ctx, "k") }, "failed to delete metadata[k]"},
		{"clear", func(r *SQLiteRepository) error { return r.Clear(ctx) }, "failed to clear metadata"},
		{"list", func(r *SQLiteRepository) error { _, err := r.List(ctx); return err }, "failed to list metadata"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, db := newSQLiteRepo(t)
			require.NoError(t, db.Close())
			require.ErrorContains(t, tc.call(r), tc.want)
		})
	}
}

func TestSQLite_ListKeepsNullValuesAsNil(t *testing.T) {
	db := openSQLite(t, `CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB);`)
	r := NewSQLiteRepository(db)

	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES ('jh_v2', NULL);`)
	require.NoError(t, err)

	m, err := r.List(context.Background())
	require.NoError(t, err)
	v, ok := m["jh_v2"]
	require.True(t, ok)
	require.Nil(t, v)
}

func TestSQLite_InTxCommitsUsersWithSession(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()

	err := r.InTx(ctx, func(ctx context.Context, tx Repository) error {
		if err := tx.Set(ctx, "jh_users", []byte("[]")); err != nil {
			return err
		}
		return tx.Set(ctx, "jh_current_user", []byte("token"))
	})
	require.NoError(t, err)

	m, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, m, 2)
}

func TestSQLite_InTxRollsBackOnError(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := InTx(ctx, r, func(ctx context.Context, tx Repository) error {
		require.NoError(t, tx.Set(ctx, "jh_users", []byte("[]")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	v, err := r.Get(ctx, "jh_users")
	require.NoError(t, err)
	require.Nil(t, v)
}
