package store

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, InitSchema(db))
	return NewSQLite(db)
}

func TestSQLiteGetAbsent(t *testing.T) {
	s := newTestSQLite(t)
	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteSetGetOverwrite(t *testing.T) {
	s := newTestSQLite(t)
	require.NoError(t, s.Set("staff-name", "山田"))

	v, ok, err := s.Get("staff-name")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "山田", v)

	require.NoError(t, s.Set("staff-name", "佐藤"))
	v, _, _ = s.Get("staff-name")
	require.Equal(t, "佐藤", v)
}

func TestSQLiteRemove(t *testing.T) {
	s := newTestSQLite(t)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Remove("k"))

	_, ok, err := s.Get("k")
	require.NoError(t, err)
	require.False(t, ok)

	// 無いキーの削除はエラーにならない
	require.NoError(t, s.Remove("k"))
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	_, ok, _ := m.Get("a")
	require.False(t, ok)

	require.NoError(t, m.Set("a", "1"))
	v, ok, _ := m.Get("a")
	require.True(t, ok)
	require.Equal(t, "1", v)

	require.NoError(t, m.Remove("a"))
	_, ok, _ = m.Get("a")
	require.False(t, ok)
}
