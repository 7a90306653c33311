package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	db, err := New(Config{
		Path: filepath.Join(t.TempDir(), "runs.db"),
		Name: "runs",
	})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "runs", db.Name())
	assert.NotNil(t, db.Conn())

	// Writes work through the configured connection.
	_, err = db.Conn().Exec("CREATE TABLE t (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = db.Conn().Exec("INSERT INTO t (id) VALUES (1)")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM t").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestNewCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "runs.db")

	db, err := New(Config{Path: path, Name: "runs"})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, path, db.Path())
}

func TestBuildConnectionString(t *testing.T) {
	conn := buildConnectionString("/tmp/runs.db")

	assert.True(t, strings.HasPrefix(conn, "/tmp/runs.db?"))
	assert.Contains(t, conn, "journal_mode(WAL)")
	assert.Contains(t, conn, "foreign_keys(1)")
}
