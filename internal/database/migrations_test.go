package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRunMigrations_CreatesTables(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.RunMigrations())

	for _, table := range []string{"users", "events", "bookings", "schema_migrations"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		assert.NoError(t, err, "expected table %s to exist", table)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.RunMigrations())
	require.NoError(t, db.RunMigrations())

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 3, count)
}

func TestLoadMigrations_Ordered(t *testing.T) {
	db := newTestDB(t)
	migrator := NewMigrator(db.DB)

	migrations, err := migrator.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	for i := 1; i < len(migrations); i++ {
		assert.Greater(t, migrations[i].Version, migrations[i-1].Version)
	}
}

func TestGetMigrationStatus(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, db.GetMigrationStatus())
}
