package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenDefaultsToSQLite(t *testing.T) {
	db, dialect, err := Open("", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.Equal(t, DialectSQLite, dialect)
	require.NotNil(t, db)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	require.Equal(t, 1, one)
}

func TestOpenNonPostgresURLFallsBackToSQLite(t *testing.T) {
	// only a postgres connection string selects the networked dialect
	_, dialect, err := Open("file:whatever", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.Equal(t, DialectSQLite, dialect)
}
