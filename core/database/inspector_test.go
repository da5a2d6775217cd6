package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE problem_statuses (id INTEGER PRIMARY KEY, problem_index TEXT, status TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "problem_statuses")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["problem_index"])
	assert.Equal(t, "text", colMap["status"])

	// PRAGMA table_info yields no rows for an unknown table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE students (id INTEGER PRIMARY KEY, name TEXT)").Error)

	missing, err := MissingColumns(db, "students", []string{"id", "Name", "handle"})
	require.NoError(t, err)
	assert.Equal(t, []string{"handle"}, missing)

	missing, err = MissingColumns(db, "contests", []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}
