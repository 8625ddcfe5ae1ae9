package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const cacheTableDDL = `CREATE TABLE wardrobe_cache_entries (
	cache_key varchar(191) NOT NULL PRIMARY KEY,
	payload blob,
	updated_at datetime
)`

func columnsByField(columns []ColumnInfo) map[string]ColumnInfo {
	out := make(map[string]ColumnInfo, len(columns))
	for _, col := range columns {
		out[col.Field] = col
	}
	return out
}

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec(cacheTableDDL).Error)

	columns, err := GetTableColumns(db, "wardrobe_cache_entries")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	cols := columnsByField(columns)
	assert.Equal(t, "varchar(191)", cols["cache_key"].Type)
	assert.Equal(t, "PRI", cols["cache_key"].Key)
	assert.Equal(t, "NO", cols["cache_key"].Null)
	assert.Equal(t, "blob", cols["payload"].Type)
	assert.Equal(t, "YES", cols["payload"].Null)
	assert.Equal(t, "datetime", cols["updated_at"].Type)

	// PRAGMA table_info answers an unknown table with no rows.
	cols2, err := GetTableColumns(db, "wardrobe_missing")
	assert.NoError(t, err)
	assert.Empty(t, cols2)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("Cache_Key", "VARCHAR(191)", "NO", "PRI", nil, "").
		AddRow("payload", "LONGBLOB", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `wardrobe_cache_entries`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "wardrobe_cache_entries")
	require.NoError(t, err)

	cols := columnsByField(columns)
	assert.Equal(t, "varchar(191)", cols["cache_key"].Type)
	assert.Equal(t, "longblob", cols["payload"].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_MySQLError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SHOW COLUMNS FROM").WillReturnError(assert.AnError)

	_, err = GetTableColumns(db, "wardrobe_cache_entries")
	assert.ErrorContains(t, err, "wardrobe_cache_entries")
}
