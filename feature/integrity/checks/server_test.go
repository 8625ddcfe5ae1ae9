package checks

import (
	"testing"

	"wardrobe-manager/core/cache"
	"wardrobe-manager/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

type statusModel struct {
	ID    int    `gorm:"column:id;type:int"`
	State string `gorm:"column:state;type:enum('on','off')"`
	Note  string
}

func (statusModel) TableName() string { return "wardrobe_status" }

func columns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckServerIntegrity_NilDB(t *testing.T) {
	report, err := CheckServerIntegrity(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckServerIntegrity_CacheTable(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columns().
		AddRow("cache_key", "varchar(191)", "NO", "PRI", nil, "").
		AddRow("payload", "longblob", "YES", "", nil, "").
		AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `wardrobe_cache_entries`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "mysql", report.Driver)
	assert.Equal(t, "ok", report.Tables[cache.TableName].Status)
}

func TestCheckServerIntegrity_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columns().
		AddRow("cache_key", "varchar(191)", "NO", "PRI", nil, "").
		AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `wardrobe_cache_entries`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	tbl := report.Tables[cache.TableName]
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"payload"}, tbl.MissingColumns)
}

func TestCheckServerIntegrity_MissingTable(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `wardrobe_cache_entries`").WillReturnRows(columns())

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "table does not exist")
}

func TestCheckServerIntegrity_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columns().
		AddRow("id", "varchar(10)", "NO", "PRI", nil, "").
		AddRow("state", "enum('off','on','unknown')", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `wardrobe_status`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db, statusModel{})
	require.NoError(t, err)

	tbl := report.Tables["wardrobe_status"]
	assert.Equal(t, []string{"id: expected int, got varchar(10)"}, tbl.TypeMismatches)
	assert.Empty(t, tbl.MissingColumns)
}

func TestCheckServerIntegrity_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	_, err = cache.NewDatabaseStore(db)
	require.NoError(t, err)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.True(t, report.Matched, "errors: %v, tables: %v", report.Errors, report.Tables)
	assert.Equal(t, "sqlite", report.Driver)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "item_name", parseGormColumn("primaryKey;column:item_name;type:varchar(100)"))
	assert.Equal(t, "int(11)", parseGormType("column:id;type:int(11)"))
	assert.Equal(t, "", parseGormType("column:id"))
}
