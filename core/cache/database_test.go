package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"wardrobe-manager/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDatabaseStore_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store, err := NewDatabaseStore(db)
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, "version")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "version", []byte(`{"value":"a"}`)))
	require.NoError(t, store.Put(ctx, "version", []byte(`{"value":"b"}`)))

	data, ok, err := store.Get(ctx, "version")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"value":"b"}`, string(data))

	require.NoError(t, store.Put(ctx, "furnidata", []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, "version"))
	_, ok, _ = store.Get(ctx, "version")
	assert.False(t, ok)

	require.NoError(t, store.Clear(ctx))
	var count int64
	require.NoError(t, db.Model(&Record{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDatabaseStore_WithCache(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	store, err := NewDatabaseStore(db)
	require.NoError(t, err)

	clock := newClock()
	c := New(store, time.Hour, clock, nil)
	require.NoError(t, c.Set(ctx, "figuredata:PRODUCTION-1-1", "<figuredata/>", 0))

	var got string
	assert.True(t, c.Get(ctx, "figuredata:PRODUCTION-1-1", &got))
	assert.Equal(t, "<figuredata/>", got)
}

func TestDatabaseStore_QueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `wardrobe_cache_entries`").WillReturnError(errors.New("connection lost"))

	store := &DatabaseStore{db: db}
	_, ok, err := store.Get(context.Background(), "version")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection lost")
	assert.NoError(t, mock.ExpectationsWereMet())
}
