package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableName is the table backing DatabaseStore.
const TableName = "wardrobe_cache_entries"

// Record is a cache row.
type Record struct {
	CacheKey  string    `gorm:"column:cache_key;primaryKey;type:varchar(191)"`
	Payload   []byte    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName implements gorm's tabler.
func (Record) TableName() string { return TableName }

// DatabaseStore persists entries in a SQL table through GORM.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore migrates the cache table and returns the store.
func NewDatabaseStore(db *gorm.DB) (*DatabaseStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", TableName, err)
	}
	return &DatabaseStore{db: db}, nil
}

func (s *DatabaseStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec Record
	err := s.db.WithContext(ctx).Where("cache_key = ?", key).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select cache entry: %w", err)
	}
	return rec.Payload, true, nil
}

func (s *DatabaseStore) Put(ctx context.Context, key string, data []byte) error {
	rec := Record{CacheKey: key, Payload: data}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("upsert cache entry: %w", err)
	}
	return nil
}

func (s *DatabaseStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("cache_key = ?", key).Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

func (s *DatabaseStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("clear cache entries: %w", err)
	}
	return nil
}
