package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	storageEntity "coffeebar.GO/model/entity/storage"
)

type StorageRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// NewStorageRepository migrates the local_storage table and returns a repository on it.
func NewStorageRepository(db *gorm.DB) (*StorageRepository, error) {
	if err := db.AutoMigrate(&storageEntity.StorageItem{}); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &StorageRepository{db: db, sqlDB: sqlDB}, nil
}

// Get returns the raw value stored under key
// Uses raw SQL for minimal overhead
func (r *StorageRepository) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM local_storage WHERE storage_key = ? LIMIT 1`
	var value sql.NullString
	err := r.sqlDB.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// Set inserts or replaces the value for key
func (r *StorageRepository) Set(ctx context.Context, key, value string) error {
	item := storageEntity.StorageItem{
		StorageKey: key,
		Value:      datatypes.JSON(value),
		UpdatedAt:  time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

// Delete removes key; missing keys are not an error
func (r *StorageRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&storageEntity.StorageItem{}).Error
}

// Keys lists stored keys starting with prefix
func (r *StorageRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&storageEntity.StorageItem{}).
		Where("storage_key LIKE ?", prefix+"%").
		Order("storage_key").
		Pluck("storage_key", &keys).Error
	return keys, err
}
