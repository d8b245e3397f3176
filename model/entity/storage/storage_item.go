package storage

import (
	"time"

	"gorm.io/datatypes"
)

// StorageItem represents local_storage table: one JSON document per key
type StorageItem struct {
	StorageKey string         `gorm:"column:storage_key;type:varchar(191);primaryKey" json:"storage_key"`
	Value      datatypes.JSON `gorm:"column:value;not null" json:"value"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StorageItem) TableName() string {
	return "local_storage"
}
