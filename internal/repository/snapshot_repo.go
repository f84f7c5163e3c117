package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository persists whole-collection snapshots in a single
// key-value table. One row per key; the value is the serialized
// collection, written in full on every save.
type SnapshotRepository struct {
	db *gorm.DB
}

type snapshotModel struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;type:text"`
}

func (snapshotModel) TableName() string { return "snapshots" }

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Migrate creates the snapshots table if it does not exist.
func (r *SnapshotRepository) Migrate() error {
	return r.db.AutoMigrate(&snapshotModel{})
}

func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var m snapshotModel
	tx := r.db.WithContext(ctx).First(&m, "key = ?", key)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, tx.Error
	}
	return []byte(m.Value), true, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, key string, value []byte) error {
	m := snapshotModel{Key: key, Value: string(value)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&m).Error
}

func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&snapshotModel{}, "key = ?", key).Error
}
