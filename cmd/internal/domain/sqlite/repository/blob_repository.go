package repository

import (
	"consultas/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultBlobRepository struct {
	db *gorm.DB
}

func NewBlobRepository(db *gorm.DB) *DefaultBlobRepository {
	return &DefaultBlobRepository{db: db}
}

// Load returns nil, nil when nothing was ever saved under key.
func (b *DefaultBlobRepository) Load(key string) ([]byte, error) {
	var blob entity.Blob
	err := b.db.Where("blob_key = ?", key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob.Value, nil
}

func (b *DefaultBlobRepository) Save(key string, value []byte) error {
	blob := &entity.Blob{Key: key, Value: value}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(blob).Error
}
