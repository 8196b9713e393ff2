package convert

import (
	"context"

	"github.com/framegeist/framegeist/internal/shared"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Conversion{})
}

func (s *Store) Record(ctx context.Context, c *Conversion) error {
	if c.ID == "" {
		c.ID = shared.NewID("conv_")
	}
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) Recent(ctx context.Context, limit int) ([]*Conversion, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var list []*Conversion
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Conversion{}).Count(&n).Error
	return n, err
}
