package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, m *domain.Media) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MediaRepository) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	var m domain.Media
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListBySpecialist returns assets in gallery order.
func (r *MediaRepository) ListBySpecialist(ctx context.Context, specialistID string) ([]domain.Media, error) {
	var media []domain.Media
	tx := r.db.WithContext(ctx).
		Where("specialist_id = ?", specialistID).
		Order("display_order ASC").
		Find(&media)
	return media, tx.Error
}

func (r *MediaRepository) Update(ctx context.Context, m *domain.Media) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MediaRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Media{}, "id = ?", id).Error
}
