package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

type PlatformFeeRepository struct {
	db *gorm.DB
}

func NewPlatformFeeRepository(db *gorm.DB) *PlatformFeeRepository {
	return &PlatformFeeRepository{db: db}
}

func (r *PlatformFeeRepository) Create(ctx context.Context, f *domain.PlatformFee) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *PlatformFeeRepository) GetByTier(ctx context.Context, tier domain.TierName) (*domain.PlatformFee, error) {
	var f domain.PlatformFee
	if err := r.db.WithContext(ctx).First(&f, "tier_name = ?", tier).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PlatformFeeRepository) List(ctx context.Context) ([]domain.PlatformFee, error) {
	var fees []domain.PlatformFee
	tx := r.db.WithContext(ctx).Order("min_value ASC").Find(&fees)
	return fees, tx.Error
}

// FindForPrice returns the tier whose range covers the price, or
// gorm.ErrRecordNotFound when no tier matches.
func (r *PlatformFeeRepository) FindForPrice(ctx context.Context, price float64) (*domain.PlatformFee, error) {
	var f domain.PlatformFee
	tx := r.db.WithContext(ctx).
		Where("min_value <= ? AND max_value >= ?", price, price).
		First(&f)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *PlatformFeeRepository) Update(ctx context.Context, f *domain.PlatformFee) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *PlatformFeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.PlatformFee{}).Count(&count)
	return count, tx.Error
}
