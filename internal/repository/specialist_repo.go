package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

type SpecialistRepository struct {
	db *gorm.DB
}

func NewSpecialistRepository(db *gorm.DB) *SpecialistRepository {
	return &SpecialistRepository{db: db}
}

func (r *SpecialistRepository) DB() *gorm.DB { return r.db }

// SpecialistFilter narrows List results. Nil fields are ignored.
type SpecialistFilter struct {
	Title              string
	MinPrice           *float64
	MaxPrice           *float64
	IsDraft            *bool
	VerificationStatus domain.VerificationStatus
	CreatedByID        string
	PublicOnly         bool
	Limit              int
	Offset             int
}

func (r *SpecialistRepository) Create(ctx context.Context, s *domain.Specialist) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SpecialistRepository) GetByID(ctx context.Context, id string) (*domain.Specialist, error) {
	var s domain.Specialist
	tx := r.db.WithContext(ctx).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		First(&s, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *SpecialistRepository) GetBySlug(ctx context.Context, slug string) (*domain.Specialist, error) {
	var s domain.Specialist
	if err := r.db.WithContext(ctx).First(&s, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SpecialistRepository) List(ctx context.Context, f SpecialistFilter) ([]domain.Specialist, int64, error) {
	// Fresh query per finisher so Count conditions don't leak into Find.
	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Specialist{})
		if f.Title != "" {
			q = q.Where("title LIKE ?", "%"+f.Title+"%")
		}
		if f.MinPrice != nil {
			q = q.Where("final_price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			q = q.Where("final_price <= ?", *f.MaxPrice)
		}
		if f.IsDraft != nil {
			q = q.Where("is_draft = ?", *f.IsDraft)
		}
		if f.VerificationStatus != "" {
			q = q.Where("verification_status = ?", f.VerificationStatus)
		}
		if f.CreatedByID != "" {
			q = q.Where("created_by_id = ?", f.CreatedByID)
		}
		if f.PublicOnly {
			q = q.Where("is_draft = ? AND verification_status = ?", false, domain.VerificationVerified)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var specialists []domain.Specialist
	tx := filtered().
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Order("created_at DESC").
		Limit(limit).
		Offset(f.Offset).
		Find(&specialists)
	return specialists, total, tx.Error
}

func (r *SpecialistRepository) Update(ctx context.Context, s *domain.Specialist) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// ApplyRating folds a rating into the running mean with a single UPDATE
// expression so concurrent submissions cannot lose updates.
func (r *SpecialistRepository) ApplyRating(ctx context.Context, id string, rating float64) (*domain.Specialist, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Specialist{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"average_rating": gorm.Expr(
				"(average_rating * total_number_of_ratings + ?) / (total_number_of_ratings + 1)", rating),
			"total_number_of_ratings": gorm.Expr("total_number_of_ratings + 1"),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// SoftDelete tombstones the specialist together with its media.
func (r *SpecialistRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Media{}, "specialist_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.ServiceOffering{}, "specialist_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Specialist{}, "id = ?", id).Error
	})
}

type SpecialistStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
}

func (r *SpecialistRepository) Stats(ctx context.Context, createdByID string) (*SpecialistStats, error) {
	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Specialist{})
		if createdByID != "" {
			q = q.Where("created_by_id = ?", createdByID)
		}
		return q
	}

	var stats SpecialistStats
	if err := scoped().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("is_draft = ?", false).Count(&stats.Published).Error; err != nil {
		return nil, err
	}
	stats.Draft = stats.Total - stats.Published
	return &stats, nil
}
