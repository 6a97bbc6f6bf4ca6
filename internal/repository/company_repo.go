package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) DB() *gorm.DB { return r.db }

type CompanyFilter struct {
	OwnerID             string
	AssignedSecretaryID string
	Status              domain.CompanyStatus
	Limit               int
	Offset              int
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	var c domain.Company
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) List(ctx context.Context, f CompanyFilter) ([]domain.Company, int64, error) {
	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Company{})
		if f.OwnerID != "" {
			q = q.Where("owner_id = ?", f.OwnerID)
		}
		if f.AssignedSecretaryID != "" {
			q = q.Where("assigned_secretary_id = ?", f.AssignedSecretaryID)
		}
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var companies []domain.Company
	tx := scoped().Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&companies)
	return companies, total, tx.Error
}

func (r *CompanyRepository) Update(ctx context.Context, c *domain.Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CompanyRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Company{}, "id = ?", id).Error
}
