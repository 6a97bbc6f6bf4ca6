package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateMaster(ctx context.Context, m *domain.ServiceMaster) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *CatalogRepository) GetMasterByID(ctx context.Context, id string) (*domain.ServiceMaster, error) {
	var m domain.ServiceMaster
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CatalogRepository) ListMasters(ctx context.Context, limit, offset int) ([]domain.ServiceMaster, int64, error) {
	scoped := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.ServiceMaster{})
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var masters []domain.ServiceMaster
	q := scoped().Order("title ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&masters).Error; err != nil {
		return nil, 0, err
	}
	return masters, total, nil
}

func (r *CatalogRepository) UpdateMaster(ctx context.Context, m *domain.ServiceMaster) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// DeleteMaster soft-deletes a catalog entry together with every offering
// that references it.
func (r *CatalogRepository) DeleteMaster(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_master_id = ?", id).Delete(&domain.ServiceOffering{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.ServiceMaster{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *CatalogRepository) CreateOffering(ctx context.Context, o *domain.ServiceOffering) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *CatalogRepository) ListOfferings(ctx context.Context, specialistID string) ([]domain.ServiceOffering, error) {
	var offerings []domain.ServiceOffering
	tx := r.db.WithContext(ctx).
		Preload("MasterService").
		Where("specialist_id = ?", specialistID).
		Order("created_at ASC").
		Find(&offerings)
	return offerings, tx.Error
}

func (r *CatalogRepository) DeleteOffering(ctx context.Context, specialistID, masterID string) error {
	res := r.db.WithContext(ctx).
		Where("specialist_id = ? AND service_master_id = ?", specialistID, masterID).
		Delete(&domain.ServiceOffering{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
