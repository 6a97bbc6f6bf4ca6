package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

// ErrCounterConflict means a concurrent counter mutation won the
// compare-and-swap; the caller should retry.
var ErrCounterConflict = errors.New("secretary counters changed concurrently")

type SecretaryRepository struct {
	db *gorm.DB
}

func NewSecretaryRepository(db *gorm.DB) *SecretaryRepository {
	return &SecretaryRepository{db: db}
}

func (r *SecretaryRepository) DB() *gorm.DB { return r.db }

func (r *SecretaryRepository) Create(ctx context.Context, s *domain.Secretary) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

// CreateWithUser persists a user and its secretary profile atomically.
func (r *SecretaryRepository) CreateWithUser(ctx context.Context, u *domain.User, s *domain.Secretary) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.UserID = u.ID

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		return tx.Create(s).Error
	})
}

func (r *SecretaryRepository) GetByID(ctx context.Context, id string) (*domain.Secretary, error) {
	var s domain.Secretary
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SecretaryRepository) GetByUserID(ctx context.Context, userID string) (*domain.Secretary, error) {
	var s domain.Secretary
	if err := r.db.WithContext(ctx).First(&s, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SecretaryRepository) List(ctx context.Context, status domain.SecretaryStatus, limit, offset int) ([]domain.Secretary, int64, error) {
	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Secretary{})
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var secretaries []domain.Secretary
	tx := scoped().Order("created_at DESC").Limit(limit).Offset(offset).Find(&secretaries)
	return secretaries, total, tx.Error
}

func (r *SecretaryRepository) Update(ctx context.Context, s *domain.Secretary) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SecretaryRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Secretary{}, "id = ?", id).Error
}

// AdjustCounters applies a counter mutation and the derived
// workload/acceptance recomputation as one compare-and-swap. The update
// only lands if the counters are unchanged since the read, so concurrent
// assignments against the same secretary cannot lose updates.
func (r *SecretaryRepository) AdjustCounters(ctx context.Context, id string, mutate func(*domain.Secretary)) (*domain.Secretary, error) {
	const maxAttempts = 5

	for attempt := 0; attempt < maxAttempts; attempt++ {
		sec, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		prevCompanies := sec.TotalCompaniesManaged
		prevSpecialists := sec.TotalSpecialistsManaged
		mutate(sec)

		tx := r.db.WithContext(ctx).Model(&domain.Secretary{}).
			Where("id = ? AND total_companies_managed = ? AND total_specialists_managed = ?",
				id, prevCompanies, prevSpecialists).
			Updates(map[string]any{
				"total_companies_managed":      sec.TotalCompaniesManaged,
				"total_specialists_managed":    sec.TotalSpecialistsManaged,
				"is_accepting_new_companies":   sec.IsAcceptingNewCompanies,
				"is_accepting_new_specialists": sec.IsAcceptingNewSpecialists,
			})
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected > 0 {
			return sec, nil
		}
	}

	return nil, ErrCounterConflict
}
