package specialist

import (
	"context"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/repository"
)

type SpecialistRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Specialist) error
	GetByID(ctx context.Context, id string) (*domain.Specialist, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Specialist, error)
	List(ctx context.Context, f repository.SpecialistFilter) ([]domain.Specialist, int64, error)
	Update(ctx context.Context, s *domain.Specialist) error
	ApplyRating(ctx context.Context, id string, rating float64) (*domain.Specialist, error)
	SoftDelete(ctx context.Context, id string) error
	Stats(ctx context.Context, createdByID string) (*repository.SpecialistStats, error)
}

// FeeReader supplies the tier table for price resolution.
type FeeReader interface {
	List(ctx context.Context) ([]domain.PlatformFee, error)
}
