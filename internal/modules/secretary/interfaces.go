package secretary

import (
	"context"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

type SecretaryRepositoryInterface interface {
	CreateWithUser(ctx context.Context, u *domain.User, s *domain.Secretary) error
	GetByID(ctx context.Context, id string) (*domain.Secretary, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Secretary, error)
	List(ctx context.Context, status domain.SecretaryStatus, limit, offset int) ([]domain.Secretary, int64, error)
	Update(ctx context.Context, s *domain.Secretary) error
	SoftDelete(ctx context.Context, id string) error
	AdjustCounters(ctx context.Context, id string, mutate func(*domain.Secretary)) (*domain.Secretary, error)
}

type CompanyReaderWriter interface {
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
}

type SpecialistReaderWriter interface {
	GetByID(ctx context.Context, id string) (*domain.Specialist, error)
	Update(ctx context.Context, s *domain.Specialist) error
}

type UserChecker interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
