package auth

import (
	"context"
	"time"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/pkg/jwt"
)

// UserRepositoryInterface is the slice of the user repository this
// module depends on.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type TokenService interface {
	GenerateAccessToken(user *domain.User, permissions []string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	Verify(tokenStr string, kind jwt.TokenKind) (*jwt.Claims, error)
}
