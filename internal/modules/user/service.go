package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/modules/auth"
)

// UserRepositoryInterface is the slice of the user repository this
// module depends on.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	SoftDelete(ctx context.Context, id string) error
}

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

// Create provisions a user with any role, including privileged ones.
// Admin-only at the route level.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		Status:       domain.UserActive,
		Department:   req.Department,
		ManagerID:    req.ManagerID,
		Permissions:  req.Permissions,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.users.List(ctx, limit, offset)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		u.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.ProfileImage != nil {
		u.ProfileImage = *req.ProfileImage
	}
	if req.Department != nil {
		u.Department = *req.Department
	}
	if req.ManagerID != nil {
		u.ManagerID = req.ManagerID
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateRole(ctx context.Context, id string, role string) (*domain.User, error) {
	r := domain.UserRole(role)
	if !r.Valid() {
		return nil, ErrInvalidRole
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Role = r
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*domain.User, error) {
	st := domain.UserStatus(status)
	switch st {
	case domain.UserActive, domain.UserInactive, domain.UserSuspended, domain.UserPendingVerification:
	default:
		return nil, ErrInvalidStatus
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Status = st
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPermissions replaces the explicit override list.
func (s *Service) SetPermissions(ctx context.Context, id string, permissions []string) (*domain.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Permissions = permissions
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrSelfDelete
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.SoftDelete(ctx, id)
}
