package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/pkg/jwt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func newTestService(users *mockUserRepo) *Service {
	tokens := jwt.New("test-secret", time.Hour, 24*time.Hour)
	return NewService(users, tokens, time.Hour)
}

func TestRegister_Success(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(users)

	result, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "New User",
		Email:    "new@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, result.User.Role, "role defaults to client")
	assert.Equal(t, domain.UserActive, result.User.Status)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.NotEqual(t, "password123", result.User.PasswordHash)

	users.AssertExpectations(t)
}

func TestRegister_EmailExists(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := newTestService(users)

	_, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Dup",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_PrivilegedRoleRejected(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	for _, role := range []string{"super_admin", "admin", "manager", "secretary", "nonsense"} {
		_, err := svc.Register(context.Background(), RegisterRequest{
			FullName: "Sneaky",
			Email:    "sneaky@example.com",
			Password: "password123",
			Role:     role,
		})
		assert.ErrorIs(t, err, ErrRoleNotAllowed, "role %s", role)
	}
}

func TestLogin_Success(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleClient,
		Status:       domain.UserActive,
	}

	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)
	users.On("TouchLastLogin", mock.Anything, "u1", mock.Anything).Return(nil)

	svc := newTestService(users)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	users.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:           "u1",
		PasswordHash: string(hashed),
		Status:       domain.UserActive,
	}

	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)

	svc := newTestService(users)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(users)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email reads the same as a bad password")
}

func TestLogin_InactiveAccount(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:           "u1",
		PasswordHash: string(hashed),
		Status:       domain.UserSuspended,
	}

	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)

	svc := newTestService(users)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrAccountNotActive)
}

func TestRefreshSession_RejectsAccessToken(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	tokens := jwt.New("test-secret", time.Hour, 24*time.Hour)
	access, err := tokens.GenerateAccessToken(&domain.User{ID: "u1"}, nil)
	require.NoError(t, err)

	_, err = svc.RefreshSession(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestChangePassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass123"), bcrypt.DefaultCost)
	existing := &domain.User{ID: "u1", PasswordHash: string(hashed)}

	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "u1").Return(existing, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return VerifyPassword(u.PasswordHash, "newpass123")
	})).Return(nil)

	svc := newTestService(users)

	err := svc.ChangePassword(context.Background(), "u1", ChangePasswordRequest{
		CurrentPassword: "oldpass123",
		NewPassword:     "newpass123",
	})
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass123"), bcrypt.DefaultCost)
	existing := &domain.User{ID: "u1", PasswordHash: string(hashed)}

	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "u1").Return(existing, nil)

	svc := newTestService(users)

	err := svc.ChangePassword(context.Background(), "u1", ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newpass123",
	})
	assert.ErrorIs(t, err, ErrWrongCurrentPassword)
}

func TestForgotPassword_UnknownEmailSilent(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(users)

	token, err := svc.ForgotPassword(context.Background(), "ghost@example.com")
	require.NoError(t, err, "unknown accounts must not surface as errors")
	assert.Empty(t, token)
}

func TestForgotPassword_StoresHashedToken(t *testing.T) {
	existing := &domain.User{ID: "u1", Email: "user@example.com"}

	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)
	users.On("Update", mock.Anything, existing).Return(nil)

	svc := newTestService(users)

	raw, err := svc.ForgotPassword(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.NotEqual(t, raw, existing.PasswordResetToken, "only the hash is stored")
	assert.Equal(t, hashResetToken(raw), existing.PasswordResetToken)
	require.NotNil(t, existing.PasswordResetExpires)
	assert.True(t, existing.PasswordResetExpires.After(time.Now()))
}

func TestResetPassword_ConsumesToken(t *testing.T) {
	raw, hashed, err := generateResetToken()
	require.NoError(t, err)

	expires := time.Now().Add(time.Hour)
	existing := &domain.User{
		ID:                   "u1",
		PasswordResetToken:   hashed,
		PasswordResetExpires: &expires,
	}

	users := new(mockUserRepo)
	users.On("GetByResetToken", mock.Anything, hashed).Return(existing, nil)
	users.On("Update", mock.Anything, existing).Return(nil)

	svc := newTestService(users)

	err = svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Token:       raw,
		NewPassword: "freshpass123",
	})
	require.NoError(t, err)
	assert.Empty(t, existing.PasswordResetToken, "token is single-use")
	assert.Nil(t, existing.PasswordResetExpires)
	assert.True(t, VerifyPassword(existing.PasswordHash, "freshpass123"))
}

func TestResetPassword_Expired(t *testing.T) {
	raw, hashed, err := generateResetToken()
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	existing := &domain.User{
		ID:                   "u1",
		PasswordResetToken:   hashed,
		PasswordResetExpires: &expired,
	}

	users := new(mockUserRepo)
	users.On("GetByResetToken", mock.Anything, hashed).Return(existing, nil)

	svc := newTestService(users)

	err = svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Token:       raw,
		NewPassword: "freshpass123",
	})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPassword_UnknownToken(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByResetToken", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(users)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Token:       "bogus",
		NewPassword: "freshpass123",
	})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestHashPassword_BcryptPassthrough(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	out, err := HashPassword(string(hashed))
	require.NoError(t, err)
	assert.Equal(t, string(hashed), out, "existing digests are not re-hashed")

	out, err = HashPassword("plainpassword")
	require.NoError(t, err)
	assert.NotEqual(t, "plainpassword", out)
	assert.True(t, VerifyPassword(out, "plainpassword"))
}
