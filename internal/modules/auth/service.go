package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/pkg/jwt"
)

// Roles callers may self-assign at registration. Everything privileged
// is provisioned by an admin through the user module.
var selfServeRoles = map[domain.UserRole]bool{
	domain.RoleClient:     true,
	domain.RoleSpecialist: true,
	domain.RoleViewer:     true,
}

// Service contains all business logic for authentication.
type Service struct {
	users    UserRepositoryInterface
	tokens   TokenService
	resetTTL time.Duration
}

func NewService(users UserRepositoryInterface, tokens TokenService, resetTTL time.Duration) *Service {
	return &Service{users: users, tokens: tokens, resetTTL: resetTTL}
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	role := domain.RoleClient
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if !role.Valid() {
			return nil, ErrRoleNotAllowed
		}
		if !selfServeRoles[role] {
			return nil, ErrRoleNotAllowed
		}
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		Status:       domain.UserActive,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if user.Status != domain.UserActive {
		return nil, ErrAccountNotActive
	}

	if err := s.users.TouchLastLogin(ctx, user.ID, time.Now()); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// RefreshSession re-issues both tokens from a valid refresh token. The
// new refresh token replaces the old cookie at the handler.
func (s *Service) RefreshSession(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.tokens.Verify(refreshToken, jwt.KindRefresh)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if user.Status != domain.UserActive {
		return nil, ErrAccountNotActive
	}

	return s.issueTokens(user)
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !VerifyPassword(user.PasswordHash, req.CurrentPassword) {
		return ErrWrongCurrentPassword
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// ForgotPassword issues a reset token when the account exists. The
// caller must answer identically either way so the endpoint cannot be
// used to probe for accounts. The raw token is returned for delivery.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	raw, hashed, err := generateResetToken()
	if err != nil {
		return "", err
	}

	expires := time.Now().Add(s.resetTTL)
	user.PasswordResetToken = hashed
	user.PasswordResetExpires = &expires
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	return raw, nil
}

// ResetPassword consumes a reset token. The stored hash must match and
// the expiry must be strictly in the future; the token is single-use.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	hashed := hashResetToken(req.Token)
	user, err := s.users.GetByResetToken(ctx, hashed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	if user.PasswordResetExpires == nil || !user.PasswordResetExpires.After(time.Now()) {
		return ErrInvalidResetToken
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	return s.users.Update(ctx, user)
}

func (s *Service) issueTokens(user *domain.User) (*LoginResult, error) {
	permissions := rbac.EffectivePermissions(user)

	access, err := s.tokens.GenerateAccessToken(user, permissions)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// HashPassword is a bcrypt hash, except values that already look like a
// bcrypt digest pass through unchanged so repeated saves are no-ops.
func HashPassword(password string) (string, error) {
	if strings.HasPrefix(password, "$2a$") || strings.HasPrefix(password, "$2b$") {
		return password, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func generateResetToken() (raw string, hashed string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, hashResetToken(raw), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
