package specialist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/repository"
)

type mockSpecialistRepo struct {
	mock.Mock
}

func (m *mockSpecialistRepo) Create(ctx context.Context, s *domain.Specialist) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSpecialistRepo) GetByID(ctx context.Context, id string) (*domain.Specialist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Specialist), args.Error(1)
}

func (m *mockSpecialistRepo) GetBySlug(ctx context.Context, slug string) (*domain.Specialist, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Specialist), args.Error(1)
}

func (m *mockSpecialistRepo) List(ctx context.Context, f repository.SpecialistFilter) ([]domain.Specialist, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Specialist), args.Get(1).(int64), args.Error(2)
}

func (m *mockSpecialistRepo) Update(ctx context.Context, s *domain.Specialist) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSpecialistRepo) ApplyRating(ctx context.Context, id string, rating float64) (*domain.Specialist, error) {
	args := m.Called(ctx, id, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Specialist), args.Error(1)
}

func (m *mockSpecialistRepo) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSpecialistRepo) Stats(ctx context.Context, createdByID string) (*repository.SpecialistStats, error) {
	args := m.Called(ctx, createdByID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SpecialistStats), args.Error(1)
}

type mockFeeReader struct {
	mock.Mock
}

func (m *mockFeeReader) List(ctx context.Context) ([]domain.PlatformFee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlatformFee), args.Error(1)
}

func standardTiers() []domain.PlatformFee {
	return []domain.PlatformFee{
		{TierName: domain.TierBasic, MinValue: 0, MaxValue: 1000, PlatformFeePercentage: 10},
		{TierName: domain.TierStandard, MinValue: 1000.01, MaxValue: 5000, PlatformFeePercentage: 8.5},
	}
}

func ownerActor() rbac.Actor {
	return rbac.Actor{ID: "owner-1", Role: domain.RoleSpecialist}
}

func TestCreate_StartsAsUnverifiedDraft(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	fees.On("List", mock.Anything).Return(standardTiers(), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, fees)

	sp, err := svc.Create(context.Background(), ownerActor(), CreateRequest{
		Title:     "Company Secretary",
		BasePrice: 500,
	})

	require.NoError(t, err)
	assert.True(t, sp.IsDraft)
	assert.Equal(t, domain.VerificationPending, sp.VerificationStatus)
	assert.False(t, sp.IsVerified)
	assert.False(t, sp.IsPubliclyVisible())
	assert.Equal(t, "company-secretary", sp.Slug)
	assert.Equal(t, "owner-1", sp.CreatedByID)
	assert.Equal(t, 10.0, sp.PlatformFee, "fee resolved from the tier table")
	assert.InDelta(t, 550.0, sp.FinalPrice, 0.001)
	repo.AssertExpectations(t)
}

func TestCreate_ExplicitFeeSkipsResolution(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, fees)

	fee := 12.5
	sp, err := svc.Create(context.Background(), ownerActor(), CreateRequest{
		Title:       "Tax Advisor",
		BasePrice:   2000,
		PlatformFee: &fee,
	})

	require.NoError(t, err)
	assert.Equal(t, 12.5, sp.PlatformFee)
	fees.AssertNotCalled(t, "List", mock.Anything)
}

func TestCreate_FallbackFeeWhenNoTierCovers(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	fees.On("List", mock.Anything).Return([]domain.PlatformFee{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, fees)

	sp, err := svc.Create(context.Background(), ownerActor(), CreateRequest{
		Title:     "Auditor",
		BasePrice: 999999,
	})

	require.NoError(t, err)
	assert.Equal(t, 10.0, sp.PlatformFee)
}

func TestCreate_SlugConflict(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	fees.On("List", mock.Anything).Return(standardTiers(), nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New(`ERROR: duplicate key value violates unique constraint "idx_specialists_slug" (SQLSTATE 23505)`))

	svc := NewService(repo, fees)

	_, err := svc.Create(context.Background(), ownerActor(), CreateRequest{
		Title:     "Company Secretary",
		BasePrice: 500,
	})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestUpdate_TitleChangeKeepsSlug(t *testing.T) {
	existing := &domain.Specialist{
		ID:          "sp1",
		Title:       "Old Title",
		Slug:        "old-title",
		BasePrice:   500,
		PlatformFee: 10,
		CreatedByID: "owner-1",
	}

	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("GetByID", mock.Anything, "sp1").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	svc := NewService(repo, fees)

	title := "Brand New Title"
	sp, err := svc.Update(context.Background(), ownerActor(), "sp1", UpdateRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Brand New Title", sp.Title)
	assert.Equal(t, "old-title", sp.Slug)
}

func TestUpdate_PriceChangeReResolvesFee(t *testing.T) {
	existing := &domain.Specialist{
		ID:          "sp1",
		Slug:        "x",
		BasePrice:   500,
		PlatformFee: 10,
		CreatedByID: "owner-1",
	}

	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("GetByID", mock.Anything, "sp1").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)
	fees.On("List", mock.Anything).Return(standardTiers(), nil)

	svc := NewService(repo, fees)

	price := 3000.0
	sp, err := svc.Update(context.Background(), ownerActor(), "sp1", UpdateRequest{BasePrice: &price})

	require.NoError(t, err)
	assert.Equal(t, 8.5, sp.PlatformFee, "new price lands in the professional tier")
	assert.InDelta(t, 3255.0, sp.FinalPrice, 0.001)
}

func TestUpdate_NotOwner(t *testing.T) {
	existing := &domain.Specialist{ID: "sp1", CreatedByID: "someone-else"}

	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("GetByID", mock.Anything, "sp1").Return(existing, nil)

	svc := NewService(repo, fees)

	title := "Hijack"
	_, err := svc.Update(context.Background(), ownerActor(), "sp1", UpdateRequest{Title: &title})
	assert.ErrorIs(t, err, ErrOwnershipRequired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_AdminBypassesOwnership(t *testing.T) {
	existing := &domain.Specialist{ID: "sp1", CreatedByID: "someone-else", Slug: "x"}

	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("GetByID", mock.Anything, "sp1").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	svc := NewService(repo, fees)

	admin := rbac.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	title := "Moderated Title"
	_, err := svc.Update(context.Background(), admin, "sp1", UpdateRequest{Title: &title})
	require.NoError(t, err)
}

func TestPublish_DoesNotTouchVerification(t *testing.T) {
	existing := &domain.Specialist{ID: "sp1", IsDraft: true, CreatedByID: "owner-1"}
	existing.SetVerificationStatus(domain.VerificationPending)

	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("GetByID", mock.Anything, "sp1").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	svc := NewService(repo, fees)

	sp, err := svc.Publish(context.Background(), ownerActor(), "sp1")

	require.NoError(t, err)
	assert.False(t, sp.IsDraft)
	assert.Equal(t, domain.VerificationPending, sp.VerificationStatus)
	assert.False(t, sp.IsPubliclyVisible(), "published but unverified stays hidden")
}

func TestUpdateVerification_SuperAdminOnly(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	svc := NewService(repo, fees)

	admin := rbac.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	_, err := svc.UpdateVerification(context.Background(), admin, "sp1", "verified")
	assert.ErrorIs(t, err, ErrVerificationForbidden)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateVerification_InvalidStatus(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	svc := NewService(repo, fees)

	super := rbac.Actor{ID: "root", Role: domain.RoleSuperAdmin}
	_, err := svc.UpdateVerification(context.Background(), super, "sp1", "approved-ish")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateVerification_SyncsVerifiedFlag(t *testing.T) {
	existing := &domain.Specialist{ID: "sp1", CreatedByID: "owner-1"}
	existing.SetVerificationStatus(domain.VerificationPending)

	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("GetByID", mock.Anything, "sp1").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	svc := NewService(repo, fees)

	super := rbac.Actor{ID: "root", Role: domain.RoleSuperAdmin}
	sp, err := svc.UpdateVerification(context.Background(), super, "sp1", "verified")

	require.NoError(t, err)
	assert.Equal(t, domain.VerificationVerified, sp.VerificationStatus)
	assert.True(t, sp.IsVerified)
}

func TestGetByID_HiddenReadsAsNotFound(t *testing.T) {
	hidden := &domain.Specialist{ID: "sp1", IsDraft: true, CreatedByID: "owner-1"}

	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("GetByID", mock.Anything, "sp1").Return(hidden, nil)

	svc := NewService(repo, fees)

	_, err := svc.GetByID(context.Background(), nil, "sp1")
	assert.ErrorIs(t, err, ErrNotFound, "anonymous callers cannot probe drafts")

	stranger := &rbac.Actor{ID: "other", Role: domain.RoleClient}
	_, err = svc.GetByID(context.Background(), stranger, "sp1")
	assert.ErrorIs(t, err, ErrNotFound)

	owner := &rbac.Actor{ID: "owner-1", Role: domain.RoleSpecialist}
	sp, err := svc.GetByID(context.Background(), owner, "sp1")
	require.NoError(t, err)
	assert.Equal(t, "sp1", sp.ID)
}

func TestList_NonPrivilegedForcedPublic(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f repository.SpecialistFilter) bool {
		return f.PublicOnly && f.IsDraft == nil
	})).Return([]domain.Specialist{}, int64(0), nil)

	svc := NewService(repo, fees)

	draft := true
	client := &rbac.Actor{ID: "c1", Role: domain.RoleClient}
	_, _, err := svc.List(context.Background(), client, ListQuery{IsDraft: &draft})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestList_PrivilegedKeepsFilters(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f repository.SpecialistFilter) bool {
		return !f.PublicOnly && f.IsDraft != nil && *f.IsDraft &&
			f.VerificationStatus == domain.VerificationPending
	})).Return([]domain.Specialist{}, int64(0), nil)

	svc := NewService(repo, fees)

	draft := true
	manager := &rbac.Actor{ID: "m1", Role: domain.RoleManager}
	_, _, err := svc.List(context.Background(), manager, ListQuery{IsDraft: &draft, Status: "pending"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRate_Validation(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	svc := NewService(repo, fees)

	_, err := svc.Rate(context.Background(), "sp1", 0.5)
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Rate(context.Background(), "sp1", 5.5)
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestRate_HiddenListingRejected(t *testing.T) {
	hidden := &domain.Specialist{ID: "sp1", IsDraft: true}

	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("GetByID", mock.Anything, "sp1").Return(hidden, nil)

	svc := NewService(repo, fees)

	_, err := svc.Rate(context.Background(), "sp1", 4)
	assert.ErrorIs(t, err, ErrNotPublic)
	repo.AssertNotCalled(t, "ApplyRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestRate_DelegatesToAtomicUpdate(t *testing.T) {
	visible := &domain.Specialist{ID: "sp1"}
	visible.IsDraft = false
	visible.SetVerificationStatus(domain.VerificationVerified)

	rated := &domain.Specialist{ID: "sp1", AverageRating: 4, TotalNumberOfRatings: 1}

	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("GetByID", mock.Anything, "sp1").Return(visible, nil)
	repo.On("ApplyRating", mock.Anything, "sp1", 4.0).Return(rated, nil)

	svc := NewService(repo, fees)

	sp, err := svc.Rate(context.Background(), "sp1", 4)
	require.NoError(t, err)
	assert.Equal(t, 1, sp.TotalNumberOfRatings)
	repo.AssertExpectations(t)
}

func TestStats_Scoping(t *testing.T) {
	repo := new(mockSpecialistRepo)
	fees := new(mockFeeReader)
	repo.On("Stats", mock.Anything, "owner-1").
		Return(&repository.SpecialistStats{Total: 2}, nil).Once()
	repo.On("Stats", mock.Anything, "").
		Return(&repository.SpecialistStats{Total: 50}, nil).Once()

	svc := NewService(repo, fees)

	own, err := svc.Stats(context.Background(), ownerActor())
	require.NoError(t, err)
	assert.Equal(t, int64(2), own.Total)

	all, err := svc.Stats(context.Background(), rbac.Actor{ID: "a1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(50), all.Total)
	repo.AssertExpectations(t)
}
