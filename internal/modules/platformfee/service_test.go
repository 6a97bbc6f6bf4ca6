package platformfee

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

type mockFeeRepo struct {
	mock.Mock
}

func (m *mockFeeRepo) Create(ctx context.Context, f *domain.PlatformFee) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFeeRepo) GetByTier(ctx context.Context, tier domain.TierName) (*domain.PlatformFee, error) {
	args := m.Called(ctx, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformFee), args.Error(1)
}

func (m *mockFeeRepo) List(ctx context.Context) ([]domain.PlatformFee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlatformFee), args.Error(1)
}

func (m *mockFeeRepo) Update(ctx context.Context, f *domain.PlatformFee) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func allTiers() []domain.PlatformFee {
	return []domain.PlatformFee{
		{TierName: domain.TierBasic, MinValue: 0, MaxValue: 1000, PlatformFeePercentage: 10},
		{TierName: domain.TierStandard, MinValue: 1000.01, MaxValue: 5000, PlatformFeePercentage: 8.5},
		{TierName: domain.TierPremium, MinValue: 5000.01, MaxValue: 20000, PlatformFeePercentage: 6},
		{TierName: domain.TierEnterprise, MinValue: 20000.01, MaxValue: 100000, PlatformFeePercentage: 4},
	}
}

func TestCreateTier(t *testing.T) {
	repo := new(mockFeeRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.PlatformFee) bool {
		return f.TierName == domain.TierPremium && f.MinValue == 5000.01
	})).Return(nil)

	svc := NewService(repo)

	f, err := svc.Create(context.Background(), CreateTierRequest{
		TierName:              "premium",
		MinValue:              5000.01,
		MaxValue:              20000,
		PlatformFeePercentage: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TierPremium, f.TierName)
	repo.AssertExpectations(t)
}

func TestCreateTier_UnknownName(t *testing.T) {
	svc := NewService(new(mockFeeRepo))

	_, err := svc.Create(context.Background(), CreateTierRequest{
		TierName: "platinum",
		MinValue: 0,
		MaxValue: 100,
	})
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestCreateTier_InvalidRange(t *testing.T) {
	svc := NewService(new(mockFeeRepo))

	_, err := svc.Create(context.Background(), CreateTierRequest{
		TierName: "basic",
		MinValue: 500,
		MaxValue: 500,
	})
	assert.ErrorIs(t, err, ErrInvalidRange, "min must be strictly below max")
}

func TestCreateTier_Duplicate(t *testing.T) {
	repo := new(mockFeeRepo)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New(`ERROR: duplicate key value violates unique constraint "idx_platform_fees_tier_name" (SQLSTATE 23505)`))

	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateTierRequest{
		TierName: "basic",
		MinValue: 0,
		MaxValue: 1000,
	})
	assert.ErrorIs(t, err, ErrTierTaken)
}

func TestUpdateTier_RangeCheckedAfterPatch(t *testing.T) {
	existing := &domain.PlatformFee{
		TierName: domain.TierBasic,
		MinValue: 0,
		MaxValue: 1000,
	}

	repo := new(mockFeeRepo)
	repo.On("GetByTier", mock.Anything, domain.TierBasic).Return(existing, nil)

	svc := NewService(repo)

	minValue := 2000.0
	_, err := svc.Update(context.Background(), "basic", UpdateTierRequest{MinValue: &minValue})
	assert.ErrorIs(t, err, ErrInvalidRange)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestResolve_Boundaries(t *testing.T) {
	cases := []struct {
		price    float64
		fee      float64
		fallback bool
	}{
		{0, 10, false},
		{1000, 10, false},
		{1000.01, 8.5, false},
		{5000, 8.5, false},
		{5000.01, 6, false},
		{20000, 6, false},
		{20000.01, 4, false},
		{100000, 4, false},
		{100000.01, 10, true},
	}

	for _, tc := range cases {
		repo := new(mockFeeRepo)
		repo.On("List", mock.Anything).Return(allTiers(), nil)
		svc := NewService(repo)

		res, err := svc.Resolve(context.Background(), tc.price)
		require.NoError(t, err, "price %.2f", tc.price)
		assert.Equal(t, tc.fee, res.FeePercentage, "price %.2f", tc.price)
		assert.Equal(t, tc.fallback, res.UsedFallback, "price %.2f", tc.price)
	}
}

func TestResolve_FinalPrice(t *testing.T) {
	repo := new(mockFeeRepo)
	repo.On("List", mock.Anything).Return(allTiers(), nil)

	svc := NewService(repo)

	res, err := svc.Resolve(context.Background(), 1085)
	require.NoError(t, err)
	assert.Equal(t, 8.5, res.FeePercentage)
	assert.InDelta(t, 1177.23, res.FinalPrice, 0.001, "rounded in integer cents")
}

func TestResolve_EmptyTableFallsBack(t *testing.T) {
	repo := new(mockFeeRepo)
	repo.On("List", mock.Anything).Return([]domain.PlatformFee{}, nil)

	svc := NewService(repo)

	res, err := svc.Resolve(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPlatformFeePct, res.FeePercentage)
	assert.True(t, res.UsedFallback)
}
