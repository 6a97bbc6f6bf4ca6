package platformfee

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/repository"
)

type FeeRepositoryInterface interface {
	Create(ctx context.Context, f *domain.PlatformFee) error
	GetByTier(ctx context.Context, tier domain.TierName) (*domain.PlatformFee, error)
	List(ctx context.Context) ([]domain.PlatformFee, error)
	Update(ctx context.Context, f *domain.PlatformFee) error
}

type Service struct {
	fees FeeRepositoryInterface
}

func NewService(fees FeeRepositoryInterface) *Service {
	return &Service{fees: fees}
}

func validTier(t domain.TierName) bool {
	switch t {
	case domain.TierBasic, domain.TierStandard, domain.TierPremium, domain.TierEnterprise:
		return true
	}
	return false
}

func (s *Service) Create(ctx context.Context, req CreateTierRequest) (*domain.PlatformFee, error) {
	tier := domain.TierName(req.TierName)
	if !validTier(tier) {
		return nil, ErrInvalidTier
	}
	if req.MinValue >= req.MaxValue {
		return nil, ErrInvalidRange
	}

	f := &domain.PlatformFee{
		TierName:              tier,
		MinValue:              req.MinValue,
		MaxValue:              req.MaxValue,
		PlatformFeePercentage: req.PlatformFeePercentage,
	}
	if err := s.fees.Create(ctx, f); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrTierTaken
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]domain.PlatformFee, error) {
	return s.fees.List(ctx)
}

func (s *Service) Update(ctx context.Context, tierName string, req UpdateTierRequest) (*domain.PlatformFee, error) {
	tier := domain.TierName(tierName)
	if !validTier(tier) {
		return nil, ErrInvalidTier
	}

	f, err := s.fees.GetByTier(ctx, tier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.MinValue != nil {
		f.MinValue = *req.MinValue
	}
	if req.MaxValue != nil {
		f.MaxValue = *req.MaxValue
	}
	if f.MinValue >= f.MaxValue {
		return nil, ErrInvalidRange
	}
	if req.PlatformFeePercentage != nil {
		f.PlatformFeePercentage = *req.PlatformFeePercentage
	}

	if err := s.fees.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Resolve reports which fee applies to a price, with the default 10%
// fallback when no tier covers it.
func (s *Service) Resolve(ctx context.Context, price float64) (*Resolution, error) {
	tiers, err := s.fees.List(ctx)
	if err != nil {
		return nil, err
	}

	fee, fallback := domain.ResolveFee(tiers, price)
	return &Resolution{
		Price:         price,
		FeePercentage: fee,
		FinalPrice:    domain.FinalPriceOf(price, fee),
		UsedFallback:  fallback,
	}, nil
}
