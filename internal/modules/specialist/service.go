package specialist

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/repository"
)

type Service struct {
	specialists SpecialistRepositoryInterface
	fees        FeeReader
}

func NewService(specialists SpecialistRepositoryInterface, fees FeeReader) *Service {
	return &Service{specialists: specialists, fees: fees}
}

// List applies the public visibility filter for non-privileged callers.
// Privileged roles see drafts and unverified listings with any filter.
func (s *Service) List(ctx context.Context, actor *rbac.Actor, q ListQuery) ([]domain.Specialist, int64, error) {
	f := repository.SpecialistFilter{
		Title:    q.Title,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}

	if actor != nil && actor.HasAnyRole(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleManager) {
		f.IsDraft = q.IsDraft
		f.VerificationStatus = domain.VerificationStatus(q.Status)
	} else {
		f.PublicOnly = true
	}

	return s.specialists.List(ctx, f)
}

// ListMine returns the caller's own listings, drafts included.
func (s *Service) ListMine(ctx context.Context, actor rbac.Actor, q ListQuery) ([]domain.Specialist, int64, error) {
	f := repository.SpecialistFilter{
		Title:       q.Title,
		IsDraft:     q.IsDraft,
		CreatedByID: actor.ID,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	return s.specialists.List(ctx, f)
}

// GetByID hides drafts and unverified listings from everyone except the
// creator and privileged roles. Hidden listings read as not found.
func (s *Service) GetByID(ctx context.Context, actor *rbac.Actor, id string) (*domain.Specialist, error) {
	sp, err := s.specialists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !s.canView(actor, sp) {
		return nil, ErrNotFound
	}
	return sp, nil
}

func (s *Service) GetBySlug(ctx context.Context, actor *rbac.Actor, slug string) (*domain.Specialist, error) {
	sp, err := s.specialists.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !s.canView(actor, sp) {
		return nil, ErrNotFound
	}
	return sp, nil
}

func (s *Service) canView(actor *rbac.Actor, sp *domain.Specialist) bool {
	if sp.IsPubliclyVisible() {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.CanAccessOwned(sp.CreatedByID)
}

// Create starts every listing as an unverified draft. When no explicit
// fee percentage is given it is resolved from the tier table.
func (s *Service) Create(ctx context.Context, actor rbac.Actor, req CreateRequest) (*domain.Specialist, error) {
	sp := &domain.Specialist{
		Title:               req.Title,
		Description:         req.Description,
		ShortBio:            req.ShortBio,
		BasePrice:           req.BasePrice,
		DurationDays:        req.DurationDays,
		AdditionalOfferings: req.AdditionalOfferings,
		ExpertiseAreas:      req.ExpertiseAreas,
		Certifications:      req.Certifications,
		IsDraft:             true,
		SpecialistStatus:    domain.SpecialistAvailable,
		CreatedByID:         actor.ID,
	}
	sp.SetVerificationStatus(domain.VerificationPending)
	sp.EnsureSlug()

	if req.PlatformFee != nil {
		sp.PlatformFee = *req.PlatformFee
	} else {
		fee, err := s.resolveFee(ctx, req.BasePrice)
		if err != nil {
			return nil, err
		}
		sp.PlatformFee = fee
	}
	sp.RecalculateFinalPrice()

	if err := s.specialists.Create(ctx, sp); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return sp, nil
}

// Update is ownership-gated. The slug never changes, even when the
// title does. Any price or fee change recomputes the final price.
func (s *Service) Update(ctx context.Context, actor rbac.Actor, id string, req UpdateRequest) (*domain.Specialist, error) {
	sp, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		sp.Title = *req.Title
	}
	if req.Description != nil {
		sp.Description = *req.Description
	}
	if req.ShortBio != nil {
		sp.ShortBio = *req.ShortBio
	}
	if req.SpecialistStatus != nil {
		sp.SpecialistStatus = domain.SpecialistStatus(*req.SpecialistStatus)
	}
	if req.DurationDays != nil {
		sp.DurationDays = *req.DurationDays
	}
	if req.AdditionalOfferings != nil {
		sp.AdditionalOfferings = *req.AdditionalOfferings
	}
	if req.ExpertiseAreas != nil {
		sp.ExpertiseAreas = *req.ExpertiseAreas
	}
	if req.Certifications != nil {
		sp.Certifications = *req.Certifications
	}

	if req.BasePrice != nil {
		sp.BasePrice = *req.BasePrice
	}
	switch {
	case req.PlatformFee != nil:
		sp.PlatformFee = *req.PlatformFee
	case req.BasePrice != nil:
		fee, err := s.resolveFee(ctx, sp.BasePrice)
		if err != nil {
			return nil, err
		}
		sp.PlatformFee = fee
	}
	sp.RecalculateFinalPrice()

	if err := s.specialists.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// Publish flips the draft flag off. Verification is untouched, so an
// unverified published listing stays publicly invisible.
func (s *Service) Publish(ctx context.Context, actor rbac.Actor, id string) (*domain.Specialist, error) {
	return s.setDraft(ctx, actor, id, false)
}

func (s *Service) Unpublish(ctx context.Context, actor rbac.Actor, id string) (*domain.Specialist, error) {
	return s.setDraft(ctx, actor, id, true)
}

func (s *Service) setDraft(ctx context.Context, actor rbac.Actor, id string, draft bool) (*domain.Specialist, error) {
	sp, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	sp.IsDraft = draft
	if err := s.specialists.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// UpdateVerification moves a listing through the verification states.
// Restricted to super admins; any valid status may be assigned again.
func (s *Service) UpdateVerification(ctx context.Context, actor rbac.Actor, id string, status string) (*domain.Specialist, error) {
	if actor.Role != domain.RoleSuperAdmin {
		return nil, ErrVerificationForbidden
	}

	st := domain.VerificationStatus(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}

	sp, err := s.specialists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sp.SetVerificationStatus(st)
	if err := s.specialists.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// Rate folds a rating into the running mean. Only publicly visible
// listings accept ratings.
func (s *Service) Rate(ctx context.Context, id string, rating float64) (*domain.Specialist, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	sp, err := s.specialists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !sp.IsPubliclyVisible() {
		return nil, ErrNotPublic
	}

	return s.specialists.ApplyRating(ctx, id, rating)
}

func (s *Service) Delete(ctx context.Context, actor rbac.Actor, id string) error {
	if _, err := s.getOwned(ctx, actor, id); err != nil {
		return err
	}
	return s.specialists.SoftDelete(ctx, id)
}

// Stats is global for privileged roles and own-scoped otherwise.
func (s *Service) Stats(ctx context.Context, actor rbac.Actor) (*repository.SpecialistStats, error) {
	createdByID := actor.ID
	if actor.HasAnyRole(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleManager) {
		createdByID = ""
	}
	return s.specialists.Stats(ctx, createdByID)
}

func (s *Service) getOwned(ctx context.Context, actor rbac.Actor, id string) (*domain.Specialist, error) {
	sp, err := s.specialists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !actor.CanAccessOwned(sp.CreatedByID) {
		return nil, ErrOwnershipRequired
	}
	return sp, nil
}

func (s *Service) resolveFee(ctx context.Context, price float64) (float64, error) {
	tiers, err := s.fees.List(ctx)
	if err != nil {
		return 0, err
	}
	fee, fallback := domain.ResolveFee(tiers, price)
	if fallback {
		log.Printf("platform_fee_fallback price=%.2f fee=%.1f", price, fee)
	}
	return fee, nil
}
