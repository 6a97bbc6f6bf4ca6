package company

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/repository"
)

type CompanyRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, f repository.CompanyFilter) ([]domain.Company, int64, error)
	Update(ctx context.Context, c *domain.Company) error
	SoftDelete(ctx context.Context, id string) error
}

type Service struct {
	companies CompanyRepositoryInterface
}

func NewService(companies CompanyRepositoryInterface) *Service {
	return &Service{companies: companies}
}

func validEntityType(t domain.CompanyType) bool {
	switch t {
	case domain.CompanySdnBhd, domain.CompanyBhd, domain.CompanyLLP,
		domain.CompanySoleProp, domain.CompanyPartnership, domain.CompanyForeign:
		return true
	}
	return false
}

func validStatus(s domain.CompanyStatus) bool {
	switch s {
	case domain.CompanyIncorporating, domain.CompanyActive, domain.CompanyStruckOff,
		domain.CompanyDormant, domain.CompanyLiquidation, domain.CompanyInactive:
		return true
	}
	return false
}

func (s *Service) Create(ctx context.Context, actor rbac.Actor, req CreateRequest) (*domain.Company, error) {
	entityType := domain.CompanyType(req.EntityType)
	if !validEntityType(entityType) {
		return nil, ErrInvalidEntityType
	}

	c := &domain.Company{
		LegalName:          req.LegalName,
		RegistrationNumber: req.RegistrationNumber,
		CompanyNumber:      req.CompanyNumber,
		EntityType:         entityType,
		Status:             domain.CompanyIncorporating,
		IncorporationDate:  req.IncorporationDate,
		BusinessSector:     req.BusinessSector,
		BusinessNature:     req.BusinessNature,
		AuthorizedCapital:  req.AuthorizedCapital,
		PaidUpCapital:      req.PaidUpCapital,
		TotalShares:        req.TotalShares,
		RegisteredAddress:  req.RegisteredAddress,
		BusinessAddress:    req.BusinessAddress,
		PhoneNumber:        req.PhoneNumber,
		Email:              req.Email,
		Website:            req.Website,
		IsActive:           true,
		OwnerID:            actor.ID,
	}

	if err := s.companies.Create(ctx, c); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrRegistrationTaken
		}
		return nil, err
	}
	return c, nil
}

// List scopes non-privileged callers to companies they own.
func (s *Service) List(ctx context.Context, actor rbac.Actor, q ListQuery) ([]domain.Company, int64, error) {
	f := repository.CompanyFilter{
		Status: domain.CompanyStatus(q.Status),
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if !actor.HasPermission(rbac.CompanyReadAny) {
		f.OwnerID = actor.ID
	}
	return s.companies.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, actor rbac.Actor, id string) (*domain.Company, error) {
	return s.getAccessible(ctx, actor, id)
}

func (s *Service) Update(ctx context.Context, actor rbac.Actor, id string, req UpdateRequest) (*domain.Company, error) {
	c, err := s.getAccessible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.LegalName != nil {
		c.LegalName = *req.LegalName
	}
	if req.CompanyNumber != nil {
		c.CompanyNumber = *req.CompanyNumber
	}
	if req.Status != nil {
		st := domain.CompanyStatus(*req.Status)
		if !validStatus(st) {
			return nil, ErrInvalidStatus
		}
		c.Status = st
		c.IsActive = st == domain.CompanyActive
	}
	if req.BusinessSector != nil {
		c.BusinessSector = *req.BusinessSector
	}
	if req.BusinessNature != nil {
		c.BusinessNature = *req.BusinessNature
	}
	if req.FinancialYearEnd != nil {
		c.FinancialYearEnd = req.FinancialYearEnd
	}
	if req.NextAnnualReturnDue != nil {
		c.NextAnnualReturnDue = req.NextAnnualReturnDue
	}
	if req.LastAnnualReturnFiled != nil {
		c.LastAnnualReturnFiled = req.LastAnnualReturnFiled
	}
	if req.NextAGMDate != nil {
		c.NextAGMDate = req.NextAGMDate
	}
	if req.LastAGMHeld != nil {
		c.LastAGMHeld = req.LastAGMHeld
	}
	if req.IsAGMHeld != nil {
		c.IsAGMHeld = *req.IsAGMHeld
	}
	if req.IsAnnualReturnFiled != nil {
		c.IsAnnualReturnFiled = *req.IsAnnualReturnFiled
	}
	if req.RegisteredAddress != nil {
		c.RegisteredAddress = *req.RegisteredAddress
	}
	if req.BusinessAddress != nil {
		c.BusinessAddress = *req.BusinessAddress
	}
	if req.PhoneNumber != nil {
		c.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Website != nil {
		c.Website = *req.Website
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.companies.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, actor rbac.Actor, id string) error {
	if _, err := s.getAccessible(ctx, actor, id); err != nil {
		return err
	}
	return s.companies.SoftDelete(ctx, id)
}

// ComplianceOf derives the compliance read-model at the current time.
func (s *Service) ComplianceOf(ctx context.Context, actor rbac.Actor, id string) (*Compliance, error) {
	c, err := s.getAccessible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Compliance{
		IsCompliant:       c.IsCompliant(now),
		NextComplianceDue: c.NextComplianceDue(),
		AgeYears:          c.Age(now),
	}, nil
}

func (s *Service) AddDirector(ctx context.Context, actor rbac.Actor, id string, d domain.Director) (*domain.Company, error) {
	c, err := s.getAccessible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	c.AddDirector(d)
	if err := s.companies.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) AddShareholder(ctx context.Context, actor rbac.Actor, id string, sh domain.Shareholder) (*domain.Company, error) {
	c, err := s.getAccessible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	c.AddShareholder(sh, time.Now())
	if err := s.companies.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) getAccessible(ctx context.Context, actor rbac.Actor, id string) (*domain.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actor.HasPermission(rbac.CompanyReadAny) || actor.CanAccessOwned(c.OwnerID) {
		return c, nil
	}
	return nil, ErrOwnershipRequired
}
