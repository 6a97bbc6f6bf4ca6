package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/repository"
)

type CatalogRepositoryInterface interface {
	CreateMaster(ctx context.Context, m *domain.ServiceMaster) error
	GetMasterByID(ctx context.Context, id string) (*domain.ServiceMaster, error)
	ListMasters(ctx context.Context, limit, offset int) ([]domain.ServiceMaster, int64, error)
	UpdateMaster(ctx context.Context, m *domain.ServiceMaster) error
	DeleteMaster(ctx context.Context, id string) error
	CreateOffering(ctx context.Context, o *domain.ServiceOffering) error
	ListOfferings(ctx context.Context, specialistID string) ([]domain.ServiceOffering, error)
	DeleteOffering(ctx context.Context, specialistID, masterID string) error
}

type SpecialistReader interface {
	GetByID(ctx context.Context, id string) (*domain.Specialist, error)
}

type Service struct {
	catalog     CatalogRepositoryInterface
	specialists SpecialistReader
}

func NewService(catalog CatalogRepositoryInterface, specialists SpecialistReader) *Service {
	return &Service{catalog: catalog, specialists: specialists}
}

func (s *Service) CreateMaster(ctx context.Context, req CreateMasterRequest) (*domain.ServiceMaster, error) {
	m := &domain.ServiceMaster{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.catalog.CreateMaster(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetMaster(ctx context.Context, id string) (*domain.ServiceMaster, error) {
	m, err := s.catalog.GetMasterByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMasterNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMasters(ctx context.Context, q ListQuery) ([]domain.ServiceMaster, int64, error) {
	return s.catalog.ListMasters(ctx, q.Limit, q.Offset)
}

func (s *Service) UpdateMaster(ctx context.Context, id string, req UpdateMasterRequest) (*domain.ServiceMaster, error) {
	m, err := s.GetMaster(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Description != nil {
		m.Description = *req.Description
	}

	if err := s.catalog.UpdateMaster(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) DeleteMaster(ctx context.Context, id string) error {
	err := s.catalog.DeleteMaster(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMasterNotFound
	}
	return err
}

// AddOffering links a catalog entry to a specialist. The pair is unique;
// a second add is a conflict.
func (s *Service) AddOffering(ctx context.Context, actor rbac.Actor, specialistID, masterID string) (*domain.ServiceOffering, error) {
	if err := s.checkOwnership(ctx, actor, specialistID); err != nil {
		return nil, err
	}
	if _, err := s.GetMaster(ctx, masterID); err != nil {
		return nil, err
	}

	o := &domain.ServiceOffering{
		SpecialistID:    specialistID,
		ServiceMasterID: masterID,
	}
	if err := s.catalog.CreateOffering(ctx, o); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateOffering
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) ListOfferings(ctx context.Context, specialistID string) ([]domain.ServiceOffering, error) {
	if _, err := s.specialists.GetByID(ctx, specialistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialistNotFound
		}
		return nil, err
	}
	return s.catalog.ListOfferings(ctx, specialistID)
}

func (s *Service) RemoveOffering(ctx context.Context, actor rbac.Actor, specialistID, masterID string) error {
	if err := s.checkOwnership(ctx, actor, specialistID); err != nil {
		return err
	}

	err := s.catalog.DeleteOffering(ctx, specialistID, masterID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOfferingNotFound
	}
	return err
}

func (s *Service) checkOwnership(ctx context.Context, actor rbac.Actor, specialistID string) error {
	sp, err := s.specialists.GetByID(ctx, specialistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpecialistNotFound
		}
		return err
	}
	if !actor.CanAccessOwned(sp.CreatedByID) {
		return ErrOwnershipRequired
	}
	return nil
}
