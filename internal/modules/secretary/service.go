package secretary

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/modules/auth"
	"github.com/joychandrauday/anycomp-backend/internal/repository"
	"github.com/joychandrauday/anycomp-backend/internal/storage"
)

type Service struct {
	secretaries SecretaryRepositoryInterface
	companies   CompanyReaderWriter
	specialists SpecialistReaderWriter
	users       UserChecker
	store       storage.ObjectStorage
}

func NewService(
	secretaries SecretaryRepositoryInterface,
	companies CompanyReaderWriter,
	specialists SpecialistReaderWriter,
	users UserChecker,
	store storage.ObjectStorage,
) *Service {
	return &Service{
		secretaries: secretaries,
		companies:   companies,
		specialists: specialists,
		users:       users,
		store:       store,
	}
}

// CreateWithUser provisions a secretary account and profile in one
// transaction. Avatar and banner are uploaded before the transaction;
// when it fails the uploads are deleted as compensation, and a failed
// compensation is only logged.
func (s *Service) CreateWithUser(ctx context.Context, req CreateRequest, avatar, banner *multipart.FileHeader) (*domain.Secretary, error) {
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

	var uploaded []string
	var avatarURL, bannerURL string
	if avatar != nil {
		res, err := s.store.Upload(ctx, avatar, "secretaries")
		if err != nil {
			return nil, err
		}
		avatarURL = res.URL
		uploaded = append(uploaded, res.PublicID)
	}
	if banner != nil {
		res, err := s.store.Upload(ctx, banner, "secretaries")
		if err != nil {
			s.compensateUploads(ctx, uploaded)
			return nil, err
		}
		bannerURL = res.URL
		uploaded = append(uploaded, res.PublicID)
	}

	secType := domain.SecretaryType(req.SecretaryType)
	if secType == "" {
		secType = domain.SecretaryIndividual
	}

	user := &domain.User{
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:       hash,
		FullName:           req.FullName,
		PhoneNumber:        req.PhoneNumber,
		Role:               domain.RoleSecretary,
		Status:             domain.UserActive,
		RegistrationNumber: req.RegistrationNumber,
	}
	sec := &domain.Secretary{
		RegistrationNumber:        req.RegistrationNumber,
		SecretaryType:             secType,
		Status:                    domain.SecretaryActive,
		Qualification:             req.Qualification,
		CompanyName:               req.CompanyName,
		Experience:                req.Experience,
		HourlyRate:                req.HourlyRate,
		MonthlyRate:               req.MonthlyRate,
		Avatar:                    avatarURL,
		Banner:                    bannerURL,
		IsAcceptingNewCompanies:   true,
		IsAcceptingNewSpecialists: true,
	}

	if err := s.secretaries.CreateWithUser(ctx, user, sec); err != nil {
		s.compensateUploads(ctx, uploaded)
		if repository.IsUniqueViolation(err) {
			return nil, ErrRegistrationTaken
		}
		return nil, err
	}

	return sec, nil
}

func (s *Service) compensateUploads(ctx context.Context, publicIDs []string) {
	for _, id := range publicIDs {
		if err := s.store.Delete(ctx, id); err != nil {
			log.Printf("upload_compensation_failed public_id=%s error=%v", id, err)
		}
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Secretary, error) {
	sec, err := s.secretaries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sec, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Secretary, int64, error) {
	return s.secretaries.List(ctx, domain.SecretaryStatus(q.Status), q.Limit, q.Offset)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Secretary, error) {
	sec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Qualification != nil {
		sec.Qualification = *req.Qualification
	}
	if req.CompanyName != nil {
		sec.CompanyName = *req.CompanyName
	}
	if req.Experience != nil {
		sec.Experience = *req.Experience
	}
	if req.Status != nil {
		sec.Status = domain.SecretaryStatus(*req.Status)
	}
	if req.HourlyRate != nil {
		sec.HourlyRate = *req.HourlyRate
	}
	if req.MonthlyRate != nil {
		sec.MonthlyRate = *req.MonthlyRate
	}
	if req.AvailabilitySchedule != nil {
		sec.AvailabilitySchedule = *req.AvailabilitySchedule
	}
	if req.AreasOfExpertise != nil {
		sec.AreasOfExpertise = *req.AreasOfExpertise
	}
	if req.Certifications != nil {
		sec.Certifications = *req.Certifications
	}
	if req.ContactInformation != nil {
		sec.ContactInformation = datatypes.NewJSONType(*req.ContactInformation)
	}

	if err := s.secretaries.Update(ctx, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.secretaries.SoftDelete(ctx, id)
}

func (s *Service) Stats(ctx context.Context, id string) (*Stats, error) {
	sec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalCompaniesManaged:   sec.TotalCompaniesManaged,
		TotalSpecialistsManaged: sec.TotalSpecialistsManaged,
		WorkloadPercentage:      sec.WorkloadPercentage(),
		IsOverloaded:            sec.IsOverloaded(),
		IsAvailable:             sec.IsAvailable(),
		AcceptingNewCompanies:   sec.IsAcceptingNewCompanies,
		AcceptingNewSpecialists: sec.IsAcceptingNewSpecialists,
	}, nil
}

// AssignCompany links a company to a secretary and bumps the workload
// counters. Acceptance is re-checked against the current counters.
func (s *Service) AssignCompany(ctx context.Context, secretaryID, companyID string) (*domain.Secretary, error) {
	sec, err := s.GetByID(ctx, secretaryID)
	if err != nil {
		return nil, err
	}
	if !sec.CanTakeMoreCompanies() {
		return nil, ErrNotAcceptingCompanies
	}

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	if company.AssignedSecretaryID != nil {
		return nil, ErrAlreadyAssigned
	}

	company.AssignedSecretaryID = &sec.ID
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	return s.secretaries.AdjustCounters(ctx, sec.ID, func(sec *domain.Secretary) {
		sec.AddCompany()
	})
}

func (s *Service) UnassignCompany(ctx context.Context, secretaryID, companyID string) (*domain.Secretary, error) {
	if _, err := s.GetByID(ctx, secretaryID); err != nil {
		return nil, err
	}

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	if company.AssignedSecretaryID == nil || *company.AssignedSecretaryID != secretaryID {
		return nil, ErrNotAssigned
	}

	company.AssignedSecretaryID = nil
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	return s.secretaries.AdjustCounters(ctx, secretaryID, func(sec *domain.Secretary) {
		sec.RemoveCompany()
	})
}

func (s *Service) AssignSpecialist(ctx context.Context, secretaryID, specialistID string) (*domain.Secretary, error) {
	sec, err := s.GetByID(ctx, secretaryID)
	if err != nil {
		return nil, err
	}
	if !sec.CanTakeMoreSpecialists() {
		return nil, ErrNotAcceptingSpecialist
	}

	sp, err := s.specialists.GetByID(ctx, specialistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialistNotFound
		}
		return nil, err
	}
	if sp.AssignedSecretaryID != nil {
		return nil, ErrAlreadyAssigned
	}

	sp.AssignedSecretaryID = &sec.ID
	if err := s.specialists.Update(ctx, sp); err != nil {
		return nil, err
	}

	return s.secretaries.AdjustCounters(ctx, sec.ID, func(sec *domain.Secretary) {
		sec.AddSpecialist()
	})
}

func (s *Service) UnassignSpecialist(ctx context.Context, secretaryID, specialistID string) (*domain.Secretary, error) {
	if _, err := s.GetByID(ctx, secretaryID); err != nil {
		return nil, err
	}

	sp, err := s.specialists.GetByID(ctx, specialistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialistNotFound
		}
		return nil, err
	}
	if sp.AssignedSecretaryID == nil || *sp.AssignedSecretaryID != secretaryID {
		return nil, ErrNotAssigned
	}

	sp.AssignedSecretaryID = nil
	if err := s.specialists.Update(ctx, sp); err != nil {
		return nil, err
	}

	return s.secretaries.AdjustCounters(ctx, secretaryID, func(sec *domain.Secretary) {
		sec.RemoveSpecialist()
	})
}
