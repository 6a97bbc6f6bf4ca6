package media

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/storage"
)

type MediaRepositoryInterface interface {
	Create(ctx context.Context, m *domain.Media) error
	GetByID(ctx context.Context, id string) (*domain.Media, error)
	ListBySpecialist(ctx context.Context, specialistID string) ([]domain.Media, error)
	Update(ctx context.Context, m *domain.Media) error
	SoftDelete(ctx context.Context, id string) error
}

type SpecialistReader interface {
	GetByID(ctx context.Context, id string) (*domain.Specialist, error)
}

type Service struct {
	media       MediaRepositoryInterface
	specialists SpecialistReader
	store       storage.ObjectStorage
}

func NewService(media MediaRepositoryInterface, specialists SpecialistReader, store storage.ObjectStorage) *Service {
	return &Service{media: media, specialists: specialists, store: store}
}

// Upload stores the file and records it against the specialist. Only
// the listing owner and privileged roles may attach media.
func (s *Service) Upload(ctx context.Context, actor rbac.Actor, specialistID string, file *multipart.FileHeader, form UploadForm) (*domain.Media, error) {
	mediaType := domain.MediaType(form.MediaType)
	if !mediaType.Valid() {
		return nil, ErrInvalidMediaType
	}

	if _, err := s.ownedSpecialist(ctx, actor, specialistID); err != nil {
		return nil, err
	}

	result, err := s.store.Upload(ctx, file, "specialists/"+specialistID)
	if err != nil {
		return nil, err
	}
	if !domain.AllowedMimeTypes[result.MimeType] {
		if delErr := s.store.Delete(ctx, result.PublicID); delErr != nil {
			log.Printf("upload_cleanup_failed public_id=%s error=%v", result.PublicID, delErr)
		}
		return nil, ErrMimeNotAllowed
	}

	m := &domain.Media{
		StorageURL:      result.URL,
		StoragePublicID: result.PublicID,
		FileName:        file.Filename,
		FileSize:        result.Size,
		MimeType:        result.MimeType,
		MediaType:       mediaType,
		DisplayOrder:    form.DisplayOrder,
		SpecialistID:    specialistID,
	}

	if err := s.media.Create(ctx, m); err != nil {
		if delErr := s.store.Delete(ctx, result.PublicID); delErr != nil {
			log.Printf("upload_compensation_failed public_id=%s error=%v", result.PublicID, delErr)
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) ListBySpecialist(ctx context.Context, specialistID string) ([]domain.Media, error) {
	if _, err := s.specialists.GetByID(ctx, specialistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialistNotFound
		}
		return nil, err
	}
	return s.media.ListBySpecialist(ctx, specialistID)
}

func (s *Service) Update(ctx context.Context, actor rbac.Actor, id string, req UpdateRequest) (*domain.Media, error) {
	m, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.MediaType != nil {
		mt := domain.MediaType(*req.MediaType)
		if !mt.Valid() {
			return nil, ErrInvalidMediaType
		}
		m.MediaType = mt
	}
	if req.DisplayOrder != nil {
		m.DisplayOrder = *req.DisplayOrder
	}

	if err := s.media.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the DB row first, then the stored object. A storage
// delete failure is logged, not surfaced: the row is already gone.
func (s *Service) Delete(ctx context.Context, actor rbac.Actor, id string) error {
	m, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.media.SoftDelete(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, m.StoragePublicID); err != nil {
		log.Printf("storage_delete_failed public_id=%s error=%v", m.StoragePublicID, err)
	}
	return nil
}

func (s *Service) getOwned(ctx context.Context, actor rbac.Actor, id string) (*domain.Media, error) {
	m, err := s.media.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.ownedSpecialist(ctx, actor, m.SpecialistID); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ownedSpecialist(ctx context.Context, actor rbac.Actor, specialistID string) (*domain.Specialist, error) {
	sp, err := s.specialists.GetByID(ctx, specialistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialistNotFound
		}
		return nil, err
	}
	if !actor.CanAccessOwned(sp.CreatedByID) {
		return nil, ErrOwnershipRequired
	}
	return sp, nil
}
