package secretary

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/storage"
)

type mockSecretaryRepo struct {
	mock.Mock
}

func (m *mockSecretaryRepo) CreateWithUser(ctx context.Context, u *domain.User, s *domain.Secretary) error {
	args := m.Called(ctx, u, s)
	return args.Error(0)
}

func (m *mockSecretaryRepo) GetByID(ctx context.Context, id string) (*domain.Secretary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Secretary), args.Error(1)
}

func (m *mockSecretaryRepo) GetByUserID(ctx context.Context, userID string) (*domain.Secretary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Secretary), args.Error(1)
}

func (m *mockSecretaryRepo) List(ctx context.Context, status domain.SecretaryStatus, limit, offset int) ([]domain.Secretary, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]domain.Secretary), args.Get(1).(int64), args.Error(2)
}

func (m *mockSecretaryRepo) Update(ctx context.Context, s *domain.Secretary) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSecretaryRepo) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSecretaryRepo) AdjustCounters(ctx context.Context, id string, mutate func(*domain.Secretary)) (*domain.Secretary, error) {
	args := m.Called(ctx, id, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	sec := args.Get(0).(*domain.Secretary)
	mutate(sec)
	return sec, args.Error(1)
}

type mockCompanyStore struct {
	mock.Mock
}

func (m *mockCompanyStore) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *mockCompanyStore) Update(ctx context.Context, c *domain.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type mockSpecialistStore struct {
	mock.Mock
}

func (m *mockSpecialistStore) GetByID(ctx context.Context, id string) (*domain.Specialist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Specialist), args.Error(1)
}

func (m *mockSpecialistStore) Update(ctx context.Context, s *domain.Specialist) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type mockUserChecker struct {
	mock.Mock
}

func (m *mockUserChecker) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockObjectStorage struct {
	mock.Mock
}

func (m *mockObjectStorage) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (*storage.UploadResult, error) {
	args := m.Called(ctx, file, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *mockObjectStorage) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

type serviceMocks struct {
	secretaries *mockSecretaryRepo
	companies   *mockCompanyStore
	specialists *mockSpecialistStore
	users       *mockUserChecker
	store       *mockObjectStorage
}

func newServiceWithMocks() (*Service, serviceMocks) {
	m := serviceMocks{
		secretaries: new(mockSecretaryRepo),
		companies:   new(mockCompanyStore),
		specialists: new(mockSpecialistStore),
		users:       new(mockUserChecker),
		store:       new(mockObjectStorage),
	}
	return NewService(m.secretaries, m.companies, m.specialists, m.users, m.store), m
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		FullName:           "Jordan Lee",
		Email:              "jordan@example.com",
		Password:           "password123",
		RegistrationNumber: "SEC-001",
	}
}

func TestCreateWithUser_Defaults(t *testing.T) {
	svc, m := newServiceWithMocks()
	m.users.On("ExistsByEmail", mock.Anything, "jordan@example.com").Return(false, nil)
	m.secretaries.On("CreateWithUser", mock.Anything,
		mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleSecretary && u.Status == domain.UserActive
		}),
		mock.MatchedBy(func(s *domain.Secretary) bool {
			return s.SecretaryType == domain.SecretaryIndividual &&
				s.Status == domain.SecretaryActive &&
				s.IsAcceptingNewCompanies && s.IsAcceptingNewSpecialists
		}),
	).Return(nil)

	sec, err := svc.CreateWithUser(context.Background(), validCreateRequest(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "SEC-001", sec.RegistrationNumber)
	m.secretaries.AssertExpectations(t)
}

func TestCreateWithUser_EmailTaken(t *testing.T) {
	svc, m := newServiceWithMocks()
	m.users.On("ExistsByEmail", mock.Anything, "jordan@example.com").Return(true, nil)

	_, err := svc.CreateWithUser(context.Background(), validCreateRequest(), nil, nil)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	m.secretaries.AssertNotCalled(t, "CreateWithUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateWithUser_CompensatesUploadsOnFailure(t *testing.T) {
	svc, m := newServiceWithMocks()
	avatar := &multipart.FileHeader{Filename: "avatar.png"}

	m.users.On("ExistsByEmail", mock.Anything, "jordan@example.com").Return(false, nil)
	m.store.On("Upload", mock.Anything, avatar, "secretaries").
		Return(&storage.UploadResult{URL: "/static/secretaries/a.png", PublicID: "secretaries/a.png"}, nil)
	m.secretaries.On("CreateWithUser", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))
	m.store.On("Delete", mock.Anything, "secretaries/a.png").Return(nil)

	_, err := svc.CreateWithUser(context.Background(), validCreateRequest(), avatar, nil)

	require.Error(t, err)
	m.store.AssertCalled(t, "Delete", mock.Anything, "secretaries/a.png")
}

func TestCreateWithUser_CompensationFailureOnlyLogged(t *testing.T) {
	svc, m := newServiceWithMocks()
	avatar := &multipart.FileHeader{Filename: "avatar.png"}
	banner := &multipart.FileHeader{Filename: "banner.png"}

	m.users.On("ExistsByEmail", mock.Anything, "jordan@example.com").Return(false, nil)
	m.store.On("Upload", mock.Anything, avatar, "secretaries").
		Return(&storage.UploadResult{URL: "/static/secretaries/a.png", PublicID: "secretaries/a.png"}, nil).Once()
	m.store.On("Upload", mock.Anything, banner, "secretaries").
		Return(nil, storage.ErrUploadFailed).Once()
	m.store.On("Delete", mock.Anything, "secretaries/a.png").
		Return(errors.New("store unreachable"))

	_, err := svc.CreateWithUser(context.Background(), validCreateRequest(), avatar, banner)

	assert.ErrorIs(t, err, storage.ErrUploadFailed, "the original failure surfaces, not the compensation one")
	m.store.AssertExpectations(t)
}

func TestCreateWithUser_DuplicateRegistration(t *testing.T) {
	svc, m := newServiceWithMocks()
	m.users.On("ExistsByEmail", mock.Anything, "jordan@example.com").Return(false, nil)
	m.secretaries.On("CreateWithUser", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New(`ERROR: duplicate key value violates unique constraint "idx_secretaries_registration_number" (SQLSTATE 23505)`))

	_, err := svc.CreateWithUser(context.Background(), validCreateRequest(), nil, nil)
	assert.ErrorIs(t, err, ErrRegistrationTaken)
}

func TestAssignCompany(t *testing.T) {
	svc, m := newServiceWithMocks()
	sec := &domain.Secretary{
		ID:                      "sec1",
		Status:                  domain.SecretaryActive,
		IsVerified:              true,
		IsAcceptingNewCompanies: true,
		TotalCompaniesManaged:   3,
	}
	company := &domain.Company{ID: "co1"}

	m.secretaries.On("GetByID", mock.Anything, "sec1").Return(sec, nil)
	m.companies.On("GetByID", mock.Anything, "co1").Return(company, nil)
	m.companies.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Company) bool {
		return c.AssignedSecretaryID != nil && *c.AssignedSecretaryID == "sec1"
	})).Return(nil)
	m.secretaries.On("AdjustCounters", mock.Anything, "sec1", mock.Anything).Return(sec, nil)

	out, err := svc.AssignCompany(context.Background(), "sec1", "co1")

	require.NoError(t, err)
	assert.Equal(t, 4, out.TotalCompaniesManaged)
	m.companies.AssertExpectations(t)
}

func TestAssignCompany_NotAccepting(t *testing.T) {
	svc, m := newServiceWithMocks()
	sec := &domain.Secretary{
		ID:                      "sec1",
		Status:                  domain.SecretaryActive,
		IsVerified:              true,
		IsAcceptingNewCompanies: false,
	}

	m.secretaries.On("GetByID", mock.Anything, "sec1").Return(sec, nil)

	_, err := svc.AssignCompany(context.Background(), "sec1", "co1")
	assert.ErrorIs(t, err, ErrNotAcceptingCompanies)
	m.companies.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAssignCompany_UnverifiedSecretary(t *testing.T) {
	svc, m := newServiceWithMocks()
	sec := &domain.Secretary{
		ID:                      "sec1",
		Status:                  domain.SecretaryActive,
		IsVerified:              false,
		IsAcceptingNewCompanies: true,
	}

	m.secretaries.On("GetByID", mock.Anything, "sec1").Return(sec, nil)

	_, err := svc.AssignCompany(context.Background(), "sec1", "co1")
	assert.ErrorIs(t, err, ErrNotAcceptingCompanies, "the flag alone is not enough without an active verified profile")
}

func TestAssignCompany_AlreadyAssigned(t *testing.T) {
	svc, m := newServiceWithMocks()
	sec := &domain.Secretary{
		ID:                      "sec1",
		Status:                  domain.SecretaryActive,
		IsVerified:              true,
		IsAcceptingNewCompanies: true,
	}
	other := "sec2"
	company := &domain.Company{ID: "co1", AssignedSecretaryID: &other}

	m.secretaries.On("GetByID", mock.Anything, "sec1").Return(sec, nil)
	m.companies.On("GetByID", mock.Anything, "co1").Return(company, nil)

	_, err := svc.AssignCompany(context.Background(), "sec1", "co1")
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	m.companies.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUnassignCompany_WrongSecretary(t *testing.T) {
	svc, m := newServiceWithMocks()
	sec := &domain.Secretary{ID: "sec1"}
	other := "sec2"
	company := &domain.Company{ID: "co1", AssignedSecretaryID: &other}

	m.secretaries.On("GetByID", mock.Anything, "sec1").Return(sec, nil)
	m.companies.On("GetByID", mock.Anything, "co1").Return(company, nil)

	_, err := svc.UnassignCompany(context.Background(), "sec1", "co1")
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestUnassignCompany(t *testing.T) {
	svc, m := newServiceWithMocks()
	sec := &domain.Secretary{ID: "sec1", TotalCompaniesManaged: 4}
	mine := "sec1"
	company := &domain.Company{ID: "co1", AssignedSecretaryID: &mine}

	m.secretaries.On("GetByID", mock.Anything, "sec1").Return(sec, nil)
	m.companies.On("GetByID", mock.Anything, "co1").Return(company, nil)
	m.companies.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Company) bool {
		return c.AssignedSecretaryID == nil
	})).Return(nil)
	m.secretaries.On("AdjustCounters", mock.Anything, "sec1", mock.Anything).Return(sec, nil)

	out, err := svc.UnassignCompany(context.Background(), "sec1", "co1")

	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalCompaniesManaged)
}

func TestAssignSpecialist_NotAccepting(t *testing.T) {
	svc, m := newServiceWithMocks()
	sec := &domain.Secretary{
		ID:         "sec1",
		Status:     domain.SecretaryActive,
		IsVerified: true,
	}

	m.secretaries.On("GetByID", mock.Anything, "sec1").Return(sec, nil)

	_, err := svc.AssignSpecialist(context.Background(), "sec1", "sp1")
	assert.ErrorIs(t, err, ErrNotAcceptingSpecialist)
}

func TestAssignSpecialist(t *testing.T) {
	svc, m := newServiceWithMocks()
	sec := &domain.Secretary{
		ID:                        "sec1",
		Status:                    domain.SecretaryActive,
		IsVerified:                true,
		IsAcceptingNewSpecialists: true,
		TotalSpecialistsManaged:   7,
	}
	sp := &domain.Specialist{ID: "sp1"}

	m.secretaries.On("GetByID", mock.Anything, "sec1").Return(sec, nil)
	m.specialists.On("GetByID", mock.Anything, "sp1").Return(sp, nil)
	m.specialists.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Specialist) bool {
		return s.AssignedSecretaryID != nil && *s.AssignedSecretaryID == "sec1"
	})).Return(nil)
	m.secretaries.On("AdjustCounters", mock.Anything, "sec1", mock.Anything).Return(sec, nil)

	out, err := svc.AssignSpecialist(context.Background(), "sec1", "sp1")

	require.NoError(t, err)
	assert.Equal(t, 8, out.TotalSpecialistsManaged)
}

func TestStats(t *testing.T) {
	svc, m := newServiceWithMocks()
	sec := &domain.Secretary{
		ID:                        "sec1",
		Status:                    domain.SecretaryActive,
		IsVerified:                true,
		TotalCompaniesManaged:     25,
		TotalSpecialistsManaged:   15,
		IsAcceptingNewCompanies:   true,
		IsAcceptingNewSpecialists: true,
	}

	m.secretaries.On("GetByID", mock.Anything, "sec1").Return(sec, nil)

	stats, err := svc.Stats(context.Background(), "sec1")

	require.NoError(t, err)
	assert.Equal(t, 25, stats.TotalCompaniesManaged)
	assert.InDelta(t, 50.0, stats.WorkloadPercentage, 0.001)
	assert.False(t, stats.IsOverloaded)
	assert.True(t, stats.IsAvailable)
}

func TestStats_NotFound(t *testing.T) {
	svc, m := newServiceWithMocks()
	m.secretaries.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Stats(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
