package catalog

import (
	"context"
	"testing"

	"talentbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 5 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockServiceRepo) GetForTalent(ctx context.Context, serviceID, talentID int64) (*domain.Service, error) {
	args := m.Called(ctx, serviceID, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockServiceRepo) ListByTalent(ctx context.Context, talentID int64) ([]domain.Service, error) {
	args := m.Called(ctx, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *mockServiceRepo) DeleteWithBookings(ctx context.Context, serviceID int64) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetTalentByStageName(ctx context.Context, stageName string) (*domain.User, error) {
	args := m.Called(ctx, stageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserReader) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func baseAttrs() ServiceAttrs {
	return ServiceAttrs{
		ServiceName:  "DJ set",
		Description:  "Four hour set",
		Duration:     240,
		Price:        100,
		Discount:     0,
		DiscountType: "percentage",
	}
}

func TestService_AddService_Success(t *testing.T) {
	repo := new(mockServiceRepo)
	users := new(mockUserReader)
	svc := NewService(repo, users)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.AddService(context.Background(), 3, baseAttrs())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), created.UserID)
	assert.Equal(t, "DJ set", created.Title)
	assert.Nil(t, created.AdvancePaymentValue)
	assert.Nil(t, created.AdvancePaymentType)
}

func TestService_AddService_AdvancePaymentTermsRequired(t *testing.T) {
	repo := new(mockServiceRepo)
	users := new(mockUserReader)
	svc := NewService(repo, users)

	attrs := baseAttrs()
	attrs.AdvancePayment = true
	// value and type missing

	_, err := svc.AddService(context.Background(), 3, attrs)
	assert.ErrorIs(t, err, ErrAdvancePaymentTerms)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_AddService_AdvancePaymentComplete(t *testing.T) {
	repo := new(mockServiceRepo)
	users := new(mockUserReader)
	svc := NewService(repo, users)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	value := 25.0
	typ := "percentage"
	attrs := baseAttrs()
	attrs.AdvancePayment = true
	attrs.AdvancePaymentValue = &value
	attrs.AdvancePaymentType = &typ

	created, err := svc.AddService(context.Background(), 3, attrs)

	assert.NoError(t, err)
	assert.True(t, created.AdvancePayment)
	assert.Equal(t, 25.0, *created.AdvancePaymentValue)
	assert.Equal(t, domain.AmountPercentage, *created.AdvancePaymentType)
}

func TestService_UpdateService_NotOwned(t *testing.T) {
	repo := new(mockServiceRepo)
	users := new(mockUserReader)
	svc := NewService(repo, users)

	repo.On("GetForTalent", mock.Anything, int64(9), int64(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateService(context.Background(), 3, UpdateServiceRequest{ServiceID: 9, ServiceAttrs: baseAttrs()})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_UpdateService_FullReplace(t *testing.T) {
	repo := new(mockServiceRepo)
	users := new(mockUserReader)
	svc := NewService(repo, users)

	existing := &domain.Service{ID: 9, UserID: 3, Title: "Old title", Price: 80}
	repo.On("GetForTalent", mock.Anything, int64(9), int64(3)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.ID == 9 && s.UserID == 3 && s.Title == "DJ set" && s.Price == 100
	})).Return(nil)

	updated, err := svc.UpdateService(context.Background(), 3, UpdateServiceRequest{ServiceID: 9, ServiceAttrs: baseAttrs()})

	assert.NoError(t, err)
	assert.Equal(t, "DJ set", updated.Title)
	repo.AssertExpectations(t)
}

func TestService_RemoveService_CascadesBookings(t *testing.T) {
	repo := new(mockServiceRepo)
	users := new(mockUserReader)
	svc := NewService(repo, users)

	repo.On("GetForTalent", mock.Anything, int64(9), int64(3)).Return(&domain.Service{ID: 9, UserID: 3}, nil)
	repo.On("DeleteWithBookings", mock.Anything, int64(9)).Return(nil)

	assert.NoError(t, svc.RemoveService(context.Background(), 3, 9))
	repo.AssertExpectations(t)
}

func TestService_RemoveService_NotOwned(t *testing.T) {
	repo := new(mockServiceRepo)
	users := new(mockUserReader)
	svc := NewService(repo, users)

	repo.On("GetForTalent", mock.Anything, int64(9), int64(4)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.RemoveService(context.Background(), 4, 9)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	repo.AssertNotCalled(t, "DeleteWithBookings", mock.Anything, mock.Anything)
}

func TestService_GetServicesByTalent_UnknownStageName(t *testing.T) {
	repo := new(mockServiceRepo)
	users := new(mockUserReader)
	svc := NewService(repo, users)

	users.On("GetTalentByStageName", mock.Anything, "Nobody").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetServicesByTalent(context.Background(), "Nobody")
	assert.ErrorIs(t, err, ErrTalentNotFound)
}

func TestService_GetServicesByTalent_Success(t *testing.T) {
	repo := new(mockServiceRepo)
	users := new(mockUserReader)
	svc := NewService(repo, users)

	users.On("GetTalentByStageName", mock.Anything, "DJFlow").Return(&domain.User{ID: 3, Role: domain.RoleTalent}, nil)
	repo.On("ListByTalent", mock.Anything, int64(3)).Return([]domain.Service{{ID: 5, UserID: 3}}, nil)

	services, err := svc.GetServicesByTalent(context.Background(), "DJFlow")
	assert.NoError(t, err)
	assert.Len(t, services, 1)
}
