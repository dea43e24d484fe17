package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/accounting_core/internal/apperrors"
	"github.com/finbooks/accounting_core/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
	"github.com/finbooks/accounting_core/internal/core/services"
	"github.com/finbooks/accounting_core/internal/dto"
)

// --- Mock FiscalPeriodRepository ---
type MockFiscalPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalPeriodRepository = (*MockFiscalPeriodRepository)(nil)

func (m *MockFiscalPeriodRepository) SavePeriod(ctx context.Context, period domain.FiscalPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockFiscalPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodRepository) ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodRepository) FindOpenPeriodForDate(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodRepository) ClosePeriod(ctx context.Context, periodID string, closedBy string, now time.Time) error {
	args := m.Called(ctx, periodID, closedBy, now)
	return args.Error(0)
}

// --- Test Suite Setup ---
type FiscalPeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo *MockFiscalPeriodRepository
	mockAuditSvc   *MockAuditSvc
	service        portssvc.FiscalPeriodSvcFacade
	actor          string
}

func (suite *FiscalPeriodServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockFiscalPeriodRepository)
	suite.mockAuditSvc = new(MockAuditSvc)
	suite.service = services.NewFiscalPeriodService(suite.mockPeriodRepo, suite.mockAuditSvc)
	suite.actor = uuid.NewString()

	suite.mockAuditSvc.On("LogAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.mockAuditSvc.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func (suite *FiscalPeriodServiceTestSuite) TestCreatePeriod_Success() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "FY2026-Q1",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockPeriodRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.FiscalPeriod")).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodOpen, period.Status)
	suite.Equal("FY2026-Q1", period.Name)
	suite.NotEmpty(period.PeriodID)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *FiscalPeriodServiceTestSuite) TestCreatePeriod_InvalidRange() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "Backwards",
		StartDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	period, err := suite.service.CreatePeriod(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
	suite.Nil(period)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *FiscalPeriodServiceTestSuite) TestCreatePeriod_SingleDayAllowed() {
	ctx := context.Background()
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreatePeriodRequest{Name: "One day", StartDate: day, EndDate: day}

	suite.mockPeriodRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.FiscalPeriod")).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodOpen, period.Status)
}

func (suite *FiscalPeriodServiceTestSuite) TestCreatePeriod_OverlapPassedThrough() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "FY2026-Q1-dup",
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockPeriodRepo.On("SavePeriod", ctx, mock.Anything).Return(apperrors.ErrOverlappingPeriod).Once()

	period, err := suite.service.CreatePeriod(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrOverlappingPeriod)
	suite.Nil(period)
}

func (suite *FiscalPeriodServiceTestSuite) TestClosePeriod_Success() {
	ctx := context.Background()
	periodID := uuid.NewString()
	closed := &domain.FiscalPeriod{PeriodID: periodID, Status: domain.PeriodClosed}

	suite.mockPeriodRepo.On("ClosePeriod", ctx, periodID, suite.actor, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(closed, nil).Once()

	period, err := suite.service.ClosePeriod(ctx, periodID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodClosed, period.Status)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *FiscalPeriodServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockPeriodRepo.On("ClosePeriod", ctx, periodID, suite.actor, mock.AnythingOfType("time.Time")).Return(apperrors.ErrInvalidState).Once()

	period, err := suite.service.ClosePeriod(ctx, periodID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(period)
}

func (suite *FiscalPeriodServiceTestSuite) TestIsDateInOpenPeriod_Found() {
	ctx := context.Background()
	date := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	open := &domain.FiscalPeriod{PeriodID: uuid.NewString(), Status: domain.PeriodOpen}

	suite.mockPeriodRepo.On("FindOpenPeriodForDate", ctx, date).Return(open, nil).Once()

	ok, err := suite.service.IsDateInOpenPeriod(ctx, date)

	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *FiscalPeriodServiceTestSuite) TestIsDateInOpenPeriod_NoCoveringPeriod() {
	ctx := context.Background()
	date := time.Date(1999, 2, 15, 0, 0, 0, 0, time.UTC)

	suite.mockPeriodRepo.On("FindOpenPeriodForDate", ctx, date).Return(nil, apperrors.ErrNotFound).Once()

	ok, err := suite.service.IsDateInOpenPeriod(ctx, date)

	suite.Require().NoError(err)
	suite.False(ok)
}

func TestFiscalPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FiscalPeriodServiceTestSuite))
}
