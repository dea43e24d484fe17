package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/accounting_core/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
	"github.com/finbooks/accounting_core/internal/core/services"
	"github.com/finbooks/accounting_core/internal/middleware"
)

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepository = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// --- Test Suite Setup ---
type AuditServiceTestSuite struct {
	suite.Suite
	mockAuditRepo *MockAuditLogRepository
	service       portssvc.AuditSvc
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.service = services.NewAuditService(suite.mockAuditRepo)
}

func (suite *AuditServiceTestSuite) TestLogCreate_SerializesSnapshot() {
	ctx := context.Background()
	entityID := uuid.NewString()
	account := domain.Account{AccountID: entityID, Code: "1000", Name: "Cash"}

	var saved domain.AuditLog
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.AuditLog)
		}).Return(nil).Once()

	suite.service.LogCreate(ctx, "Account", entityID, account)

	suite.Equal("CREATE", saved.Action)
	suite.Equal("Account", saved.EntityType)
	suite.Equal(entityID, saved.EntityID)
	suite.NotEmpty(saved.AuditID)
	suite.Contains(saved.NewValue, `"code":"1000"`)
	suite.Empty(saved.OldValue)
	// No identity in the context, so the write is attributed to the system.
	suite.Equal(middleware.SystemActor, saved.Actor)
}

func (suite *AuditServiceTestSuite) TestLogAction_UnserializableDetailsDegrade() {
	ctx := context.Background()
	entityID := uuid.NewString()

	var saved domain.AuditLog
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.AuditLog)
		}).Return(nil).Once()

	suite.service.LogAction(ctx, "POST_JOURNAL_ENTRY", "JournalEntry", entityID, make(chan int))

	suite.Contains(saved.Details, "<unserializable:")
}

func (suite *AuditServiceTestSuite) TestLogDelete_WriteFailureDoesNotPanic() {
	ctx := context.Background()

	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	// Fire-and-forget: the failure is swallowed after logging.
	suite.NotPanics(func() {
		suite.service.LogDelete(ctx, "Account", uuid.NewString(), nil)
	})
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListAuditLogs_DefaultLimit() {
	ctx := context.Background()

	suite.mockAuditRepo.On("ListAuditLogs", ctx, 50).Return([]domain.AuditLog{}, nil).Once()

	logs, err := suite.service.ListAuditLogs(ctx, 0)

	suite.Require().NoError(err)
	suite.Empty(logs)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
