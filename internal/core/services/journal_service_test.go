package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/accounting_core/internal/apperrors"
	"github.com/finbooks/accounting_core/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
	"github.com/finbooks/accounting_core/internal/core/services"
	"github.com/finbooks/accounting_core/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, status *domain.EntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		token = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), token, args.Error(2)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) ReplaceEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, expectedStatus domain.EntryStatus) error {
	args := m.Called(ctx, entry, lines, expectedStatus)
	return args.Error(0)
}

func (m *MockJournalRepository) TransitionEntryStatus(ctx context.Context, entryID string, from []domain.EntryStatus, to domain.EntryStatus, actor string, now time.Time) error {
	args := m.Called(ctx, entryID, from, to, actor, now)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, entryID string, expectedStatus domain.EntryStatus) error {
	args := m.Called(ctx, entryID, expectedStatus)
	return args.Error(0)
}

// --- Mock AccountReaderSvc ---
type MockAccountReaderSvc struct {
	mock.Mock
}

var _ portssvc.AccountReaderSvc = (*MockAccountReaderSvc)(nil)

func (m *MockAccountReaderSvc) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReaderSvc) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountReaderSvc) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountReaderSvc) GetDesignatedAccount(ctx context.Context, subtype domain.AccountSubtype) (*domain.Account, error) {
	args := m.Called(ctx, subtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock FiscalPeriodSvc ---
type MockFiscalPeriodSvc struct {
	mock.Mock
}

var _ portssvc.FiscalPeriodSvcFacade = (*MockFiscalPeriodSvc)(nil)

func (m *MockFiscalPeriodSvc) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, actor string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodSvc) ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodSvc) ClosePeriod(ctx context.Context, periodID string, actor string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, periodID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodSvc) IsDateInOpenPeriod(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

// --- Mock AuditSvc ---
type MockAuditSvc struct {
	mock.Mock
}

var _ portssvc.AuditSvc = (*MockAuditSvc)(nil)

func (m *MockAuditSvc) LogAction(ctx context.Context, action, entityType, entityID string, details any) {
	m.Called(ctx, action, entityType, entityID, details)
}

func (m *MockAuditSvc) LogCreate(ctx context.Context, entityType, entityID string, newValue any) {
	m.Called(ctx, entityType, entityID, newValue)
}

func (m *MockAuditSvc) LogUpdate(ctx context.Context, entityType, entityID string, oldValue, newValue any) {
	m.Called(ctx, entityType, entityID, oldValue, newValue)
}

func (m *MockAuditSvc) LogDelete(ctx context.Context, entityType, entityID string, oldValue any) {
	m.Called(ctx, entityType, entityID, oldValue)
}

func (m *MockAuditSvc) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountReaderSvc
	mockPeriodSvc   *MockFiscalPeriodSvc
	mockAuditSvc    *MockAuditSvc
	service         portssvc.JournalSvcFacade
	cashAccount     domain.Account
	revenueAccount  domain.Account
	inactiveAccount domain.Account
	actor           string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountReaderSvc)
	suite.mockPeriodSvc = new(MockFiscalPeriodSvc)
	suite.mockAuditSvc = new(MockAuditSvc)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc, suite.mockPeriodSvc, suite.mockAuditSvc)

	suite.actor = uuid.NewString()
	suite.cashAccount = domain.Account{
		AccountID:    uuid.NewString(),
		Code:         "1000",
		AccountType:  domain.Asset,
		Subtype:      domain.SubtypeCash,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:    uuid.NewString(),
		Code:         "4000",
		AccountType:  domain.Revenue,
		Subtype:      domain.SubtypeIncome,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.inactiveAccount = domain.Account{
		AccountID:    uuid.NewString(),
		Code:         "1099",
		AccountType:  domain.Asset,
		Subtype:      domain.SubtypeCash,
		CurrencyCode: "USD",
		IsActive:     false,
	}

	// Audit calls are fire-and-forget; accept everything by default.
	suite.mockAuditSvc.On("LogAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.mockAuditSvc.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.mockAuditSvc.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.mockAuditSvc.On("LogDelete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		EntryDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "March sales",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}
}

func (suite *JournalServiceTestSuite) expectAccounts(accounts ...domain.Account) {
	accountsMap := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		accountsMap[acc.AccountID] = acc
	}
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(accountsMap, nil).Once()
}

// --- Create ---

func (suite *JournalServiceTestSuite) TestCreateEntry_DefaultsToDraft() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryLine")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.Draft, entry.Status)
	suite.Equal(suite.actor, entry.CreatedBy)
	suite.Len(entry.Lines, 2)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnbalancedDraftAllowed() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[1].Credit = decimal.NewFromInt(75)

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Draft, entry.Status)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InactiveAccountRejected() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[0].AccountID = suite.inactiveAccount.AccountID

	suite.expectAccounts(suite.inactiveAccount, suite.revenueAccount)

	entry, err := suite.service.CreateEntry(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnknownAccountRejected() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.expectAccounts(suite.cashAccount) // revenue account missing

	entry, err := suite.service.CreateEntry(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(entry)
}

// --- Post ---

func (suite *JournalServiceTestSuite) postedCandidate(status domain.EntryStatus, lines []domain.JournalEntryLine) *domain.JournalEntry {
	entry := &domain.JournalEntry{
		EntryID:         uuid.NewString(),
		EntryDate:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		ReferenceNumber: "JE-100",
		Status:          status,
	}
	suite.mockJournalRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(entry, nil)
	suite.mockJournalRepo.On("FindLinesByEntryID", mock.Anything, entry.EntryID).Return(lines, nil)
	return entry
}

func balancedLines(cashID, revenueID string, amount int64) []domain.JournalEntryLine {
	return []domain.JournalEntryLine{
		{LineID: uuid.NewString(), AccountID: cashID, Debit: decimal.NewFromInt(amount)},
		{LineID: uuid.NewString(), AccountID: revenueID, Credit: decimal.NewFromInt(amount)},
	}
}

func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	lines := balancedLines(suite.cashAccount.AccountID, suite.revenueAccount.AccountID, 250)
	entry := suite.postedCandidate(domain.Approved, lines)

	suite.mockPeriodSvc.On("IsDateInOpenPeriod", ctx, entry.EntryDate).Return(true, nil).Once()
	suite.mockJournalRepo.On("TransitionEntryStatus", ctx, entry.EntryID, []domain.EntryStatus{domain.Approved}, domain.Posted, suite.actor, mock.AnythingOfType("time.Time")).Return(nil).Once()

	posted, err := suite.service.PostEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, posted.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_DraftRejected() {
	ctx := context.Background()
	lines := balancedLines(suite.cashAccount.AccountID, suite.revenueAccount.AccountID, 250)
	entry := suite.postedCandidate(domain.Draft, lines)

	posted, err := suite.service.PostEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(posted)
	suite.mockPeriodSvc.AssertNotCalled(suite.T(), "IsDateInOpenPeriod", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_ClosedPeriodRejected() {
	ctx := context.Background()
	lines := balancedLines(suite.cashAccount.AccountID, suite.revenueAccount.AccountID, 250)
	entry := suite.postedCandidate(domain.Approved, lines)

	suite.mockPeriodSvc.On("IsDateInOpenPeriod", ctx, entry.EntryDate).Return(false, nil).Once()

	posted, err := suite.service.PostEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
	suite.Nil(posted)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "TransitionEntryStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_UnbalancedTotalsRejected() {
	ctx := context.Background()
	lines := []domain.JournalEntryLine{
		{LineID: uuid.NewString(), AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
		{LineID: uuid.NewString(), AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(99)},
	}
	entry := suite.postedCandidate(domain.Approved, lines)

	suite.mockPeriodSvc.On("IsDateInOpenPeriod", ctx, entry.EntryDate).Return(true, nil).Once()

	posted, err := suite.service.PostEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	suite.Nil(posted)
}

func (suite *JournalServiceTestSuite) TestPostEntry_BothSidedLineRejected() {
	ctx := context.Background()
	lines := []domain.JournalEntryLine{
		{LineID: uuid.NewString(), AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(50), Credit: decimal.NewFromInt(50)},
		{LineID: uuid.NewString(), AccountID: suite.revenueAccount.AccountID, Credit: decimal.Zero},
	}
	entry := suite.postedCandidate(domain.Approved, lines)

	suite.mockPeriodSvc.On("IsDateInOpenPeriod", ctx, entry.EntryDate).Return(true, nil).Once()

	posted, err := suite.service.PostEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalancedLine)
	suite.Nil(posted)
}

// --- Approve / Void ---

func (suite *JournalServiceTestSuite) TestApproveEntry_Success() {
	ctx := context.Background()
	lines := balancedLines(suite.cashAccount.AccountID, suite.revenueAccount.AccountID, 10)
	entry := suite.postedCandidate(domain.Approved, lines)

	suite.mockJournalRepo.On("TransitionEntryStatus", ctx, entry.EntryID, []domain.EntryStatus{domain.Draft}, domain.Approved, suite.actor, mock.AnythingOfType("time.Time")).Return(nil).Once()

	approved, err := suite.service.ApproveEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Approved, approved.Status)
}

func (suite *JournalServiceTestSuite) TestVoidEntry_IdempotentOnVoid() {
	ctx := context.Background()
	entry := &domain.JournalEntry{EntryID: uuid.NewString(), Status: domain.Void}
	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	voided, err := suite.service.VoidEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Void, voided.Status)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "TransitionEntryStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestVoidEntry_PostedRejected() {
	ctx := context.Background()
	entry := &domain.JournalEntry{EntryID: uuid.NewString(), Status: domain.Posted}
	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	voided, err := suite.service.VoidEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(voided)
}

func (suite *JournalServiceTestSuite) TestVoidEntry_ApprovedSucceeds() {
	ctx := context.Background()
	entry := &domain.JournalEntry{EntryID: uuid.NewString(), Status: domain.Approved}
	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("TransitionEntryStatus", ctx, entry.EntryID, []domain.EntryStatus{domain.Draft, domain.Approved}, domain.Void, suite.actor, mock.AnythingOfType("time.Time")).Return(nil).Once()

	voided, err := suite.service.VoidEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Void, voided.Status)
}

// --- Reverse ---

func (suite *JournalServiceTestSuite) TestReverseEntry_MirrorsLines() {
	ctx := context.Background()
	lines := balancedLines(suite.cashAccount.AccountID, suite.revenueAccount.AccountID, 300)
	entry := suite.postedCandidate(domain.Posted, lines)

	var savedEntry domain.JournalEntry
	var savedLines []domain.JournalEntryLine
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryLine")).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(1).(domain.JournalEntry)
			savedLines = args.Get(2).([]domain.JournalEntryLine)
		}).Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(reversal)
	suite.NotEqual(entry.EntryID, reversal.EntryID)
	suite.Equal(domain.Draft, savedEntry.Status)
	suite.Equal("REV-JE-100", savedEntry.ReferenceNumber)
	suite.Equal("Reversal of JE-100", savedEntry.Description)

	suite.Require().Len(savedLines, 2)
	// Debit and credit swap per line; account set is preserved.
	suite.True(savedLines[0].Debit.IsZero())
	suite.True(savedLines[0].Credit.Equal(decimal.NewFromInt(300)))
	suite.True(savedLines[1].Debit.Equal(decimal.NewFromInt(300)))
	suite.True(savedLines[1].Credit.IsZero())
	suite.Equal(lines[0].AccountID, savedLines[0].AccountID)
	suite.Equal(lines[1].AccountID, savedLines[1].AccountID)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_DraftRejected() {
	ctx := context.Background()
	lines := balancedLines(suite.cashAccount.AccountID, suite.revenueAccount.AccountID, 300)
	entry := suite.postedCandidate(domain.Draft, lines)

	reversal, err := suite.service.ReverseEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(reversal)
}

// --- Update / Delete ---

func (suite *JournalServiceTestSuite) TestUpdateEntry_NonDraftRejected() {
	ctx := context.Background()
	lines := balancedLines(suite.cashAccount.AccountID, suite.revenueAccount.AccountID, 40)
	entry := suite.postedCandidate(domain.Approved, lines)

	req := dto.UpdateEntryRequest{
		EntryDate: entry.EntryDate,
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(40)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(40)},
		},
	}

	updated, err := suite.service.UpdateEntry(ctx, entry.EntryID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(updated)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReplaceEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteEntry_OnlyDraft() {
	ctx := context.Background()
	lines := balancedLines(suite.cashAccount.AccountID, suite.revenueAccount.AccountID, 40)
	entry := suite.postedCandidate(domain.Posted, lines)

	err := suite.service.DeleteEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteEntry_DraftSucceeds() {
	ctx := context.Background()
	lines := balancedLines(suite.cashAccount.AccountID, suite.revenueAccount.AccountID, 40)
	entry := suite.postedCandidate(domain.Draft, lines)

	suite.mockJournalRepo.On("DeleteEntry", ctx, entry.EntryID, domain.Draft).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
