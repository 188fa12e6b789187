package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/core/services"
	"github.com/wealthfolio/networth_backend/internal/dto"
)

// --- Mock NetWorthRepository ---
type MockNetWorthRepository struct {
	mock.Mock
}

func (m *MockNetWorthRepository) AppendRecord(ctx context.Context, record domain.NetWorthRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockNetWorthRepository) FindRecordsByOwner(ctx context.Context, ownerID string, since time.Time) ([]domain.NetWorthRecord, error) {
	args := m.Called(ctx, ownerID, since)
	var records []domain.NetWorthRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.NetWorthRecord)
	}
	return records, args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context, ownerID, displayCurrency string) (*dto.SummaryResponse, error) {
	args := m.Called(ctx, ownerID, displayCurrency)
	var summary *dto.SummaryResponse
	if args.Get(0) != nil {
		summary = args.Get(0).(*dto.SummaryResponse)
	}
	return summary, args.Error(1)
}

// --- Test Suite ---
type NetWorthServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockNetWorthRepository
	mockReporting *MockReportingService
	service       portssvc.NetWorthSvcFacade
}

func (suite *NetWorthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNetWorthRepository)
	suite.mockReporting = new(MockReportingService)
	suite.service = services.NewNetWorthService(suite.mockRepo, suite.mockReporting)
}

// Snapshot totals come from the server-side summary, never from the client.
func (suite *NetWorthServiceTestSuite) TestCreateSnapshot_UsesComputedTotals() {
	ctx := context.Background()
	summary := &dto.SummaryResponse{
		DisplayCurrency: "EUR",
		TotalAssets:     decimal.RequireFromString("1000.00"),
		TotalDebts:      decimal.RequireFromString("250.00"),
		NetWorth:        decimal.RequireFromString("750.00"),
	}

	suite.mockReporting.On("Summary", ctx, "u-1", "EUR").Return(summary, nil).Once()
	suite.mockRepo.On("AppendRecord", ctx, mock.MatchedBy(func(record domain.NetWorthRecord) bool {
		return record.OwnerID == "u-1" &&
			record.BaseCurrency == "EUR" &&
			record.TotalAssets.Equal(summary.TotalAssets) &&
			record.TotalDebts.Equal(summary.TotalDebts) &&
			record.NetWorth.Equal(summary.NetWorth)
	})).Return(nil).Once()

	record, err := suite.service.CreateSnapshot(ctx, "u-1", "EUR")

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.NotEmpty(record.RecordID)
	suite.False(record.Date.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *NetWorthServiceTestSuite) TestCreateSnapshot_PropagatesValidationError() {
	ctx := context.Background()

	suite.mockReporting.On("Summary", ctx, "u-1", "XXX").Return(nil, apperrors.ErrValidation).Once()

	record, err := suite.service.CreateSnapshot(ctx, "u-1", "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(record)
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendRecord", mock.Anything, mock.Anything)
}

func (suite *NetWorthServiceTestSuite) TestListHistory_PassesSinceThrough() {
	ctx := context.Background()
	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	stored := []domain.NetWorthRecord{
		{RecordID: "r-1", OwnerID: "u-1"},
		{RecordID: "r-2", OwnerID: "u-1"},
	}

	suite.mockRepo.On("FindRecordsByOwner", ctx, "u-1", since).Return(stored, nil).Once()

	records, err := suite.service.ListHistory(ctx, "u-1", since)

	suite.Require().NoError(err)
	suite.Len(records, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestNetWorthService(t *testing.T) {
	suite.Run(t, new(NetWorthServiceTestSuite))
}
