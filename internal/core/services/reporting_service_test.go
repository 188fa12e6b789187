package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/core/services"
	"github.com/wealthfolio/networth_backend/internal/fx"
)

// stubRates serves a fixed table; the refresh methods are never used here.
type stubRates struct {
	table fx.RateTable
}

func (s *stubRates) Rates() fx.RateTable                               { return s.table }
func (s *stubRates) RefreshNow(ctx context.Context) error              { return nil }
func (s *stubRates) StartRefresher(ctx context.Context, _ time.Duration) {}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAssetRepo *MockEntryRepository
	mockDebtRepo  *MockEntryRepository
	service       portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockEntryRepository)
	suite.mockDebtRepo = new(MockEntryRepository)
	rates := &stubRates{table: fx.RateTable{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.92"),
		"RON": decimal.RequireFromString("4.56"),
	}}
	suite.service = services.NewReportingService(suite.mockAssetRepo, suite.mockDebtRepo, rates)
}

func (suite *ReportingServiceTestSuite) TestSummary_MixedCurrencies() {
	ctx := context.Background()
	assets := []domain.Entry{
		{Category: "cash", Value: decimal.RequireFromString("100"), Currency: "USD"},
		{Category: "cash", Value: decimal.RequireFromString("50"), Currency: "EUR"},
		{Category: "investment", Value: decimal.RequireFromString("456"), Currency: "RON"},
	}
	debts := []domain.Entry{
		{Category: "credit_card", Value: decimal.RequireFromString("92"), Currency: "EUR"},
	}

	suite.mockAssetRepo.On("FindEntriesByOwner", ctx, "u-1").Return(assets, nil).Once()
	suite.mockDebtRepo.On("FindEntriesByOwner", ctx, "u-1").Return(debts, nil).Once()

	summary, err := suite.service.Summary(ctx, "u-1", "usd")

	suite.Require().NoError(err)
	suite.Equal("USD", summary.DisplayCurrency)

	// 100 USD + 50 EUR (54.35) + 456 RON (100.00) = 254.35 USD
	suite.True(summary.TotalAssets.Equal(decimal.RequireFromString("254.35")), "got %s", summary.TotalAssets)
	// 92 EUR = 100.00 USD
	suite.True(summary.TotalDebts.Equal(decimal.RequireFromString("100.00")), "got %s", summary.TotalDebts)
	suite.True(summary.NetWorth.Equal(decimal.RequireFromString("154.35")), "got %s", summary.NetWorth)

	// cash (154.35) outranks investment (100.00)
	suite.Require().Len(summary.AssetAllocation, 2)
	suite.Equal("cash", summary.AssetAllocation[0].Category)
	suite.Equal("investment", summary.AssetAllocation[1].Category)
}

func (suite *ReportingServiceTestSuite) TestSummary_PercentagesSumNearOneHundred() {
	ctx := context.Background()
	assets := []domain.Entry{
		{Category: "cash", Value: decimal.RequireFromString("300"), Currency: "USD"},
		{Category: "investment", Value: decimal.RequireFromString("500"), Currency: "USD"},
		{Category: "vehicle", Value: decimal.RequireFromString("200"), Currency: "USD"},
	}

	suite.mockAssetRepo.On("FindEntriesByOwner", ctx, "u-1").Return(assets, nil).Once()
	suite.mockDebtRepo.On("FindEntriesByOwner", ctx, "u-1").Return([]domain.Entry{}, nil).Once()

	summary, err := suite.service.Summary(ctx, "u-1", "USD")

	suite.Require().NoError(err)
	sum := decimal.Zero
	for _, a := range summary.AssetAllocation {
		sum = sum.Add(a.Percentage)
	}
	diff := sum.Sub(decimal.NewFromInt(100)).Abs()
	suite.True(diff.LessThanOrEqual(decimal.RequireFromString("0.05")), "percentages sum to %s", sum)
}

func (suite *ReportingServiceTestSuite) TestSummary_EmptyPortfolio() {
	ctx := context.Background()

	suite.mockAssetRepo.On("FindEntriesByOwner", ctx, "u-1").Return([]domain.Entry{}, nil).Once()
	suite.mockDebtRepo.On("FindEntriesByOwner", ctx, "u-1").Return([]domain.Entry{}, nil).Once()

	summary, err := suite.service.Summary(ctx, "u-1", "EUR")

	suite.Require().NoError(err)
	suite.True(summary.TotalAssets.IsZero())
	suite.True(summary.TotalDebts.IsZero())
	suite.True(summary.NetWorth.IsZero())
	suite.Empty(summary.AssetAllocation)
	suite.Empty(summary.DebtAllocation)
}

func (suite *ReportingServiceTestSuite) TestSummary_UnsupportedDisplayCurrency() {
	ctx := context.Background()

	summary, err := suite.service.Summary(ctx, "u-1", "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summary)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "FindEntriesByOwner", ctx, "u-1")
}

// An entry stored in a currency absent from the rate table is a data problem
// the client has to see, not a silent zero or a 500.
func (suite *ReportingServiceTestSuite) TestSummary_UnknownStoredCurrency() {
	ctx := context.Background()
	assets := []domain.Entry{
		{Category: "cash", Value: decimal.RequireFromString("100"), Currency: "ZZZ"},
	}

	suite.mockAssetRepo.On("FindEntriesByOwner", ctx, "u-1").Return(assets, nil).Once()
	suite.mockDebtRepo.On("FindEntriesByOwner", ctx, "u-1").Return([]domain.Entry{}, nil).Once()

	summary, err := suite.service.Summary(ctx, "u-1", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summary)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
