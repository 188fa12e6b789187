package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/dto"
	"github.com/wealthfolio/networth_backend/internal/handlers"
	"github.com/wealthfolio/networth_backend/internal/middleware"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) Kind() domain.EntryKind {
	args := m.Called()
	return args.Get(0).(domain.EntryKind)
}

func (m *MockEntryService) ListEntries(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, ownerID, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, ownerID, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	args := m.Called(ctx, ownerID, entryID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockEntryService *MockEntryService
	jwtSecret        string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *EntryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "networth-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockEntryService = new(MockEntryService)
	suite.mockEntryService.On("Kind").Return(domain.KindAsset).Maybe()

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEntryRoutes(v1, "/assets", suite.mockEntryService)
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestListEntries_Success() {
	ownerID := uuid.NewString()
	expected := []domain.Entry{
		{EntryID: uuid.NewString(), OwnerID: ownerID, Name: "Savings", Category: "cash",
			Value: decimal.RequireFromString("100.50"), Currency: "USD"},
		{EntryID: uuid.NewString(), OwnerID: ownerID, Name: "Brokerage", Category: "investment",
			Value: decimal.RequireFromString("2500"), Currency: "EUR"},
	}

	suite.mockEntryService.On("ListEntries", mock.Anything, ownerID).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
	suite.Equal("Savings", resp.Entries[0].Name)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListEntries_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	ownerID := uuid.NewString()
	created := &domain.Entry{
		EntryID:  uuid.NewString(),
		OwnerID:  ownerID,
		Name:     "Savings",
		Category: "cash",
		Value:    decimal.RequireFromString("100"),
		Currency: "USD",
	}

	suite.mockEntryService.On("CreateEntry", mock.Anything, ownerID, mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
		return req.Name == "Savings" && req.Category == "cash"
	})).Return(created, nil).Once()

	body, _ := json.Marshal(dto.CreateEntryRequest{
		Name:     "Savings",
		Category: "cash",
		Value:    decimal.RequireFromString("100"),
		Currency: "USD",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/assets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.EntryID, resp.EntryID)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_ValidationError() {
	ownerID := uuid.NewString()

	suite.mockEntryService.On("CreateEntry", mock.Anything, ownerID, mock.AnythingOfType("dto.CreateEntryRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(dto.CreateEntryRequest{
		Name:     "Savings",
		Category: "not_a_category",
		Value:    decimal.RequireFromString("100"),
		Currency: "USD",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/assets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_NotFound() {
	ownerID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockEntryService.On("UpdateEntry", mock.Anything, ownerID, entryID, mock.AnythingOfType("dto.UpdateEntryRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	body, _ := json.Marshal(map[string]string{"name": "Renamed"})
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/assets/"+entryID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_Success() {
	ownerID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockEntryService.On("DeleteEntry", mock.Anything, ownerID, entryID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/assets/"+entryID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func TestEntryHandler(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
