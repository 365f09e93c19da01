package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"debt-tracker/internal/dto"
	"debt-tracker/internal/models"
	"debt-tracker/internal/services"
	"debt-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PortfolioHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockPortfolioServiceInterface
	handler     *PortfolioHandler
	echo        *echo.Echo
}

func (s *PortfolioHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockPortfolioServiceInterface(s.ctrl)
	s.handler = NewPortfolioHandler(s.mockService, dto.TransferDefaults{
		FeePct:      decimal.NewFromInt(3),
		IntroMonths: decimal.NewFromInt(15),
	})

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	RegisterRoutes(s.echo, s.handler, NewHealthCheckHandler(nil))
}

func (s *PortfolioHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPortfolioHandlerSuite(t *testing.T) {
	suite.Run(t, new(PortfolioHandlerSuite))
}

const twoCards = `{"accounts":[
	{"id":"a","name":"Rewards","balance":"3000","apr":20,"creditLimit":6000},
	{"id":"b","name":"Store","balance":900,"apr":"24","creditLimit":"1000"}
]}`

func (s *PortfolioHandlerSuite) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *PortfolioHandlerSuite) decodeData(rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, ok := response["data"].(map[string]interface{})
	s.Require().True(ok, "response has no data object: %s", rec.Body.String())
	return data
}

func (s *PortfolioHandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

// ========================================
// POST /api/v1/portfolio/totals
// ========================================

func (s *PortfolioHandlerSuite) TestGetTotals_Success() {
	s.mockService.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, accounts []models.Account) (*models.Totals, error) {
			s.Require().Len(accounts, 2)
			s.Equal("Rewards", accounts[0].Name)
			s.True(decimal.NewFromInt(3000).Equal(accounts[0].Balance))
			s.True(decimal.NewFromInt(24).Equal(accounts[1].APR))
			return &models.Totals{Debt: decimal.NewFromInt(3900), Limit: decimal.NewFromInt(7000)}, nil
		})

	rec := s.post("/api/v1/portfolio/totals", twoCards)

	s.Equal(http.StatusOK, rec.Code)
	data := s.decodeData(rec)
	s.Equal("3900", data["debt"])
	s.Equal("7000", data["limit"])
}

func (s *PortfolioHandlerSuite) TestGetTotals_UnparsableNumbersBecomeZero() {
	s.mockService.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, accounts []models.Account) (*models.Totals, error) {
			s.Require().Len(accounts, 1)
			s.True(accounts[0].Balance.IsZero())
			s.True(accounts[0].APR.IsZero())
			s.True(accounts[0].CreditLimit.IsZero())
			return &models.Totals{}, nil
		})

	rec := s.post("/api/v1/portfolio/totals",
		`{"accounts":[{"name":"Odd","balance":"abc","apr":null,"creditLimit":{"x":1}}]}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PortfolioHandlerSuite) TestGetTotals_MalformedBody() {
	rec := s.post("/api/v1/portfolio/totals", `{"accounts":[`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("REQUEST_001", s.decodeError(rec).Error.Code)
}

func (s *PortfolioHandlerSuite) TestGetTotals_MissingName() {
	rec := s.post("/api/v1/portfolio/totals", `{"accounts":[{"id":"a","name":"ok"},{"balance":10}]}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	response := s.decodeError(rec)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Contains(response.Error.Details, "accounts[1].name: is required")
}

func (s *PortfolioHandlerSuite) TestGetTotals_InvalidAccountID() {
	rec := s.post("/api/v1/portfolio/totals", `{"accounts":[{"id":"has space","name":"A"}]}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
}

func (s *PortfolioHandlerSuite) TestGetTotals_DuplicateIDs() {
	s.mockService.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %q appears at accounts[0] and accounts[1]", services.ErrDuplicateAccountID, "a"))

	rec := s.post("/api/v1/portfolio/totals", twoCards)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	response := s.decodeError(rec)
	s.Equal("PORTFOLIO_002", response.Error.Code)
	s.Require().Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "accounts[1]")
}

func (s *PortfolioHandlerSuite) TestGetTotals_TooManyAccounts() {
	s.mockService.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: 201 cards exceeds the limit of 200", services.ErrTooManyAccounts))

	rec := s.post("/api/v1/portfolio/totals", twoCards)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("PORTFOLIO_003", s.decodeError(rec).Error.Code)
}

func (s *PortfolioHandlerSuite) TestGetTotals_UnexpectedError() {
	s.mockService.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("boom"))

	rec := s.post("/api/v1/portfolio/totals", twoCards)

	s.Equal(http.StatusInternalServerError, rec.Code)
	response := s.decodeError(rec)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(rec.Body.String(), "boom")
}

// ========================================
// POST /api/v1/portfolio/ranking/cost
// ========================================

func (s *PortfolioHandlerSuite) TestGetCostRanking_Success() {
	s.mockService.EXPECT().
		CostRanking(gomock.Any(), gomock.Len(2)).
		Return([]models.RankedAccount{
			{ID: "b", Name: "Store", Balance: decimal.NewFromInt(900), APR: decimal.NewFromInt(24), Per100: decimal.NewFromInt(2)},
		}, nil)

	rec := s.post("/api/v1/portfolio/ranking/cost", twoCards)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"per100":"2"`)
}

// ========================================
// POST /api/v1/portfolio/sort
// ========================================

func (s *PortfolioHandlerSuite) TestSortAccounts_PassesKeyAndDirection() {
	s.mockService.EXPECT().
		Sort(gomock.Any(), gomock.Len(2), models.SortByUtilization, models.SortDesc).
		Return([]models.AccountView{}, nil)

	rec := s.post("/api/v1/portfolio/sort",
		`{"sortBy":"utilization","sortDir":"DESC","accounts":[{"name":"A"},{"name":"B"}]}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PortfolioHandlerSuite) TestSortAccounts_DefaultsToAscending() {
	s.mockService.EXPECT().
		Sort(gomock.Any(), gomock.Any(), models.SortKey(""), models.SortAsc).
		Return([]models.AccountView{}, nil)

	rec := s.post("/api/v1/portfolio/sort", `{"accounts":[{"name":"A"}]}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PortfolioHandlerSuite) TestSortAccounts_UnknownKey() {
	rec := s.post("/api/v1/portfolio/sort", `{"sortBy":"color","accounts":[]}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	response := s.decodeError(rec)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Require().Len(response.Error.Details, 1)
	s.True(strings.HasPrefix(response.Error.Details[0], "sortBy: "))
}

// ========================================
// POST /api/v1/portfolio/strategy/:strategy
// ========================================

func (s *PortfolioHandlerSuite) TestGetPayoffOrder_Avalanche() {
	s.mockService.EXPECT().
		PayoffOrder(gomock.Any(), gomock.Len(2), models.StrategyAvalanche).
		Return([]models.AccountView{{ID: "b", Name: "Store", Risk: models.RiskHigh}}, nil)

	rec := s.post("/api/v1/portfolio/strategy/avalanche", twoCards)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"risk":"high"`)
}

func (s *PortfolioHandlerSuite) TestGetPayoffOrder_CaseInsensitive() {
	s.mockService.EXPECT().
		PayoffOrder(gomock.Any(), gomock.Any(), models.StrategySnowball).
		Return([]models.AccountView{}, nil)

	rec := s.post("/api/v1/portfolio/strategy/Snowball", twoCards)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PortfolioHandlerSuite) TestGetPayoffOrder_UnknownStrategy() {
	rec := s.post("/api/v1/portfolio/strategy/lottery", twoCards)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
}

// ========================================
// POST /api/v1/portfolio/thresholds
// ========================================

func (s *PortfolioHandlerSuite) TestGetThresholds_Success() {
	s.mockService.EXPECT().
		Thresholds(gomock.Any(), gomock.Len(2)).
		Return(&models.ThresholdReport{Over80: 1, Nudges: []models.NudgeSuggestion{}}, nil)

	rec := s.post("/api/v1/portfolio/thresholds", twoCards)

	s.Equal(http.StatusOK, rec.Code)
	data := s.decodeData(rec)
	s.EqualValues(1, data["over80"])
}

// ========================================
// POST /api/v1/portfolio/transfer-plan
// ========================================

func (s *PortfolioHandlerSuite) TestPlanTransfer_AppliesDefaults() {
	s.mockService.EXPECT().
		PlanTransfer(gomock.Any(), gomock.Len(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []models.Account, req models.TransferRequest) (*models.TransferPlan, error) {
			s.Equal("t", req.TargetID)
			s.True(decimal.NewFromInt(2000).Equal(req.Limit))
			s.True(decimal.NewFromInt(3).Equal(req.FeePct))
			s.True(decimal.NewFromInt(15).Equal(req.Months))
			s.Nil(req.CapPct)
			return &models.TransferPlan{
				Target:        "Intro",
				TotalTransfer: decimal.NewFromInt(2000),
				Moves:         []models.TransferMove{},
			}, nil
		})

	rec := s.post("/api/v1/portfolio/transfer-plan",
		`{"targetId":"t","limit":2000,"accounts":[{"id":"t","name":"Intro"},{"id":"a","name":"A"}]}`)

	s.Equal(http.StatusOK, rec.Code)
	data := s.decodeData(rec)
	s.Equal("Intro", data["target"])
	s.NotContains(data, "error")
	s.NotContains(data, "errorCode")
}

func (s *PortfolioHandlerSuite) TestPlanTransfer_ExplicitParameters() {
	s.mockService.EXPECT().
		PlanTransfer(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []models.Account, req models.TransferRequest) (*models.TransferPlan, error) {
			s.Equal("Intro", req.TargetName)
			s.True(decimal.NewFromInt(5).Equal(req.FeePct))
			s.True(decimal.NewFromInt(12).Equal(req.Months))
			s.Require().NotNil(req.CapPct)
			s.True(decimal.NewFromInt(70).Equal(*req.CapPct))
			plan := models.FailedTransferPlan(models.TransferErrNoRoom)
			return &plan, nil
		})

	rec := s.post("/api/v1/portfolio/transfer-plan",
		`{"targetName":" Intro ","limit":"500","feePct":"5","months":12,"capPct":70,"accounts":[{"name":"Intro"}]}`)

	s.Equal(http.StatusOK, rec.Code)
	data := s.decodeData(rec)
	s.Equal(models.TransferErrNoRoom, data["error"])
	s.Equal("TRANSFER_002", data["errorCode"])
}

func (s *PortfolioHandlerSuite) TestPlanTransfer_TargetNotFoundIsStill200() {
	plan := models.FailedTransferPlan(models.TransferErrTargetNotFound)
	s.mockService.EXPECT().
		PlanTransfer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&plan, nil)

	rec := s.post("/api/v1/portfolio/transfer-plan", `{"targetId":"zzz","accounts":[{"name":"A"}]}`)

	s.Equal(http.StatusOK, rec.Code)
	data := s.decodeData(rec)
	s.Equal("TRANSFER_001", data["errorCode"])
	s.Equal([]interface{}{}, data["moves"])
}

// ========================================
// POST /api/v1/portfolio/dashboard
// ========================================

func (s *PortfolioHandlerSuite) TestGetDashboard_TopQueryParam() {
	s.mockService.EXPECT().
		Dashboard(gomock.Any(), gomock.Len(2), 3).
		Return(&models.Dashboard{}, nil)

	rec := s.post("/api/v1/portfolio/dashboard?top=3", twoCards)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PortfolioHandlerSuite) TestGetDashboard_InvalidTopUsesDefault() {
	s.mockService.EXPECT().
		Dashboard(gomock.Any(), gomock.Any(), 0).
		Return(&models.Dashboard{}, nil)

	rec := s.post("/api/v1/portfolio/dashboard?top=many", twoCards)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PortfolioHandlerSuite) TestGetDashboard_InvalidAccount() {
	s.mockService.EXPECT().
		Dashboard(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: accounts[0]: bad", services.ErrInvalidAccount))

	rec := s.post("/api/v1/portfolio/dashboard", twoCards)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("PORTFOLIO_001", s.decodeError(rec).Error.Code)
}

func (s *PortfolioHandlerSuite) TestTraceIDFromContext() {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")

	err := s.handler.GetTotals(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("trace-123", s.decodeError(rec).Error.TraceID)
}
