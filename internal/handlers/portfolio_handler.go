package handlers

import (
	"errors"
	"net/http"

	"debt-tracker/internal/dto"
	apierrors "debt-tracker/internal/errors"
	"debt-tracker/internal/models"
	"debt-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

type PortfolioHandler struct {
	portfolioService services.PortfolioServiceInterface
	transferDefaults dto.TransferDefaults
}

func NewPortfolioHandler(
	portfolioService services.PortfolioServiceInterface,
	transferDefaults dto.TransferDefaults,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		transferDefaults: transferDefaults,
	}
}

// GetTotals sums debt, limit and monthly interest across the snapshot
//
// Method: POST /api/v1/portfolio/totals
//
// Request body:
//   - accounts: Array of {id, name, balance, apr, creditLimit}
//
// Success Response: 200 OK
//   - debt, limit, monthly, util
//
// Error Responses:
//   - 400: Malformed body, validation failure or an invalid card
//   - 422: Duplicate card ids or too many cards
//   - 500: Internal server error
func (h *PortfolioHandler) GetTotals(c echo.Context) error {
	var req dto.SnapshotRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	totals, err := h.portfolioService.Totals(c.Request().Context(), req.ToModels())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: totals})
}

// GetCostRanking lists cards with a balance, most expensive per $100 first
//
// Method: POST /api/v1/portfolio/ranking/cost
func (h *PortfolioHandler) GetCostRanking(c echo.Context) error {
	var req dto.SnapshotRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	ranked, err := h.portfolioService.CostRanking(c.Request().Context(), req.ToModels())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: ranked})
}

// SortAccounts returns the snapshot as account views ordered by sortBy
//
// Method: POST /api/v1/portfolio/sort
//
// Request body adds:
//   - sortBy: name, apr, balance, utilization or interestPer100 (optional)
//   - sortDir: asc or desc (optional, defaults to asc)
func (h *PortfolioHandler) SortAccounts(c echo.Context) error {
	var req dto.SortRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	views, err := h.portfolioService.Sort(c.Request().Context(), req.ToModels(), req.Key(), req.Direction())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: views})
}

// GetPayoffOrder orders the snapshot by a payoff strategy
//
// Method: POST /api/v1/portfolio/strategy/:strategy
//
// Path parameters:
//   - strategy: avalanche or snowball
func (h *PortfolioHandler) GetPayoffOrder(c echo.Context) error {
	var req dto.StrategyRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	views, err := h.portfolioService.PayoffOrder(c.Request().Context(), req.ToModels(), req.PayoffStrategy())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: views})
}

// GetThresholds reports utilization against the 30/50/80% bands
//
// Method: POST /api/v1/portfolio/thresholds
func (h *PortfolioHandler) GetThresholds(c echo.Context) error {
	var req dto.SnapshotRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	report, err := h.portfolioService.Thresholds(c.Request().Context(), req.ToModels())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}

// PlanTransfer builds a greedy balance-transfer plan onto a 0% card
//
// Method: POST /api/v1/portfolio/transfer-plan
//
// Request body adds:
//   - targetId / targetName: the 0% card, matched by id first
//   - limit: maximum amount to move
//   - feePct, months: transfer fee and intro length (configured defaults when omitted)
//   - capPct: optional cap on the target's utilization after the transfer
//
// Success Response: 200 OK
//   - The plan. When the planner declines, error and errorCode are set and
//     the totals are zero; this is still a 200.
func (h *PortfolioHandler) PlanTransfer(c echo.Context) error {
	var req dto.TransferPlanRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	plan, err := h.portfolioService.PlanTransfer(c.Request().Context(), req.ToModels(), req.ToModel(h.transferDefaults))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	response := dto.TransferPlanResponse{TransferPlan: *plan}
	switch plan.Error {
	case "":
	case models.TransferErrTargetNotFound:
		response.ErrorCode = string(apierrors.TransferTargetNotFound)
	case models.TransferErrNoRoom:
		response.ErrorCode = string(apierrors.TransferNoRoom)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}

// GetDashboard bundles totals, views, cost ranking, payoff orders and
// thresholds for one snapshot
//
// Method: POST /api/v1/portfolio/dashboard
//
// Query parameters:
//   - top: number of ranked cards to include (optional, configured default)
func (h *PortfolioHandler) GetDashboard(c echo.Context) error {
	var req dto.SnapshotRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	topN := queryInt(c, "top", 0)

	dashboard, err := h.portfolioService.Dashboard(c.Request().Context(), req.ToModels(), topN)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dashboard})
}

// bind decodes and validates req. When ok is false the error response has
// already been written and err is the result of writing it.
func (h *PortfolioHandler) bind(c echo.Context, req interface{}) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return false, SendError(c, apierrors.RequestBodyTooLarge)
		}
		return false, SendError(c, apierrors.RequestMalformedBody, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return false, SendValidationError(c, err)
	}

	return true, nil
}

func (h *PortfolioHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidAccount):
		return SendError(c, apierrors.PortfolioInvalidAccount, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrDuplicateAccountID):
		return SendError(c, apierrors.PortfolioDuplicateAccountID, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrTooManyAccounts):
		return SendError(c, apierrors.PortfolioTooManyAccounts, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidSortKey):
		return SendError(c, apierrors.PortfolioInvalidSortKey, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidSortDirection):
		return SendError(c, apierrors.PortfolioInvalidSortDirection, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidStrategy):
		return SendError(c, apierrors.PortfolioInvalidStrategy, apierrors.WithDetails(err.Error()))
	}

	return SendSystemError(c, err)
}
