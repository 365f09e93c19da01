package dto

import (
	"strings"

	"debt-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Portfolio Request DTOs

// AccountInput is one card as submitted by the client
type AccountInput struct {
	ID          string `json:"id" validate:"account_id"`
	Name        string `json:"name" validate:"required,max=100"`
	Balance     Number `json:"balance"`
	APR         Number `json:"apr"`
	CreditLimit Number `json:"creditLimit"`
}

// ToModel converts the input into a normalized card
func (in AccountInput) ToModel() models.Account {
	return models.Account{
		ID:          in.ID,
		Name:        in.Name,
		Balance:     in.Balance.Decimal,
		APR:         in.APR.Decimal,
		CreditLimit: in.CreditLimit.Decimal,
	}.Normalized()
}

// SnapshotRequest carries the full set of cards for one analysis
type SnapshotRequest struct {
	Accounts []AccountInput `json:"accounts" validate:"dive"`
}

// ToModels converts every card, keeping snapshot order
func (r *SnapshotRequest) ToModels() []models.Account {
	accounts := make([]models.Account, 0, len(r.Accounts))
	for _, in := range r.Accounts {
		accounts = append(accounts, in.ToModel())
	}
	return accounts
}

// SortRequest sorts the snapshot by a single key
type SortRequest struct {
	SnapshotRequest
	SortBy  string `json:"sortBy" validate:"sort_key"`
	SortDir string `json:"sortDir" validate:"sort_direction"`
}

// Key returns the requested sort key
func (r *SortRequest) Key() models.SortKey {
	return models.SortKey(strings.TrimSpace(r.SortBy))
}

// Direction returns the requested direction, ascending when omitted
func (r *SortRequest) Direction() models.SortDirection {
	dir := models.SortDirection(strings.ToLower(strings.TrimSpace(r.SortDir)))
	if dir == "" {
		return models.SortAsc
	}
	return dir
}

// StrategyRequest orders the snapshot by a payoff strategy named in the path
type StrategyRequest struct {
	SnapshotRequest
	Strategy string `param:"strategy" json:"-" validate:"payoff_strategy"`
}

// PayoffStrategy returns the normalized strategy name
func (r *StrategyRequest) PayoffStrategy() models.PayoffStrategy {
	return models.PayoffStrategy(strings.ToLower(strings.TrimSpace(r.Strategy)))
}

// TransferDefaults fills transfer-plan parameters the client left out
type TransferDefaults struct {
	FeePct      decimal.Decimal
	IntroMonths decimal.Decimal
}

// TransferPlanRequest asks for a balance-transfer plan onto a 0% card.
// FeePct and Months fall back to the configured defaults when omitted.
type TransferPlanRequest struct {
	SnapshotRequest
	TargetID   string  `json:"targetId" validate:"account_id"`
	TargetName string  `json:"targetName" validate:"max=100"`
	Limit      Number  `json:"limit"`
	FeePct     *Number `json:"feePct"`
	Months     *Number `json:"months"`
	CapPct     *Number `json:"capPct"`
}

// ToModel builds the planner request, applying defaults
func (r *TransferPlanRequest) ToModel(defaults TransferDefaults) models.TransferRequest {
	req := models.TransferRequest{
		TargetID:   strings.TrimSpace(r.TargetID),
		TargetName: strings.TrimSpace(r.TargetName),
		Limit:      r.Limit.Decimal,
		FeePct:     r.FeePct.valueOr(defaults.FeePct),
		Months:     r.Months.valueOr(defaults.IntroMonths),
	}
	if r.CapPct != nil {
		capPct := r.CapPct.Decimal
		req.CapPct = &capPct
	}
	return req
}

// Portfolio Response DTOs

// TransferPlanResponse is the plan plus a machine-readable code when the
// planner declined
type TransferPlanResponse struct {
	models.TransferPlan
	ErrorCode string `json:"errorCode,omitempty"`
}
