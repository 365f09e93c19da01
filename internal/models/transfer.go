package models

import "github.com/shopspring/decimal"

const (
	TransferErrTargetNotFound = "Target 0% card not found."
	TransferErrNoRoom         = "No available room on 0% card (limit/cap reached)."
)

// TransferRequest holds the planner inputs besides the snapshot.
// CapPct is optional; nil means no self-imposed cap.
type TransferRequest struct {
	TargetID   string
	TargetName string
	Limit      decimal.Decimal
	FeePct     decimal.Decimal
	Months     decimal.Decimal
	CapPct     *decimal.Decimal
}

// TransferMove is one allocation from a source card onto the target
type TransferMove struct {
	From            string          `json:"from"`
	Amount          decimal.Decimal `json:"amount"`
	APR             decimal.Decimal `json:"apr"`
	EstMonthlySaved decimal.Decimal `json:"estMonthlySaved"`
	EstIntroSaved   decimal.Decimal `json:"estIntroSaved"`
	FeeCost         decimal.Decimal `json:"feeCost"`
}

// TransferPlan is the planner result. When Error is set the plan carries
// no moves and the totals are zero.
type TransferPlan struct {
	Error             string           `json:"error,omitempty"`
	Target            string           `json:"target,omitempty"`
	CapApplied        *decimal.Decimal `json:"capApplied"`
	TotalTransfer     decimal.Decimal  `json:"totalTransfer"`
	TotalMonthlySaved decimal.Decimal  `json:"totalMonthlySaved"`
	TotalIntroSaved   decimal.Decimal  `json:"totalIntroSaved"`
	TotalFees         decimal.Decimal  `json:"totalFees"`
	NetIntroSavings   decimal.Decimal  `json:"netIntroSavings"`
	Moves             []TransferMove   `json:"moves"`
}

// HasError reports whether the planner declined to build a plan
func (p *TransferPlan) HasError() bool {
	return p.Error != ""
}

// FailedTransferPlan returns a plan carrying only an error message
func FailedTransferPlan(message string) TransferPlan {
	return TransferPlan{
		Error: message,
		Moves: []TransferMove{},
	}
}
