package models

import "github.com/shopspring/decimal"

// RiskLevel buckets a card by utilization
type RiskLevel string

const (
	RiskHealthy RiskLevel = "healthy"
	RiskWatch   RiskLevel = "watch"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
)

// AccountView is an account together with its derived per-card figures
type AccountView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Balance         decimal.Decimal `json:"balance"`
	APR             decimal.Decimal `json:"apr"`
	CreditLimit     decimal.Decimal `json:"creditLimit"`
	Utilization     decimal.Decimal `json:"utilization"`
	MonthlyInterest decimal.Decimal `json:"monthlyInterest"`
	Per100          decimal.Decimal `json:"per100"`
	Risk            RiskLevel       `json:"risk"`
}

// RankedAccount is a card with a positive balance ranked by carrying cost
type RankedAccount struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	APR     decimal.Decimal `json:"apr"`
	Per100  decimal.Decimal `json:"per100"`
}

// Totals aggregates a snapshot
type Totals struct {
	Debt    decimal.Decimal `json:"debt"`
	Limit   decimal.Decimal `json:"limit"`
	Monthly decimal.Decimal `json:"monthly"`
	Util    decimal.Decimal `json:"util"`
}
