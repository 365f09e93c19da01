package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	// MaxAPR is the guardrail ceiling applied to user-entered rates
	MaxAPR = 99.99

	MaxAccountNameLength = 100
)

var (
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountNameTooLong  = errors.New("account name is too long")
	ErrNegativeBalance     = errors.New("balance cannot be negative")
	ErrNegativeCreditLimit = errors.New("credit limit cannot be negative")
	ErrInvalidAPR          = errors.New("apr must be between 0 and 100")
)

var maxAPR = decimal.NewFromFloat(MaxAPR)

// Account is a single credit card as seen by the analysis core.
// A slice of accounts is a snapshot: it is read, never mutated.
type Account struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	APR         decimal.Decimal `json:"apr"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

// Validate checks the account invariants
func (a *Account) Validate() error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return ErrAccountNameRequired
	}

	if utf8.RuneCountInString(name) > MaxAccountNameLength {
		return ErrAccountNameTooLong
	}

	if a.Balance.IsNegative() {
		return ErrNegativeBalance
	}

	if a.CreditLimit.IsNegative() {
		return ErrNegativeCreditLimit
	}

	if a.APR.IsNegative() || a.APR.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidAPR
	}

	return nil
}

// Normalized returns a copy with the entry guardrails applied: trimmed name,
// balance and limit floored at zero, APR clamped to [0, MaxAPR].
func (a Account) Normalized() Account {
	a.ID = strings.TrimSpace(a.ID)
	a.Name = strings.TrimSpace(a.Name)
	a.Balance = decimal.Max(decimal.Zero, a.Balance)
	a.CreditLimit = decimal.Max(decimal.Zero, a.CreditLimit)
	a.APR = decimal.Min(maxAPR, decimal.Max(decimal.Zero, a.APR))
	return a
}

// HasLimit reports whether utilization is defined for the account
func (a *Account) HasLimit() bool {
	return a.CreditLimit.GreaterThan(decimal.Zero)
}

// NameKey is the case-insensitive form of the name used for matching
func (a *Account) NameKey() string {
	return NameKey(a.Name)
}

// NameKey folds a card name for case-insensitive exact matching
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
