// Package analysis holds the credit-card debt arithmetic: interest and
// utilization math, snapshot totals, cost and payoff rankings, utilization
// threshold nudges and the balance-transfer planner.
//
// Every function is pure. Inputs are snapshots that are never modified and
// outputs are freshly allocated, so callers may invoke them concurrently.
package analysis

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
	// noise floor for dollar comparisons
	cent = decimal.NewFromFloat(0.01)
)

// Coerce bounds. Anything past them is treated as unparsable so that a short
// literal like "1e5000000" cannot expand into a multi-megabyte coefficient.
const (
	maxIntegerDigits  = 15
	maxFractionDigits = 32
)

// MonthlyInterest returns one month of simple interest on balance at
// aprPercent. Zero if either input is zero.
func MonthlyInterest(balance, aprPercent decimal.Decimal) decimal.Decimal {
	if balance.IsZero() || aprPercent.IsZero() {
		return decimal.Zero
	}
	return balance.Mul(aprPercent.Div(hundred)).Div(monthsInYear)
}

// Utilization returns balance as a percentage of creditLimit. It is zero
// when there is no limit and is not clamped at 100.
func Utilization(balance, creditLimit decimal.Decimal) decimal.Decimal {
	if creditLimit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balance.Div(creditLimit).Mul(hundred)
}

// InterestPer100 is the monthly interest a $100 balance accrues at aprPercent
func InterestPer100(aprPercent decimal.Decimal) decimal.Decimal {
	return MonthlyInterest(hundred, aprPercent)
}

// Coerce parses a user-supplied number. Anything blank, unparsable, of
// magnitude 1e15 or more, or finer than 1e-32 is zero.
func Coerce(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	if !inCoerceRange(d) {
		return decimal.Zero
	}
	return d
}

// inCoerceRange checks the exponent and digit count without rescaling d
func inCoerceRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxFractionDigits {
		return false
	}
	return int64(d.NumDigits())+exp <= maxIntegerDigits
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, d)
}
