package analysis

import (
	"debt-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// ComputeTotals sums debt, limit and monthly interest across the snapshot
func ComputeTotals(accounts []models.Account) models.Totals {
	totals := models.Totals{
		Debt:    decimal.Zero,
		Limit:   decimal.Zero,
		Monthly: decimal.Zero,
		Util:    decimal.Zero,
	}

	for i := range accounts {
		account := &accounts[i]
		totals.Debt = totals.Debt.Add(account.Balance)
		totals.Limit = totals.Limit.Add(account.CreditLimit)
		totals.Monthly = totals.Monthly.Add(MonthlyInterest(account.Balance, account.APR))
	}

	totals.Util = Utilization(totals.Debt, totals.Limit)

	return totals
}
