package analysis

import (
	"sort"

	"debt-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// checked highest first
var utilizationThresholds = []int{80, 50, 30}

var (
	half       = decimal.NewFromFloat(0.5)
	threeTenth = decimal.NewFromFloat(0.3)
)

// AnalyzeThresholds reports, for the 80/50/30% bands, how many cards sit
// above each band, what each card would need to pay to drop below the
// highest band it exceeds, and the snapshot-wide shortfalls.
func AnalyzeThresholds(accounts []models.Account) models.ThresholdReport {
	report := models.ThresholdReport{
		Nudges:      []models.NudgeSuggestion{},
		SumTo80:     decimal.Zero,
		SumTo50:     decimal.Zero,
		SumTo30:     decimal.Zero,
		To50Overall: decimal.Zero,
		To30Overall: decimal.Zero,
	}

	for i := range accounts {
		account := &accounts[i]
		if !account.HasLimit() || !account.Balance.GreaterThan(decimal.Zero) {
			continue
		}

		util := Utilization(account.Balance, account.CreditLimit)

		for _, threshold := range utilizationThresholds {
			if !util.GreaterThan(decimal.NewFromInt(int64(threshold))) {
				continue
			}
			excess := excessOver(account, threshold)
			switch threshold {
			case 80:
				report.Over80++
				report.SumTo80 = report.SumTo80.Add(excess)
			case 50:
				report.Over50++
				report.SumTo50 = report.SumTo50.Add(excess)
			case 30:
				report.Over30++
				report.SumTo30 = report.SumTo30.Add(excess)
			}
		}

		if nudge, ok := nudgeFor(account, util); ok {
			report.Nudges = append(report.Nudges, nudge)
		}
	}

	sort.SliceStable(report.Nudges, func(i, j int) bool {
		return report.Nudges[i].DollarsToDrop.LessThan(report.Nudges[j].DollarsToDrop)
	})

	totals := ComputeTotals(accounts)
	report.To50Overall = nonNegative(totals.Debt.Sub(half.Mul(totals.Limit)))
	report.To30Overall = nonNegative(totals.Debt.Sub(threeTenth.Mul(totals.Limit)))

	return report
}

// nudgeFor targets the first (highest) band the card exceeds
func nudgeFor(account *models.Account, util decimal.Decimal) (models.NudgeSuggestion, bool) {
	for _, threshold := range utilizationThresholds {
		if !util.GreaterThan(decimal.NewFromInt(int64(threshold))) {
			continue
		}
		dollarsToDrop := excessOver(account, threshold)
		if !dollarsToDrop.GreaterThan(cent) {
			return models.NudgeSuggestion{}, false
		}
		return models.NudgeSuggestion{
			Name:          account.Name,
			CurrentUtil:   util,
			NextThreshold: threshold,
			DollarsToDrop: dollarsToDrop,
		}, true
	}
	return models.NudgeSuggestion{}, false
}

// excessOver is how far the balance sits above threshold% of the limit
func excessOver(account *models.Account, threshold int) decimal.Decimal {
	target := decimal.NewFromInt(int64(threshold)).Div(hundred).Mul(account.CreditLimit)
	return nonNegative(account.Balance.Sub(target))
}
