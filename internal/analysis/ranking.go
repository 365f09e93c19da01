package analysis

import (
	"sort"
	"strings"

	"debt-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var (
	riskHighAbove   = decimal.NewFromInt(80)
	riskMediumAbove = decimal.NewFromInt(50)
	riskWatchAbove  = decimal.NewFromInt(30)
)

// RankByInterestPer100 lists cards carrying a balance, most expensive per
// $100 first. Equal costs keep their snapshot order.
func RankByInterestPer100(accounts []models.Account) []models.RankedAccount {
	ranked := make([]models.RankedAccount, 0, len(accounts))
	for i := range accounts {
		account := &accounts[i]
		if !account.Balance.GreaterThan(decimal.Zero) {
			continue
		}
		ranked = append(ranked, models.RankedAccount{
			ID:      account.ID,
			Name:    account.Name,
			Balance: account.Balance,
			APR:     account.APR,
			Per100:  InterestPer100(account.APR),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Per100.GreaterThan(ranked[j].Per100)
	})

	return ranked
}

// SortAccounts returns a sorted copy of the snapshot. An unknown key keeps
// the snapshot order; any direction other than asc sorts descending.
func SortAccounts(accounts []models.Account, key models.SortKey, direction models.SortDirection) []models.Account {
	sorted := copyAccounts(accounts)
	if !models.IsValidSortKey(key) {
		return sorted
	}

	ascending := direction == models.SortAsc
	sort.SliceStable(sorted, func(i, j int) bool {
		c := compareBy(&sorted[i], &sorted[j], key)
		if ascending {
			return c < 0
		}
		return c > 0
	})

	return sorted
}

func compareBy(a, b *models.Account, key models.SortKey) int {
	switch key {
	case models.SortByName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case models.SortByAPR:
		return a.APR.Cmp(b.APR)
	case models.SortByBalance:
		return a.Balance.Cmp(b.Balance)
	case models.SortByUtilization:
		return Utilization(a.Balance, a.CreditLimit).Cmp(Utilization(b.Balance, b.CreditLimit))
	case models.SortByInterestPer100:
		return InterestPer100(a.APR).Cmp(InterestPer100(b.APR))
	default:
		return 0
	}
}

// Avalanche orders the snapshot by APR, highest first
func Avalanche(accounts []models.Account) []models.Account {
	sorted := copyAccounts(accounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].APR.GreaterThan(sorted[j].APR)
	})
	return sorted
}

// Snowball orders the snapshot by balance, lowest first
func Snowball(accounts []models.Account) []models.Account {
	sorted := copyAccounts(accounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Balance.LessThan(sorted[j].Balance)
	})
	return sorted
}

// PayoffOrder dispatches to Avalanche or Snowball. Any other strategy
// returns the snapshot order.
func PayoffOrder(accounts []models.Account, strategy models.PayoffStrategy) []models.Account {
	switch strategy {
	case models.StrategyAvalanche:
		return Avalanche(accounts)
	case models.StrategySnowball:
		return Snowball(accounts)
	default:
		return copyAccounts(accounts)
	}
}

// ClassifyRisk maps a utilization percentage to its risk band
func ClassifyRisk(util decimal.Decimal) models.RiskLevel {
	switch {
	case util.GreaterThan(riskHighAbove):
		return models.RiskHigh
	case util.GreaterThan(riskMediumAbove):
		return models.RiskMedium
	case util.GreaterThan(riskWatchAbove):
		return models.RiskWatch
	default:
		return models.RiskHealthy
	}
}

// BuildView derives the per-card figures for one account
func BuildView(account models.Account) models.AccountView {
	util := Utilization(account.Balance, account.CreditLimit)
	return models.AccountView{
		ID:              account.ID,
		Name:            account.Name,
		Balance:         account.Balance,
		APR:             account.APR,
		CreditLimit:     account.CreditLimit,
		Utilization:     util,
		MonthlyInterest: MonthlyInterest(account.Balance, account.APR),
		Per100:          InterestPer100(account.APR),
		Risk:            ClassifyRisk(util),
	}
}

// BuildViews maps BuildView over the accounts, keeping their order
func BuildViews(accounts []models.Account) []models.AccountView {
	views := make([]models.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, BuildView(account))
	}
	return views
}

func copyAccounts(accounts []models.Account) []models.Account {
	out := make([]models.Account, len(accounts))
	copy(out, accounts)
	return out
}
