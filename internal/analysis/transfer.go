package analysis

import (
	"debt-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// PlanBalanceTransfer greedily moves the most expensive balances onto the
// target card until the available room is used up.
//
// Room is the target's headroom under its credit limit, further bounded by
// the optional cap (a percentage of the target's limit) and by the requested
// limit. Sources are visited in RankByInterestPer100 order and each one is
// drained as far as the remaining room allows; there is no backtracking.
//
// Failures are reported through TransferPlan.Error, never as a Go error.
func PlanBalanceTransfer(accounts []models.Account, req models.TransferRequest) models.TransferPlan {
	requested := nonNegative(req.Limit)
	fee := nonNegative(req.FeePct).Div(hundred)
	introMonths := nonNegative(req.Months)
	capPct := normalizeCap(req.CapPct)

	target, ok := resolveTarget(accounts, req.TargetID, req.TargetName)
	if !ok {
		return models.FailedTransferPlan(models.TransferErrTargetNotFound)
	}

	maxRoom := decimal.Min(requested, availableRoom(target, capPct))
	if maxRoom.LessThanOrEqual(cent) {
		return models.FailedTransferPlan(models.TransferErrNoRoom)
	}

	plan := models.TransferPlan{
		Target:            target.Name,
		CapApplied:        capPct,
		TotalTransfer:     decimal.Zero,
		TotalMonthlySaved: decimal.Zero,
		TotalIntroSaved:   decimal.Zero,
		TotalFees:         decimal.Zero,
		Moves:             []models.TransferMove{},
	}

	remaining := maxRoom
	for _, source := range transferSources(accounts, target) {
		if remaining.LessThanOrEqual(cent) {
			break
		}

		take := decimal.Min(remaining, source.Balance)
		if take.LessThanOrEqual(cent) {
			continue
		}

		monthlySaved := source.Per100.Mul(take.Div(hundred))
		move := models.TransferMove{
			From:            source.Name,
			Amount:          take,
			APR:             source.APR,
			EstMonthlySaved: monthlySaved,
			EstIntroSaved:   monthlySaved.Mul(introMonths),
			FeeCost:         take.Mul(fee),
		}
		plan.Moves = append(plan.Moves, move)

		plan.TotalTransfer = plan.TotalTransfer.Add(move.Amount)
		plan.TotalMonthlySaved = plan.TotalMonthlySaved.Add(move.EstMonthlySaved)
		plan.TotalIntroSaved = plan.TotalIntroSaved.Add(move.EstIntroSaved)
		plan.TotalFees = plan.TotalFees.Add(move.FeeCost)

		remaining = remaining.Sub(take)
	}

	plan.NetIntroSavings = plan.TotalIntroSaved.Sub(plan.TotalFees)

	return plan
}

// resolveTarget matches by id first, then by case-insensitive exact name
func resolveTarget(accounts []models.Account, targetID, targetName string) (models.Account, bool) {
	if targetID != "" {
		for _, account := range accounts {
			if account.ID == targetID {
				return account, true
			}
		}
	}

	if targetName != "" {
		key := models.NameKey(targetName)
		for _, account := range accounts {
			if account.NameKey() == key {
				return account, true
			}
		}
	}

	return models.Account{}, false
}

// availableRoom is the physical headroom, reduced to the cap when one applies
func availableRoom(target models.Account, capPct *decimal.Decimal) decimal.Decimal {
	room := nonNegative(target.CreditLimit.Sub(target.Balance))

	if capPct != nil && target.HasLimit() {
		capBalance := capPct.Div(hundred).Mul(target.CreditLimit)
		capRoom := nonNegative(capBalance.Sub(target.Balance))
		room = decimal.Min(room, capRoom)
	}

	return room
}

// transferSources ranks every card except the target
func transferSources(accounts []models.Account, target models.Account) []models.RankedAccount {
	targetKey := target.NameKey()
	ranked := RankByInterestPer100(accounts)

	sources := make([]models.RankedAccount, 0, len(ranked))
	for _, r := range ranked {
		if target.ID != "" && r.ID == target.ID {
			continue
		}
		if models.NameKey(r.Name) == targetKey {
			continue
		}
		sources = append(sources, r)
	}
	return sources
}

// normalizeCap treats a missing or zero cap as absent and clamps the rest
// to [0, 100]
func normalizeCap(capPct *decimal.Decimal) *decimal.Decimal {
	if capPct == nil || capPct.IsZero() {
		return nil
	}
	clamped := decimal.Min(hundred, nonNegative(*capPct))
	return &clamped
}
