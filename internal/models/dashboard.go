package models

// Dashboard bundles every derived view of one snapshot
type Dashboard struct {
	Totals     Totals          `json:"totals"`
	Accounts   []AccountView   `json:"accounts"`
	MostCostly []RankedAccount `json:"mostCostly"`
	Avalanche  []AccountView   `json:"avalanche"`
	Snowball   []AccountView   `json:"snowball"`
	Thresholds ThresholdReport `json:"thresholds"`
}
