package models

import "github.com/shopspring/decimal"

// NudgeSuggestion is the smallest paydown that brings one card under the
// highest utilization threshold it currently exceeds
type NudgeSuggestion struct {
	Name          string          `json:"name"`
	CurrentUtil   decimal.Decimal `json:"currentUtil"`
	NextThreshold int             `json:"nextThreshold"`
	DollarsToDrop decimal.Decimal `json:"dollarsToDrop"`
}

// ThresholdReport summarizes how the snapshot sits against the 30/50/80%
// utilization bands.
//
// SumTo* add each card's own excess over the band and are counted
// independently per band, so a card over 80% contributes to all three.
// To50Overall and To30Overall are computed from the aggregate totals instead.
type ThresholdReport struct {
	Over80      int               `json:"over80"`
	Over50      int               `json:"over50"`
	Over30      int               `json:"over30"`
	Nudges      []NudgeSuggestion `json:"nudges"`
	SumTo80     decimal.Decimal   `json:"sumTo80"`
	SumTo50     decimal.Decimal   `json:"sumTo50"`
	SumTo30     decimal.Decimal   `json:"sumTo30"`
	To50Overall decimal.Decimal   `json:"to50Overall"`
	To30Overall decimal.Decimal   `json:"to30Overall"`
}
