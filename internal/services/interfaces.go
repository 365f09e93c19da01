package services

import (
	"context"
	"time"

	"debt-tracker/internal/models"
)

// PortfolioServiceInterface runs the debt analyses over a client-supplied
// snapshot. Snapshots are validated before any analysis runs.
type PortfolioServiceInterface interface {
	Totals(ctx context.Context, accounts []models.Account) (*models.Totals, error)
	CostRanking(ctx context.Context, accounts []models.Account) ([]models.RankedAccount, error)
	Sort(ctx context.Context, accounts []models.Account, key models.SortKey, direction models.SortDirection) ([]models.AccountView, error)
	PayoffOrder(ctx context.Context, accounts []models.Account, strategy models.PayoffStrategy) ([]models.AccountView, error)
	Thresholds(ctx context.Context, accounts []models.Account) (*models.ThresholdReport, error)
	PlanTransfer(ctx context.Context, accounts []models.Account, req models.TransferRequest) (*models.TransferPlan, error)
	Dashboard(ctx context.Context, accounts []models.Account, topN int) (*models.Dashboard, error)
}

// ResultCacheInterface memoizes analysis results keyed by operation and
// input. Load reports a hit and fills dest; cache failures are absorbed and
// surface as misses.
type ResultCacheInterface interface {
	Load(ctx context.Context, operation string, input interface{}, dest interface{}) bool
	Store(ctx context.Context, operation string, input interface{}, value interface{})
	Healthy(ctx context.Context) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// AnalysisLoggerInterface records analysis outcomes as structured events
type AnalysisLoggerInterface interface {
	LogAnalysisCompleted(ctx context.Context, operation string, accounts int, duration time.Duration)
	LogAnalysisRejected(ctx context.Context, operation, reason string, err error)
	LogTransferPlanned(ctx context.Context, plan *models.TransferPlan)
	LogTransferDeclined(ctx context.Context, req models.TransferRequest, reason string)
}
