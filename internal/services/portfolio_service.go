package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"debt-tracker/internal/analysis"
	"debt-tracker/internal/models"
)

var (
	ErrInvalidAccount       = errors.New("invalid account")
	ErrDuplicateAccountID   = errors.New("duplicate account id")
	ErrTooManyAccounts      = errors.New("too many accounts")
	ErrInvalidSortKey       = errors.New("invalid sort key")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidStrategy      = errors.New("invalid payoff strategy")
)

const (
	OperationTotals      = "totals"
	OperationCostRanking = "cost_ranking"
	OperationSort        = "sort"
	OperationPayoffOrder = "payoff_order"
	OperationThresholds  = "thresholds"
	OperationTransfer    = "transfer_plan"
	OperationDashboard   = "dashboard"
)

type PortfolioConfig struct {
	MaxAccounts   int
	DashboardTopN int
}

type portfolioService struct {
	cache   ResultCacheInterface
	metrics MetricsRecorderInterface
	events  AnalysisLoggerInterface
	config  PortfolioConfig
}

// NewPortfolioService creates the analysis service. cache may be nil to
// always compute directly.
func NewPortfolioService(
	cache ResultCacheInterface,
	metrics MetricsRecorderInterface,
	events AnalysisLoggerInterface,
	config PortfolioConfig,
) PortfolioServiceInterface {
	return &portfolioService{
		cache:   cache,
		metrics: metrics,
		events:  events,
		config:  config,
	}
}

// Totals sums debt, limit and monthly interest across the snapshot
func (s *portfolioService) Totals(ctx context.Context, accounts []models.Account) (*models.Totals, error) {
	start := time.Now()
	if err := s.validateSnapshot(ctx, OperationTotals, accounts); err != nil {
		return nil, err
	}

	totals := cachedResult(ctx, s.cache, OperationTotals, accounts, func() models.Totals {
		return analysis.ComputeTotals(accounts)
	})

	s.recordCompleted(ctx, OperationTotals, len(accounts), start)
	return &totals, nil
}

// CostRanking lists cards with a balance, most expensive per $100 first
func (s *portfolioService) CostRanking(ctx context.Context, accounts []models.Account) ([]models.RankedAccount, error) {
	start := time.Now()
	if err := s.validateSnapshot(ctx, OperationCostRanking, accounts); err != nil {
		return nil, err
	}

	ranked := cachedResult(ctx, s.cache, OperationCostRanking, accounts, func() []models.RankedAccount {
		return analysis.RankByInterestPer100(accounts)
	})

	s.recordCompleted(ctx, OperationCostRanking, len(accounts), start)
	return ranked, nil
}

// Sort orders the snapshot by key and direction. An empty key keeps the
// snapshot order.
func (s *portfolioService) Sort(ctx context.Context, accounts []models.Account, key models.SortKey, direction models.SortDirection) ([]models.AccountView, error) {
	start := time.Now()
	if key != "" && !models.IsValidSortKey(key) {
		err := fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
		s.recordRejected(ctx, OperationSort, "sort_key", err)
		return nil, err
	}
	if direction == "" {
		direction = models.SortAsc
	}
	if !models.IsValidSortDirection(direction) {
		err := fmt.Errorf("%w: %q", ErrInvalidSortDirection, direction)
		s.recordRejected(ctx, OperationSort, "sort_direction", err)
		return nil, err
	}
	if err := s.validateSnapshot(ctx, OperationSort, accounts); err != nil {
		return nil, err
	}

	input := struct {
		Accounts  []models.Account     `json:"accounts"`
		Key       models.SortKey       `json:"key"`
		Direction models.SortDirection `json:"direction"`
	}{accounts, key, direction}

	views := cachedResult(ctx, s.cache, OperationSort, input, func() []models.AccountView {
		return analysis.BuildViews(analysis.SortAccounts(accounts, key, direction))
	})

	s.recordCompleted(ctx, OperationSort, len(accounts), start)
	return views, nil
}

// PayoffOrder orders the snapshot by the avalanche or snowball strategy
func (s *portfolioService) PayoffOrder(ctx context.Context, accounts []models.Account, strategy models.PayoffStrategy) ([]models.AccountView, error) {
	start := time.Now()
	if !models.IsValidPayoffStrategy(strategy) {
		err := fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
		s.recordRejected(ctx, OperationPayoffOrder, "strategy", err)
		return nil, err
	}
	if err := s.validateSnapshot(ctx, OperationPayoffOrder, accounts); err != nil {
		return nil, err
	}

	input := struct {
		Accounts []models.Account      `json:"accounts"`
		Strategy models.PayoffStrategy `json:"strategy"`
	}{accounts, strategy}

	views := cachedResult(ctx, s.cache, OperationPayoffOrder, input, func() []models.AccountView {
		return analysis.BuildViews(analysis.PayoffOrder(accounts, strategy))
	})

	s.recordCompleted(ctx, OperationPayoffOrder, len(accounts), start)
	return views, nil
}

// Thresholds reports how the snapshot sits against the 30/50/80% bands
func (s *portfolioService) Thresholds(ctx context.Context, accounts []models.Account) (*models.ThresholdReport, error) {
	start := time.Now()
	if err := s.validateSnapshot(ctx, OperationThresholds, accounts); err != nil {
		return nil, err
	}

	report := cachedResult(ctx, s.cache, OperationThresholds, accounts, func() models.ThresholdReport {
		return analysis.AnalyzeThresholds(accounts)
	})

	s.recordCompleted(ctx, OperationThresholds, len(accounts), start)
	return &report, nil
}

// PlanTransfer builds a greedy balance-transfer plan. A plan the planner
// declines is returned with its Error set and a nil error.
func (s *portfolioService) PlanTransfer(ctx context.Context, accounts []models.Account, req models.TransferRequest) (*models.TransferPlan, error) {
	start := time.Now()
	if err := s.validateSnapshot(ctx, OperationTransfer, accounts); err != nil {
		return nil, err
	}

	input := struct {
		Accounts []models.Account      `json:"accounts"`
		Request  models.TransferRequest `json:"request"`
	}{accounts, req}

	plan := cachedResult(ctx, s.cache, OperationTransfer, input, func() models.TransferPlan {
		return analysis.PlanBalanceTransfer(accounts, req)
	})

	if plan.HasError() {
		s.events.LogTransferDeclined(ctx, req, plan.Error)
		s.metrics.IncrementCounter(MetricTransferOutcome, map[string]string{"outcome": "declined"})
	} else {
		s.events.LogTransferPlanned(ctx, &plan)
		s.metrics.IncrementCounter(MetricTransferOutcome, map[string]string{"outcome": "planned"})
		s.metrics.RecordGauge(MetricTransferPlanned, plan.TotalTransfer.InexactFloat64(), nil)
	}

	s.recordCompleted(ctx, OperationTransfer, len(accounts), start)
	return &plan, nil
}

// Dashboard bundles every view of the snapshot. topN <= 0 uses the
// configured default for the cost ranking.
func (s *portfolioService) Dashboard(ctx context.Context, accounts []models.Account, topN int) (*models.Dashboard, error) {
	start := time.Now()
	if err := s.validateSnapshot(ctx, OperationDashboard, accounts); err != nil {
		return nil, err
	}

	if topN <= 0 {
		topN = s.config.DashboardTopN
	}

	input := struct {
		Accounts []models.Account `json:"accounts"`
		TopN     int              `json:"topN"`
	}{accounts, topN}

	dashboard := cachedResult(ctx, s.cache, OperationDashboard, input, func() models.Dashboard {
		ranked := analysis.RankByInterestPer100(accounts)
		if topN > 0 && len(ranked) > topN {
			ranked = ranked[:topN]
		}
		return models.Dashboard{
			Totals:     analysis.ComputeTotals(accounts),
			Accounts:   analysis.BuildViews(accounts),
			MostCostly: ranked,
			Avalanche:  analysis.BuildViews(analysis.Avalanche(accounts)),
			Snowball:   analysis.BuildViews(analysis.Snowball(accounts)),
			Thresholds: analysis.AnalyzeThresholds(accounts),
		}
	})

	s.recordCompleted(ctx, OperationDashboard, len(accounts), start)
	return &dashboard, nil
}

// validateSnapshot enforces the size limit, per-card invariants and unique
// non-empty IDs
func (s *portfolioService) validateSnapshot(ctx context.Context, operation string, accounts []models.Account) error {
	if s.config.MaxAccounts > 0 && len(accounts) > s.config.MaxAccounts {
		err := fmt.Errorf("%w: %d cards exceeds the limit of %d", ErrTooManyAccounts, len(accounts), s.config.MaxAccounts)
		s.recordRejected(ctx, operation, "too_many_accounts", err)
		return err
	}

	seen := make(map[string]int, len(accounts))
	for i := range accounts {
		if err := accounts[i].Validate(); err != nil {
			err = fmt.Errorf("%w: accounts[%d]: %w", ErrInvalidAccount, i, err)
			s.recordRejected(ctx, operation, "invalid_account", err)
			return err
		}

		id := accounts[i].ID
		if id == "" {
			continue
		}
		if first, exists := seen[id]; exists {
			err := fmt.Errorf("%w: %q appears at accounts[%d] and accounts[%d]", ErrDuplicateAccountID, id, first, i)
			s.recordRejected(ctx, operation, "duplicate_id", err)
			return err
		}
		seen[id] = i
	}

	s.metrics.RecordGauge(MetricSnapshotSize, float64(len(accounts)), nil)
	return nil
}

func (s *portfolioService) recordCompleted(ctx context.Context, operation string, accounts int, start time.Time) {
	duration := time.Since(start)
	s.metrics.RecordProcessingTime(analysisTimingPrefix+operation, duration)
	s.metrics.IncrementCounter(MetricAnalysisCompleted, map[string]string{
		"operation": operation,
	})
	s.events.LogAnalysisCompleted(ctx, operation, accounts, duration)
}

func (s *portfolioService) recordRejected(ctx context.Context, operation, reason string, err error) {
	s.metrics.IncrementCounter(MetricAnalysisRejected, map[string]string{
		"operation": operation,
		"reason":    reason,
	})
	s.events.LogAnalysisRejected(ctx, operation, reason, err)
}

// cachedResult returns the cached result for operation over input, computing
// and storing it on a miss
func cachedResult[T any](ctx context.Context, cache ResultCacheInterface, operation string, input interface{}, compute func() T) T {
	var result T
	if cache != nil && cache.Load(ctx, operation, input, &result) {
		return result
	}

	result = compute()
	if cache != nil {
		cache.Store(ctx, operation, input, result)
	}
	return result
}
