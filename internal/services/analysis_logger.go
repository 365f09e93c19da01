package services

import (
	"context"
	"log/slog"
	"time"

	"debt-tracker/internal/models"
)

const (
	// RedactedValue masks card labels in logs; users name cards after
	// themselves and their banks
	RedactedValue = "***REDACTED***"
)

type traceIDKey struct{}

// WithTraceID stores the request trace ID for downstream log lines
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID set by WithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

// AnalysisLogger emits one structured event per analysis outcome
type AnalysisLogger struct {
	logger *slog.Logger
}

func NewAnalysisLogger(logger *slog.Logger) AnalysisLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisLogger{
		logger: logger,
	}
}

func (al *AnalysisLogger) LogAnalysisCompleted(ctx context.Context, operation string, accounts int, duration time.Duration) {
	al.logger.DebugContext(ctx, "portfolio analysis completed",
		slog.String("event_type", "analysis_completed"),
		slog.String("operation", operation),
		slog.Int("accounts", accounts),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AnalysisLogger) LogAnalysisRejected(ctx context.Context, operation, reason string, err error) {
	al.logger.WarnContext(ctx, "portfolio analysis rejected",
		slog.String("event_type", "analysis_rejected"),
		slog.String("operation", operation),
		slog.String("reason", reason),
		slog.String("error", err.Error()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AnalysisLogger) LogTransferPlanned(ctx context.Context, plan *models.TransferPlan) {
	al.logger.InfoContext(ctx, "transfer plan built",
		slog.String("event_type", "transfer_planned"),
		slog.String("target", RedactedValue),
		slog.Int("moves", len(plan.Moves)),
		slog.String("total_transfer", plan.TotalTransfer.StringFixed(2)),
		slog.String("total_fees", plan.TotalFees.StringFixed(2)),
		slog.String("net_intro_savings", plan.NetIntroSavings.StringFixed(2)),
		slog.Bool("cap_applied", plan.CapApplied != nil),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AnalysisLogger) LogTransferDeclined(ctx context.Context, req models.TransferRequest, reason string) {
	al.logger.InfoContext(ctx, "transfer plan declined",
		slog.String("event_type", "transfer_declined"),
		slog.String("target_id", req.TargetID),
		slog.Bool("by_name", req.TargetID == "" && req.TargetName != ""),
		slog.String("reason", reason),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
