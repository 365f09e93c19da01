package services

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

// NewCircuitBreaker builds a breaker that trips after MaxFailures
// consecutive failures and reports state changes as a gauge
func NewCircuitBreaker(name string, config CircuitBreakerConfig, metrics MetricsRecorderInterface) *gobreaker.CircuitBreaker {
	if config.MaxFailures <= 0 {
		config.MaxFailures = DefaultCircuitBreakerConfig().MaxFailures
	}
	if config.HalfOpenMaxSucc <= 0 {
		config.HalfOpenMaxSucc = 1
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(config.HalfOpenMaxSucc),
		Timeout:     config.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.MaxFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				"service", name,
				"from", from.String(),
				"to", to.String(),
			)
			if metrics != nil {
				metrics.RecordGauge(MetricBreakerState, float64(to), map[string]string{
					"service": name,
				})
			}
		},
	}

	return gobreaker.NewCircuitBreaker(settings)
}
