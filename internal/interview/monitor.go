package interview

import (
	"context"
	"log/slog"
	"time"

	"github.com/sobeslab/intervox/internal/metrics"
)

// HealthMonitor periodically reports the active session count and counter
// snapshot. It performs no mutation and runs until the context is
// canceled at process shutdown.
type HealthMonitor struct {
	store    *Store
	metrics  *metrics.Metrics
	interval time.Duration
}

func NewHealthMonitor(store *Store, m *metrics.Metrics, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{store: store, metrics: m, interval: interval}
}

func (m *HealthMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("health monitor stopped")
			return
		case <-ticker.C:
			snap := m.metrics.Snapshot()
			slog.Info("health",
				"active_sessions", m.store.Count(),
				"interviews_started", snap.InterviewsStarted,
				"interviews_completed", snap.InterviewsCompleted,
				"questions_asked", snap.QuestionsAsked,
				"speech_calls_total", snap.SpeechCallsTotal,
				"speech_calls_successful", snap.SpeechCallsSuccessful)
		}
	}
}
