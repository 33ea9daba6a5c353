package usecase

import (
	"time"

	"buildbid/internal/domain/entities"
	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase/interfaces"
)

type noopMetrics struct{}

func (noopMetrics) QuoteSubmitted(string) {}
func (noopMetrics) QuoteStatusChanged(entities.QuoteStatus, entities.QuoteStatus) {}
func (noopMetrics) QuotesCompared(string, int) {}

var _ interfaces.IMetricsRecorder = noopMetrics{}

func metricsOrNop(m interfaces.IMetricsRecorder) interfaces.IMetricsRecorder {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

func loggerOrNop(l *logger.Logger) *logger.Logger {
	if l == nil {
		return logger.Nop()
	}
	return l
}

func utcNow() time.Time {
	return time.Now().UTC()
}
