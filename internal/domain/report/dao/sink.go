package dao

import (
	"context"
	"log/slog"

	"github.com/vadim/vk-metric/internal/domain/report/entity"
	wall "github.com/vadim/vk-metric/internal/domain/wall/entity"
)

// ReportSink defines the interface for storing a batch of monthly reports
type ReportSink interface {
	Save(ctx context.Context, w wall.Window, reports []entity.Report) error
}

// NopSink discards reports. Reports are not persisted between runs.
type NopSink struct {
	logger *slog.Logger
}

// NewNopSink creates a sink that only logs what it would have stored
func NewNopSink(logger *slog.Logger) *NopSink {
	return &NopSink{logger: logger}
}

// Save implements ReportSink
func (s *NopSink) Save(ctx context.Context, w wall.Window, reports []entity.Report) error {
	s.logger.DebugContext(ctx, "reports not persisted", "window", w.String(), "count", len(reports))
	return nil
}
