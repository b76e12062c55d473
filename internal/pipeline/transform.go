package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/problem-report-intake/internal/domain"
	"github.com/couchcryptid/problem-report-intake/internal/observability"
)

// ReportTransformer builds, classifies and serializes submissions read from
// the source topic, with optional reverse geocoding.
type ReportTransformer struct {
	geocoder domain.Geocoder
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewTransformer creates a ReportTransformer. Pass a nil geocoder to disable
// geocoding enrichment.
func NewTransformer(geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics) *ReportTransformer {
	return &ReportTransformer{
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
	}
}

func (t *ReportTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	in, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	sub, err := domain.Build(in)
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			for _, fe := range verr.Errors {
				t.metrics.ValidationFailures.WithLabelValues(domain.KindName(fe.Kind)).Inc()
			}
		}
		return domain.OutputEvent{}, fmt.Errorf("build submission: %w", err)
	}

	report := domain.NewReport(sub)
	report = domain.EnrichWithGeocoding(ctx, report, t.geocoder, t.logger)

	out, err := domain.SerializeReport(report)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	t.metrics.ReportsClassified.WithLabelValues(string(sub.Severity), string(sub.Category)).Inc()
	return out, nil
}
