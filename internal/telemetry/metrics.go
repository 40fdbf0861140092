package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/heartmarshall/teambuilder/internal/autosave"
	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/engine"
)

// Metrics records builder activity.
type Metrics struct {
	meter         metric.Meter
	layoutChanges metric.Int64Counter
	autosaves     metric.Int64Counter
	shareDecodes  metric.Int64Counter
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	layoutChanges, err := meter.Int64Counter("teambuilder.layout.changes",
		metric.WithDescription("Layout mutations by reason"))
	if err != nil {
		return nil, fmt.Errorf("create layout changes counter: %w", err)
	}
	autosaves, err := meter.Int64Counter("teambuilder.autosave.runs",
		metric.WithDescription("Debounced autosave runs by outcome"))
	if err != nil {
		return nil, fmt.Errorf("create autosave counter: %w", err)
	}
	shareDecodes, err := meter.Int64Counter("teambuilder.share.decodes",
		metric.WithDescription("Share token decodes by result"))
	if err != nil {
		return nil, fmt.Errorf("create share decodes counter: %w", err)
	}

	return &Metrics{
		meter:         meter,
		layoutChanges: layoutChanges,
		autosaves:     autosaves,
		shareDecodes:  shareDecodes,
	}, nil
}

// LayoutChanged counts one engine mutation.
func (m *Metrics) LayoutChanged(ctx context.Context, reason engine.Reason) {
	m.layoutChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(reason))))
}

// AutosaveDone counts one autosave run.
func (m *Metrics) AutosaveDone(ctx context.Context, outcome autosave.Outcome, _ error) {
	m.autosaves.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

// ShareDecoded counts one share token decode.
func (m *Metrics) ShareDecoded(ctx context.Context, err error) {
	m.shareDecodes.Add(ctx, 1, metric.WithAttributes(attribute.String("result", decodeResult(err))))
}

// ObserveSessions reports count() as the live session gauge.
func (m *Metrics) ObserveSessions(count func() int) error {
	_, err := m.meter.Int64ObservableGauge("teambuilder.sessions.live",
		metric.WithDescription("Open builder sessions"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(count()))
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("create sessions gauge: %w", err)
	}
	return nil
}

func decodeResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrMalformedShareData):
		return "malformed"
	case errors.Is(err, domain.ErrCorruptToken):
		return "corrupt"
	default:
		return "error"
	}
}
