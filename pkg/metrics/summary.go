package metrics

import (
	"fmt"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
)

// Summary flattens everything recorded in the registry into stable
// name{label="value",...} keys. Counters and gauges report their value,
// histograms their sample count.
func Summary(registry *prometheus.Registry) (map[string]float64, error) {
	families, err := registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			key := sampleKey(family.GetName(), metric.GetLabel())
			switch {
			case metric.GetCounter() != nil:
				out[key] = metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				out[key] = float64(metric.GetHistogram().GetSampleCount())
			case metric.GetGauge() != nil:
				out[key] = metric.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}

func sampleKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	parts := pie.Map(labels, func(label *dto.LabelPair) string {
		return fmt.Sprintf("%s=%q", label.GetName(), label.GetValue())
	})
	return name + "{" + strings.Join(pie.Sort(parts), ",") + "}"
}

// LogSummary writes the gathered registry contents through the logger, one
// field per sample. An empty registry logs nothing.
func LogSummary(registry *prometheus.Registry, logger *zap.Logger) {
	summary, err := Summary(registry)
	if err != nil {
		logger.Warn("Failed to gather run metrics", zap.Error(err))
		return
	}
	if len(summary) == 0 {
		return
	}

	fields := make([]zap.Field, 0, len(summary))
	for _, key := range pie.Sort(pie.Keys(summary)) {
		fields = append(fields, zap.Float64(key, summary[key]))
	}
	logger.Info("Run metrics", fields...)
}
