package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsMembershipAction = &Metric{
	ID:          "membershipAction",
	Name:        "action_total",
	Description: "Membership actions partitioned by action and result.",
	Type:        "counter_vec",
	Args:        []string{"action", "result"},
}

// BusinessMetrics records domain-level counters and latencies. A nil receiver is a no-op.
type BusinessMetrics struct {
	actions *prometheus.CounterVec
	process *prometheus.HistogramVec
}

func NewBusinessMetrics(reg prometheus.Registerer) (*BusinessMetrics, error) {
	actions := NewMetric(MetricsMembershipAction, "membership").(*prometheus.CounterVec)
	process := NewMetric(MetricsBusinessProcess, "membership").(*prometheus.HistogramVec)
	for _, c := range []prometheus.Collector{actions, process} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}
		}
	}
	return &BusinessMetrics{actions: actions, process: process}, nil
}

// ObserveAction counts one action outcome and its latency since start.
func (m *BusinessMetrics) ObserveAction(action string, err error, start time.Time) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.actions.WithLabelValues(action, result).Inc()
	m.process.WithLabelValues("membership", action).Observe(MillisecondsSince(start))
}

func provideBusinessMetrics() (*BusinessMetrics, error) {
	return NewBusinessMetrics(prometheus.DefaultRegisterer)
}

var Module = fx.Options(
	fx.Provide(provideBusinessMetrics),
)
