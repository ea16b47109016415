package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	opDuration  *prom.HistogramVec
	opResults   *prom.CounterVec
	diagnostics prom.Gauge
	reformatted prom.Counter
}

// NewPrometheusRecorder constructs and registers the txxt metrics on reg
// (a private registry is created when reg is nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		opDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "txxt",
			Name:      "operation_duration_seconds",
			Help:      "Duration of individual engine operations",
			Buckets:   prom.DefBuckets,
		}, []string{"op"}),
		opResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "txxt",
			Name:      "operation_results_total",
			Help:      "Operation counts by outcome",
		}, []string{"op", "result"}),
		diagnostics: prom.NewGauge(prom.GaugeOpts{
			Namespace: "txxt",
			Name:      "reference_diagnostics",
			Help:      "Diagnostics reported by the latest reference sweep",
		}),
		reformatted: prom.NewCounter(prom.CounterOpts{
			Namespace: "txxt",
			Name:      "files_reformatted_total",
			Help:      "Files rewritten by the watch daemon",
		}),
	}
	reg.MustRegister(pr.opDuration, pr.opResults, pr.diagnostics, pr.reformatted)
	return pr
}

func (p *PrometheusRecorder) ObserveOperation(op string, d time.Duration, err error) {
	p.opDuration.WithLabelValues(op).Observe(d.Seconds())
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.opResults.WithLabelValues(op, result).Inc()
}

func (p *PrometheusRecorder) SetDiagnostics(n int) {
	p.diagnostics.Set(float64(n))
}

func (p *PrometheusRecorder) IncReformatted() {
	p.reformatted.Inc()
}
