package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docfold"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	passDuration     *prom.HistogramVec
	passResults      *prom.CounterVec
	itemsRemoved     *prom.CounterVec
	pipelineDuration prom.Histogram
}

// NewPrometheusRecorder constructs and registers Prometheus metrics.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		passDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Duration of individual passes",
			Buckets:   prom.DefBuckets,
		}, []string{"pass"}),
		passResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pass_results_total",
			Help:      "Pass result counts by outcome",
		}, []string{"pass", "result"}),
		itemsRemoved: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "items_removed_total",
			Help:      "Items removed from the tree by pass",
		}, []string{"pass"}),
		pipelineDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Total pipeline duration",
			Buckets:   prom.DefBuckets,
		}),
	}
	reg.MustRegister(pr.passDuration, pr.passResults, pr.itemsRemoved, pr.pipelineDuration)
	return pr
}

func (p *PrometheusRecorder) ObservePassDuration(pass string, d time.Duration) {
	if p == nil {
		return
	}
	p.passDuration.WithLabelValues(pass).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPassResult(pass string, result ResultLabel) {
	if p == nil {
		return
	}
	p.passResults.WithLabelValues(pass, string(result)).Inc()
}

// AddItemsRemoved ignores non positive deltas; counters only grow.
func (p *PrometheusRecorder) AddItemsRemoved(pass string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.itemsRemoved.WithLabelValues(pass).Add(float64(n))
}

func (p *PrometheusRecorder) ObservePipelineDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.pipelineDuration.Observe(d.Seconds())
}
