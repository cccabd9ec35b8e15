package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObservePassDuration("strip-hidden", 150*time.Millisecond)
	pr.IncPassResult("strip-hidden", ResultSuccess)
	pr.IncPassResult("unindent-comments", ResultFailed)
	pr.AddItemsRemoved("strip-hidden", 3)
	pr.AddItemsRemoved("strip-hidden", -2)
	pr.ObservePipelineDuration(500 * time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				values[mf.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, map[string]float64{
		"docfold_pass_duration_seconds":     1,
		"docfold_pass_results_total":        2,
		"docfold_items_removed_total":       3,
		"docfold_pipeline_duration_seconds": 1,
	}, values)
}

func TestRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObservePassDuration("x", time.Second)
		pr.IncPassResult("x", ResultSuccess)
		pr.AddItemsRemoved("x", 1)
		pr.ObservePipelineDuration(time.Second)
	})
	var _ Recorder = NoopRecorder{}
	var _ Recorder = pr
}
