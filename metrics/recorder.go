// Package metrics provides observability hooks for pass execution.
//
// Components receive a Recorder; NoopRecorder is the default so callers never
// check for nil. PrometheusRecorder is activated when a registry is supplied.
package metrics

import "time"

// ResultLabel enumerates pass result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for pipeline and pass metrics.
type Recorder interface {
	ObservePassDuration(pass string, d time.Duration)
	IncPassResult(pass string, result ResultLabel)
	AddItemsRemoved(pass string, n int)
	ObservePipelineDuration(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePassDuration(string, time.Duration) {}
func (NoopRecorder) IncPassResult(string, ResultLabel)         {}
func (NoopRecorder) AddItemsRemoved(string, int)               {}
func (NoopRecorder) ObservePipelineDuration(time.Duration)     {}
