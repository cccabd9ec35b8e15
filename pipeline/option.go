package pipeline

import (
	"log/slog"

	"github.com/viant/docfold/metrics"
)

// Option configures pipeline behavior.
type Option func(*Pipeline)

// WithLogger sets the logger used to report pass execution
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(recorder metrics.Recorder) Option {
	return func(p *Pipeline) {
		if recorder != nil {
			p.recorder = recorder
		}
	}
}

// WithPasses appends passes after the defaults
func WithPasses(names ...string) Option {
	return func(p *Pipeline) {
		p.names = append(p.names, names...)
	}
}

// WithNoDefaults disables the default pass list
func WithNoDefaults() Option {
	return func(p *Pipeline) {
		p.noDefaults = true
	}
}
