// Package pipeline runs named documentation passes over a crate in order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/viant/docfold/doctree"
	"github.com/viant/docfold/metrics"
	"github.com/viant/docfold/passes"
)

// ErrUnknownPass is returned when a configured pass is not registered
var ErrUnknownPass = errors.New("unknown pass")

// Pipeline runs passes sequentially, each consuming the crate produced by the previous one
type Pipeline struct {
	names      []string
	noDefaults bool
	passes     []passes.Pass
	logger     *slog.Logger
	recorder   metrics.Recorder
}

// Stat describes a single pass execution
type Stat struct {
	Pass        string
	ItemsBefore int
	ItemsAfter  int
	Changed     bool
	Duration    time.Duration
	Payload     passes.Payload
}

// Result holds the transformed crate and per pass statistics
type Result struct {
	Crate doctree.Crate
	Stats []Stat
}

// New creates a pipeline; every pass name is resolved before anything runs
func New(options ...Option) (*Pipeline, error) {
	p := &Pipeline{
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range options {
		opt(p)
	}
	var err error
	if p.passes, err = Resolve(p.names, p.noDefaults); err != nil {
		return nil, err
	}
	return p, nil
}

// Resolve returns the passes to run: the defaults (unless disabled) followed by extra names.
// A name listed more than once runs only at its first position.
func Resolve(extra []string, noDefaults bool) ([]passes.Pass, error) {
	var names []string
	if !noDefaults {
		names = append(names, passes.DefaultPasses...)
	}
	names = append(names, extra...)

	seen := make(map[string]bool, len(names))
	result := make([]passes.Pass, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		pass, ok := passes.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPass, name)
		}
		result = append(result, pass)
	}
	return result, nil
}

// Passes returns names of the passes in execution order
func (p *Pipeline) Passes() []string {
	result := make([]string, len(p.passes))
	for i, pass := range p.passes {
		result[i] = pass.Name
	}
	return result
}

// Run executes all passes; the first failure aborts the run.
// The input crate is consumed.
func (p *Pipeline) Run(ctx context.Context, crate doctree.Crate, env passes.Env) (*Result, error) {
	started := time.Now()
	result := &Result{Stats: make([]Stat, 0, len(p.passes))}
	for _, pass := range p.passes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stat, next, err := p.runPass(pass, crate, env)
		if err != nil {
			p.recorder.IncPassResult(pass.Name, metrics.ResultFailed)
			p.logger.Error("pass failed", "pass", pass.Name, "error", err)
			return nil, fmt.Errorf("pass %s: %w", pass.Name, err)
		}
		crate = next
		result.Stats = append(result.Stats, stat)

		p.recorder.IncPassResult(pass.Name, metrics.ResultSuccess)
		p.recorder.ObservePassDuration(pass.Name, stat.Duration)
		p.recorder.AddItemsRemoved(pass.Name, stat.ItemsBefore-stat.ItemsAfter)
		p.logger.Info("pass completed",
			"pass", pass.Name,
			"items_before", stat.ItemsBefore,
			"items_after", stat.ItemsAfter,
			"changed", stat.Changed,
			"duration", stat.Duration)
	}
	p.recorder.ObservePipelineDuration(time.Since(started))
	result.Crate = crate
	return result, nil
}

func (p *Pipeline) runPass(pass passes.Pass, crate doctree.Crate, env passes.Env) (Stat, doctree.Crate, error) {
	stat := Stat{Pass: pass.Name, ItemsBefore: crate.Len()}
	before, err := doctree.Fingerprint(crate)
	if err != nil {
		return stat, crate, err
	}
	started := time.Now()
	next, payload, err := pass.Run(crate, env)
	stat.Duration = time.Since(started)
	if err != nil {
		return stat, crate, err
	}
	after, err := doctree.Fingerprint(next)
	if err != nil {
		return stat, crate, err
	}
	stat.ItemsAfter = next.Len()
	stat.Changed = before != after
	stat.Payload = payload
	return stat, next, nil
}
