package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/afs"
	"github.com/viant/docfold/codec"
	"github.com/viant/docfold/config"
	"github.com/viant/docfold/doctree"
	"github.com/viant/docfold/inspector"
	"github.com/viant/docfold/inspector/info"
	"github.com/viant/docfold/metrics"
	"github.com/viant/docfold/passes"
	"github.com/viant/docfold/pipeline"
)

// RunCmd implements the 'run' command.
type RunCmd struct {
	Source      string   `short:"s" help:"Go project directory to inspect" type:"path"`
	Input       string   `short:"i" help:"Crate document to transform (.yaml or .json)" type:"path"`
	Output      string   `short:"o" help:"Output document (.yaml or .json); stdout when empty" type:"path"`
	Passes      []string `short:"p" help:"Passes run after the defaults" sep:","`
	NoDefaults  bool     `name:"no-defaults" help:"Do not run the default passes"`
	MetricsFile string   `name:"metrics-file" help:"Write Prometheus metrics in text format to this file" type:"path"`
}

func (r *RunCmd) Run(global *Global, root *CLI) error {
	ctx := context.Background()
	fs := afs.New()
	cfg, err := r.config(ctx, fs, root.Config)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	if root.Verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(level)

	started := time.Now()
	crate, exported, err := load(ctx, fs, cfg)
	if err != nil {
		return err
	}
	logger.Debug("crate loaded", "crate", crate.Name, "items", crate.Len(), "exported", exported.Len())

	registry := prometheus.NewRegistry()
	p, err := pipeline.New(
		pipeline.WithPasses(cfg.Passes...),
		noDefaults(cfg.NoDefaults),
		pipeline.WithLogger(logger),
		pipeline.WithRecorder(metrics.NewPrometheusRecorder(registry)),
	)
	if err != nil {
		return fmt.Errorf("invalid pass configuration: %w", err)
	}
	result, err := p.Run(ctx, crate, passes.Env{Exported: exported})
	if err != nil {
		return err
	}

	if err = write(ctx, fs, global, cfg.Output, result.Crate, exported); err != nil {
		return err
	}
	if r.MetricsFile != "" {
		if err = prometheus.WriteToTextfile(r.MetricsFile, registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	logger.Info("documentation passes completed",
		"crate", result.Crate.Name,
		"passes", p.Passes(),
		"items", result.Crate.Len(),
		"elapsed", time.Since(started))
	return nil
}

// config merges the configuration file with command line flags; flags win
func (r *RunCmd) config(ctx context.Context, fs afs.Service, URL string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if URL != "" {
		var err error
		if cfg, err = config.Load(ctx, fs, URL); err != nil {
			return nil, err
		}
	}
	if r.Source != "" {
		cfg.Source, cfg.Input = r.Source, ""
	}
	if r.Input != "" {
		cfg.Input, cfg.Source = r.Input, ""
	}
	if r.Output != "" {
		cfg.Output = r.Output
	}
	cfg.Passes = append(cfg.Passes, r.Passes...)
	cfg.NoDefaults = cfg.NoDefaults || r.NoDefaults
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func noDefaults(disabled bool) pipeline.Option {
	if disabled {
		return pipeline.WithNoDefaults()
	}
	return func(*pipeline.Pipeline) {}
}

func load(ctx context.Context, fs afs.Service, cfg *config.Config) (doctree.Crate, doctree.NodeSet, error) {
	if cfg.Input != "" {
		return codec.Load(ctx, fs, cfg.Input)
	}
	factory := inspector.NewFactory(&info.Config{IncludeUnexported: true, SkipTests: cfg.SkipTests})
	inspection, err := factory.InspectProject(ctx, cfg.Source)
	if err != nil {
		return doctree.Crate{}, nil, err
	}
	return inspection.Crate, inspection.Exported, nil
}

func write(ctx context.Context, fs afs.Service, global *Global, output string, crate doctree.Crate, exported doctree.NodeSet) error {
	if output != "" {
		return codec.Store(ctx, fs, output, crate, exported)
	}
	data, err := codec.Marshal(crate, exported, codec.FormatYAML)
	if err != nil {
		return err
	}
	_, err = global.Stdout.Write(data)
	return err
}
