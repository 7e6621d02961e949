package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/netquiz/codec"
	"github.com/katalvlaran/netquiz/config"
	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath  string
	logLevel    string
	seed        int64
	metricsFile string
	trace       bool

	cfg      *config.Config
	shutdown func(context.Context) error
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:          "netquiz",
		Short:        "Generate and enrich graph stimuli and synthesize quiz tasks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
	pf.Int64Var(&a.seed, "seed", 0, "random seed override")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.BoolVar(&a.trace, "trace", false, "export trace spans to stderr")

	root.AddCommand(
		newGenerateCmd(a),
		newRCMCmd(a),
		newLayoutCmd(a),
		newCentralityCmd(a),
		newTaskCmd(a),
		newStudyCmd(a),
	)
	return root, a
}

// execute runs root and tears down afterwards, also when the command failed.
// The first error wins.
func (a *app) execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if terr := a.teardown(context.WithoutCancel(ctx)); err == nil {
		err = terr
	}
	return err
}

// setup loads the configuration, applies flag overrides and starts logging
// and tracing.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, ".env")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.InitLogger(cfg.Log); err != nil {
		return err
	}
	a.cfg = cfg

	if a.trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithSampler(sdktrace.AlwaysSample()))
		otel.SetTracerProvider(tp)
		a.shutdown = tp.Shutdown
	}
	logger.Logger.Debug().Str("command", cmd.Name()).Int64("seed", cfg.Seed).Msg("starting")
	return nil
}

// teardown flushes spans, writes the metrics file and closes the log file.
// It is safe to call when setup never ran.
func (a *app) teardown(ctx context.Context) error {
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("trace shutdown failed")
		}
		a.shutdown = nil
	}
	if a.metricsFile != "" {
		if err := prometheus.WriteToTextfile(a.metricsFile, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return logger.Close()
}

// readGraph decodes the graph named by args[0], or stdin when absent or "-".
func readGraph(cmd *cobra.Command, args []string, strict bool) (*core.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	opts := []codec.Option{codec.WithLogger(logger.Logger)}
	if strict {
		opts = append(opts, codec.WithStrictEndpoints())
	}
	return codec.DecodeGraph(r, opts...)
}

// writeOutput runs write against path, or stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeGraph(cmd *cobra.Command, path string, g *core.Graph) error {
	return writeOutput(cmd, path, func(w io.Writer) error { return codec.EncodeGraph(w, g) })
}
