// SPDX-License-Identifier: MIT
// Package: netquiz/study
//
// build.go - concurrent expansion of a Design into a TaskSet.

package study

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/katalvlaran/netquiz/builder"
	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/task"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("netquiz.study")

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	concurrency int
	synthOpts   []task.Option
	logger      zerolog.Logger
}

// WithConcurrency bounds the number of conditions built at once. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("study: WithConcurrency(%d)", n))
	}
	return func(c *buildConfig) { c.concurrency = n }
}

// WithSynthesizerOptions forwards options to the task synthesizer.
func WithSynthesizerOptions(opts ...task.Option) Option {
	return func(c *buildConfig) { c.synthOpts = append(c.synthOpts, opts...) }
}

// WithLogger routes progress logging to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *buildConfig) { c.logger = l }
}

// Result is the outcome of Build.
type Result struct {
	Sets TaskSet
	// Graphs maps each data filename to its graph.
	Graphs map[string]*core.Graph
}

// condition is one (size, density, kind) cell, training or survey.
type condition struct {
	index    int
	training bool
	size     int
	density  float64
	kind     task.Kind
	file     string
}

type outcome struct {
	graph *core.Graph
	task  *task.Task
}

// conditions enumerates the training cells first, then the survey grid.
func conditions(d Design) []condition {
	var out []condition
	for _, k := range d.Kinds {
		for i := 0; i < d.TrainingPerKind; i++ {
			out = append(out, condition{training: true, size: d.Sizes[0], density: d.Densities[0], kind: k,
				file: TrainingFile(d.Sizes[0], d.Densities[0], k, i)})
		}
	}
	for _, s := range d.Sizes {
		for _, p := range d.Densities {
			for _, k := range d.Kinds {
				out = append(out, condition{size: s, density: p, kind: k, file: SurveyFile(s, p, k)})
			}
		}
	}
	for i := range out {
		out[i].index = i
	}
	return out
}

// Build expands d into records for every technique. See the package doc for
// the condition layout.
func Build(ctx context.Context, d Design, opts ...Option) (*Result, error) {
	cfg := buildConfig{concurrency: runtime.GOMAXPROCS(0), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "study.Build")
	defer span.End()

	conds := conditions(d)
	span.SetAttributes(attribute.Int("study.conditions", len(conds)), attribute.Int64("study.seed", d.Seed))

	synth := task.NewSynthesizer(append([]task.Option{task.WithLogger(cfg.logger)}, cfg.synthOpts...)...)
	outcomes := make([]outcome, len(conds))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.concurrency)
	for _, c := range conds {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			o, err := runCondition(d.Seed, c, synth, cfg.logger)
			if err != nil {
				return fmt.Errorf("study: condition %s: %w", c.file, err)
			}
			outcomes[c.index] = o
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "condition failed")
		return nil, err
	}

	res := &Result{Sets: make(TaskSet), Graphs: make(map[string]*core.Graph, len(conds))}
	for _, c := range conds {
		o := outcomes[c.index]
		res.Graphs[c.file] = o.graph
		for _, tech := range d.Techniques {
			rec, err := render(d.Seed, tech, c, o.task)
			if err != nil {
				return nil, err
			}
			g := res.Sets.group(tech, c.kind)
			if c.training {
				g.Training = append(g.Training, rec)
			} else {
				g.Survey = append(g.Survey, rec)
			}
		}
	}

	cfg.logger.Info().
		Int("conditions", len(conds)).
		Int("records", res.Sets.Len()).
		Int64("seed", d.Seed).
		Msg("study task set built")
	return res, nil
}

// runCondition generates the condition's graph and samples its task from one
// derived stream.
func runCondition(seed int64, c condition, synth *task.Synthesizer, logger zerolog.Logger) (outcome, error) {
	rng := builder.DeriveRand(seed, uint64(c.index))
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithRand(rng), builder.WithLogger(logger)},
		builder.SocialNetwork(c.size, c.density),
	)
	if err != nil {
		return outcome{}, err
	}
	t, err := synth.Generate(g, c.kind, rng)
	if err != nil {
		return outcome{}, err
	}
	logger.Debug().Str("file", c.file).Int("root", t.Root).Msg("condition built")
	return outcome{graph: g, task: t}, nil
}

func render(seed int64, tech Technique, c condition, t *task.Task) (TaskRecord, error) {
	params, err := ParametersFor(tech, t)
	if err != nil {
		return TaskRecord{}, err
	}
	solution := make([]core.Node, len(t.Solution))
	for i := range t.Solution {
		solution[i] = t.Solution[i].Copy()
	}
	return TaskRecord{
		ID:           RecordID(seed, tech, c.file),
		Technique:    tech,
		Parameters:   params,
		Size:         c.size,
		Density:      c.density,
		Type:         c.kind,
		Data:         c.file,
		Task:         t.Description,
		AnswerOption: t.AnswerType,
		Solution:     solution,
		TextSolution: t.TextSolution,
	}, nil
}

func formatSeed(seed int64) string { return strconv.FormatInt(seed, 10) }
