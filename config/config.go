// SPDX-License-Identifier: MIT
// Package: netquiz/config
//
// Package config loads the netquiz CLI configuration.
//
// Sources, later ones winning:
//
//  1. Default()
//  2. a YAML file (optional)
//  3. .env files loaded into the process environment (optional, never
//     overriding variables that are already set)
//  4. NETQUIZ_* environment variables, e.g. NETQUIZ_SEED,
//     NETQUIZ_LOG_LEVEL, NETQUIZ_LAYOUT_TIMEOUT, NETQUIZ_STUDY_SIZES=20,50
//
// The merged value is validated with go-playground/validator before it is
// returned.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/katalvlaran/netquiz/builder"
	"github.com/katalvlaran/netquiz/centrality"
	"github.com/katalvlaran/netquiz/layout"
	"github.com/katalvlaran/netquiz/logger"
	"github.com/katalvlaran/netquiz/study"
	"github.com/katalvlaran/netquiz/task"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NETQUIZ"

// Config is the complete CLI configuration.
type Config struct {
	Seed       int64            `yaml:"seed" envconfig:"SEED"`
	Log        logger.Config    `yaml:"log" envconfig:"LOG"`
	Generation GenerationConfig `yaml:"generation" envconfig:"GENERATION"`
	Layout     LayoutConfig     `yaml:"layout" envconfig:"LAYOUT"`
	Centrality CentralityConfig `yaml:"centrality" envconfig:"CENTRALITY"`
	Task       TaskConfig       `yaml:"task" envconfig:"TASK"`
	Study      StudyConfig      `yaml:"study" envconfig:"STUDY"`
}

// GenerationConfig sets the attribute policy of the graph generators.
type GenerationConfig struct {
	NodeAttributes int  `yaml:"node_attributes" envconfig:"NODE_ATTRIBUTES" validate:"gte=0"`
	EdgeAttributes int  `yaml:"edge_attributes" envconfig:"EDGE_ATTRIBUTES" validate:"gte=0"`
	AllAttributes  bool `yaml:"all_attributes" envconfig:"ALL_ATTRIBUTES"`
}

// LayoutConfig selects and bounds the layout oracle.
type LayoutConfig struct {
	Engine      string        `yaml:"engine" envconfig:"ENGINE" validate:"oneof=graphviz native"`
	Timeout     time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
	DotBinary   string        `yaml:"dot_binary" envconfig:"DOT_BINARY" validate:"required_if=Engine graphviz"`
	CircoBinary string        `yaml:"circo_binary" envconfig:"CIRCO_BINARY" validate:"required_if=Engine graphviz"`
	Sweeps      int           `yaml:"sweeps" envconfig:"SWEEPS" validate:"gte=1"`
}

// CentralityConfig bounds the eigenvector iteration.
type CentralityConfig struct {
	Tolerance     float64 `yaml:"tolerance" envconfig:"TOLERANCE" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" envconfig:"MAX_ITERATIONS" validate:"gte=1"`
}

// TaskConfig configures the task synthesizer.
type TaskConfig struct {
	Attributes  []string `yaml:"attributes" envconfig:"ATTRIBUTES" validate:"min=1,dive,required"`
	MaxAttempts int      `yaml:"max_attempts" envconfig:"MAX_ATTEMPTS" validate:"gte=1"`
}

// StudyConfig is the study design plus output settings.
type StudyConfig struct {
	Techniques      []string  `yaml:"techniques" envconfig:"TECHNIQUES" validate:"min=1,dive,oneof=adjacency_matrix biofabric"`
	Sizes           []int     `yaml:"sizes" envconfig:"SIZES" validate:"min=1,dive,gte=2"`
	Densities       []float64 `yaml:"densities" envconfig:"DENSITIES" validate:"min=1,dive,gt=0,lte=1"`
	Kinds           []string  `yaml:"kinds" envconfig:"KINDS" validate:"min=1,dive,oneof=plain one two"`
	TrainingPerKind int       `yaml:"training_per_kind" envconfig:"TRAINING_PER_KIND" validate:"gte=0"`
	Concurrency     int       `yaml:"concurrency" envconfig:"CONCURRENCY" validate:"gte=0"`
	OutputDir       string    `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
}

// Default returns the built-in configuration.
func Default() Config {
	d := study.DefaultDesign()
	techniques := make([]string, len(d.Techniques))
	for i, t := range d.Techniques {
		techniques[i] = string(t)
	}
	kinds := make([]string, len(d.Kinds))
	for i, k := range d.Kinds {
		kinds[i] = string(k)
	}
	return Config{
		Log:        logger.DefaultConfig(),
		Generation: GenerationConfig{NodeAttributes: 4, EdgeAttributes: 4, AllAttributes: true},
		Layout: LayoutConfig{
			Engine:      "graphviz",
			Timeout:     layout.DefaultTimeout,
			DotBinary:   layout.DefaultDotBinary,
			CircoBinary: layout.DefaultCircoBinary,
			Sweeps:      layout.DefaultSweeps,
		},
		Centrality: CentralityConfig{Tolerance: centrality.DefaultTolerance, MaxIterations: centrality.DefaultMaxIterations},
		Task:       TaskConfig{Attributes: task.DefaultAttributes(), MaxAttempts: task.DefaultMaxAttempts},
		Study: StudyConfig{
			Techniques:      techniques,
			Sizes:           d.Sizes,
			Densities:       d.Densities,
			Kinds:           kinds,
			TrainingPerKind: d.TrainingPerKind,
			OutputDir:       ".",
		},
	}
}

var validate = validator.New()

// Load merges Default, the YAML file at path (skipped when path is empty), the
// given .env files that exist and NETQUIZ_* variables, then validates.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	for _, f := range envFiles {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeYAML overlays data onto cfg, rejecting unknown keys.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// BuilderOptions returns the generator options for seed.
func (c *Config) BuilderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(c.Seed),
		builder.WithNodeAttributes(c.Generation.NodeAttributes, c.Generation.AllAttributes),
		builder.WithEdgeAttributes(c.Generation.EdgeAttributes, c.Generation.AllAttributes),
		builder.WithLogger(logger.Logger),
	}
}

// Provider returns the configured layout oracle.
func (c *Config) Provider() layout.Provider {
	if c.Layout.Engine == "native" {
		return &layout.NativeProvider{Sweeps: c.Layout.Sweeps}
	}
	return &layout.GraphvizProvider{DotBinary: c.Layout.DotBinary, CircoBinary: c.Layout.CircoBinary}
}

// CentralityOptions returns the eigenvector bounds as centrality options.
func (c *Config) CentralityOptions() []centrality.Option {
	return []centrality.Option{
		centrality.WithTolerance(c.Centrality.Tolerance),
		centrality.WithMaxIterations(c.Centrality.MaxIterations),
		centrality.WithLogger(logger.Logger),
	}
}

// TaskOptions returns the synthesizer options.
func (c *Config) TaskOptions() []task.Option {
	return []task.Option{
		task.WithAttributes(c.Task.Attributes),
		task.WithMaxAttempts(c.Task.MaxAttempts),
		task.WithLogger(logger.Logger),
	}
}

// Design converts the study section into a study.Design.
func (c *Config) Design() (study.Design, error) {
	d := study.Design{
		Sizes:           append([]int(nil), c.Study.Sizes...),
		Densities:       append([]float64(nil), c.Study.Densities...),
		TrainingPerKind: c.Study.TrainingPerKind,
		Seed:            c.Seed,
	}
	for _, s := range c.Study.Techniques {
		t, err := study.ParseTechnique(s)
		if err != nil {
			return study.Design{}, err
		}
		d.Techniques = append(d.Techniques, t)
	}
	for _, s := range c.Study.Kinds {
		k, err := task.ParseKind(s)
		if err != nil {
			return study.Design{}, err
		}
		d.Kinds = append(d.Kinds, k)
	}
	return d, d.Validate()
}
