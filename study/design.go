package study

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/netquiz/task"
)

// ErrInvalidDesign is returned by Design.Validate.
var ErrInvalidDesign = errors.New("study: invalid design")

// Technique names a visualization technique of the study.
type Technique string

const (
	AdjacencyMatrix Technique = "adjacency_matrix"
	BioFabric       Technique = "biofabric"
)

// ParseTechnique validates s as a Technique.
func ParseTechnique(s string) (Technique, error) {
	switch t := Technique(s); t {
	case AdjacencyMatrix, BioFabric:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown technique %q", ErrInvalidDesign, s)
}

// Design is the full factorial layout of the study.
type Design struct {
	Techniques      []Technique
	Sizes           []int
	Densities       []float64
	Kinds           []task.Kind
	TrainingPerKind int
	Seed            int64
}

// DefaultDesign returns the study layout: two techniques, sizes 20/50/80,
// densities 0.025/0.0625/0.1, all kinds, three training tasks per kind.
func DefaultDesign() Design {
	return Design{
		Techniques:      []Technique{AdjacencyMatrix, BioFabric},
		Sizes:           []int{20, 50, 80},
		Densities:       []float64{0.025, 0.0625, 0.1},
		Kinds:           task.Kinds(),
		TrainingPerKind: 3,
	}
}

// Validate checks that every axis is non-empty and in range.
func (d Design) Validate() error {
	if len(d.Techniques) == 0 || len(d.Sizes) == 0 || len(d.Densities) == 0 || len(d.Kinds) == 0 {
		return fmt.Errorf("%w: techniques, sizes, densities and kinds must be non-empty", ErrInvalidDesign)
	}
	for _, t := range d.Techniques {
		if _, err := ParseTechnique(string(t)); err != nil {
			return err
		}
	}
	for _, s := range d.Sizes {
		if s < 2 {
			return fmt.Errorf("%w: size %d < 2", ErrInvalidDesign, s)
		}
	}
	for _, p := range d.Densities {
		if p <= 0 || p > 1 {
			return fmt.Errorf("%w: density %v outside (0,1]", ErrInvalidDesign, p)
		}
	}
	for _, k := range d.Kinds {
		if _, err := task.ParseKind(string(k)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDesign, err)
		}
	}
	if d.TrainingPerKind < 0 {
		return fmt.Errorf("%w: negative training count %d", ErrInvalidDesign, d.TrainingPerKind)
	}
	return nil
}

// FormatDensity renders a density the way data filenames carry it
// (0.025, 0.0625, 0.1).
func FormatDensity(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// TrainingFile is the data filename of the i-th training graph of a kind.
func TrainingFile(size int, density float64, kind task.Kind, i int) string {
	return fmt.Sprintf("tasks/training/%d_%s_%s_%d.json", size, FormatDensity(density), kind, i)
}

// SurveyFile is the data filename of the survey graph of a condition.
func SurveyFile(size int, density float64, kind task.Kind) string {
	return fmt.Sprintf("tasks/survey/%d_%s_%s.json", size, FormatDensity(density), kind)
}
