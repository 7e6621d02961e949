package study_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/study"
	"github.com/katalvlaran/netquiz/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallDesign() study.Design {
	d := study.DefaultDesign()
	d.Sizes = []int{20, 30}
	d.Densities = []float64{0.1}
	d.TrainingPerKind = 2
	d.Seed = 7
	return d
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "tasks/training/20_0.025_plain_0.json", study.TrainingFile(20, 0.025, task.KindPlain, 0))
	assert.Equal(t, "tasks/survey/80_0.0625_two.json", study.SurveyFile(80, 0.0625, task.KindTwo))
	assert.Equal(t, "0.1", study.FormatDensity(0.1))
}

func TestDesign_Validate(t *testing.T) {
	require.NoError(t, study.DefaultDesign().Validate())

	cases := map[string]func(*study.Design){
		"no sizes":          func(d *study.Design) { d.Sizes = nil },
		"tiny size":         func(d *study.Design) { d.Sizes = []int{1} },
		"zero density":      func(d *study.Design) { d.Densities = []float64{0} },
		"bad technique":     func(d *study.Design) { d.Techniques = []study.Technique{"table"} },
		"bad kind":          func(d *study.Design) { d.Kinds = []task.Kind{"three"} },
		"negative training": func(d *study.Design) { d.TrainingPerKind = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := study.DefaultDesign()
			mutate(&d)
			assert.ErrorIs(t, d.Validate(), study.ErrInvalidDesign)
		})
	}
}

func TestParametersFor(t *testing.T) {
	plain := &task.Task{Kind: task.KindPlain, Ordering: task.NodesOrdering()}
	two := &task.Task{Kind: task.KindTwo, Ordering: task.AttributeOrdering("Distance", "Common Hobbies")}

	p, err := study.ParametersFor(study.AdjacencyMatrix, plain)
	require.NoError(t, err)
	assert.Equal(t, study.MatrixParameters{NodeEncoding: "plainNodes", EdgeEncoding: "plainEdges", NodeOrdering: "RCM"}, p)

	p, err = study.ParametersFor(study.AdjacencyMatrix, two)
	require.NoError(t, err)
	assert.Equal(t, "multipleEdges", p.(study.MatrixParameters).EdgeEncoding)

	p, err = study.ParametersFor(study.BioFabric, two)
	require.NoError(t, err)
	bp := p.(study.BioFabricParameters)
	assert.Equal(t, "juxtaposedEdges", bp.EdgeEncoding)
	assert.Equal(t, two.Ordering, bp.EdgeOrdering)

	_, err = study.ParametersFor("table", two)
	assert.ErrorIs(t, err, study.ErrInvalidDesign)
}

func TestDecodeParameters(t *testing.T) {
	p, err := study.DecodeParameters(study.BioFabric,
		[]byte(`{"nodeEncoding":"plainNodes","edgeEncoding":"juxtaposedEdges","nodeOrdering":"RCM","edgeOrdering":["Distance","Common Hobbies"],"attribute":""}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Distance", "Common Hobbies"}, p.(study.BioFabricParameters).EdgeOrdering.Attributes)

	_, err = study.DecodeParameters(study.AdjacencyMatrix, []byte(`[`))
	assert.Error(t, err)
}

func TestBuild_Shape(t *testing.T) {
	d := smallDesign()
	res, err := study.Build(context.Background(), d, study.WithConcurrency(3))
	require.NoError(t, err)

	// 3 kinds x 2 training + 2 sizes x 1 density x 3 kinds survey
	assert.Len(t, res.Graphs, 12)
	assert.Equal(t, 12*len(d.Techniques), res.Sets.Len())

	for _, tech := range d.Techniques {
		for _, k := range d.Kinds {
			g := res.Sets[tech][k]
			require.NotNil(t, g)
			assert.Len(t, g.Training, 2)
			assert.Len(t, g.Survey, 2)
			assert.Equal(t, study.TrainingFile(20, 0.1, k, 1), g.Training[1].Data)
			assert.Equal(t, study.SurveyFile(30, 0.1, k), g.Survey[1].Data)

			for _, rec := range append(g.Training, g.Survey...) {
				assert.Equal(t, tech, rec.Technique)
				assert.Equal(t, tech, rec.Parameters.Technique())
				assert.Equal(t, k, rec.Type)
				assert.NotEmpty(t, rec.Solution)
				assert.NotEmpty(t, rec.TextSolution)
				graph := res.Graphs[rec.Data]
				require.NotNil(t, graph)
				assert.Equal(t, rec.Size, graph.NodeCount())
				assert.True(t, graph.RCM.IsPermutationOf(graph))
				for _, n := range rec.Solution {
					assert.True(t, graph.HasNode(n.ID))
				}
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	d := smallDesign()
	a, err := study.Build(context.Background(), d, study.WithConcurrency(1))
	require.NoError(t, err)
	b, err := study.Build(context.Background(), d, study.WithConcurrency(4))
	require.NoError(t, err)

	for _, tech := range d.Techniques {
		for _, k := range d.Kinds {
			ga, gb := a.Sets[tech][k], b.Sets[tech][k]
			for i := range ga.Survey {
				assert.Equal(t, ga.Survey[i].ID, gb.Survey[i].ID)
				assert.Equal(t, ga.Survey[i].Task, gb.Survey[i].Task)
				assert.Equal(t, ga.Survey[i].TextSolution, gb.Survey[i].TextSolution)
			}
		}
	}
	for file, g := range a.Graphs {
		assert.Equal(t, g.EdgeCount(), b.Graphs[file].EdgeCount())
	}
}

func TestBuild_Failures(t *testing.T) {
	d := smallDesign()
	d.Sizes = []int{200} // exceeds the social name pool
	d.TrainingPerKind = 0
	_, err := study.Build(context.Background(), d)
	assert.ErrorIs(t, err, core.ErrDegenerateGraph)
	assert.Contains(t, err.Error(), "tasks/survey/200_0.1_")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = study.Build(ctx, smallDesign())
	assert.ErrorIs(t, err, context.Canceled)

	bad := smallDesign()
	bad.Kinds = nil
	_, err = study.Build(context.Background(), bad)
	assert.ErrorIs(t, err, study.ErrInvalidDesign)

	assert.Panics(t, func() { study.WithConcurrency(0) })
}
