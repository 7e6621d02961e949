package codec_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/netquiz/codec"
	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/study"
	"github.com/katalvlaran/netquiz/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGraph_Minimal(t *testing.T) {
	doc := `{"nodes":[{"id":0,"name":"A"},{"id":1,"name":"B","attributes":{"w":0.4}}],
	         "links":[{"source":0,"target":1}]}`
	g, err := codec.DecodeGraph(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())

	a, _ := g.Node(0)
	assert.NotNil(t, a.Attributes)
	assert.Empty(t, a.Attributes)
	b, _ := g.Node(1)
	assert.Equal(t, 0.4, b.Attributes["w"])
	assert.Nil(t, g.RCM)
}

func TestDecodeGraph_DanglingLinks(t *testing.T) {
	doc := `{"nodes":[{"id":0,"name":"A"},{"id":1,"name":"B"}],
	         "links":[{"source":0,"target":1},{"source":1,"target":7}]}`

	g, err := codec.DecodeGraph(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = codec.DecodeGraph(strings.NewReader(doc), codec.WithStrictEndpoints())
	var mi *core.MalformedInputError
	require.ErrorAs(t, err, &mi)
	assert.Equal(t, []int{1, 7}, mi.IDs)
}

func TestDecodeGraph_Malformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"syntax", `{"nodes":[`},
		{"fractional id", `{"nodes":[{"id":1.5,"name":"A"}],"links":[]}`},
		{"negative id", `{"nodes":[{"id":-1,"name":"A"}],"links":[]}`},
		{"duplicate id", `{"nodes":[{"id":0,"name":"A"},{"id":0,"name":"B"}],"links":[]}`},
		{"self-loop", `{"nodes":[{"id":0,"name":"A"}],"links":[{"source":0,"target":0}]}`},
		{"duplicate link", `{"nodes":[{"id":0,"name":"A"},{"id":1,"name":"B"}],
			"links":[{"source":0,"target":1},{"source":1,"target":0}]}`},
		{"rcm not a permutation", `{"nodes":[{"id":0,"name":"A"},{"id":1,"name":"B"}],"links":[],"rcm":[0,0]}`},
		{"rcm too short", `{"nodes":[{"id":0,"name":"A"},{"id":1,"name":"B"}],"links":[],"rcm":[1]}`},
		{"hierarchy with three coordinates", `{"nodes":[{"id":0,"name":"A","hierarchy":[0.1,0.2,0.3]}],"links":[]}`},
		{"radial with one coordinate", `{"nodes":[{"id":0,"name":"A","radial":[0.4]}],"links":[]}`},
		{"empty hierarchy", `{"nodes":[{"id":0,"name":"A","hierarchy":[]}],"links":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.DecodeGraph(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, core.ErrMalformedInput)
		})
	}
}

func TestGraph_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	layer, gansner := 2, 1
	require.NoError(t, g.AddNode(core.Node{ID: 0, Name: "A", Attributes: map[string]float64{"degree": 1},
		Layer: &layer, Gansner: &gansner, Hierarchy: &core.Point{0, 1}, Radial: &core.Point{0.5, 0.25}}))
	require.NoError(t, g.AddNode(core.Node{ID: 1, Name: "B"}))
	_, err := g.AddEdge(core.Edge{Source: 0, Target: 1, Attributes: map[string]float64{"Distance": 0.6}})
	require.NoError(t, err)
	g.RCM = core.Ordering{1, 0}

	var buf bytes.Buffer
	require.NoError(t, codec.EncodeGraph(&buf, g))

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	nodes := raw["nodes"].([]interface{})
	b := nodes[1].(map[string]interface{})
	assert.NotContains(t, b, "gansner")
	assert.NotContains(t, b, "layer")
	assert.Equal(t, map[string]interface{}{}, b["attributes"])

	back, err := codec.DecodeGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, core.Ordering{1, 0}, back.RCM)
	a, _ := back.Node(0)
	assert.Equal(t, 2, *a.Layer)
	assert.Equal(t, 1, *a.Gansner)
	assert.Equal(t, core.Point{0, 1}, *a.Hierarchy)
	assert.Equal(t, core.Point{0.5, 0.25}, *a.Radial)
	e, ok := back.Edge(0, 1)
	require.True(t, ok)
	assert.Equal(t, 0.6, e.Attributes["Distance"])
}

func sampleSet() study.TaskSet {
	two := &task.Task{Kind: task.KindTwo, Ordering: task.AttributeOrdering("Distance", "Common Hobbies")}
	bp, _ := study.ParametersFor(study.BioFabric, two)
	mp, _ := study.ParametersFor(study.AdjacencyMatrix, two)
	rec := func(tech study.Technique, p study.Parameters) study.TaskRecord {
		data := study.SurveyFile(20, 0.1, task.KindTwo)
		return study.TaskRecord{
			ID:           study.RecordID(1, tech, data),
			Technique:    tech,
			Parameters:   p,
			Size:         20,
			Density:      0.1,
			Type:         task.KindTwo,
			Data:         data,
			Task:         "Find all friends of Ann whose friendship has more distance than common hobbies.",
			AnswerOption: task.MultiNodeSelection,
			Solution:     []core.Node{{ID: 3, Name: "Bo", Attributes: map[string]float64{}}},
			TextSolution: "Bo",
		}
	}
	return study.TaskSet{
		study.BioFabric:       {task.KindTwo: &study.Group{Survey: []study.TaskRecord{rec(study.BioFabric, bp)}}},
		study.AdjacencyMatrix: {task.KindTwo: &study.Group{Survey: []study.TaskRecord{rec(study.AdjacencyMatrix, mp)}}},
	}
}

func TestTaskSet_RoundTrip(t *testing.T) {
	set := sampleSet()

	var buf bytes.Buffer
	require.NoError(t, codec.EncodeTaskSet(&buf, set))

	var raw map[string]map[string]map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	rec := raw["biofabric"]["two"]["survey"][0]
	assert.Equal(t, "multipleNodeSelection", rec["answer_option"])
	assert.Equal(t, "tasks/survey/20_0.1_two.json", rec["data"])
	params := rec["parameters"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Distance", "Common Hobbies"}, params["edgeOrdering"])
	assert.Equal(t, []map[string]interface{}{}, raw["biofabric"]["two"]["training"])

	back, err := codec.DecodeTaskSet(&buf)
	require.NoError(t, err)
	assert.Equal(t, set.Len(), back.Len())
	got := back[study.BioFabric][task.KindTwo].Survey[0]
	want := set[study.BioFabric][task.KindTwo].Survey[0]
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Parameters, got.Parameters)
	assert.Equal(t, want.Solution, got.Solution)
	assert.Equal(t, want.TextSolution, got.TextSolution)
}

func TestEncodeTechnique(t *testing.T) {
	set := sampleSet()

	var buf bytes.Buffer
	require.NoError(t, codec.EncodeTechnique(&buf, set, study.AdjacencyMatrix, codec.WithIndent("")))
	var raw map[string]map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Contains(t, raw, "two")
	params := raw["two"]["survey"][0]["parameters"].(map[string]interface{})
	assert.Equal(t, "multipleEdges", params["edgeEncoding"])

	assert.Error(t, codec.EncodeTechnique(&buf, study.TaskSet{}, study.BioFabric))
}

func TestDecodeTaskSet_Errors(t *testing.T) {
	cases := []string{
		`{"table":{}}`,
		`{"biofabric":{"three":{"training":[],"survey":[]}}}`,
		`{"biofabric":{"two":{"training":[{"id":"nope","technique":"biofabric","type":"two","parameters":{}}],"survey":[]}}}`,
		`[`,
	}
	for _, doc := range cases {
		_, err := codec.DecodeTaskSet(strings.NewReader(doc))
		assert.Error(t, err, doc)
	}
}

func TestEncodeTasks(t *testing.T) {
	tk := &task.Task{
		Kind:         task.KindOne,
		Root:         0,
		Description:  "Find a friend of A whose friendship has the second highest value in distance.",
		AnswerType:   task.SingleNodeSelection,
		Solution:     []core.Node{{ID: 1, Name: "B", Attributes: map[string]float64{}}},
		TextSolution: "B",
		Ordering:     task.AttributeOrdering("Distance"),
	}
	var buf bytes.Buffer
	require.NoError(t, codec.EncodeTasks(&buf, []*task.Task{tk}))

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "one", raw[0]["type"])
	assert.Equal(t, "nodeSelection", raw[0]["answer_option"])
	assert.Equal(t, "Distance", raw[0]["ordering"])
	assert.Equal(t, "B", raw[0]["text_solution"])
}
