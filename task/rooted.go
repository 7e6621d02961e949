// SPDX-License-Identifier: MIT
// Package: netquiz/task
//
// rooted.go - deterministic task forms for a fixed root and attribute choice.

package task

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netquiz/core"
)

const (
	methodPlain         = "Plain"
	methodSecondHighest = "SecondHighest"
	methodComparison    = "Comparison"

	minIncidentEdges = 2
	conjAnd          = "and"
	conjOr           = "or"
)

// Plain builds the "all friends of root" task. The root needs at least two
// incident edges.
func Plain(g *core.Graph, root int) (*Task, error) {
	node, err := rootNode(methodPlain, g, root)
	if err != nil {
		return nil, err
	}
	solution := collect(g, root, g.IncidentEdges(root), func(*core.Edge) bool { return true })
	return build(KindPlain, node, solution, MultiNodeSelection, conjAnd, NodesOrdering(),
		fmt.Sprintf("Find all friends of %s.", node.Name)), nil
}

// SecondHighest builds the "second highest value in attr" task. The root's
// incident edges must all carry attr and show at least two distinct values.
func SecondHighest(g *core.Graph, root int, attr string) (*Task, error) {
	node, err := rootNode(methodSecondHighest, g, root)
	if err != nil {
		return nil, err
	}
	edges := g.IncidentEdges(root)
	values := make(map[float64]struct{}, len(edges))
	for _, e := range edges {
		v, err := value(e, attr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodSecondHighest, err)
		}
		values[v] = struct{}{}
	}
	if len(values) < 2 {
		return nil, &core.DegenerateGraphError{Op: methodSecondHighest,
			Reason: fmt.Sprintf("node %d has %d distinct %q values, need 2", root, len(values), attr)}
	}
	target := secondDistinct(values)

	solution := collect(g, root, edges, func(e *core.Edge) bool { return e.Attributes[attr] == target })
	desc := fmt.Sprintf("Find a friend of %s whose friendship has the second highest value in %s.",
		node.Name, strings.ToLower(attr))
	return build(KindOne, node, solution, SingleNodeSelection, conjOr, AttributeOrdering(attr), desc), nil
}

// Comparison builds the "more a1 than a2" task. The solution must be non-empty.
func Comparison(g *core.Graph, root int, a1, a2 string) (*Task, error) {
	node, err := rootNode(methodComparison, g, root)
	if err != nil {
		return nil, err
	}
	if a1 == a2 {
		return nil, &core.DegenerateGraphError{Op: methodComparison, Reason: fmt.Sprintf("attributes must differ, got %q twice", a1)}
	}
	edges := g.IncidentEdges(root)
	for _, e := range edges {
		for _, a := range [2]string{a1, a2} {
			if _, err := value(e, a); err != nil {
				return nil, fmt.Errorf("%s: %w", methodComparison, err)
			}
		}
	}
	solution := collect(g, root, edges, func(e *core.Edge) bool { return e.Attributes[a1] > e.Attributes[a2] })
	if len(solution) == 0 {
		return nil, &core.DegenerateGraphError{Op: methodComparison,
			Reason: fmt.Sprintf("no edge of node %d has %q > %q", root, a1, a2)}
	}
	desc := fmt.Sprintf("Find all friends of %s whose friendship has more %s than %s.",
		node.Name, strings.ToLower(a1), strings.ToLower(a2))
	return build(KindTwo, node, solution, MultiNodeSelection, conjAnd, AttributeOrdering(a1, a2), desc), nil
}

// rootNode resolves root and enforces the minimum incident-edge count.
func rootNode(method string, g *core.Graph, root int) (*core.Node, error) {
	if g == nil {
		return nil, &core.MalformedInputError{Reason: "nil graph"}
	}
	node, ok := g.Node(root)
	if !ok {
		return nil, &core.MalformedInputError{IDs: []int{root}, Reason: "task root not in node set"}
	}
	if d := g.Degree(root); d < minIncidentEdges {
		return nil, &core.DegenerateGraphError{Op: method,
			Reason: fmt.Sprintf("node %d has %d incident edges, need %d", root, d, minIncidentEdges)}
	}
	return node, nil
}

// value reads attr from e or reports the missing key.
func value(e *core.Edge, attr string) (float64, error) {
	v, ok := e.Value(attr)
	if !ok {
		return 0, &core.AttributeKeyError{Key: attr, Source: e.Source, Target: e.Target}
	}
	return v, nil
}

// secondDistinct returns the largest value strictly below max(values).
// values holds at least two entries.
func secondDistinct(values map[float64]struct{}) float64 {
	var top, second float64
	first := true
	for v := range values {
		if first || v > top {
			top = v
		}
		first = false
	}
	first = true
	for v := range values {
		if v == top {
			continue
		}
		if first || v > second {
			second = v
		}
		first = false
	}
	return second
}

// collect returns copies of the neighbors reached through edges accepted by
// keep, in graph node order.
func collect(g *core.Graph, root int, edges []*core.Edge, keep func(*core.Edge) bool) []core.Node {
	chosen := make(map[int]struct{}, len(edges))
	for _, e := range edges {
		if keep(e) {
			chosen[e.Other(root)] = struct{}{}
		}
	}
	out := make([]core.Node, 0, len(chosen))
	for _, n := range g.Nodes() {
		if _, ok := chosen[n.ID]; ok {
			out = append(out, n.Copy())
		}
	}
	return out
}

func build(kind Kind, root *core.Node, solution []core.Node, answer AnswerType, conj string, ord Ordering, desc string) *Task {
	t := &Task{
		Kind:        kind,
		Root:        root.ID,
		Description: desc,
		AnswerType:  answer,
		Solution:    solution,
		Ordering:    ord,
	}
	t.TextSolution = TextSolution(t.SolutionNames(), conj)
	return t
}
