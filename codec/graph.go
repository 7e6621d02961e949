// SPDX-License-Identifier: MIT
// Package: netquiz/codec
//
// graph.go - graph document encoding and validated decoding.

package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/netquiz/core"
)

type wireNode struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Attributes map[string]float64 `json:"attributes"`
	Layer      *int               `json:"layer,omitempty"`
	Gansner    *int               `json:"gansner,omitempty"`
	Hierarchy  []float64          `json:"hierarchy,omitempty"`
	Radial     []float64          `json:"radial,omitempty"`
}

type wireLink struct {
	Source     int                `json:"source"`
	Target     int                `json:"target"`
	Attributes map[string]float64 `json:"attributes"`
}

type wireGraph struct {
	Nodes []wireNode `json:"nodes"`
	Links []wireLink `json:"links"`
	RCM   []int      `json:"rcm,omitempty"`
}

func toWireNode(n *core.Node) wireNode {
	c := n.Copy()
	return wireNode{
		ID:         c.ID,
		Name:       c.Name,
		Attributes: nonNil(c.Attributes),
		Layer:      c.Layer,
		Gansner:    c.Gansner,
		Hierarchy:  fromPoint(c.Hierarchy),
		Radial:     fromPoint(c.Radial),
	}
}

func (w wireNode) toCore() (core.Node, error) {
	hier, err := toPoint(w.ID, "hierarchy", w.Hierarchy)
	if err != nil {
		return core.Node{}, err
	}
	radial, err := toPoint(w.ID, "radial", w.Radial)
	if err != nil {
		return core.Node{}, err
	}
	return core.Node{
		ID:         w.ID,
		Name:       w.Name,
		Attributes: w.Attributes,
		Layer:      w.Layer,
		Gansner:    w.Gansner,
		Hierarchy:  hier,
		Radial:     radial,
	}, nil
}

func fromPoint(p *core.Point) []float64 {
	if p == nil {
		return nil
	}
	return []float64{p[0], p[1]}
}

// toPoint requires exactly two coordinates; an absent field stays nil.
func toPoint(id int, field string, v []float64) (*core.Point, error) {
	if v == nil {
		return nil, nil
	}
	if len(v) != 2 {
		return nil, &core.MalformedInputError{
			IDs:    []int{id},
			Reason: fmt.Sprintf("%s has %d coordinates, want 2", field, len(v)),
		}
	}
	return &core.Point{v[0], v[1]}, nil
}

func nonNil(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}

// EncodeGraph writes g as a graph document.
func EncodeGraph(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return &core.MalformedInputError{Reason: "nil graph"}
	}
	cfg := newConfig(opts)

	doc := wireGraph{Nodes: make([]wireNode, 0, g.NodeCount()), Links: make([]wireLink, 0, g.EdgeCount())}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, toWireNode(n))
	}
	for _, e := range g.Edges() {
		attrs := make(map[string]float64, len(e.Attributes))
		for k, v := range e.Attributes {
			attrs[k] = v
		}
		doc.Links = append(doc.Links, wireLink{Source: e.Source, Target: e.Target, Attributes: attrs})
	}
	if g.RCM != nil {
		doc.RCM = append([]int(nil), g.RCM...)
	}
	return encode(w, doc, cfg)
}

// DecodeGraph reads and validates a graph document.
func DecodeGraph(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts)

	var doc wireGraph
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: decode graph: %w", &core.MalformedInputError{Reason: err.Error()})
	}

	g := core.NewGraph()
	for _, wn := range doc.Nodes {
		n, err := wn.toCore()
		if err != nil {
			return nil, fmt.Errorf("codec: decode graph: %w", err)
		}
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("codec: decode graph: %w", err)
		}
	}
	var dropped []int
	for _, l := range doc.Links {
		ok, err := g.AddEdge(core.Edge{Source: l.Source, Target: l.Target, Attributes: l.Attributes})
		if err != nil {
			return nil, fmt.Errorf("codec: decode graph: %w", err)
		}
		if ok {
			continue
		}
		if cfg.strict {
			return nil, fmt.Errorf("codec: decode graph: %w", &core.MalformedInputError{
				IDs: []int{l.Source, l.Target}, Reason: "link endpoint not in node set"})
		}
		dropped = append(dropped, l.Source, l.Target)
	}
	if len(dropped) > 0 {
		cfg.logger.Warn().
			Int("dropped_links", len(dropped)/2).
			Ints("endpoints", dropped).
			Msg("links with unknown endpoints dropped")
	}
	if doc.RCM != nil {
		g.RCM = core.Ordering(doc.RCM)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("codec: decode graph: %w", err)
	}
	return g, nil
}

func encode(w io.Writer, v interface{}, cfg config) error {
	enc := json.NewEncoder(w)
	if cfg.indent != "" {
		enc.SetIndent("", cfg.indent)
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}
	return nil
}
