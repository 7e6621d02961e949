// SPDX-License-Identifier: MIT
// Package: netquiz/study
//
// parameters.go - per-technique rendering parameters of a task record.

package study

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/netquiz/task"
)

// Encoding and ordering tokens understood by the rendering front end.
const (
	PlainNodes      = "plainNodes"
	PlainEdges      = "plainEdges"
	MultipleEdges   = "multipleEdges"
	JuxtaposedEdges = "juxtaposedEdges"
	OrderingRCM     = "RCM"
)

// Parameters configures how one technique renders a task.
type Parameters interface {
	Technique() Technique
}

// MatrixParameters configures the adjacency_matrix technique.
type MatrixParameters struct {
	NodeEncoding  string `json:"nodeEncoding"`
	EdgeEncoding  string `json:"edgeEncoding"`
	NodeOrdering  string `json:"nodeOrdering"`
	NodeAttribute string `json:"nodeAttribute"`
	EdgeAttribute string `json:"edgeAttribute"`
}

// Technique implements Parameters.
func (MatrixParameters) Technique() Technique { return AdjacencyMatrix }

// BioFabricParameters configures the biofabric technique.
type BioFabricParameters struct {
	NodeEncoding string        `json:"nodeEncoding"`
	EdgeEncoding string        `json:"edgeEncoding"`
	NodeOrdering string        `json:"nodeOrdering"`
	EdgeOrdering task.Ordering `json:"edgeOrdering"`
	Attribute    string        `json:"attribute"`
}

// Technique implements Parameters.
func (BioFabricParameters) Technique() Technique { return BioFabric }

// ParametersFor returns the rendering parameters of t under technique.
// Attribute-free plain tasks draw plain edges.
func ParametersFor(technique Technique, t *task.Task) (Parameters, error) {
	switch technique {
	case AdjacencyMatrix:
		p := MatrixParameters{NodeEncoding: PlainNodes, EdgeEncoding: MultipleEdges, NodeOrdering: OrderingRCM}
		if t.Kind == task.KindPlain {
			p.EdgeEncoding = PlainEdges
		}
		return p, nil
	case BioFabric:
		p := BioFabricParameters{NodeEncoding: PlainNodes, EdgeEncoding: JuxtaposedEdges,
			NodeOrdering: OrderingRCM, EdgeOrdering: t.Ordering}
		if t.Kind == task.KindPlain {
			p.EdgeEncoding = PlainEdges
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: unknown technique %q", ErrInvalidDesign, technique)
}

// DecodeParameters parses raw JSON parameters for technique.
func DecodeParameters(technique Technique, raw []byte) (Parameters, error) {
	switch technique {
	case AdjacencyMatrix:
		var p MatrixParameters
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("study: %s parameters: %w", technique, err)
		}
		return p, nil
	case BioFabric:
		var p BioFabricParameters
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("study: %s parameters: %w", technique, err)
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: unknown technique %q", ErrInvalidDesign, technique)
}
