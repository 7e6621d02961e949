// SPDX-License-Identifier: MIT
// Package: netquiz/task
//
// types.go - task kinds, answer types, orderings and the Task descriptor.

package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/netquiz/core"
)

// ErrUnknownKind is returned for a task kind outside plain/one/two.
var ErrUnknownKind = errors.New("task: unknown kind")

// Kind identifies the task family.
type Kind string

const (
	KindPlain Kind = "plain"
	KindOne   Kind = "one"
	KindTwo   Kind = "two"
)

// Kinds returns all task kinds in canonical order.
func Kinds() []Kind { return []Kind{KindPlain, KindOne, KindTwo} }

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindPlain, KindOne, KindTwo:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// AnswerType is the answer widget the rendering layer offers.
type AnswerType string

const (
	// SingleNodeSelection lets the participant pick one node.
	SingleNodeSelection AnswerType = "nodeSelection"
	// MultiNodeSelection lets the participant pick several nodes.
	MultiNodeSelection AnswerType = "multipleNodeSelection"
)

// OrderingNodes is the ordering token of plain tasks.
const OrderingNodes = "Nodes"

// Ordering is the rendering sort key of a task: the literal "Nodes", one
// attribute name, or an attribute pair. It marshals to "Nodes", "<attr>" or
// ["<a1>", "<a2>"] respectively.
type Ordering struct {
	Attributes []string
}

// NodesOrdering returns the "Nodes" ordering.
func NodesOrdering() Ordering { return Ordering{} }

// AttributeOrdering returns the ordering keyed by attrs.
func AttributeOrdering(attrs ...string) Ordering {
	return Ordering{Attributes: append([]string(nil), attrs...)}
}

// IsNodes reports whether o is the "Nodes" ordering.
func (o Ordering) IsNodes() bool { return len(o.Attributes) == 0 }

// String renders o as "Nodes", the attribute, or "a1,a2".
func (o Ordering) String() string {
	if o.IsNodes() {
		return OrderingNodes
	}
	return strings.Join(o.Attributes, ",")
}

// MarshalJSON implements json.Marshaler.
func (o Ordering) MarshalJSON() ([]byte, error) {
	switch len(o.Attributes) {
	case 0:
		return json.Marshal(OrderingNodes)
	case 1:
		return json.Marshal(o.Attributes[0])
	default:
		return json.Marshal(o.Attributes)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Ordering) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == OrderingNodes {
			*o = NodesOrdering()
		} else {
			*o = AttributeOrdering(s)
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("task: ordering must be a string or a string array: %w", err)
	}
	*o = AttributeOrdering(list...)
	return nil
}

// Task is a synthesized quiz item with its verified solution.
type Task struct {
	Kind         Kind
	Root         int
	Description  string
	AnswerType   AnswerType
	Solution     []core.Node
	TextSolution string
	Ordering     Ordering
}

// SolutionNames returns the names of the solution nodes in order.
func (t *Task) SolutionNames() []string {
	out := make([]string, len(t.Solution))
	for i, n := range t.Solution {
		out[i] = n.Name
	}
	return out
}

// TextSolution renders names as "A", "A and B" or "A, B or C".
func TextSolution(names []string, conj string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " " + conj + " " + names[len(names)-1]
}
