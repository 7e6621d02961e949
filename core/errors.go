// SPDX-License-Identifier: MIT
// Package: netquiz/core
//
// errors.go - error taxonomy shared by all stimulus stages.
//
// Error policy:
//   - Each class has a package-level sentinel and a typed struct that unwraps
//     to it, so callers branch with errors.Is and inspect with errors.As.
//   - Packages attach context with fmt.Errorf("%s: ...: %w", method, err).
//   - Nothing here is retried automatically.

package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedInput indicates an ingested graph violates the model invariants.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrDegenerateGraph indicates generator or sampler parameters cannot be satisfied.
	ErrDegenerateGraph = errors.New("core: degenerate graph request")

	// ErrLayoutEngine indicates the external layout oracle failed or timed out.
	ErrLayoutEngine = errors.New("core: layout engine failure")

	// ErrConvergence indicates an iterative computation did not converge.
	ErrConvergence = errors.New("core: convergence failure")

	// ErrAttributeKey indicates an attribute expected on a node or edge is absent.
	ErrAttributeKey = errors.New("core: attribute key missing")
)

// MalformedInputError names the offending ids of an invariant violation.
type MalformedInputError struct {
	IDs    []int
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.IDs) == 0 {
		return fmt.Sprintf("%s: %s", ErrMalformedInput.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s (ids %s)", ErrMalformedInput.Error(), e.Reason, joinIDs(e.IDs))
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }

// DegenerateGraphError reports which operation could not be satisfied and why.
type DegenerateGraphError struct {
	Op     string
	Reason string
}

func (e *DegenerateGraphError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %s", ErrDegenerateGraph.Error(), e.Op, e.Reason)
}

func (e *DegenerateGraphError) Unwrap() error { return ErrDegenerateGraph }

// LayoutEngineError wraps a failure of one layout invocation.
// errors.Is matches both ErrLayoutEngine and the underlying cause.
type LayoutEngineError struct {
	Engine string
	Err    error
}

func (e *LayoutEngineError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrLayoutEngine.Error(), e.Engine)
	}
	return fmt.Sprintf("%s: %s: %v", ErrLayoutEngine.Error(), e.Engine, e.Err)
}

func (e *LayoutEngineError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrLayoutEngine}
	}
	return []error{ErrLayoutEngine, e.Err}
}

// ConvergenceError carries the iteration budget spent and the last residual.
type ConvergenceError struct {
	Method     string
	Iterations int
	Residual   float64
}

func (e *ConvergenceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: no convergence after %d iterations (residual %g)",
		ErrConvergence.Error(), e.Method, e.Iterations, e.Residual)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// AttributeKeyError names the missing key and the element that lacks it.
// For edges Source/Target are set; for nodes Target is -1.
type AttributeKeyError struct {
	Key    string
	Source int
	Target int
}

func (e *AttributeKeyError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target < 0 {
		return fmt.Sprintf("%s: %q on node %d", ErrAttributeKey.Error(), e.Key, e.Source)
	}
	return fmt.Sprintf("%s: %q on edge (%d,%d)", ErrAttributeKey.Error(), e.Key, e.Source, e.Target)
}

func (e *AttributeKeyError) Unwrap() error { return ErrAttributeKey }

// joinIDs renders ids as "1, 2, 3".
func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
