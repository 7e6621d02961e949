// SPDX-License-Identifier: MIT
// Package: netquiz/builder
//
// errors.go - error helpers for the builder package.
//
// Error policy:
//   - Unsatisfiable generator parameters are reported as *core.DegenerateGraphError,
//     so callers branch with errors.Is(err, core.ErrDegenerateGraph).
//   - Graph-level failures bubbling out of core are wrapped with the method tag.
//   - Option constructors (WithX) panic on programmer error; constructors never do.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netquiz/core"
)

// degenerate builds a *core.DegenerateGraphError for method with a formatted reason.
func degenerate(method, format string, args ...interface{}) error {
	return &core.DegenerateGraphError{Op: method, Reason: fmt.Sprintf(format, args...)}
}

// builderErrorf wraps err with the given method context: "<Method>: <msg>: <err>".
func builderErrorf(method, msg string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, msg, err)
}
