// SPDX-License-Identifier: MIT
// Package: netquiz/layout
//
// Package layout derives spatial node features from a 2D graph-layout oracle.
//
// Three oracle invocations per graph:
//
//  1. Hierarchical run with every node declared on the same rank. Sorting the
//     primary-axis (x) coordinate ascending, ties by id, yields Node.Gansner:
//     the 0-based barycenter rank.
//  2. Unconstrained hierarchical run → Node.Hierarchy.
//  3. Unconstrained radial run → Node.Radial.
//
// Runs 2 and 3 are min–max normalised per axis to [0,1]. When an axis is
// degenerate (max == min) every node gets 0.5 on that axis; this is logged and
// counted, not treated as an error.
//
// The oracle is the Provider interface. Two implementations ship here:
//
//   - GraphvizProvider: shells out to the Graphviz dot/circo binaries with
//     -Tplain and parses the plain text output.
//   - NativeProvider: a pure-Go layered/circular layout, deterministic and
//     dependency-free; used when Graphviz is not installed and in tests.
//
// Every invocation runs under a deadline (WithTimeout, default 30s). Provider
// failure, timeout, a missing node position or a non-finite coordinate yields
// *core.LayoutEngineError. Extract never mutates its input: it returns a clone.
//
// Observability: one OpenTelemetry span per provider call; Prometheus counters
// netquiz_layout_calls_total{engine,result} and
// netquiz_layout_degenerate_axis_total{engine,axis}.
package layout
