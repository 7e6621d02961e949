// SPDX-License-Identifier: MIT
// Package: netquiz/study
//
// Package study assembles the task set of the visualization study.
//
// A Design names the techniques, graph sizes, densities and task kinds. Build
// expands it into conditions:
//
//   - training: TrainingPerKind tasks per kind at the first size and density,
//     data file tasks/training/<size>_<density>_<kind>_<i>.json;
//   - survey: one task per (size, density, kind), data file
//     tasks/survey/<size>_<density>_<kind>.json.
//
// Each condition generates its own social network from builder.DeriveRand(seed,
// index), synthesizes one task on it and renders one TaskRecord per technique.
// Conditions share nothing, so Build runs them concurrently through errgroup and
// assembles the result in condition order; the output depends only on the Design.
//
// Errors
//
//   - A failed condition aborts Build; the error names the condition's data file
//     and wraps the cause (typically *core.DegenerateGraphError).
//   - Design.Validate reports an unusable design before any work starts.
package study
