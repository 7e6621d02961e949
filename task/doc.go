// SPDX-License-Identifier: MIT
// Package: netquiz/task
//
// Package task synthesizes comparison-style quiz tasks with a verified
// ground-truth solution from a frozen core.Graph.
//
// Kinds:
//
//   - plain: "Find all friends of X." Solution: every neighbor of X.
//     Answer type multipleNodeSelection; ordering "Nodes".
//   - one:   "Find a friend of X whose friendship has the second highest value
//     in <a>." Let V be the distinct values of a on X's edges; the target is
//     the largest value below max(V), so ties at the maximum are all excluded.
//     Solution: neighbors reached via an edge with the target value.
//     Answer type nodeSelection even when several neighbors tie; ordering a.
//   - two:   "Find all friends of X whose friendship has more <a1> than <a2>."
//     Solution: neighbors reached via an edge with a1 > a2 (strict).
//     Answer type multipleNodeSelection; ordering [a1, a2].
//
// Synthesizer.Generate samples the root (and attributes) with the injected
// *rand.Rand and rejects candidates that violate the kind's constraints: at
// least two incident edges, at least two distinct values (one), a non-empty
// solution (two). The loop is bounded by WithMaxAttempts; exhaustion is a
// *core.DegenerateGraphError. An incident edge lacking a referenced attribute
// is a *core.AttributeKeyError and stops sampling immediately.
//
// Plain, SecondHighest and Comparison are the deterministic rooted forms used
// by the sampler, by tests and for replaying a recorded task.
//
// Solutions list nodes in graph insertion order; TextSolution joins their
// names with ", " and a final conjunction ("and" for plain and two, "or" for one).
package task
