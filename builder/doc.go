// Package builder generates the random stimulus graphs of the study in a
// functional-options style: a Constructor mutates a fresh core.Graph using a
// resolved builderConfig, and BuildGraph composes constructors in order.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): resolve options once, run constructors.
//     – Constructor: func(g *core.Graph, cfg builderConfig) error.
//   - Generators (impl_*.go):
//     – Plain(n, d):              exactly floor(n(n-1)d) uniformly sampled edges.
//     – Layered(n, d, L):         edges only between adjacent layers.
//     – Subnetworks(sizes, ds):   disjoint groups, internal edges only.
//     – SocialNetwork(n, d):      plain topology, first names, friendship attributes.
//   - Configuration primitives:
//     – BuilderOption:            WithRand, WithSeed, WithNodeAttributes,
//     WithEdgeAttributes, WithNameScheme, WithNamePool, WithLogger.
//   - Name schemes (IDFn implementations):
//     – LetterIDFn:               "A".."Z", "A'".."Z'", ... up to four primes.
//     – DefaultIDFn:              decimal strings ("0","1",…).
//   - RNG streams:
//     – DeriveSeed / DeriveRand:  SplitMix64-mixed independent streams.
//
// Guarantees:
//
//   - Exact edge counts: a request that cannot be satisfied (density outside
//     [0,1], more edges than available pairs, bad layer or group parameters,
//     too few names, missing RNG) fails with *core.DegenerateGraphError and
//     never truncates.
//   - Determinism: same options, same seed and same constructor order give
//     identical graphs.
//   - Node ids are assigned contiguously after the largest id already in the
//     graph, so constructors compose without collisions.
//   - Fast-fail on invalid option parameters via panics in option constructors.
package builder
