// Package netquiz generates graph stimuli for a network visualization study,
// enriches them with structural and spatial features, and synthesizes quiz
// tasks with verified solutions.
//
// Pipeline
//
//	builder     → random graphs: plain G(n,m), layered, subnetworks, social
//	rcm         → reverse Cuthill-McKee ordering (on top of bfs)
//	layout      → gansner rank plus hierarchical and radial coordinates in [0,1]²
//	centrality  → degree, closeness, betweenness, eigenvector
//	task        → "find the friends of X such that ..." tasks with solutions
//	study       → the full factorial task set, per visualization technique
//	codec       → JSON documents at the boundary
//
// Every stage works on a core.Graph. Enrichment stages never modify their
// input: they return a clone carrying the new fields, so a generated graph can
// be enriched along several paths without interference.
//
// Randomness is always injected (*rand.Rand or a seed); there is no package
// level source, and the same seed reproduces the same graphs and tasks.
//
// Packages
//
//	core/         Graph, Node, Edge, Ordering and the typed error taxonomy
//	bfs/          breadth-first traversal with ordering and filter hooks
//	builder/      functional-option graph generators and seed derivation
//	rcm/          Cuthill-McKee ordering and bandwidth
//	layout/       Provider oracle (Graphviz or native) and feature extraction
//	centrality/   metric computation and Enrich
//	task/         rooted task forms and the rejection-sampling Synthesizer
//	study/        Design and concurrent Build of the task set
//	codec/        graph and task-set JSON codecs with validation
//	config/       YAML, .env and NETQUIZ_* environment configuration
//	logger/       zerolog setup
//	cmd/netquiz/  the command-line driver
package netquiz
