// SPDX-License-Identifier: MIT
// Package: netquiz/rcm
//
// Package rcm computes the reverse Cuthill-McKee ordering of a core.Graph:
// a permutation of node ids that places adjacent nodes close to each other
// and so narrows the bandwidth of the adjacency matrix.
//
// Algorithm:
//
//  1. Components are processed in ascending order of their smallest id.
//  2. Each component starts at its minimum-degree node (ties: smaller id).
//  3. A breadth-first walk enqueues neighbors by ascending (degree, id).
//  4. The concatenated Cuthill-McKee sequence is reversed.
//
// The result is deterministic, uses no randomness and is always a permutation
// of the node-id set.
//
// Complexity: O(V + E·log d) time, O(V) memory.
package rcm
