// SPDX-License-Identifier: MIT
// Package: netquiz/codec
//
// Package codec reads and writes the JSON documents exchanged with ingestion
// adapters and the rendering front end.
//
// Graph documents
//
//	{ "nodes": [ {"id": 0, "name": "A", "attributes": {...},
//	              "layer": 1, "gansner": 0, "hierarchy": [x, y], "radial": [x, y]} ],
//	  "links": [ {"source": 0, "target": 1, "attributes": {...}} ],
//	  "rcm":   [ ... ] }
//
// layer, gansner, hierarchy, radial and rcm are optional. DecodeGraph rejects a
// negative or duplicate node id, a duplicate undirected link, a self-loop and an
// rcm that is not a permutation of the node ids with *core.MalformedInputError.
// Links naming an unknown node are dropped and counted in a warning, or rejected
// under WithStrictEndpoints.
//
// Task-set documents
//
//	{ "<technique>": { "<kind>": { "training": [record...], "survey": [record...] } } }
//
// EncodeTechnique writes the "<kind>" level of one technique, the per-technique
// file the study front end loads.
package codec
