// Package centrality enriches a core.Graph with closeness, betweenness and
// eigenvector centrality.
//
// Enrich returns a clone of the input whose node attribute maps are replaced
// by exactly {degree, closeness, betweenness, eigenvector}. All other node
// attributes are discarded; edges, names and layout fields are kept.
//
// Measures (V = |Nodes|, E = |Edges|, n = V):
//
//   - Closeness: c(u) = (r-1)/Σd(u,v) · (r-1)/(n-1), where r counts the nodes
//     reachable from u including u (Wasserman–Faust scaling for disconnected
//     graphs). Isolated nodes score 0. O(V·(V+E)).
//   - Betweenness: Brandes accumulation over all sources, normalised by
//     1/((n-1)(n-2)) for n > 2 and 0 otherwise. O(V·E).
//   - Eigenvector: power iteration on (A + I) from the uniform vector,
//     L2-normalised each step, converged when Σ|x - x_prev| < n·tol.
//     Defaults: tol 1e-6, 200 iterations. Failure → *core.ConvergenceError.
//
// The degree attribute is an external input: it is read from the node's
// existing "degree" attribute, and its absence is a *core.AttributeKeyError
// unless WithStructuralDegree is set.
package centrality
