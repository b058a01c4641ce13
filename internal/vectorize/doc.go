// Package vectorize converts classified freehand strokes into a structured
// floor plan: a topological wall graph, a list of doors snapped onto it, and
// optionally real-world coordinates derived from one measured dimension.
//
// # Pipeline
//
// The engine runs five stages, each consuming only the output of the stages
// before it:
//
//  1. Simplify: reduce each stroke to its structurally significant vertices
//     by dropping near-colinear points.
//  2. BuildGraph: walk consecutive simplified points as candidate wall
//     segments, merging nearby endpoints into shared graph nodes.
//  3. Rectify: snap near-horizontal and near-vertical edges exactly onto
//     the axes and collapse duplicate edges.
//  4. ProjectDoors: snap each door stroke's endpoints onto the nearest wall
//     edge, keeping the original endpoints for diagnostics.
//  5. Normalize: rescale all coordinates by one real-world measurement.
//
// Vectorize runs the whole pipeline; the individual stages are exported for
// callers that want a diagnostic view of an intermediate result.
//
// # Determinism and State
//
// Every stage is a pure function of its inputs, or an in-place mutation of a
// graph owned by one Vectorize call. Nothing persists between submissions;
// each call re-derives the full plan from the current canvas state. The node
// merge is greedy and order-dependent: the first-seen point anchors a merged
// node's location and later nearby points reuse it without moving it.
//
// # Error Policy
//
// Malformed strokes (no points, no segments) are skipped silently, and
// degenerate geometry (zero-length vectors, zero reference lengths) resolves
// to safe fallbacks. The engine returns a degraded-but-valid plan for any
// sketch-shaped input rather than failing the submission.
package vectorize
