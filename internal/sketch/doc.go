// Package sketch defines the raw input model of the vectorization engine:
// freehand strokes as sampled by a drawing surface.
//
// A stroke is one continuous pen gesture, recorded as an ordered sequence of
// points in pixel coordinates. The drawing surface tags each stroke with a
// role (wall, door, dimension) through its pen color; this package implements
// that color contract but never second-guesses an explicit role supplied by
// the caller.
//
// # Coordinate System
//
// All coordinates are floating-point pixels with the origin at the top-left
// corner of the canvas: X increases rightward, Y increases downward.
//
// # Role Classification
//
// Roles are resolved by nearest-palette-entry matching in CIE-Lab space,
// which tracks perceived color distance far better than RGB distance. The
// default palette is black walls, red doors and blue dimension annotations;
// callers with a different toolbar can supply their own palette.
//
// Classification is deliberately forgiving: a color that cannot be parsed
// falls back to the wall role rather than failing the submission, matching
// the engine-wide policy that malformed sketch data degrades instead of
// erroring.
package sketch
