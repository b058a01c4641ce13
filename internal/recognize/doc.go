// Package recognize abstracts the external recognizer that reads dimension
// annotations off a canvas snapshot.
//
// The geometry engine consumes a recognized dimension as a plain number; how
// that number was obtained is someone else's problem. This package defines
// that boundary as a capability interface so the engine stays testable with
// no OCR dependency, and supplies two implementations: a Tesseract-backed
// recognizer for real snapshots and a null recognizer that never recognizes
// anything.
//
// Dimension text parsing is a standalone pure function. Annotations come in
// a few handwritten shapes ("24", "24.5", 12'6", 3 1/2), and ParseDimension
// normalizes all of them to a single value (quoted feet/inches forms resolve
// to feet).
//
// A recognizer that finds nothing returns a nil Dimension with a nil error;
// failure to recognize degrades the pipeline to pixel-space output and is
// never treated as a hard error.
package recognize
