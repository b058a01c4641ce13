// Package snapshot handles canvas snapshot images: rasterized captures of
// the drawing surface that accompany a sketch submission.
//
// The vectorization engine itself works on stroke coordinates and never
// touches pixels. Snapshots exist for one reason: dimension annotations are
// handwritten numbers, and reading them requires OCR over the snapshot
// region where the annotation was drawn. This package provides that path:
// a thread-safe image cache keyed by file path, clamped region extraction,
// and binarization preprocessing that turns pen-on-canvas regions into the
// high-contrast black-on-white input Tesseract expects.
//
// # Caching
//
// A Cache stores decoded images by the exact path string used to load them.
// Snapshots are read repeatedly while a user iterates on a sketch, so
// avoiding redundant decodes is worth the memory. Entries stay cached until
// evicted; long-running servers should Evict or Clear after a submission
// completes.
//
// Cache is safe for concurrent use. The image operations are stateless.
package snapshot
