// Package inference derives a best-effort package version for a content file
// when the user has not supplied one.
//
// Inference is tiered and never fails: an embedded PE version resource is
// tried first for executables and libraries, then a date heuristic over the
// header of boot-image (.pdi) containers, and finally a caller supplied
// timestamp. Every tier silently falls through to the next on any error.
package inference
