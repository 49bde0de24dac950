// Package geometry turns IFC coordinate and vector entities into host-unit
// points and lines.
//
// All functions are pure apart from diagnostics: a degenerate line direction
// is reported to the diagnostics sink and skipped, never returned as an error,
// so one malformed curve cannot abort an import.
package geometry
