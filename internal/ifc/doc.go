// Package ifc defines the typed IFC entity graph consumed by the resolvers.
//
// The graph is assumed to be already parsed: every entity carries its STEP
// instance number as an ID, and references between entities are plain Go
// pointers. Two references to the same underlying entity are the same pointer,
// which is what the material resolver relies on for identity-based
// deduplication.
package ifc
