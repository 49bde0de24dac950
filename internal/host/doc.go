// Package host provides an ephemeral, thread-safe, in-memory host document.
//
// It stands in for the target modeling application: it creates material
// objects on request, and stores the curves and point sequences produced by
// the geometry resolver. Material handles are random UUIDs, so callers can
// only find a material through the handle they were given.
//
// Material names must be unique inside the document. When a second material
// asks for a name already taken, the document appends " (2)", " (3)" and so
// on.
package host
