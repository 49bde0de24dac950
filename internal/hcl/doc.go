// Package hcl provides the concrete HCL implementation of config.Loader.
//
// A model file declares an already-typed IFC entity graph: materials,
// material sets and usages, building elements, coordinate lists, lines and
// complex properties. Blocks reference each other with plain traversals such
// as `material = material.concrete`, and every reference resolves to the
// same Go pointer, so identity-based deduplication downstream sees shared
// materials as shared.
//
// Entities may carry an explicit `id`; the rest receive IDs above the
// largest explicit one, in file order. An optional `settings` block, in any
// file, overrides the import defaults.
package hcl
