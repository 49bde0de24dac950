// Package material flattens IFC material composition graphs and drives
// at-most-once creation of the host-side material for every leaf.
//
// Constituent sets, layer sets, profile sets and their relatives all expose
// the same Composite capability. Each variant only describes its direct
// children; one shared walker does the recursion, deduplicates leaves by
// pointer identity and guards against reference cycles.
//
// Host creation goes through a Cache owned by a single import run. The cache
// makes check, create and record one atomic step, so a leaf shared by many
// composites is created once even if elements are processed in parallel.
package material
