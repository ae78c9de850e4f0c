// Package domain defines the core types and conversion rules for stixgraph.
//
// This package turns STIX 2 objects into a directed, labeled graph and derives
// alias lookup tables from the same object stream. It has no I/O of its own:
// callers hand it objects and receive graphs, triples, alias maps, or summaries.
//
// # Core Types
//
// Object is a single STIX object decoded from JSON (a map of field name to
// value). The package never mutates objects it is given.
//
// Graph holds node identifiers and labeled edges. Edges with the same source,
// target and label collapse into one; different labels between the same pair
// stay distinct. Edge endpoints do not have to be nodes.
//
// Triple and Quad are sorted projections of graph edges.
//
// AliasMap maps names, aliases and external catalog identifiers to object IDs.
//
// # Conversion Rules
//
// FilterObjects applies the lifecycle policy (deprecated and revoked objects).
// BuildGraph applies the edge-derivation rule set named by RuleSet:
//
//   - every object except relationship and external_reference objects is a node
//   - relationship objects become source_ref -> target_ref edges
//   - data components become x_mitre_data_source_ref -> id "component-of" edges
//   - created-by, modified-by and applies-to edges are opt-in
//
// BuildAliasMap derives the alias table.
//
// # Errors
//
// SourceError, MalformedObjectError, UnsupportedFormatError and MissingFieldError
// each match a sentinel (ErrSource, ErrMalformedObject, ...) through errors.Is.
package domain
