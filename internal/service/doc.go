// Package service turns queried STIX objects into the tool's outputs.
//
// GraphService runs the pipeline shared by every command: parse filter
// predicates, query the source, apply the lifecycle policy, then either
// build a graph, derive an alias map or hand the objects back. Export
// helpers pair each result with a codec. The logger comes from the context
// via ctxlog.
package service
