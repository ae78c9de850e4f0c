// Package codec reads and writes graphs and alias maps.
//
// Exporters cover sorted triples and quads, Graphviz DOT, a node-link
// graph document in JSON or YAML, and graph summaries. The node-link
// document can also be parsed back into a graph. Alias maps are written as
// JSON, CSV or TSV.
package codec
