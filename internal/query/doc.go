// Package query parses textual filter predicates such as
// "type = attack-pattern" and evaluates them against STIX objects.
//
// Predicates that cannot be parsed are reported with ok == false rather than
// an error; callers skip them.
package query
