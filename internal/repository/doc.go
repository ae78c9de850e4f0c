// Package repository defines the storage interface behind in-memory object
// sources.
//
// # ObjectRepository
//
// An ObjectRepository holds the objects of one loaded file or URL and
// answers query.Filter lists against them. Results always come back in
// insertion order.
//
// # SQLite Implementation
//
// The sqlite subpackage indexes each object's id and type in columns and
// keeps the full object as JSON. Predicates on id and type using =, != or
// in are evaluated in SQL; every predicate is then checked again against
// the decoded object, so pushdown only narrows the scan.
package repository
