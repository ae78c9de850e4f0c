// Package source provides queryable collections of STIX objects.
//
// A location on the command line becomes one Source: a directory is read
// as a STIX file system store, a file or http(s) URL is loaded once into an
// in-memory store. Several locations are combined into a CompositeSource
// that answers queries in argument order.
package source
