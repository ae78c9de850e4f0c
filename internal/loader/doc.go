// Package loader reads STIX objects from JSON documents on disk or over HTTP.
//
// A document is either a bare array of objects or a bundle, an object
// carrying an "objects" array. Entries of a directory store may also hold a
// single object. Numbers are kept as json.Number so filters compare their
// literal text.
package loader
