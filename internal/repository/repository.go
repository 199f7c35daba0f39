// Package repository contains the data access layer over the Mongo document
// store. Services depend on the interfaces, not on the concrete Mongo
// implementations, enabling clean unit testing via in-memory stubs.
package repository

import "errors"

// ErrNoEncontrado is returned by id/email lookups that match no document.
// Malformed identifiers map to this error too — an unparseable ObjectID can
// never match a document, so callers see a plain not-found.
var ErrNoEncontrado = errors.New("registro no encontrado")
