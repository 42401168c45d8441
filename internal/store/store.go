// Package store implements the loose object storage layer.
//
// Objects are opaque byte strings addressed by a lowercase hex name chosen
// by the caller. They are kept zlib-compressed in a git-style fan-out
// directory (objects/ab/cdef...), with an LRU cache of decompressed
// content in front.
package store

import "errors"

var (
	// ErrNotFound is returned when no file exists for a name.
	ErrNotFound = errors.New("object not found")
	// ErrCorrupt is returned when a stored file cannot be decompressed.
	ErrCorrupt = errors.New("object corrupt")
)

// Store handles local object storage.
type Store interface {
	// Get returns the decompressed content stored under name.
	Get(name string) ([]byte, error)

	// Put stores data under name. created is false if the object was
	// already present, in which case nothing is written.
	Put(name string, data []byte) (created bool, err error)

	// Has checks if an object exists on disk.
	Has(name string) (bool, error)

	// Path returns the file that holds name.
	Path(name string) string

	// Evict removes an object from cache (not from disk).
	Evict(name string)

	// Clear clears the in-memory cache.
	Clear()
}
