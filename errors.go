// Package ftsearch implements a compact full-text search engine backed by
// a single read-only, memory-mapped database file.
//
// An index is produced once: feed a Dictionary with (word, doc-id) pairs,
// collect the document records, and serialize both with Create. Queries
// open the resulting file with Open, which maps it and validates the
// header; lookups then run against the mapping without further I/O.
package ftsearch

import "errors"

// Sentinel errors returned by build and query operations.
var (
	// ErrNotFound is returned when a document id does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrWordTooLong is returned when a word does not fit an index slot.
	ErrWordTooLong = errors.New("word exceeds maximum length")

	// ErrTooManyWords is returned when the dictionary exceeds the
	// 32-bit word count the header can represent.
	ErrTooManyWords = errors.New("too many words")

	// ErrTooManyDocs is returned when the document list exceeds the
	// 31-bit id space.
	ErrTooManyDocs = errors.New("too many documents")

	// ErrNameRequired is returned when a document has an empty name.
	ErrNameRequired = errors.New("document name cannot be empty")

	// ErrFieldTooLong is returned when a name or description exceeds
	// the 16-bit length field.
	ErrFieldTooLong = errors.New("document field exceeds maximum size")

	// ErrInvalidField is returned when a name or description contains
	// a NUL byte.
	ErrInvalidField = errors.New("document field contains NUL")

	// ErrCorruptHeader is returned when the header fails validation.
	ErrCorruptHeader = errors.New("corrupt header")

	// ErrCorruptIndex is returned when a word-index slot or posting
	// list cannot be resolved inside its region.
	ErrCorruptIndex = errors.New("corrupt word index")

	// ErrCorruptDoc is returned when a document record fails its
	// bounds or terminator checks.
	ErrCorruptDoc = errors.New("corrupt document record")

	// ErrClosed is returned when operating on a closed database.
	ErrClosed = errors.New("database is closed")
)
