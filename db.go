// Database handle and lifecycle operations.
//
// A DB is a read-only view over a memory-mapped index file. All query
// results that reference the mapping (posting-list views) are borrowed
// and must not be used after Close.
package ftsearch

import (
	"fmt"
	"os"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/edsrzf/mmap-go"
)

// DB is an open database. It is safe for concurrent readers: after Open
// nothing mutates the handle until Close.
type DB struct {
	f *os.File
	m mmap.MMap

	version uint32
	nwords  uint32

	// Region boundaries, byte offsets into m. The index starts right
	// after the header; each region ends where the next begins.
	idxEnd    int
	listStart int
	listEnd   int
	docsStart int
	docsEnd   int

	// Negative-lookup filter over the index words, built at Open.
	filter *bloom.BloomFilter
}

// Open memory-maps the database at path read-only and validates its
// header. On any validation failure the mapping is torn down and a
// sentinel error is returned.
func Open(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	db := &DB{f: f, m: m}
	if err := db.initRegions(); err != nil {
		m.Unmap()
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	db.buildFilter()
	return db, nil
}

// Version reports the format version recorded in the header.
func (db *DB) Version() uint32 { return db.version }

// Words reports the number of entries in the word index.
func (db *DB) Words() uint32 { return db.nwords }

// Close releases the mapping and the underlying file. Borrowed views
// become invalid.
func (db *DB) Close() error {
	if db.m == nil {
		return ErrClosed
	}

	err := db.m.Unmap()
	if cerr := db.f.Close(); err == nil {
		err = cerr
	}

	*db = DB{}
	return err
}
