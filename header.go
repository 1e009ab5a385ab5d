// On-disk format constants and header validation.
//
// The database file is little-endian and laid out in four forward-only
// sections:
//
//	offset  size  field
//	0       4     version (u32, currently 0)
//	4       8     docs_offset (i64, start of the document region)
//	12      4     nwords (u32)
//	16      40*N  word index: 32-byte NUL-padded word, i64 posting offset
//	...           posting lists: u32 length, then that many u32 doc ids
//	docs_offset   documents: u16 namelen, name, NUL, u16 descrlen, descr, NUL
//
// The mapping is untrusted. Region boundaries are computed once here and
// every later dereference is checked against them.
package ftsearch

import "encoding/binary"

// Format constants.
const (
	// FormatVersion is the current database format version.
	FormatVersion = 0

	// MaxWordLen is the size of a word slot in the index. Words must
	// be strictly shorter so the slot keeps a NUL terminator.
	MaxWordLen = 32

	headerSize   = 16
	idxEntrySize = MaxWordLen + 8
)

// initRegions parses the header and records the three region boundaries.
// Only structural bounds are verified here; per-slot and per-record
// checks happen at point of use.
func (db *DB) initRegions() error {
	if len(db.m) < headerSize {
		return ErrCorruptHeader
	}

	db.version = binary.LittleEndian.Uint32(db.m[0:4])
	docsOff := int64(binary.LittleEndian.Uint64(db.m[4:12]))
	db.nwords = binary.LittleEndian.Uint32(db.m[12:16])

	flen := int64(len(db.m))
	idxEnd := headerSize + int64(db.nwords)*idxEntrySize

	if docsOff < headerSize || docsOff > flen {
		return ErrCorruptHeader
	}
	if idxEnd > docsOff {
		return ErrCorruptHeader
	}

	db.idxEnd = int(idxEnd)
	db.listStart = int(idxEnd)
	db.listEnd = int(docsOff)
	db.docsStart = int(docsOff)
	db.docsEnd = int(flen)
	return nil
}
