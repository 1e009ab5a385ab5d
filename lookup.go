// Single-word lookup against the mapped index.
//
// The word index is a sorted fixed-stride array, so lookup is a binary
// search over slots. A slot whose final byte is not NUL cannot hold a
// valid word (only a damaged or foreign file produces one); the
// comparator orders it after every key, so the search steps around it
// and can never match it.
package ftsearch

import (
	"bytes"
	"encoding/binary"
)

// Postings is a zero-copy view of one word's posting list inside the
// mapping. It is only valid until the DB is closed.
type Postings struct {
	b []byte
}

// Len returns the number of document ids in the list.
func (p Postings) Len() int { return len(p.b) / 4 }

// At returns the i-th document id. Ids are strictly increasing.
func (p Postings) At(i int) uint32 {
	return binary.LittleEndian.Uint32(p.b[4*i:])
}

// Slice copies the list into a fresh slice.
func (p Postings) Slice() []uint32 {
	ids := make([]uint32, p.Len())
	for i := range ids {
		ids[i] = p.At(i)
	}
	return ids
}

// slot returns the i-th index entry: MaxWordLen word bytes followed by
// the 8-byte posting offset.
func (db *DB) slot(i int) []byte {
	off := headerSize + i*idxEntrySize
	return db.m[off : off+idxEntrySize]
}

// slotWord returns the word stored in an index slot, without padding.
// The caller has already checked the trailing NUL.
func slotWord(slot []byte) []byte {
	w := slot[:MaxWordLen]
	if n := bytes.IndexByte(w, 0); n >= 0 {
		w = w[:n]
	}
	return w
}

// WordDocs returns the posting list for word. A word that is not in the
// index yields an empty list and no error; an index slot that points
// outside the posting-list region yields ErrCorruptIndex.
func (db *DB) WordDocs(word string) (Postings, error) {
	if db.m == nil {
		return Postings{}, ErrClosed
	}
	if db.filter == nil || !db.filter.TestString(word) {
		return Postings{}, nil
	}

	key := []byte(word)
	lo, hi := 0, int(db.nwords)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		slot := db.slot(mid)

		r := -1
		if slot[MaxWordLen-1] == 0 {
			r = bytes.Compare(key, slotWord(slot))
		}

		switch {
		case r < 0:
			hi = mid
		case r > 0:
			lo = mid + 1
		default:
			pos := int64(binary.LittleEndian.Uint64(slot[MaxWordLen:]))
			return db.postingsAt(pos)
		}
	}
	return Postings{}, nil
}

// postingsAt resolves an absolute posting-list offset taken from the
// index. Both the length field and the id array must lie inside the
// posting-list region.
func (db *DB) postingsAt(pos int64) (Postings, error) {
	if pos < int64(db.listStart) || pos+4 > int64(db.listEnd) {
		return Postings{}, ErrCorruptIndex
	}
	n := int64(binary.LittleEndian.Uint32(db.m[pos:]))
	start := pos + 4
	if start+4*n > int64(db.listEnd) {
		return Postings{}, ErrCorruptIndex
	}
	return Postings{b: db.m[start : start+4*n]}, nil
}
