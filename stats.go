// Database statistics.
//
// Stats walks the document region for the count and the word index for
// the longest and most popular words. Unlike WordDocs, which routes
// around damaged slots, the index scan here is strict: any slot missing
// its trailing NUL fails the whole call, making Stats double as a
// cheap integrity check.
package ftsearch

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Stats summarizes an open database.
type Stats struct {
	Words           uint32 `json:"words"`
	Docs            int    `json:"docs"`
	LongestWord     string `json:"longest_word"`
	MostPopular     string `json:"most_popular"`
	MostPopularDocs int    `json:"most_popular_docs"`
	Checksum        string `json:"checksum"`
}

// Stats computes statistics for the database. Ties for longest and most
// popular are broken by first occurrence in sorted word order.
func (db *DB) Stats() (*Stats, error) {
	if db.m == nil {
		return nil, ErrClosed
	}

	st := &Stats{Words: db.nwords}

	err := db.ListAll(func(uint32, DocEntry) error {
		st.Docs++
		return nil
	})
	if err != nil {
		return nil, err
	}

	maxLen := 0
	for i := 0; i < int(db.nwords); i++ {
		slot := db.slot(i)
		if slot[MaxWordLen-1] != 0 {
			return nil, ErrCorruptIndex
		}
		word := slotWord(slot)

		if len(word) > maxLen {
			maxLen = len(word)
			st.LongestWord = string(word)
		}

		pos := int64(binary.LittleEndian.Uint64(slot[MaxWordLen:]))
		p, err := db.postingsAt(pos)
		if err != nil {
			return nil, err
		}
		if p.Len() > st.MostPopularDocs {
			st.MostPopularDocs = p.Len()
			st.MostPopular = string(word)
		}
	}

	// Digest of the whole image, so two builds can be told apart at
	// a glance.
	st.Checksum = fmt.Sprintf("%016x", xxh3.Hash(db.m))
	return st, nil
}
