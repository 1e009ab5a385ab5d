// Negative-lookup filter over the word index.
//
// Built once at Open from a single pass over the index slots, sized for
// the exact word count at 1% false positives. A definite miss skips the
// binary search entirely, which matters for multi-word queries where a
// single absent token empties the whole result set.
package ftsearch

import (
	"bytes"

	"github.com/bits-and-blooms/bloom/v3"
)

func (db *DB) buildFilter() {
	if db.nwords == 0 {
		return
	}

	f := bloom.NewWithEstimates(uint(db.nwords), 0.01)
	for i := 0; i < int(db.nwords); i++ {
		slot := db.slot(i)
		// Slots without a trailing NUL are unmatchable; leaving
		// them out keeps the filter honest about what a search
		// could ever find.
		if slot[MaxWordLen-1] != 0 {
			continue
		}
		w := slot[:MaxWordLen]
		if n := bytes.IndexByte(w, 0); n >= 0 {
			w = w[:n]
		}
		f.Add(w)
	}
	db.filter = f
}
