// In-memory dictionary built during indexing.
//
// The dictionary is a slice of entries kept sorted by word so that the
// writer can emit the on-disk index in a single pass. Posting lists stay
// sorted for free: documents are ingested in id order, and each Add for
// a given word only ever appends the current id.
package ftsearch

import (
	"slices"
	"strings"
)

type dictEntry struct {
	word string
	ids  []uint32
}

// Dictionary accumulates the word -> posting-list mapping for a build.
// The zero value is ready to use.
type Dictionary struct {
	entries []dictEntry
}

// Add records that word appears in the document docID. Callers must feed
// all tokens of one document before moving to the next: the duplicate
// check only compares against the last posting, which keeps posting
// lists strictly increasing without a search.
//
// Words of MaxWordLen bytes or more do not fit an index slot and are
// rejected with ErrWordTooLong rather than silently truncated.
func (d *Dictionary) Add(word string, docID uint32) error {
	if len(word) >= MaxWordLen {
		return ErrWordTooLong
	}

	i, found := slices.BinarySearchFunc(d.entries, word,
		func(e dictEntry, w string) int { return strings.Compare(e.word, w) })
	if found {
		e := &d.entries[i]
		if n := len(e.ids); n > 0 && e.ids[n-1] == docID {
			return nil
		}
		e.ids = append(e.ids, docID)
		return nil
	}

	d.entries = slices.Insert(d.entries, i, dictEntry{
		word: word,
		ids:  []uint32{docID},
	})
	return nil
}

// AddWords adds every token of a document. Over-long tokens are skipped:
// tokenized text legitimately contains words that cannot be indexed, and
// dropping them only makes those words unsearchable.
func (d *Dictionary) AddWords(words []string, docID uint32) {
	for _, w := range words {
		if len(w) >= MaxWordLen {
			continue
		}
		// Add cannot fail once the length is checked.
		d.Add(w, docID)
	}
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.entries) }
