// Multi-word queries.
//
// A query is tokenized with the same rules as document text, each token
// resolves to its posting list, and the result is the conjunction of
// all lists. Posting lists become Roaring bitmaps and the intersection
// is a single FastAnd; hits come back in ascending id order, which lets
// one sequential cursor materialize every document in a single pass
// over the region.
package ftsearch

import "github.com/RoaringBitmap/roaring/v2"

// FTS runs a full-text query and invokes cb for every matching
// document in id order. A query that tokenizes to nothing, or contains
// a token with no postings, matches nothing.
func (db *DB) FTS(query string, cb HitFunc) error {
	if db.m == nil {
		return ErrClosed
	}

	toks := Tokenize(query)
	if len(toks) == 0 {
		return nil
	}

	sets := make([]*roaring.Bitmap, 0, len(toks))
	for _, tok := range toks {
		p, err := db.WordDocs(tok)
		if err != nil {
			return err
		}
		if p.Len() == 0 {
			return nil
		}
		bm := roaring.New()
		for i := 0; i < p.Len(); i++ {
			bm.Add(p.At(i))
		}
		sets = append(sets, bm)
	}

	hits := roaring.FastAnd(sets...)

	c := db.cursor()
	it := hits.Iterator()
	for it.HasNext() {
		id := it.Next()
		doc, err := c.seek(id)
		if err != nil {
			return err
		}
		if err := cb(id, doc); err != nil {
			return err
		}
	}
	return nil
}
