// Document region walker.
//
// Document records are variable-length and carry no offsets, so every
// access is a sequential parse from docs_start. Each field read is
// bounds-checked against docs_end and each string must keep its NUL
// terminator; a violation surfaces as ErrCorruptDoc rather than a
// misparse of the bytes that follow.
package ftsearch

import "encoding/binary"

// DocEntry is one document record: a required name and an optional
// description.
type DocEntry struct {
	Name  string `json:"name"`
	Descr string `json:"descr"`
}

// HitFunc receives a document and its id. Returning an error stops the
// walk and propagates to the caller.
type HitFunc func(id uint32, doc DocEntry) error

// parseDoc parses one record at byte offset p and returns the entry and
// the offset of the next record.
func (db *DB) parseDoc(p int) (DocEntry, int, error) {
	var e DocEntry

	if p+2 > db.docsEnd {
		return e, 0, ErrCorruptDoc
	}
	namelen := int(binary.LittleEndian.Uint16(db.m[p:]))
	p += 2

	if p+namelen+1 > db.docsEnd || db.m[p+namelen] != 0 {
		return e, 0, ErrCorruptDoc
	}
	e.Name = string(db.m[p : p+namelen])
	p += namelen + 1

	if p+2 > db.docsEnd {
		return e, 0, ErrCorruptDoc
	}
	descrlen := int(binary.LittleEndian.Uint16(db.m[p:]))
	p += 2

	if p+descrlen+1 > db.docsEnd || db.m[p+descrlen] != 0 {
		return e, 0, ErrCorruptDoc
	}
	e.Descr = string(db.m[p : p+descrlen])
	p += descrlen + 1

	return e, p, nil
}

// ListAll walks every document in id order.
func (db *DB) ListAll(cb HitFunc) error {
	if db.m == nil {
		return ErrClosed
	}

	var id uint32
	for p := db.docsStart; p < db.docsEnd; {
		e, next, err := db.parseDoc(p)
		if err != nil {
			return err
		}
		if err := cb(id, e); err != nil {
			return err
		}
		p = next
		id++
	}
	return nil
}

// DocByID returns the document whose 0-based insertion ordinal is id,
// or ErrNotFound when the region ends first.
func (db *DB) DocByID(id uint32) (DocEntry, error) {
	if db.m == nil {
		return DocEntry{}, ErrClosed
	}

	c := db.cursor()
	return c.seek(id)
}

// docCursor resumes sequential parsing between positional lookups, so a
// batch of ascending ids costs one pass over the region.
type docCursor struct {
	db   *DB
	off  int
	next uint32 // ordinal of the record at off
}

func (db *DB) cursor() *docCursor {
	return &docCursor{db: db, off: db.docsStart}
}

func (c *docCursor) seek(id uint32) (DocEntry, error) {
	if id < c.next {
		return DocEntry{}, ErrNotFound
	}
	for c.off < c.db.docsEnd {
		e, next, err := c.db.parseDoc(c.off)
		if err != nil {
			return DocEntry{}, err
		}
		c.off = next
		c.next++
		if c.next-1 == id {
			return e, nil
		}
	}
	return DocEntry{}, ErrNotFound
}
