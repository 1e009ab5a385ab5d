// Database serialization.
//
// Create writes the four sections in order with a two-pass header
// fix-up: the document-region offset is reserved up front and patched
// once the final offset is known. All integers are little-endian
// regardless of host; cross-endian files from other producers are not
// supported.
package ftsearch

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"strings"
)

// leWriter buffers little-endian writes and tracks the output offset.
// The first error sticks; callers check it once at flush.
type leWriter struct {
	w   *bufio.Writer
	off int64
	err error
}

func (w *leWriter) bytes(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.off += int64(n)
	w.err = err
}

func (w *leWriter) u16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.bytes(b[:])
}

func (w *leWriter) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.bytes(b[:])
}

func (w *leWriter) i64(v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	w.bytes(b[:])
}

func (w *leWriter) flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// Create serializes the dictionary and the document list to w as a
// self-contained database image. Documents are written in slice order,
// which must match the ids fed to the dictionary. On error the sink
// holds a partial image; removing it is the caller's job.
func Create(w io.WriteSeeker, dict *Dictionary, docs []DocEntry) error {
	if uint64(len(dict.entries)) > math.MaxUint32 {
		return ErrTooManyWords
	}
	if len(docs) > math.MaxInt32 {
		return ErrTooManyDocs
	}
	for _, d := range docs {
		if err := d.validate(); err != nil {
			return err
		}
	}

	lw := &leWriter{w: bufio.NewWriter(w)}

	lw.u32(FormatVersion)
	lw.i64(0) // docs_offset, patched below
	lw.u32(uint32(len(dict.entries)))

	// Word index. Posting offsets are computed with a cursor that
	// starts where the index ends and advances by the serialized size
	// of each list.
	pos := headerSize + int64(len(dict.entries))*idxEntrySize
	for _, e := range dict.entries {
		var slot [MaxWordLen]byte
		if len(e.word) >= MaxWordLen {
			return ErrWordTooLong
		}
		copy(slot[:], e.word)
		lw.bytes(slot[:])
		lw.i64(pos)
		pos += 4 * int64(1+len(e.ids))
	}

	// Posting lists, in index order.
	for _, e := range dict.entries {
		lw.u32(uint32(len(e.ids)))
		for _, id := range e.ids {
			lw.u32(id)
		}
	}

	docsOff := lw.off

	// Document region.
	for _, d := range docs {
		lw.u16(uint16(len(d.Name)))
		lw.bytes([]byte(d.Name))
		lw.bytes([]byte{0})
		lw.u16(uint16(len(d.Descr)))
		lw.bytes([]byte(d.Descr))
		lw.bytes([]byte{0})
	}

	if err := lw.flush(); err != nil {
		return err
	}

	// Patch the reserved docs_offset.
	if _, err := w.Seek(4, io.SeekStart); err != nil {
		return err
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(docsOff))
	if _, err := w.Write(b[:]); err != nil {
		return err
	}
	return nil
}

func (d DocEntry) validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}
	if len(d.Name) > math.MaxUint16 || len(d.Descr) > math.MaxUint16 {
		return ErrFieldTooLong
	}
	if strings.IndexByte(d.Name, 0) >= 0 ||
		strings.IndexByte(d.Descr, 0) >= 0 {
		return ErrInvalidField
	}
	return nil
}
