// Benchmarks over a synthetic database.
package ftsearch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// benchDB builds a database of n documents sharing a pool of words.
func benchDB(b *testing.B, n int) *DB {
	b.Helper()

	var dict Dictionary
	docs := make([]DocEntry, n)
	for i := range docs {
		name := fmt.Sprintf("doc%d", i)
		descr := fmt.Sprintf("common filler w%d w%d", i%100, i%7)
		docs[i] = DocEntry{Name: name, Descr: descr}
		dict.AddWords(Tokenize(name+" "+descr), uint32(i))
	}

	path := filepath.Join(b.TempDir(), "db")
	f, err := os.Create(path)
	if err != nil {
		b.Fatalf("create: %v", err)
	}
	if err := Create(f, &dict, docs); err != nil {
		b.Fatalf("Create: %v", err)
	}
	if err := f.Close(); err != nil {
		b.Fatalf("close: %v", err)
	}

	db, err := Open(path)
	if err != nil {
		b.Fatalf("Open: %v", err)
	}
	b.Cleanup(func() { db.Close() })
	return db
}

func BenchmarkWordDocs(b *testing.B) {
	db := benchDB(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := db.WordDocs("common"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWordDocsMiss(b *testing.B) {
	db := benchDB(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := db.WordDocs("absent"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFTS(b *testing.B) {
	db := benchDB(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err := db.FTS("common w3", func(uint32, DocEntry) error { return nil })
		if err != nil {
			b.Fatal(err)
		}
	}
}
