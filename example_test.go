package ftsearch_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/omar-polo/ftsearch"
)

// Build a two-document database, then run a query against it.
func Example() {
	dir, err := os.MkdirTemp("", "ftsearch")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "db")

	docs := []ftsearch.DocEntry{
		{Name: "alpha", Descr: "the quick brown fox"},
		{Name: "beta", Descr: "the lazy dog"},
	}

	var dict ftsearch.Dictionary
	for i, d := range docs {
		dict.AddWords(ftsearch.Tokenize(d.Name+" "+d.Descr), uint32(i))
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := ftsearch.Create(f, &dict, docs); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	db, err := ftsearch.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	err = db.FTS("the fox", func(id uint32, doc ftsearch.DocEntry) error {
		fmt.Printf("%s: %s\n", doc.Name, doc.Descr)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	// Output: alpha: the quick brown fox
}
