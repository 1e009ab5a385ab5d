// File ingestion: each file becomes one document named after its path,
// with an empty description and its content tokenized.
package main

import (
	"bufio"
	"log"
	"os"

	"github.com/omar-polo/ftsearch"
)

// idxFiles indexes the files in args, or one path per line from stdin
// when args is empty. Unreadable files are reported and skipped; the
// returned flag records that at least one input failed.
func idxFiles(dict *ftsearch.Dictionary, args []string) ([]ftsearch.DocEntry, bool) {
	var docs []ftsearch.DocEntry
	failed := false

	add := func(path string) {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("can't read %s: %v", path, err)
			failed = true
			return
		}
		id := uint32(len(docs))
		docs = append(docs, ftsearch.DocEntry{Name: path})
		dict.AddWords(ftsearch.Tokenize(string(data)), id)
	}

	if len(args) > 0 {
		for _, path := range args {
			add(path)
		}
		return docs, failed
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
	return docs, failed
}
