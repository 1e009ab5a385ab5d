// ftsearch queries a full-text search database.
//
//	usage: ftsearch [-j] [-d dbpath] -l | -s | -p id | query
//
// -l lists every document, -s prints statistics, -p prints the document
// with the given id, and a bare argument runs a full-text query. -j
// switches the output to JSON, one object per line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"
	"github.com/omar-polo/ftsearch"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ftsearch [-j] [-d dbpath] -l | -s | -p id | query")
	os.Exit(1)
}

// hit is the JSON shape of one result document.
type hit struct {
	ID uint32 `json:"id"`
	ftsearch.DocEntry
}

func main() {
	log.SetPrefix("ftsearch: ")
	log.SetFlags(0)

	dbpath := flag.String("d", "db", "database path")
	list := flag.Bool("l", false, "list all documents")
	stats := flag.Bool("s", false, "print database statistics")
	docid := flag.Int("p", -1, "print the document with the given id")
	jsonOut := flag.Bool("j", false, "emit JSON")
	flag.Usage = usage
	flag.Parse()

	if *list && *stats {
		usage()
	}

	if err := ftsearch.Unveil(*dbpath, "r"); err != nil {
		log.Fatalf("unveil: %v", err)
	}

	db, err := ftsearch.Open(*dbpath)
	if err != nil {
		log.Fatalf("can't open database: %v", err)
	}
	defer db.Close()

	// The mapping is established; nothing but stdio is needed now.
	if err := ftsearch.Pledge("stdio"); err != nil {
		log.Fatalf("pledge: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	print := func(id uint32, doc ftsearch.DocEntry) error {
		if *jsonOut {
			return enc.Encode(hit{ID: id, DocEntry: doc})
		}
		_, err := fmt.Printf("%-18s %s\n", doc.Name, doc.Descr)
		return err
	}

	switch {
	case *list:
		if err := db.ListAll(print); err != nil {
			log.Fatalf("list: %v", err)
		}
	case *stats:
		st, err := db.Stats()
		if err != nil {
			log.Fatalf("stats: %v", err)
		}
		if *jsonOut {
			enc.Encode(st)
			return
		}
		fmt.Printf("unique words = %d\n", st.Words)
		fmt.Printf("documents    = %d\n", st.Docs)
		fmt.Printf("longest word = %s\n", st.LongestWord)
		fmt.Printf("most popular = %s (%d)\n", st.MostPopular, st.MostPopularDocs)
		fmt.Printf("checksum     = %s\n", st.Checksum)
	case *docid >= 0:
		doc, err := db.DocByID(uint32(*docid))
		if err != nil {
			log.Fatalf("failed to fetch document #%d: %v", *docid, err)
		}
		print(uint32(*docid), doc)
	default:
		if flag.NArg() != 1 {
			usage()
		}
		if err := db.FTS(flag.Arg(0), print); err != nil {
			log.Fatalf("query: %v", err)
		}
	}
}
