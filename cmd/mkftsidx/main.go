// mkftsidx builds a full-text search database.
//
//	usage: mkftsidx [-o dbpath] [-m f|p|w] [file ...]
//
// Mode f indexes the files named on the command line, or one path per
// line from standard input. Mode p indexes the sqlports package catalog.
// Mode w indexes a Wikipedia abstract dump (optionally gzipped).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/omar-polo/ftsearch"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mkftsidx [-o dbpath] [-m f|p|w] [file ...]")
	os.Exit(1)
}

func main() {
	log.SetPrefix("mkftsidx: ")
	log.SetFlags(0)

	dbpath := flag.String("o", "db", "output database path")
	mode := flag.String("m", "p", "ingest mode: f files, p ports catalog, w wiki dump")
	flag.Usage = usage
	flag.Parse()

	if err := ftsearch.Pledge("stdio rpath wpath cpath flock"); err != nil {
		log.Fatalf("pledge: %v", err)
	}

	var (
		dict   ftsearch.Dictionary
		docs   []ftsearch.DocEntry
		failed bool
		err    error
	)

	switch *mode {
	case "f":
		docs, failed = idxFiles(&dict, flag.Args())
	case "p":
		docs, err = idxPorts(&dict, flag.Args())
	case "w":
		docs, err = idxWiki(&dict, flag.Args())
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*dbpath)
	if err != nil {
		log.Fatalf("can't create %s: %v", *dbpath, err)
	}
	if err := ftsearch.Create(f, &dict, docs); err != nil {
		f.Close()
		os.Remove(*dbpath)
		log.Fatalf("writing %s: %v", *dbpath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(*dbpath)
		log.Fatalf("writing %s: %v", *dbpath, err)
	}

	if failed {
		os.Exit(1)
	}
}
