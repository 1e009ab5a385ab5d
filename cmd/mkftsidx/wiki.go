// Wikipedia abstract dump ingestion. The dump is a stream of <doc>
// elements with <title>, <url> and <abstract> children; the URL becomes
// the document name and the title (minus the "Wikipedia: " prefix) the
// description. Dumps are distributed gzipped, so a .gz path is
// decompressed on the fly.
package main

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/omar-polo/ftsearch"
)

type wikiDoc struct {
	Title    string `xml:"title"`
	URL      string `xml:"url"`
	Abstract string `xml:"abstract"`
}

func idxWiki(dict *ftsearch.Dictionary, args []string) ([]ftsearch.DocEntry, error) {
	if len(args) != 1 {
		return nil, errors.New("missing path to xml file")
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	var docs []ftsearch.DocEntry
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "doc" {
			continue
		}

		var d wikiDoc
		if err := dec.DecodeElement(&d, &se); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		title := strings.TrimPrefix(d.Title, "Wikipedia: ")
		id := uint32(len(docs))
		docs = append(docs, ftsearch.DocEntry{
			Name:  d.URL,
			Descr: title,
		})
		dict.AddWords(ftsearch.Tokenize(title+" "+d.Abstract), id)

		if len(docs)%1000 == 0 {
			fmt.Fprintf(os.Stderr, "=> %d\n", len(docs))
		}
	}
	return docs, nil
}
