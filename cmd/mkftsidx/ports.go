// sqlports ingestion: each row of the portsq table becomes a document
// named after the package stem, with the one-line comment as the
// description. The long description is tokenized too so packages are
// findable by it, but it is not stored.
package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/omar-polo/ftsearch"
	_ "modernc.org/sqlite"
)

const sqlportsPath = "/usr/local/share/sqlports"

const (
	qNum = `select count(*) from portsq`
	qAll = `select pkgstem, comment, descr_contents from portsq`
)

func idxPorts(dict *ftsearch.Dictionary, args []string) ([]ftsearch.DocEntry, error) {
	path := sqlportsPath
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		usage()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open %s: %w", path, err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(qNum).Scan(&n); err != nil {
		return nil, fmt.Errorf("querying %s: %w", path, err)
	}
	if n == 0 {
		return nil, errors.New("empty portsq table")
	}

	rows, err := db.Query(qAll)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", path, err)
	}
	defer rows.Close()

	docs := make([]ftsearch.DocEntry, 0, n)
	for rows.Next() {
		var stem, comment, descr sql.NullString
		if err := rows.Scan(&stem, &comment, &descr); err != nil {
			return nil, err
		}

		id := uint32(len(docs))
		docs = append(docs, ftsearch.DocEntry{
			Name:  stem.String,
			Descr: comment.String,
		})

		text := stem.String + " " + comment.String + " " + descr.String
		dict.AddWords(ftsearch.Tokenize(text), id)
	}
	return docs, rows.Err()
}
