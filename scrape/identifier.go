package scrape

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/lexso"
)

// Identifier is a dictionary page to fetch, as listed in the knowledge
// base's export of foreign identifiers.
type Identifier struct {
	ID    string
	Entry string
}

// URL returns the page's address.
func (i Identifier) URL() string {
	return lexso.DictionaryURL + "?id=" + i.ID
}

// ReadIdentifiers parses tab-separated rows of (id, entry). Extra columns
// are ignored. Repeated IDs keep their first row.
func ReadIdentifiers(r io.Reader) ([]Identifier, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	seen := make(map[string]bool)
	var ids []Identifier
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, lexso.Errorf(lexso.EINVALID, "read identifiers: %v", err)
		}

		line, _ := cr.FieldPos(0)
		if len(record) < 2 {
			return nil, lexso.Errorf(lexso.EINVALID, "identifiers line %d: want id and entry", line)
		}
		id := strings.TrimSpace(record[0])
		if id == "" {
			return nil, lexso.Errorf(lexso.EINVALID, "identifiers line %d: id required", line)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, Identifier{ID: id, Entry: strings.TrimSpace(record[1])})
	}
	return ids, nil
}
