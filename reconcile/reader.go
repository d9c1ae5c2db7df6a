package reconcile

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/lexso"
)

// Catalog file columns. The first column is unused.
const (
	catalogColLemma    = 1
	catalogColCategory = 2
	catalogColNumber   = 3
	catalogColURL      = 4
	catalogCols        = 5
)

// ReadCatalog parses the dictionary word list, a comma-separated file with
// the columns (unused, lemma, category, number, url). Entries are returned
// in file order with Position set to their line index. An empty number
// column means 0. Every entry is validated, so a bad row fails the whole
// read before anything is stored.
func ReadCatalog(r io.Reader) ([]*lexso.CatalogEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var entries []*lexso.CatalogEntry
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, lexso.Errorf(lexso.EINVALID, "read catalog: %v", err)
		}

		line, _ := cr.FieldPos(0)
		if len(record) < catalogCols {
			return nil, lexso.Errorf(lexso.EINVALID, "catalog line %d: want %d columns, got %d", line, catalogCols, len(record))
		}

		number := 0
		if s := strings.TrimSpace(record[catalogColNumber]); s != "" {
			if number, err = strconv.Atoi(s); err != nil {
				return nil, lexso.Errorf(lexso.EINVALID, "catalog line %d: invalid number %q", line, s)
			}
		}

		id, err := lexso.CatalogIDFromURL(record[catalogColURL])
		if err != nil {
			return nil, lexso.Errorf(lexso.EINVALID, "catalog line %d: %s", line, lexso.ErrorMessage(err))
		}

		e := &lexso.CatalogEntry{
			Position:        len(entries),
			ID:              id,
			Lemma:           record[catalogColLemma],
			LexicalCategory: record[catalogColCategory],
			Number:          number,
		}
		if err := e.Validate(); err != nil {
			return nil, lexso.Errorf(lexso.EINVALID, "catalog line %d: %s", line, lexso.ErrorMessage(err))
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// entityPrefix is stripped from identifiers exported as entity URIs.
const entityPrefix = "http://www.wikidata.org/entity/"

// ReadLexemes parses tab-separated rows of (lexeme id, lemma, category item
// id). Identifiers may be bare or entity URIs. An empty category is kept as
// CategoryUnknown.
func ReadLexemes(r io.Reader) ([]lexso.Lexeme, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var lexemes []lexso.Lexeme
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, lexso.Errorf(lexso.EINVALID, "read lexemes: %v", err)
		}

		line, _ := cr.FieldPos(0)
		if len(record) < 3 {
			return nil, lexso.Errorf(lexso.EINVALID, "lexemes line %d: want id, lemma and category", line)
		}

		l := lexso.Lexeme{
			ID:              strings.TrimPrefix(strings.TrimSpace(record[0]), entityPrefix),
			Lemma:           record[1],
			LexicalCategory: lexso.LexicalCategory(strings.TrimPrefix(strings.TrimSpace(record[2]), entityPrefix)),
		}
		if err := l.Validate(); err != nil {
			return nil, lexso.Errorf(lexso.EINVALID, "lexemes line %d: %s", line, lexso.ErrorMessage(err))
		}
		lexemes = append(lexemes, l)
	}
	return lexemes, nil
}
