package lexso

import (
	"context"
	"net/url"
	"strings"
)

// DictionaryURL is the public dictionary's entry page.
const DictionaryURL = "https://svenska.se/so/"

// CatalogEntry is one line of the dictionary's word list.
type CatalogEntry struct {
	// Position is the entry's line index in the catalog file.
	// Matching scans entries in this order.
	Position        int    `json:"position"`
	ID              string `json:"id"`
	Lemma           string `json:"lemma"`
	LexicalCategory string `json:"lexicalCategory"`
	Number          int    `json:"number"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CatalogEntry) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "catalog entry id required")
	}
	if e.Lemma == "" {
		return Errorf(EINVALID, "catalog entry lemma required")
	}
	return nil
}

// URL returns the entry's page in the dictionary.
func (e *CatalogEntry) URL() string {
	return DictionaryURL + "?id=" + url.QueryEscape(e.ID)
}

// SearchURL returns a dictionary search for a lemma.
func SearchURL(lemma string) string {
	return DictionaryURL + "?sok=" + url.QueryEscape(lemma)
}

// CanonicalID normalises a catalog identifier. Identifiers containing an
// underscore are truncated after it and suffixed with "1", so
// "O_0283-0242" becomes "O_1".
func CanonicalID(id string) string {
	i := strings.Index(id, "_")
	if i < 0 {
		return id
	}
	return id[:i] + "_1"
}

// CatalogIDFromURL extracts the canonical identifier from the id query
// parameter of a detail-page URL.
func CatalogIDFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid catalog url %q: %v", rawURL, err)
	}
	id := u.Query().Get("id")
	if id == "" {
		return "", Errorf(EINVALID, "catalog url %q has no id parameter", rawURL)
	}
	return CanonicalID(id), nil
}

// CatalogService represents a service for storing the dictionary catalog.
type CatalogService interface {
	// CreateEntries stores entries in the given order.
	CreateEntries(ctx context.Context, entries []*CatalogEntry) error

	// FindEntries retrieves entries matching the filter in catalog order.
	FindEntries(ctx context.Context, filter CatalogFilter) ([]*CatalogEntry, error)

	// ReplaceEntries atomically replaces the whole catalog with entries.
	ReplaceEntries(ctx context.Context, entries []*CatalogEntry) error

	// DeleteEntries removes the whole catalog.
	DeleteEntries(ctx context.Context) error
}

// CatalogFilter represents a filter for FindEntries.
type CatalogFilter struct {
	Lemma *string `json:"lemma"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
