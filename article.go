package lexso

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Article is a dictionary article: a publication year and the headwords
// printed together under it.
type Article struct {
	YearOfPublication string        `json:"yearOfPublication"`
	Lemmas            []*Superlemma `json:"lemmas"`
}

// Key returns the article's structural identity: the IDs of its
// superlemmas concatenated in order.
func (a *Article) Key() string {
	var b strings.Builder
	for _, s := range a.Lemmas {
		b.WriteString(s.ID)
	}
	return b.String()
}

// Hash returns a 64-bit hash of Key.
func (a *Article) Hash() uint64 {
	return xxhash.Sum64String(a.Key())
}

// Equal reports whether two articles list the same superlemmas in the same order.
func (a *Article) Equal(other *Article) bool {
	if len(a.Lemmas) != len(other.Lemmas) {
		return false
	}
	for i := range a.Lemmas {
		if !a.Lemmas[i].Equal(other.Lemmas[i]) {
			return false
		}
	}
	return true
}

// ArticleExtractor parses a whole page into articles.
type ArticleExtractor interface {
	// ExtractArticles returns the page's articles in document order.
	// Articles without superlemmas are dropped.
	// Returns EMALFORMED if identity-bearing markup is missing.
	ExtractArticles(html string) ([]*Article, error)
}
