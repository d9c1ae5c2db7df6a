package lexso_test

import (
	"testing"

	"github.com/fwojciec/lexso"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(pos int, id, lemma, category string) *lexso.CatalogEntry {
	return &lexso.CatalogEntry{Position: pos, ID: id, Lemma: lemma, LexicalCategory: category}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("accepts the first lemma and category match", func(t *testing.T) {
		t.Parallel()

		entries := []*lexso.CatalogEntry{
			entry(0, "1", "bil", "verb"),
			entry(1, "2", "bil", "subst"),
			entry(2, "3", "bil", "subst"),
		}
		target := lexso.Lexeme{ID: "L1", Lemma: "bil", LexicalCategory: lexso.CategoryNoun}

		got := lexso.Match(target, entries)

		assert.Equal(t, lexso.Matched, got.Outcome)
		require.NotNil(t, got.Entry)
		assert.Same(t, entries[1], got.Entry)
		assert.Equal(t, 2, got.Candidates, "scanning stops at the accepted entry")
	})

	t.Run("is deterministic for a fixed input order", func(t *testing.T) {
		t.Parallel()

		entries := []*lexso.CatalogEntry{
			entry(0, "1", "bil", "subst"),
			entry(1, "2", "bil", "subst"),
		}
		target := lexso.Lexeme{ID: "L1", Lemma: "bil", LexicalCategory: lexso.CategoryNoun}

		for range 5 {
			got := lexso.Match(target, entries)
			assert.Equal(t, "1", got.Entry.ID)
		}
	})

	t.Run("reports lemma absent from catalog", func(t *testing.T) {
		t.Parallel()

		entries := []*lexso.CatalogEntry{entry(0, "1", "bil", "subst")}
		target := lexso.Lexeme{ID: "L1", Lemma: "båt", LexicalCategory: lexso.CategoryNoun}

		got := lexso.Match(target, entries)

		assert.Equal(t, lexso.NotFound, got.Outcome)
		assert.Equal(t, lexso.ReasonNotInDictionary, got.Reason)
		assert.Nil(t, got.Entry)
	})

	t.Run("reports category mismatch distinctly", func(t *testing.T) {
		t.Parallel()

		entries := []*lexso.CatalogEntry{entry(0, "1", "bil", "verb")}
		target := lexso.Lexeme{ID: "L1", Lemma: "bil", LexicalCategory: lexso.CategoryNoun}

		got := lexso.Match(target, entries)

		assert.Equal(t, lexso.NotFound, got.Outcome)
		assert.Equal(t, lexso.ReasonCategoryMismatch, got.Reason)
	})

	t.Run("compares lemmas case-sensitively", func(t *testing.T) {
		t.Parallel()

		entries := []*lexso.CatalogEntry{entry(0, "1", "Bil", "subst")}
		target := lexso.Lexeme{ID: "L1", Lemma: "bil", LexicalCategory: lexso.CategoryNoun}

		got := lexso.Match(target, entries)

		assert.Equal(t, lexso.ReasonNotInDictionary, got.Reason)
	})

	t.Run("collects unclassifiable entries and keeps scanning", func(t *testing.T) {
		t.Parallel()

		entries := []*lexso.CatalogEntry{
			entry(0, "1", "bil", "förkortning"),
			entry(1, "2", "bil", "(i sammansättn.)"),
			entry(2, "3", "bil", ""),
			entry(3, "4", "bil", "subst"),
		}
		target := lexso.Lexeme{ID: "L1", Lemma: "bil", LexicalCategory: lexso.CategoryNoun}

		got := lexso.Match(target, entries)

		assert.Equal(t, lexso.Matched, got.Outcome)
		assert.Equal(t, "4", got.Entry.ID)
		require.Len(t, got.Unclassified, 1)
		assert.Equal(t, "1", got.Unclassified[0].ID)
	})

	t.Run("matches affix target against hyphenated noun label", func(t *testing.T) {
		t.Parallel()

		entries := []*lexso.CatalogEntry{entry(0, "1", "-fil", "substantiv")}
		target := lexso.Lexeme{ID: "L1", Lemma: "-fil", LexicalCategory: lexso.CategoryAffix}

		got := lexso.Match(target, entries)

		assert.Equal(t, lexso.Matched, got.Outcome)
	})
}
