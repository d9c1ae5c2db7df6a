package reconcile_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/lexso"
	"github.com/fwojciec/lexso/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("reads entries in file order", func(t *testing.T) {
		t.Parallel()

		input := strings.Join([]string{
			`,bil,substantiv,,https://svenska.se/so/?id=O_0283-0242.Qqdq&pz=5`,
			`,bila,verb,2,https://svenska.se/so/?id=12345`,
			`,"så, att",konj,,https://svenska.se/so/?id=777`,
		}, "\n")

		entries, err := reconcile.ReadCatalog(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []*lexso.CatalogEntry{
			{Position: 0, ID: "O_1", Lemma: "bil", LexicalCategory: "substantiv", Number: 0},
			{Position: 1, ID: "12345", Lemma: "bila", LexicalCategory: "verb", Number: 2},
			{Position: 2, ID: "777", Lemma: "så, att", LexicalCategory: "konj", Number: 0},
		}, entries)
	})

	t.Run("rejects short rows", func(t *testing.T) {
		t.Parallel()

		_, err := reconcile.ReadCatalog(strings.NewReader(",bil,substantiv\n"))

		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(err))
		assert.Contains(t, lexso.ErrorMessage(err), "line 1")
	})

	t.Run("rejects non-numeric numbers", func(t *testing.T) {
		t.Parallel()

		_, err := reconcile.ReadCatalog(strings.NewReader(",bil,substantiv,x,https://svenska.se/so/?id=1\n"))

		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(err))
	})

	t.Run("rejects urls without id", func(t *testing.T) {
		t.Parallel()

		_, err := reconcile.ReadCatalog(strings.NewReader(",bil,substantiv,,https://svenska.se/so/?sok=bil\n"))

		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(err))
	})
	t.Run("rejects rows without lemma", func(t *testing.T) {
		t.Parallel()

		input := ",bil,substantiv,,https://svenska.se/so/?id=1\n,,verb,,https://svenska.se/so/?id=2\n"
		entries, err := reconcile.ReadCatalog(strings.NewReader(input))

		assert.Nil(t, entries)
		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(err))
		assert.Contains(t, lexso.ErrorMessage(err), "line 2")
		assert.Contains(t, lexso.ErrorMessage(err), "lemma required")
	})
}

func TestReadLexemes(t *testing.T) {
	t.Parallel()

	t.Run("reads bare and uri identifiers", func(t *testing.T) {
		t.Parallel()

		input := "L1\tbil\tQ1084\nhttp://www.wikidata.org/entity/L2\tbila\thttp://www.wikidata.org/entity/Q24905\nL3\tnågon\t\n"

		lexemes, err := reconcile.ReadLexemes(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []lexso.Lexeme{
			{ID: "L1", Lemma: "bil", LexicalCategory: lexso.CategoryNoun},
			{ID: "L2", Lemma: "bila", LexicalCategory: lexso.CategoryVerb},
			{ID: "L3", Lemma: "någon", LexicalCategory: lexso.CategoryUnknown},
		}, lexemes)
	})

	t.Run("rejects rows without lemma", func(t *testing.T) {
		t.Parallel()

		_, err := reconcile.ReadLexemes(strings.NewReader("L1\t\tQ1084\n"))

		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(err))
	})

	t.Run("rejects rows with missing columns", func(t *testing.T) {
		t.Parallel()

		_, err := reconcile.ReadLexemes(strings.NewReader("L1\tbil\n"))

		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(err))
	})
}
