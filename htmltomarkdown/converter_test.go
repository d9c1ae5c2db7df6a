package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/lexso"
	"github.com/fwojciec/lexso/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements lexso.Converter at compile time.
var _ lexso.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("renders article text", func(t *testing.T) {
		t.Parallel()

		html := `<div class="artikel so">
<div class="superlemma" id="snr183635">
<span class="orto">honung</span>
<div class="ordklass">substantiv</div>
<p><span class="kbetydelse">söt, trögflytande massa som bin framställer</span></p>
</div>
</div>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "honung")
		assert.Contains(t, md, "substantiv")
		assert.Contains(t, md, "söt, trögflytande massa som bin framställer")
	})

	t.Run("keeps emphasis", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p><b>len</b> <i>adj.</i></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**len**")
		assert.Contains(t, md, "*adj.*")
	})

	t.Run("keeps cross-reference links", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p><a href="?id=inr55">len i mun</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[len i mun](?id=inr55)")
	})

	t.Run("removes soft hyphens", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("<p>barn\u00adrumpa</p>")

		require.NoError(t, err)
		assert.Contains(t, md, "barnrumpa")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		require.Error(t, err)
		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(err))
	})
}
