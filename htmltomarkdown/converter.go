// Package htmltomarkdown renders archived dictionary pages as Markdown so a
// reviewer can read an article's lemma variants, category labels and idiom
// links in a terminal. The show command uses it when a page extracts
// unexpectedly or a category label has no mapping yet.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/lexso"
)

var _ lexso.Converter = (*Converter)(nil)

// Converter turns the markup of one archived article page into Markdown.
// Idiom cross references keep their relative "?id=" targets so they can be
// matched against extracted idiom ids.
type Converter struct {
	md *converter.Converter
}

// NewConverter returns a Converter using the base and CommonMark rules.
// Dictionary pages carry no tables worth reviewing.
func NewConverter() *Converter {
	md := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{md: md}
}

// Convert renders an article page. The dictionary marks hyphenation points
// in lemmas with soft hyphens; they are dropped so lemmas read and search
// as they are stored in the catalog.
func (c *Converter) Convert(page string) (string, error) {
	if strings.TrimSpace(page) == "" {
		return "", lexso.Errorf(lexso.EINVALID, "empty article page")
	}

	md, err := c.md.ConvertString(page)
	if err != nil {
		return "", lexso.Errorf(lexso.EMALFORMED, "render article: %v", err)
	}

	return strings.ReplaceAll(md, "\u00ad", ""), nil
}
