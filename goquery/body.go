package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lexso"
)

const selectorArticleBody = "[itemprop='articleBody']"

// ArticleBody strips a fetched page down to its article bodies so that
// archives hold only the markup the extractor reads.
// Returns ENOTFOUND if the page has no article body.
func ArticleBody(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", lexso.Errorf(lexso.EINVALID, "failed to parse HTML: %v", err)
	}

	bodies := doc.Find(selectorArticleBody)
	if bodies.Length() == 0 {
		return "", lexso.Errorf(lexso.ENOTFOUND, "no article body found")
	}

	var b strings.Builder
	var outerErr error
	bodies.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var s string
		if s, outerErr = goquery.OuterHtml(sel); outerErr != nil {
			return false
		}
		b.WriteString(s)
		return true
	})
	if outerErr != nil {
		return "", lexso.Errorf(lexso.EINTERNAL, "failed to render article body: %v", outerErr)
	}

	return b.String(), nil
}
