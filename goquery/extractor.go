// Package goquery provides HTML parsing for dictionary pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lexso"
)

// Ensure Extractor implements lexso.ArticleExtractor at compile time.
var _ lexso.ArticleExtractor = (*Extractor)(nil)

// Extractor parses dictionary pages into articles.
// It assumes one fixed page layout and fails closed on deviations.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticles returns the page's articles in document order.
// A page may hold zero, one or several articles. Articles without
// superlemmas are dropped.
func (e *Extractor) ExtractArticles(html string) ([]*lexso.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, lexso.Errorf(lexso.EINVALID, "failed to parse HTML: %v", err)
	}

	var articles []*lexso.Article
	doc.Find(selectorArticle).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var article *lexso.Article
		if article, err = extractArticle(sel); err != nil {
			return false
		}
		if len(article.Lemmas) > 0 {
			articles = append(articles, article)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return articles, nil
}
