package mock

import "github.com/fwojciec/lexso"

var _ lexso.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of lexso.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticlesFn func(html string) ([]*lexso.Article, error)
}

func (e *ArticleExtractor) ExtractArticles(html string) ([]*lexso.Article, error) {
	return e.ExtractArticlesFn(html)
}

var _ lexso.SeenSet = (*SeenSet)(nil)

// SeenSet is a mock implementation of lexso.SeenSet.
type SeenSet struct {
	TestAndAddFn func(id string) bool
}

func (s *SeenSet) TestAndAdd(id string) bool {
	return s.TestAndAddFn(id)
}
