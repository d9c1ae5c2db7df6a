package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lexso"
)

// CSS selectors for the dictionary page layout.
const (
	selectorArticle       = "div.artikel.so"
	selectorYear          = "span.tryck"
	selectorSuperlemma    = "div.superlemma"
	selectorLemvar        = "div.lemvar"
	selectorLemvarHead    = "span.lemvarhuvud"
	selectorOrthography   = "span.orto"
	selectorInflection    = "span.bojning_inline"
	selectorInflectionVal = "span.bojning"
	selectorHyphenation   = "span.avstav"
	selectorCategory      = "div.ordklass"
	selectorAudio         = "a.ljudfil"
	selectorEtymology     = "div.etymologi"
	selectorEtymologyVal  = "span.fb"
	selectorLexem         = "div.lexem"
	selectorKernel        = "span.kbetydelse"
	selectorSeeAlso       = "a.hvtag"
	selectorIdiom         = "div.idiom"
	selectorPhrase        = "span.fras"
	selectorIdiomDef      = "span.idef"
	selectorExample       = "span.syntex"
	selectorLink          = "a[href]"
)

const yearLabel = "publicerad:"

// childText returns the trimmed text of the first descendant matching
// selector, or "" if there is none.
func childText(sel *goquery.Selection, selector string) string {
	child := sel.Find(selector).First()
	if child.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func attrID(sel *goquery.Selection) string {
	v, _ := sel.Attr("id")
	return strings.TrimSpace(v)
}

func extractInflection(sel *goquery.Selection) lexso.Inflection {
	return lexso.NewInflection(attrID(sel), childText(sel, selectorInflectionVal))
}

// extractLemvar requires the headword marker and its identifier.
func extractLemvar(sel *goquery.Selection) (lexso.Lemvar, error) {
	head := sel.Find(selectorLemvarHead).First()
	if head.Length() == 0 {
		return lexso.Lemvar{}, lexso.Errorf(lexso.EMALFORMED, "lemvar has no headword marker")
	}
	headID := attrID(head)
	if headID == "" {
		return lexso.Lemvar{}, lexso.Errorf(lexso.EMALFORMED, "lemvar headword marker has no id")
	}

	var inflections []lexso.Inflection
	if infl := sel.Find(selectorInflection).First(); infl.Length() > 0 {
		inflections = append(inflections, extractInflection(infl))
	}

	return lexso.NewLemvar(headID, childText(sel, selectorOrthography), inflections), nil
}

// extractPronunciation reads the audio id from the player's onclick
// handler, e.g. onclick="playAudio('honung_1')". Older layouts have no
// player and yield nil.
func extractPronunciation(sel *goquery.Selection) (*lexso.Pronunciation, error) {
	audio := sel.Find(selectorAudio).First()
	if audio.Length() == 0 {
		return nil, nil
	}
	onclick, ok := audio.Attr("onclick")
	if !ok {
		return nil, nil
	}
	fields := strings.Split(onclick, "'")
	if len(fields) < 2 || fields[1] == "" {
		return nil, lexso.Errorf(lexso.EMALFORMED, "audio handler %q has no quoted id", onclick)
	}
	return lexso.NewPronunciation(fields[1]), nil
}

func extractKernel(sel *goquery.Selection) lexso.Kernel {
	return lexso.NewKernel(attrID(sel), strings.TrimSpace(sel.Text()))
}

func extractEtymology(sel *goquery.Selection) lexso.Etymology {
	return lexso.NewEtymology(attrID(sel), childText(sel, selectorEtymologyVal))
}

func extractSeeAlso(sel *goquery.Selection) lexso.SeeAlso {
	return lexso.NewSeeAlso(attrID(sel), strings.TrimSpace(sel.Text()))
}

func extractSentence(sel *goquery.Selection) lexso.Sentence {
	return lexso.NewSentence(attrID(sel), strings.TrimSpace(sel.Text()))
}

// extractIdiom requires an id since idioms are deduplicated by it.
func extractIdiom(sel *goquery.Selection) (lexso.Idiom, error) {
	idiomID := attrID(sel)
	if idiomID == "" {
		return lexso.Idiom{}, lexso.Errorf(lexso.EMALFORMED, "idiom has no id")
	}
	return lexso.NewIdiom(
		idiomID,
		childText(sel, selectorPhrase),
		childText(sel, selectorIdiomDef),
		childText(sel, selectorExample),
		sel.Find(selectorLink).Length() > 0,
	), nil
}

// extractLexem returns nil when the superlemma has no sense.
func extractLexem(sel *goquery.Selection) (*lexso.Lexem, error) {
	container := sel.Find(selectorLexem).First()
	if container.Length() == 0 {
		return nil, nil
	}

	lexem := lexso.NewLexem(attrID(container))

	container.Find(selectorKernel).Each(func(_ int, s *goquery.Selection) {
		lexem.Kernels = append(lexem.Kernels, extractKernel(s))
	})
	container.Find(selectorSeeAlso).Each(func(_ int, s *goquery.Selection) {
		lexem.SeeAlsos = append(lexem.SeeAlsos, extractSeeAlso(s))
	})

	var err error
	container.Find(selectorIdiom).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var idiom lexso.Idiom
		if idiom, err = extractIdiom(s); err != nil {
			return false
		}
		lexem.Idioms = append(lexem.Idioms, idiom)
		return true
	})
	if err != nil {
		return nil, err
	}

	// Examples inside idioms belong to the idiom.
	container.Find(selectorExample).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered(selectorIdiom).Length() > 0 {
			return
		}
		lexem.Sentences = append(lexem.Sentences, extractSentence(s))
	})

	return lexem, nil
}

// extractSuperlemma builds one headword entry. A missing id or lemvar is fatal.
func extractSuperlemma(sel *goquery.Selection) (*lexso.Superlemma, error) {
	superID := attrID(sel)
	if superID == "" {
		return nil, lexso.Errorf(lexso.EMALFORMED, "superlemma has no id")
	}

	container := sel.Find(selectorLemvar).First()
	if container.Length() == 0 {
		return nil, lexso.Errorf(lexso.EMALFORMED, "superlemma %s has no lemvar", superID)
	}
	lemvar, err := extractLemvar(container)
	if err != nil {
		return nil, lexso.Errorf(lexso.EMALFORMED, "superlemma %s: %s", superID, lexso.ErrorMessage(err))
	}

	s := lexso.NewSuperlemma(superID, lemvar)
	s.Hyphenation = childText(sel, selectorHyphenation)
	s.LexicalCategory = childText(sel, selectorCategory)

	if s.Pronunciation, err = extractPronunciation(sel); err != nil {
		return nil, lexso.Errorf(lexso.EMALFORMED, "superlemma %s: %s", superID, lexso.ErrorMessage(err))
	}
	if s.Lexem, err = extractLexem(sel); err != nil {
		return nil, lexso.Errorf(lexso.EMALFORMED, "superlemma %s: %s", superID, lexso.ErrorMessage(err))
	}
	sel.Find(selectorEtymology).Each(func(_ int, e *goquery.Selection) {
		s.Etymologies = append(s.Etymologies, extractEtymology(e))
	})

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func extractArticle(sel *goquery.Selection) (*lexso.Article, error) {
	year := strings.TrimSpace(strings.ReplaceAll(childText(sel, selectorYear), yearLabel, ""))
	article := &lexso.Article{YearOfPublication: year, Lemmas: []*lexso.Superlemma{}}

	var err error
	sel.Find(selectorSuperlemma).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var lemma *lexso.Superlemma
		if lemma, err = extractSuperlemma(s); err != nil {
			return false
		}
		article.Lemmas = append(article.Lemmas, lemma)
		return true
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}
