package lexso

import "strings"

// LexicalCategory is a canonical grammatical category, identified by its
// knowledge-base item ID.
type LexicalCategory string

// Canonical lexical categories.
const (
	CategoryUnknown      LexicalCategory = ""
	CategoryVerb         LexicalCategory = "Q24905"
	CategoryNoun         LexicalCategory = "Q1084"
	CategoryAffix        LexicalCategory = "Q62155"
	CategoryAdjective    LexicalCategory = "Q34698"
	CategoryAdverb       LexicalCategory = "Q380057"
	CategoryConjunction  LexicalCategory = "Q36484"
	CategoryInterjection LexicalCategory = "Q83034"
	CategoryPreposition  LexicalCategory = "Q4833830"
	CategoryNumeral      LexicalCategory = "Q63116"
	CategoryArticle      LexicalCategory = "Q103184"
	CategoryPronoun      LexicalCategory = "Q36224"
)

func (c LexicalCategory) String() string { return string(c) }

// ClassificationStatus describes how a category label was resolved.
type ClassificationStatus int

const (
	// Classified means the label mapped to a canonical category.
	Classified ClassificationStatus = iota

	// NoCategory means the entry asserts no category at all.
	NoCategory

	// Ignorable means the label marks a cross-reference sub-entry.
	Ignorable

	// Unclassifiable means no rule matched the label.
	// The rule table needs extending when this occurs.
	Unclassifiable
)

func (s ClassificationStatus) String() string {
	switch s {
	case Classified:
		return "classified"
	case NoCategory:
		return "no category"
	case Ignorable:
		return "ignorable"
	case Unclassifiable:
		return "unclassifiable"
	}
	return "unknown"
}

// Classification is the result of Classify.
type Classification struct {
	Category LexicalCategory
	Status   ClassificationStatus
}

// categoryRule maps labels accepted by match to a category. Rules without a
// category function resolve to their status instead.
type categoryRule struct {
	match    func(label string) bool
	category func(lemma string) LexicalCategory
	status   ClassificationStatus
}

func contains(sub string) func(string) bool {
	return func(label string) bool { return strings.Contains(label, sub) }
}

func equalsAny(values ...string) func(string) bool {
	return func(label string) bool {
		for _, v := range values {
			if label == v {
				return true
			}
		}
		return false
	}
}

func always(c LexicalCategory) func(string) LexicalCategory {
	return func(string) LexicalCategory { return c }
}

// categoryRules is evaluated top to bottom; the first matching rule wins.
var categoryRules = []categoryRule{
	{match: contains("verb"), category: always(CategoryVerb)},
	{match: contains("subst"), category: nounOrAffix},
	{match: contains("adj"), category: always(CategoryAdjective)},
	{match: contains("adv"), category: always(CategoryAdverb)},
	{match: contains("konj"), category: always(CategoryConjunction)},
	{match: contains("interj"), category: always(CategoryInterjection)},
	{match: contains("prep"), category: always(CategoryPreposition)},
	{match: contains("räkn"), category: always(CategoryNumeral)},
	{match: contains("artikel"), category: always(CategoryArticle)},
	{match: contains("pron"), category: always(CategoryPronoun)},
	{match: equalsAny("prefix", "suffix", "affix"), category: always(CategoryAffix)},
	// Sub-entries such as "(i sammansättn.)" and compound elements.
	{match: contains("("), status: Ignorable},
	{match: contains("ssgled"), status: Ignorable},
}

// nounOrAffix handles affixes like "-fil" that the dictionary labels as nouns.
func nounOrAffix(lemma string) LexicalCategory {
	if strings.Contains(lemma, "-") {
		return CategoryAffix
	}
	return CategoryNoun
}

// Classify maps a free-text dictionary category label to a canonical
// category. The lemma is only consulted to tell affixes from nouns.
func Classify(label, lemma string) Classification {
	if label == "" {
		return Classification{Status: NoCategory}
	}
	for _, rule := range categoryRules {
		if !rule.match(label) {
			continue
		}
		if rule.category == nil {
			return Classification{Status: rule.status}
		}
		return Classification{Category: rule.category(lemma), Status: Classified}
	}
	return Classification{Status: Unclassifiable}
}
