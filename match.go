package lexso

// MatchOutcome is the decision taken for one target lexeme.
type MatchOutcome int

const (
	// NotFound means no catalog entry matched both lemma and category.
	NotFound MatchOutcome = iota

	// Matched means the first entry matching lemma and category was accepted.
	Matched

	// AmbiguousSkipped means several candidates were equally good and none
	// was accepted. First-match-wins never produces it; policies that
	// require a unique candidate do.
	AmbiguousSkipped
)

func (o MatchOutcome) String() string {
	switch o {
	case NotFound:
		return "not found"
	case Matched:
		return "matched"
	case AmbiguousSkipped:
		return "ambiguous"
	}
	return "unknown"
}

// NotFoundReason tells the two NotFound cases apart.
type NotFoundReason int

const (
	// ReasonNone is used for outcomes other than NotFound.
	ReasonNone NotFoundReason = iota

	// ReasonNotInDictionary means the lemma does not occur in the catalog.
	ReasonNotInDictionary

	// ReasonCategoryMismatch means the lemma occurs but no entry's category matched.
	ReasonCategoryMismatch
)

func (r NotFoundReason) String() string {
	switch r {
	case ReasonNotInDictionary:
		return "not in dictionary"
	case ReasonCategoryMismatch:
		return "categories did not match"
	}
	return ""
}

// MatchResult is the result of Match.
type MatchResult struct {
	Outcome MatchOutcome
	Reason  NotFoundReason

	// Entry is the accepted entry when Outcome is Matched.
	Entry *CatalogEntry

	// Candidates counts the same-lemma entries inspected.
	Candidates int

	// Unclassified lists same-lemma entries whose category label matched no
	// rule. They were excluded from consideration and need human review.
	Unclassified []*CatalogEntry
}

// Match scans entries in order for the first one whose lemma equals the
// target's exactly and whose category classifies to the target's category.
// Entries after an accepted match are never inspected.
func Match(target Lexeme, entries []*CatalogEntry) MatchResult {
	var result MatchResult
	for _, e := range entries {
		if e.Lemma != target.Lemma {
			continue
		}
		result.Candidates++

		c := Classify(e.LexicalCategory, e.Lemma)
		switch c.Status {
		case Unclassifiable:
			result.Unclassified = append(result.Unclassified, e)
			continue
		case Classified:
		default:
			continue
		}

		if c.Category == target.LexicalCategory {
			result.Outcome = Matched
			result.Entry = e
			return result
		}
	}

	result.Outcome = NotFound
	if result.Candidates == 0 {
		result.Reason = ReasonNotInDictionary
	} else {
		result.Reason = ReasonCategoryMismatch
	}
	return result
}
