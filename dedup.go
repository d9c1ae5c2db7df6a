package lexso

// Superlemmas flattens the superlemmas of all articles in order.
func Superlemmas(articles []*Article) []*Superlemma {
	var out []*Superlemma
	for _, a := range articles {
		out = append(out, a.Lemmas...)
	}
	return out
}

// Idioms flattens the idioms reachable from the superlemmas' senses in order.
func Idioms(superlemmas []*Superlemma) []Idiom {
	var out []Idiom
	for _, s := range superlemmas {
		if s.Lexem == nil {
			continue
		}
		out = append(out, s.Lexem.Idioms...)
	}
	return out
}

// DedupSuperlemmas keeps the first superlemma seen for each ID and preserves
// input order. Later duplicates are dropped even when their content differs.
func DedupSuperlemmas(superlemmas []*Superlemma) []*Superlemma {
	seen := make(map[string]*Superlemma, len(superlemmas))
	out := make([]*Superlemma, 0, len(superlemmas))
	for _, s := range superlemmas {
		if _, ok := seen[s.ID]; ok {
			continue
		}
		seen[s.ID] = s
		out = append(out, s)
	}
	return out
}

// DedupIdioms keeps the first idiom seen for each ID and preserves input order.
func DedupIdioms(idioms []Idiom) []Idiom {
	seen := make(map[string]Idiom, len(idioms))
	out := make([]Idiom, 0, len(idioms))
	for _, i := range idioms {
		if _, ok := seen[i.ID]; ok {
			continue
		}
		seen[i.ID] = i
		out = append(out, i)
	}
	return out
}

// PublishableIdioms drops link stubs.
func PublishableIdioms(idioms []Idiom) []Idiom {
	out := make([]Idiom, 0, len(idioms))
	for _, i := range idioms {
		if i.HasLink {
			continue
		}
		out = append(out, i)
	}
	return out
}

// SeenSet remembers identifiers across documents.
// Implementations may report false positives but never false negatives.
type SeenSet interface {
	// TestAndAdd records the identifier and returns true if it might have
	// been recorded before.
	TestAndAdd(id string) bool
}

// UnseenSuperlemmas drops superlemmas already recorded in seen and records
// the rest. Order is preserved.
func UnseenSuperlemmas(seen SeenSet, superlemmas []*Superlemma) []*Superlemma {
	out := make([]*Superlemma, 0, len(superlemmas))
	for _, s := range superlemmas {
		if seen.TestAndAdd(PrefixSuperlemma + ":" + s.ID) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// UnseenIdioms drops idioms already recorded in seen and records the rest.
func UnseenIdioms(seen SeenSet, idioms []Idiom) []Idiom {
	out := make([]Idiom, 0, len(idioms))
	for _, i := range idioms {
		if seen.TestAndAdd(PrefixIdiom + ":" + i.ID) {
			continue
		}
		out = append(out, i)
	}
	return out
}
