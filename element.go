package lexso

import "strings"

// Identifier prefixes used by the dictionary markup. Each concrete entity
// type carries a fixed prefix that is expected to appear in its ID.
const (
	PrefixInflection = "boj"
	PrefixLemvar     = "lnr"
	PrefixKernel     = "kcnr"
	PrefixEtymology  = "etynr"
	PrefixSeeAlso    = "xnr"
	PrefixIdiom      = "inr"
	PrefixLexem      = "xnr"
	PrefixSuperlemma = "snr"
)

// PronunciationBaseURL is the audio service that serves pronunciation files.
const PronunciationBaseURL = "https://isolve-so-service.appspot.com/pronounce?id="

// Element is the shape shared by all dictionary entities.
type Element struct {
	Prefix string `json:"prefix"`
	ID     string `json:"id"`
	Value  string `json:"value"`
}

// CheckID reports whether the ID contains the entity's prefix.
// A false result is a data-quality signal, not a construction failure.
func (e Element) CheckID() bool {
	return e.Prefix == "" || strings.Contains(e.ID, e.Prefix)
}

// Inflection is one surface word form.
type Inflection struct {
	Element
}

// NewInflection returns an Inflection with the inflection prefix.
func NewInflection(id, value string) Inflection {
	return Inflection{Element{Prefix: PrefixInflection, ID: id, Value: value}}
}

// Lemvar is the canonical written form of a headword and its inflections.
type Lemvar struct {
	Element
	Inflections []Inflection `json:"inflections"`
}

// NewLemvar returns a Lemvar with the lemvar prefix.
func NewLemvar(id, value string, inflections []Inflection) Lemvar {
	if inflections == nil {
		inflections = []Inflection{}
	}
	return Lemvar{
		Element:     Element{Prefix: PrefixLemvar, ID: id, Value: value},
		Inflections: inflections,
	}
}

// Pronunciation identifies an audio recording of a headword.
type Pronunciation struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// NewPronunciation returns a Pronunciation with its derived audio URL.
func NewPronunciation(id string) *Pronunciation {
	return &Pronunciation{ID: id, URL: PronunciationURL(id)}
}

// PronunciationURL returns the MP3 URL for an audio identifier.
func PronunciationURL(id string) string {
	return PronunciationBaseURL + id + ".mp3"
}

// Kernel is the core definition of a sense.
type Kernel struct {
	Element
}

// NewKernel returns a Kernel with the kernel prefix.
func NewKernel(id, value string) Kernel {
	return Kernel{Element{Prefix: PrefixKernel, ID: id, Value: value}}
}

// Etymology describes the origin of a headword.
type Etymology struct {
	Element
}

// NewEtymology returns an Etymology with the etymology prefix.
func NewEtymology(id, value string) Etymology {
	return Etymology{Element{Prefix: PrefixEtymology, ID: id, Value: value}}
}

// SeeAlso is a cross-reference to another headword.
type SeeAlso struct {
	Element
}

// NewSeeAlso returns a SeeAlso with the cross-reference prefix.
func NewSeeAlso(id, value string) SeeAlso {
	return SeeAlso{Element{Prefix: PrefixSeeAlso, ID: id, Value: value}}
}

// Sentence is a usage example.
type Sentence struct {
	Element
}

// NewSentence returns a Sentence. Sentences carry no prefix.
func NewSentence(id, value string) Sentence {
	return Sentence{Element{ID: id, Value: value}}
}

// Idiom is a fixed expression listed under a sense.
//
// HasLink marks link stubs: idioms whose canonical copy lives in another
// article. Stubs are extracted but never published.
type Idiom struct {
	Element
	Definition string `json:"definition"`
	Example    string `json:"example"`
	HasLink    bool   `json:"hasLink"`
}

// NewIdiom returns an Idiom with the idiom prefix.
func NewIdiom(id, phrase, definition, example string, hasLink bool) Idiom {
	return Idiom{
		Element:    Element{Prefix: PrefixIdiom, ID: id, Value: phrase},
		Definition: definition,
		Example:    example,
		HasLink:    hasLink,
	}
}

// Equal reports whether two idioms are the same entity. Only IDs are compared.
func (i Idiom) Equal(other Idiom) bool {
	return i.ID == other.ID
}

// Lexem is one sense of a headword.
type Lexem struct {
	Element
	Kernels   []Kernel   `json:"kernels"`
	SeeAlsos  []SeeAlso  `json:"seeAlsos"`
	Idioms    []Idiom    `json:"idioms"`
	Sentences []Sentence `json:"sentences"`
}

// NewLexem returns an empty Lexem with the lexem prefix. The lexem's value
// is its ID since the markup carries no separate label.
func NewLexem(id string) *Lexem {
	return &Lexem{
		Element:   Element{Prefix: PrefixLexem, ID: id, Value: id},
		Kernels:   []Kernel{},
		SeeAlsos:  []SeeAlso{},
		Idioms:    []Idiom{},
		Sentences: []Sentence{},
	}
}

// Superlemma is one headword entry.
type Superlemma struct {
	Element
	Lemvar          Lemvar         `json:"lemvar"`
	Hyphenation     string         `json:"hyphenation"`
	LexicalCategory string         `json:"lexicalCategory"`
	Pronunciation   *Pronunciation `json:"pronunciation"`
	Lexem           *Lexem         `json:"lexem"`
	Etymologies     []Etymology    `json:"etymologies"`
}

// NewSuperlemma returns a Superlemma with the superlemma prefix. Its value is
// the lemvar's written form.
func NewSuperlemma(id string, lemvar Lemvar) *Superlemma {
	return &Superlemma{
		Element:     Element{Prefix: PrefixSuperlemma, ID: id, Value: lemvar.Value},
		Lemvar:      lemvar,
		Etymologies: []Etymology{},
	}
}

// Validate returns an error if the superlemma lacks identity.
func (s *Superlemma) Validate() error {
	if s.ID == "" {
		return Errorf(EMALFORMED, "superlemma id required")
	}
	if s.Lemvar.ID == "" {
		return Errorf(EMALFORMED, "superlemma %s: lemvar id required", s.ID)
	}
	return nil
}

// Equal reports whether two superlemmas are the same entity. Only IDs are compared.
func (s *Superlemma) Equal(other *Superlemma) bool {
	return s.ID == other.ID
}

// Elements returns every prefixed element owned by the superlemma, itself
// included, in document order. It is used for identifier quality checks.
func (s *Superlemma) Elements() []Element {
	elems := []Element{s.Element, s.Lemvar.Element}
	for _, infl := range s.Lemvar.Inflections {
		elems = append(elems, infl.Element)
	}
	for _, ety := range s.Etymologies {
		elems = append(elems, ety.Element)
	}
	if s.Lexem == nil {
		return elems
	}
	elems = append(elems, s.Lexem.Element)
	for _, k := range s.Lexem.Kernels {
		elems = append(elems, k.Element)
	}
	for _, x := range s.Lexem.SeeAlsos {
		elems = append(elems, x.Element)
	}
	for _, i := range s.Lexem.Idioms {
		elems = append(elems, i.Element)
	}
	return elems
}
