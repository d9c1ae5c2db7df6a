package lexso

// Converter renders archived article markup as Markdown so entries can be
// reviewed by hand, for example when a category label needs a new rule.
type Converter interface {
	// Convert transforms article HTML into Markdown.
	Convert(html string) (string, error)
}
