// README: NER model abstraction; implementations tag entity spans in free text.
package nlp

// Entity is a tagged span of text produced by a named-entity model.
type Entity struct {
	Text  string
	Label string
}

// Model tags named entities in a piece of text. Entities are returned in
// document order. Implementations must be safe for concurrent use: the
// extractor shares one Model across all requests.
type Model interface {
	Entities(text string) ([]Entity, error)
}
