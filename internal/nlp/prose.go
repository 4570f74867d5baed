// README: prose-backed NER model (GPE/LOC tagging).
package nlp

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseModel wraps the prose English model. The underlying model data is
// embedded in the library, so construction only fails if the tagger itself
// cannot initialise.
type ProseModel struct{}

// NewProseModel initialises the prose tagger once so later calls cannot hit a
// first-use loading failure mid-request.
func NewProseModel() (*ProseModel, error) {
	if _, err := prose.NewDocument("warmup", prose.WithSegmentation(false)); err != nil {
		return nil, fmt.Errorf("failed to initialise prose model: %w", err)
	}
	return &ProseModel{}, nil
}

func (m *ProseModel) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose tagging error: %w", err)
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}
