// README: Location extraction service; layered NER -> regex -> capital-scan -> LLM chain.
package extract

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"compass/internal/nlp"
)

// LocationParser is the optional LLM-backed tier. It is consulted only after
// every other tier has failed, so at worst it turns an empty result into a hit.
type LocationParser interface {
	ParseLocation(ctx context.Context, text string) (string, error)
}

// Service extracts a normalized location token from free text. Both
// dependencies may be nil: a nil model skips straight to the regex tiers, a
// nil parser disables the LLM tier.
type Service struct {
	model  nlp.Model
	parser LocationParser
}

func NewService(model nlp.Model, parser LocationParser) *Service {
	return &Service{model: model, parser: parser}
}

// Extract runs the tiers in order and returns the first hit, lowercased.
// The second return value is false when no tier produced a location.
func (s *Service) Extract(ctx context.Context, text string) (string, bool) {
	tiers := []func(context.Context, string) (string, bool){
		s.fromEntities,
		func(_ context.Context, t string) (string, bool) { return fromPatterns(t) },
		func(_ context.Context, t string) (string, bool) { return fromCapitalRuns(t) },
		s.fromParser,
	}
	for _, tier := range tiers {
		if loc, ok := tier(ctx, text); ok {
			return loc, true
		}
	}
	return "", false
}

// fromEntities is the NER tier. Among GPE/LOC entities it prefers the first
// one preceded anywhere in the text by a travel cue word; with no cue it
// returns the last entity mentioned.
func (s *Service) fromEntities(_ context.Context, text string) (string, bool) {
	if s.model == nil {
		return "", false
	}

	ents, err := s.model.Entities(text)
	if err != nil {
		logrus.WithError(err).Warn("ner tagging failed, using fallback extraction")
		return "", false
	}

	var locations []string
	for _, e := range ents {
		if e.Label == "GPE" || e.Label == "LOC" {
			locations = append(locations, e.Text)
		}
	}
	if len(locations) == 0 {
		return "", false
	}

	lower := strings.ToLower(text)
	for _, loc := range locations {
		idx := strings.Index(lower, strings.ToLower(loc))
		if idx < 0 {
			continue
		}
		prefix := lower[:idx]
		for _, cue := range cueWords {
			if strings.Contains(prefix, cue) {
				return strings.ToLower(loc), true
			}
		}
	}

	return strings.ToLower(locations[len(locations)-1]), true
}

func (s *Service) fromParser(ctx context.Context, text string) (string, bool) {
	if s.parser == nil {
		return "", false
	}

	loc, err := s.parser.ParseLocation(ctx, text)
	if err != nil {
		logrus.WithError(err).Warn("llm location parse failed")
		return "", false
	}
	loc = strings.ToLower(strings.TrimSpace(loc))
	if loc == "" {
		return "", false
	}
	return loc, true
}
