// README: Intent classification; keyword sets for weather and places requests.
package intent

import "strings"

// Intents holds the classification result for one query.
type Intents struct {
	Weather bool
	Places  bool
}

var weatherKeywords = []string{
	"weather", "temperature", "climate", "rain", "snow",
	"sunny", "forecast", "humidity", "wind",
}

var placesKeywords = []string{
	"places", "attractions", "visit", "tourist", "things to do",
	"plan my trip", "plan my visit", "sightseeing", "travel guide",
	"where to go",
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Classify tests the lowercased query against both keyword sets. A query that
// matches neither is treated as a trip-planning request: Places is forced
// true. That bias is deliberate, so Classify never returns both flags false.
func (s *Service) Classify(query string) Intents {
	q := strings.ToLower(query)

	var in Intents
	for _, k := range weatherKeywords {
		if strings.Contains(q, k) {
			in.Weather = true
			break
		}
	}
	for _, k := range placesKeywords {
		if strings.Contains(q, k) {
			in.Places = true
			break
		}
	}

	if !in.Weather && !in.Places {
		in.Places = true
	}

	return in
}
