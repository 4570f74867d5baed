// README: Places agent backed by Google Places text search.
package agents

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// minRating filters out poorly reviewed results.
const minRating = 4.0

// maxResults caps how many attractions end up in one reply.
const maxResults = 3

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// PlacesInfo implements PlacesAgent. It searches for tourist attractions in
// the location and formats the best-rated handful into a reply.
func (s *PlacesService) PlacesInfo(ctx context.Context, location string) (string, error) {
	r := &maps.TextSearchRequest{
		Query: fmt.Sprintf("tourist attractions in %s", location),
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return "", fmt.Errorf("places api error: %w", err)
	}

	var b strings.Builder
	count := 0
	for _, result := range resp.Results {
		if result.Rating < minRating {
			continue
		}
		fmt.Fprintf(&b, "\n- %s (%.1f★) — %s", result.Name, result.Rating, result.FormattedAddress)
		count++
		if count >= maxResults {
			break
		}
	}

	if count == 0 {
		return fmt.Sprintf("I couldn't find well-rated attractions in %s.", location), nil
	}
	return fmt.Sprintf("Top attractions in %s:%s", location, b.String()), nil
}
