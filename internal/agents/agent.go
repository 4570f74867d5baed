// README: Downstream agent contracts consumed by the assistant.
package agents

import "context"

// WeatherAgent returns a display-ready weather summary for a normalized
// location name.
type WeatherAgent interface {
	WeatherInfo(ctx context.Context, location string) (string, error)
}

// PlacesAgent returns a display-ready points-of-interest summary for a
// normalized location name.
type PlacesAgent interface {
	PlacesInfo(ctx context.Context, location string) (string, error)
}
