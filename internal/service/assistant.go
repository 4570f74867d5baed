// README: Assistant orchestrator; extraction -> intent -> agent dispatch -> reply.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"compass/internal/agents"
	"compass/internal/modules/extract"
	"compass/internal/modules/intent"
	"compass/internal/modules/querylog"
)

const (
	// MsgNoLocation is returned when no extraction tier finds a location.
	MsgNoLocation = "I'm not sure which location you are referring to. Please provide the city name."

	// MsgNoIntent is returned if no agent produced a fragment. Unreachable
	// while the classifier defaults to places, but the branch stays: a future
	// classifier change must not silently produce an empty reply.
	MsgNoIntent = "Please ask about the weather or places to visit for a specific location."
)

// Assistant routes one free-text query to the weather and places agents.
// Every per-call value is local, so a single Assistant is safe for concurrent
// use by any number of callers.
type Assistant struct {
	extractor  *extract.Service
	classifier *intent.Service
	weather    agents.WeatherAgent
	places     agents.PlacesAgent
	queryLog   *querylog.Service
}

// NewAssistant wires the orchestrator. queryLog may be nil, in which case
// handled queries are simply not recorded.
func NewAssistant(
	extractor *extract.Service,
	classifier *intent.Service,
	weather agents.WeatherAgent,
	places agents.PlacesAgent,
	queryLog *querylog.Service,
) *Assistant {
	return &Assistant{
		extractor:  extractor,
		classifier: classifier,
		weather:    weather,
		places:     places,
		queryLog:   queryLog,
	}
}

// Handle processes a user query end to end. Location extraction always runs
// first: without a location no agent is invoked regardless of intent. Agent
// errors propagate to the caller unmodified.
func (a *Assistant) Handle(ctx context.Context, query string) (string, error) {
	start := time.Now()

	location, ok := a.extractor.Extract(ctx, query)
	if !ok {
		return MsgNoLocation, nil
	}

	in := a.classifier.Classify(query)

	var fragments []string
	if in.Weather {
		info, err := a.weather.WeatherInfo(ctx, location)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, info)
	}
	if in.Places {
		info, err := a.places.PlacesInfo(ctx, location)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, info)
	}

	if len(fragments) == 0 {
		return MsgNoIntent, nil
	}

	a.record(ctx, querylog.Record{
		Query:        query,
		Location:     location,
		WantsWeather: in.Weather,
		WantsPlaces:  in.Places,
		Duration:     time.Since(start),
		CreatedAt:    start,
	})

	return strings.Join(fragments, "\n\n"), nil
}

// record is best-effort: a query-log failure must never fail the reply.
func (a *Assistant) record(ctx context.Context, rec querylog.Record) {
	if a.queryLog == nil {
		return
	}
	if err := a.queryLog.Record(ctx, rec); err != nil {
		logrus.WithError(err).Warn("query log write failed")
	}
}
