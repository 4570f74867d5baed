// README: Orchestrator tests covering routing, joining, and error propagation.
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"compass/internal/modules/extract"
	"compass/internal/modules/intent"
)

// stubWeather is a test double for agents.WeatherAgent.
type stubWeather struct {
	err   error
	calls int
}

func (s *stubWeather) WeatherInfo(_ context.Context, location string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("WEATHER(%s)", location), nil
}

// stubPlaces is a test double for agents.PlacesAgent.
type stubPlaces struct {
	err   error
	calls int
}

func (s *stubPlaces) PlacesInfo(_ context.Context, location string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("PLACES(%s)", location), nil
}

// newTestAssistant wires an Assistant on the regex extraction tiers with stub
// agents and no query log.
func newTestAssistant() (*Assistant, *stubWeather, *stubPlaces) {
	weather := &stubWeather{}
	places := &stubPlaces{}
	a := NewAssistant(extract.NewService(nil, nil), intent.NewService(), weather, places, nil)
	return a, weather, places
}

func TestHandle_WeatherOnly(t *testing.T) {
	a, weather, places := newTestAssistant()

	got, err := a.Handle(context.Background(), "What's the weather in Tokyo?")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got != "WEATHER(tokyo)" {
		t.Errorf("reply = %q, want exactly the weather fragment", got)
	}
	if weather.calls != 1 || places.calls != 0 {
		t.Errorf("agent calls = (weather %d, places %d), want (1, 0)", weather.calls, places.calls)
	}
}

func TestHandle_PlacesOnly(t *testing.T) {
	a, weather, places := newTestAssistant()

	got, err := a.Handle(context.Background(), "Best attractions in Rome")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got != "PLACES(rome)" {
		t.Errorf("reply = %q, want exactly the places fragment", got)
	}
	if weather.calls != 0 || places.calls != 1 {
		t.Errorf("agent calls = (weather %d, places %d), want (0, 1)", weather.calls, places.calls)
	}
}

func TestHandle_NoKeywordsDefaultsToPlaces(t *testing.T) {
	a, weather, places := newTestAssistant()

	got, err := a.Handle(context.Background(), "Tell me about Berlin")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got != "PLACES(berlin)" {
		t.Errorf("reply = %q, want the places fragment only", got)
	}
	if weather.calls != 0 || places.calls != 1 {
		t.Errorf("agent calls = (weather %d, places %d), want (0, 1)", weather.calls, places.calls)
	}
}

func TestHandle_BothIntentsJoinedInOrder(t *testing.T) {
	a, _, _ := newTestAssistant()

	got, err := a.Handle(context.Background(), "What's the weather and places to visit in Paris")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := "WEATHER(paris)\n\nPLACES(paris)"
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
}

func TestHandle_NoLocationSkipsAgents(t *testing.T) {
	a, weather, places := newTestAssistant()

	got, err := a.Handle(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got != MsgNoLocation {
		t.Errorf("reply = %q, want MsgNoLocation verbatim", got)
	}
	if weather.calls != 0 || places.calls != 0 {
		t.Errorf("agents were invoked without a location: (weather %d, places %d)", weather.calls, places.calls)
	}
}

func TestHandle_AgentErrorPropagatesUnmodified(t *testing.T) {
	a, weather, _ := newTestAssistant()
	boom := errors.New("weather upstream down")
	weather.err = boom

	_, err := a.Handle(context.Background(), "What's the weather in Tokyo?")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want the agent error unmodified", err)
	}
}

func TestHandle_Idempotent(t *testing.T) {
	a, _, _ := newTestAssistant()

	first, err1 := a.Handle(context.Background(), "Best attractions in Rome")
	second, err2 := a.Handle(context.Background(), "Best attractions in Rome")
	if err1 != nil || err2 != nil {
		t.Fatalf("Handle errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("repeated handling differs: %q vs %q", first, second)
	}
}
