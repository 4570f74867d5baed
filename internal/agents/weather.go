// README: Weather agent backed by the wttr.in one-line report format.
package agents

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// wttrFormat asks wttr.in for a single display-ready line:
// "tokyo: ☀️ +14°C, wind ↗11km/h, humidity 45%".
const wttrFormat = "%l: %c %t, wind %w, humidity %h"

// WeatherService fetches current conditions from a wttr.in-compatible
// endpoint. The base URL is configurable so tests can point it at a stub.
type WeatherService struct {
	baseURL string
	client  *http.Client
}

func NewWeatherService(baseURL string) *WeatherService {
	return &WeatherService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// WeatherInfo implements WeatherAgent.
func (s *WeatherService) WeatherInfo(ctx context.Context, location string) (string, error) {
	u := fmt.Sprintf("%s/%s?format=%s", s.baseURL, url.PathEscape(location), url.QueryEscape(wttrFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build weather request: %w", err)
	}
	// wttr.in serves HTML to browser user agents; curl gets plain text.
	req.Header.Set("User-Agent", "curl/8.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather service returned status %d for %q", resp.StatusCode, location)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("read weather response: %w", err)
	}

	line := strings.TrimSpace(string(body))
	if line == "" {
		return "", fmt.Errorf("empty weather response for %q", location)
	}
	return "Current weather in " + line, nil
}
