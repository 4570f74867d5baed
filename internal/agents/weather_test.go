// README: Weather agent tests against a stubbed wttr endpoint.
package agents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWeatherInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tokyo" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("format") == "" {
			t.Error("format parameter missing")
		}
		_, _ = w.Write([]byte("tokyo: ☀️ +14°C, wind ↗11km/h, humidity 45%\n"))
	}))
	defer srv.Close()

	svc := NewWeatherService(srv.URL)
	got, err := svc.WeatherInfo(context.Background(), "tokyo")
	if err != nil {
		t.Fatalf("WeatherInfo: %v", err)
	}
	want := "Current weather in tokyo: ☀️ +14°C, wind ↗11km/h, humidity 45%"
	if got != want {
		t.Errorf("WeatherInfo = %q, want %q", got, want)
	}
}

func TestWeatherInfo_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewWeatherService(srv.URL)
	if _, err := svc.WeatherInfo(context.Background(), "tokyo"); err == nil {
		t.Error("expected error on non-200 response")
	}
}

func TestWeatherInfo_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("  \n"))
	}))
	defer srv.Close()

	svc := NewWeatherService(srv.URL)
	if _, err := svc.WeatherInfo(context.Background(), "tokyo"); err == nil {
		t.Error("expected error on empty weather response")
	}
}
