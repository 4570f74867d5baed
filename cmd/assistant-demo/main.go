// README: Offline demo; runs the extraction/intent pipeline with canned agents.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"compass/internal/modules/extract"
	"compass/internal/modules/intent"
	"compass/internal/nlp"
	"compass/internal/service"
)

// cannedWeather stands in for the wttr.in agent so the demo runs offline.
type cannedWeather struct{}

func (cannedWeather) WeatherInfo(_ context.Context, location string) (string, error) {
	return fmt.Sprintf("Current weather in %s: ☀️ +21°C, wind ↗11km/h, humidity 40%%", location), nil
}

// cannedPlaces stands in for the Google Places agent.
type cannedPlaces struct{}

func (cannedPlaces) PlacesInfo(_ context.Context, location string) (string, error) {
	return fmt.Sprintf("Top attractions in %s:\n- Old Town (4.7★)\n- City Museum (4.5★)\n- Riverside Park (4.4★)", location), nil
}

func main() {
	var model nlp.Model
	if proseModel, err := nlp.NewProseModel(); err != nil {
		logrus.WithError(err).Warn("NER model unavailable; extraction will use regex fallback")
	} else {
		model = proseModel
	}

	assistant := service.NewAssistant(
		extract.NewService(model, nil),
		intent.NewService(),
		cannedWeather{},
		cannedPlaces{},
		nil,
	)

	fmt.Println("compass assistant demo — type a query, Ctrl-D to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		reply, err := assistant.Handle(context.Background(), line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Println(reply)
	}
}
