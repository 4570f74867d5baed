// README: Entry point; loads config, wires the assistant pipeline, starts HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"compass/internal/agents"
	"compass/internal/ai"
	"compass/internal/config"
	httptransport "compass/internal/http"
	"compass/internal/infra"
	"compass/internal/modules/extract"
	"compass/internal/modules/intent"
	"compass/internal/modules/querylog"
	"compass/internal/nlp"
	"compass/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logrus.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	queryLogStore := querylog.NewStore(dbPool, redisClient)
	queryLogSvc := querylog.NewService(queryLogStore)

	// NER model failure degrades extraction to the regex tiers, never fatal.
	var model nlp.Model
	if proseModel, err := nlp.NewProseModel(); err != nil {
		logrus.WithError(err).Warn("NER model unavailable; extraction will use regex fallback")
	} else {
		model = proseModel
	}

	var parser extract.LocationParser
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logrus.WithError(err).Warn("gemini unavailable; LLM extraction tier disabled")
		} else {
			defer gemini.Close()
			parser = gemini
		}
	}

	extractSvc := extract.NewService(model, parser)
	intentSvc := intent.NewService()

	placesSvc, err := agents.NewPlacesService(cfg.Agents.MapsKey)
	if err != nil {
		logrus.Fatalf("places agent init: %v", err)
	}
	weatherSvc := agents.NewWeatherService(cfg.Agents.WeatherBaseURL)

	assistant := service.NewAssistant(extractSvc, intentSvc, weatherSvc, placesSvc, queryLogSvc)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Assistant: assistant,
		QueryLog:  queryLogSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logrus.WithField("addr", cfg.HTTP.Addr).Info("compass api listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatal(err)
	}
}
