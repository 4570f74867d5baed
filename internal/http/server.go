// README: API gateway; registers HTTP routes and delegates to the assistant.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"compass/internal/http/handlers"
	"compass/internal/http/middleware"
	"compass/internal/modules/querylog"
	"compass/internal/service"
)

type ServerDeps struct {
	Assistant *service.Assistant
	QueryLog  *querylog.Service
}

type Server struct {
	assistant *service.Assistant
	queryLog  *querylog.Service
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		assistant: deps.Assistant,
		queryLog:  deps.QueryLog,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	assistantHandler := handlers.NewAssistantHandler(s.assistant)
	r.POST("/api/assistant/query", assistantHandler.Query)

	statsHandler := handlers.NewStatsHandler(s.queryLog)
	r.GET("/api/assistant/stats", statsHandler.Today)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
