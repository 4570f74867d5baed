// README: Intent counter stats handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"compass/internal/modules/querylog"
)

type StatsHandler struct {
	queryLog *querylog.Service
}

func NewStatsHandler(svc *querylog.Service) *StatsHandler {
	return &StatsHandler{queryLog: svc}
}

// Today handles GET /api/assistant/stats.
func (h *StatsHandler) Today(c *gin.Context) {
	if h.queryLog == nil {
		writeError(c, http.StatusServiceUnavailable, "stats unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.queryLog.TodayStats(ctx)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, stats)
}
