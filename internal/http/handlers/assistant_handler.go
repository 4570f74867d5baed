// README: Assistant query handler.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"compass/internal/service"
)

// queryTimeout bounds one end-to-end query, including both agent calls.
const queryTimeout = 15 * time.Second

type AssistantHandler struct {
	assistant *service.Assistant
}

func NewAssistantHandler(assistant *service.Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

type queryReq struct {
	Query string `json:"query"`
}

// Query handles POST /api/assistant/query.
func (h *AssistantHandler) Query(c *gin.Context) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
	defer cancel()

	reply, err := h.assistant.Handle(ctx, req.Query)
	if err != nil {
		// Agent failures reach us unmodified; the caller sees a gateway error.
		writeError(c, http.StatusBadGateway, "upstream agent error")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"reply": reply})
}
