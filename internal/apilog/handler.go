package apilog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scholarlens-backend/internal/shared/server/respond"
)

const defaultListLimit = 50

// Handler exposes recorded model calls for inspection.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches api-log routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/api-logs", h.list)
}

func (h *Handler) list(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid limit", nil)
			return
		}
		limit = parsed
	}

	logs, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeStorage, "failed to list api logs", nil)
		return
	}

	out := make([]gin.H, 0, len(logs))
	for _, entry := range logs {
		out = append(out, gin.H{
			"id":            entry.ID,
			"prompt_kind":   entry.PromptKind,
			"status":        entry.Status,
			"model":         entry.Model,
			"latency_ms":    entry.LatencyMS,
			"input_tokens":  entry.InputTokens,
			"output_tokens": entry.OutputTokens,
			"error_message": entry.ErrorMessage,
			"created_at":    entry.CreatedAt,
		})
	}
	respond.OK(c, gin.H{"count": len(out), "logs": out})
}
