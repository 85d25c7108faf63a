package scholarships

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"scholarlens-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the scholarship repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches scholarship routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/scholarships", h.list)
	rg.GET("/scholarships/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeStorage, "failed to list scholarships", nil)
		return
	}

	resp := make([]gin.H, 0, len(items))
	for _, s := range items {
		resp = append(resp, toResponse(s))
	}
	respond.OK(c, gin.H{"count": len(resp), "scholarships": resp})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid scholarship id", nil)
		return
	}
	c.Set("scholarshipId", id)

	s, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "scholarship not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeStorage, "failed to fetch scholarship", nil)
		return
	}
	respond.OK(c, toResponse(s))
}

func toResponse(s Scholarship) gin.H {
	var deadline any
	if s.Deadline != nil {
		deadline = s.Deadline.Format(time.DateOnly)
	}
	return gin.H{
		"id":           s.ID,
		"name":         s.Name,
		"organization": s.Organization,
		"description":  s.Description,
		"criteria":     s.Criteria,
		"amount":       s.Amount,
		"deadline":     deadline,
		"url":          s.URL,
	}
}
