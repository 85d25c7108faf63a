package personas

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarlens-backend/internal/scholarships"
	"scholarlens-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the persona service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches persona routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-scholarship", h.analyze)
}

type analyzeRequest struct {
	ScholarshipID int64 `json:"scholarship_id" binding:"required"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "scholarship_id is required", nil)
		return
	}
	c.Set("scholarshipId", req.ScholarshipID)

	res, err := h.Svc.GetOrCreate(c.Request.Context(), req.ScholarshipID)
	if err != nil {
		if errors.Is(err, scholarships.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "scholarship not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeStorage, "failed to analyze scholarship", nil)
		return
	}

	message := "Persona analyzed successfully"
	if res.Cached {
		message = "Persona already exists"
	}
	respond.OK(c, gin.H{
		"message":  message,
		"cached":   res.Cached,
		"fallback": res.Fallback,
		"persona":  ToResponse(res.Persona),
	})
}

// ToResponse renders a persona for API payloads.
func ToResponse(p Persona) gin.H {
	return gin.H{
		"id":             p.ID,
		"scholarship_id": p.ScholarshipID,
		"persona_name":   p.Name,
		"tone":           p.Tone,
		"weights":        p.Weights,
		"rationale":      p.Rationale,
		"version":        p.Version,
	}
}
