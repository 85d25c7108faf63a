package essays

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"scholarlens-backend/internal/profiles"
	"scholarlens-backend/internal/scholarships"
	"scholarlens-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the essay service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches essay routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-essay", h.generate)
}

type generateRequest struct {
	ScholarshipID int64  `json:"scholarship_id" binding:"required"`
	StudentID     int64  `json:"student_id" binding:"required"`
	EssayType     string `json:"essay_type"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "scholarship_id and student_id are required", nil)
		return
	}
	c.Set("scholarshipId", req.ScholarshipID)
	c.Set("studentId", req.StudentID)

	res, err := h.Svc.Generate(c.Request.Context(), req.ScholarshipID, req.StudentID, req.EssayType)
	if err != nil {
		switch {
		case errors.Is(err, scholarships.ErrNotFound):
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "scholarship not found", nil)
		case errors.Is(err, profiles.ErrNotFound):
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "student profile not found", nil)
		case errors.Is(err, ErrUnknownType):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "essay_type must be adaptive or baseline", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to generate essay", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"message":      capitalize(res.EssayType) + " essay generated successfully",
		"student_name": res.StudentName,
		"essay_type":   res.EssayType,
		"fallback":     res.Fallback,
		"essay":        ToResponse(res),
	})
}

// ToResponse renders a generation result for API payloads.
func ToResponse(res Result) gin.H {
	out := gin.H{
		"persona_name":      res.Generated.PersonaName,
		"tone_used":         res.Generated.ToneUsed,
		"essay":             res.Generated.Paragraphs,
		"overall_alignment": res.Generated.OverallAlignment,
		"summary":           res.Generated.Summary,
	}
	if res.EssayID != 0 {
		out["essay_id"] = res.EssayID
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
