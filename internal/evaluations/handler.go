package evaluations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarlens-backend/internal/essays"
	"scholarlens-backend/internal/scholarships"
	"scholarlens-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the evaluation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/compare-essays", h.compare)
}

type compareRequest struct {
	ScholarshipID int64    `json:"scholarship_id" binding:"required"`
	AdaptiveEssay EssayRef `json:"adaptive_essay"`
	BaselineEssay EssayRef `json:"baseline_essay"`
}

func (h *Handler) compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation,
			"scholarship_id and both essay inputs are required", nil)
		return
	}
	if req.AdaptiveEssay.IsZero() || req.BaselineEssay.IsZero() {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation,
			"adaptive_essay and baseline_essay must each be an essay id or a paragraph array", nil)
		return
	}
	c.Set("scholarshipId", req.ScholarshipID)

	res, err := h.Svc.Compare(c.Request.Context(), req.ScholarshipID, req.AdaptiveEssay, req.BaselineEssay)
	if err != nil {
		switch {
		case errors.Is(err, scholarships.ErrNotFound):
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "scholarship not found", nil)
		case errors.Is(err, essays.ErrNotFound):
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to compare essays", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"message":        "Essays compared successfully",
		"scholarship_id": req.ScholarshipID,
		"fallback":       res.Fallback,
		"evaluation":     ToResponse(res),
	})
}

// ToResponse renders a comparison result for API payloads.
func ToResponse(res Result) gin.H {
	out := gin.H{
		"persona_name":           res.Comparison.PersonaName,
		"trait_alignment":        res.Comparison.TraitAlignment,
		"baseline_alignment":     res.Comparison.BaselineAlignment,
		"alignment_gain":         res.Comparison.AlignmentGain,
		"tone_consistency_score": res.Comparison.ToneConsistencyScore,
		"summary":                res.Comparison.Summary,
		"recommendation":         res.Comparison.Recommendation,
	}
	if res.EvaluationID != 0 {
		out["evaluation_id"] = res.EvaluationID
	}
	return out
}
