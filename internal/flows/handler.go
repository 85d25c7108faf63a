package flows

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scholarlens-backend/internal/essays"
	"scholarlens-backend/internal/evaluations"
	"scholarlens-backend/internal/personas"
	"scholarlens-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the flow service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches flow routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/test-flow/:scholarshipID", h.run)
}

func (h *Handler) run(c *gin.Context) {
	scholarshipID, err := strconv.ParseInt(c.Param("scholarshipID"), 10, 64)
	if err != nil || scholarshipID <= 0 {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid scholarship id", nil)
		return
	}

	studentID := int64(1)
	if raw := c.Query("student_id"); raw != "" {
		studentID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || studentID <= 0 {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid student_id", nil)
			return
		}
	}
	c.Set("scholarshipId", scholarshipID)
	c.Set("studentId", studentID)

	out := h.Svc.Run(c.Request.Context(), scholarshipID, studentID)

	results := gin.H{}
	if out.Persona != nil {
		results[StepPersona] = gin.H{
			"cached":  out.Persona.Cached,
			"persona": personas.ToResponse(out.Persona.Persona),
		}
	}
	if out.Adaptive != nil {
		results[StepAdaptive] = essays.ToResponse(*out.Adaptive)
	}
	if out.Baseline != nil {
		results[StepBaseline] = essays.ToResponse(*out.Baseline)
	}
	if out.Evaluation != nil {
		results[StepEvaluation] = evaluations.ToResponse(*out.Evaluation)
	}
	if out.Err != nil {
		results[out.FailedStep+"_error"] = out.Err.Error()
	}

	respond.OK(c, gin.H{
		"message": "Complete flow test finished",
		"success": out.Success(),
		"results": results,
	})
}
