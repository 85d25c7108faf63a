package profiles

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scholarlens-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profile service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles/create", h.create)
	rg.GET("/profiles/:studentID", h.get)
	rg.PUT("/profiles/:studentID", h.update)
	rg.POST("/profiles/upload-resume", h.uploadResume)
	rg.POST("/profiles/extract-from-resume/:studentID", h.extract)
	rg.DELETE("/profiles/:studentID/resume", h.deleteResume)
}

type createRequest struct {
	Name           string           `json:"name" binding:"required"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	GPA            *float64         `json:"gpa"`
	Activities     []string         `json:"activities"`
	Achievements   []string         `json:"achievements"`
	Goals          string           `json:"goals"`
	Skills         []string         `json:"skills"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Certifications []string         `json:"certifications"`
	Languages      []string         `json:"languages"`
	Awards         []string         `json:"awards"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "name is required", nil)
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), StudentProfile{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		GPA:            req.GPA,
		Activities:     req.Activities,
		Achievements:   req.Achievements,
		Goals:          req.Goals,
		Skills:         req.Skills,
		Education:      req.Education,
		WorkExperience: req.WorkExperience,
		Certifications: req.Certifications,
		Languages:      req.Languages,
		Awards:         req.Awards,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeStorage, "failed to create profile", nil)
		return
	}

	respond.Created(c, gin.H{
		"message": "Profile created successfully",
		"profile": p,
	})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}

	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.storageError(c, err, "failed to load profile")
		return
	}
	respond.OK(c, gin.H{"profile": p})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}

	var u Update
	if err := c.ShouldBindJSON(&u); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid profile update", nil)
		return
	}

	p, err := h.Svc.ApplyUpdate(c.Request.Context(), id, u)
	if err != nil {
		h.storageError(c, err, "failed to update profile")
		return
	}
	respond.OK(c, gin.H{
		"message": "Profile updated successfully",
		"profile": p,
	})
}

func (h *Handler) uploadResume(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("student_id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "student_id query parameter is required", nil)
		return
	}
	c.Set("studentId", id)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "file is required", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "could not read uploaded file", nil)
		return
	}
	defer f.Close()

	upload, err := h.Svc.AttachResume(c.Request.Context(), id, fileHeader.Filename, fileHeader.Size, f)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "student profile not found", nil)
		case errors.Is(err, ErrNotPDF), errors.Is(err, ErrFileTooLarge):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error(), nil)
		case errors.Is(err, ErrEmptyText):
			respond.Error(c, http.StatusUnprocessableEntity, respond.CodeValidation, "could not extract text from PDF", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeStorage, "failed to store resume", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"message": "Resume uploaded successfully",
		"data": gin.H{
			"student_id":   id,
			"filename":     fileHeader.Filename,
			"storage_key":  upload.StorageKey,
			"text_length":  upload.TextLength,
			"text_preview": upload.TextPreview,
		},
	})
}

func (h *Handler) extract(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}

	res, err := h.Svc.Extract(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNoResumeText) {
			respond.Error(c, http.StatusPreconditionFailed, respond.CodePreconditionFailed,
				"no resume text found, upload a resume first", nil)
			return
		}
		h.storageError(c, err, "failed to extract profile")
		return
	}

	respond.OK(c, gin.H{
		"message":  "Profile extracted successfully",
		"fallback": res.Fallback,
		"profile":  res.Profile,
	})
}

func (h *Handler) deleteResume(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}

	p, err := h.Svc.RemoveResume(c.Request.Context(), id)
	if err != nil {
		h.storageError(c, err, "failed to delete resume")
		return
	}
	respond.OK(c, gin.H{
		"message": "Resume deleted successfully",
		"profile": p,
	})
}

func (h *Handler) storageError(c *gin.Context, err error, message string) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "student profile not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, respond.CodeStorage, message, nil)
}

func studentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("studentID"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid student id", nil)
		return 0, false
	}
	c.Set("studentId", id)
	return id, true
}
