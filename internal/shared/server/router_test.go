package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"scholarlens-backend/internal/shared/config"
	"scholarlens-backend/internal/shared/server"
)

// Without a database URL or API key the router runs entirely on seeded
// in-memory repos and fixed generation fallbacks, which makes the whole API
// surface testable end to end.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		LLMTemperature:  0.7,
		LLMMaxTokens:    1024,
	}
	return server.NewRouter(cfg)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)
	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["ok"] != true {
		t.Fatalf("body = %v", body)
	}
}

func TestListScholarshipsServesSeededFixtures(t *testing.T) {
	router := setupRouter(t)
	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/scholarships", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if count, ok := body["count"].(float64); !ok || count < 1 {
		t.Fatalf("count = %v", body["count"])
	}
}

func TestAnalyzeScholarshipIsIdempotent(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/analyze-scholarship",
		map[string]any{"scholarship_id": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}
	if body["cached"] != false {
		t.Fatalf("first call cached: %v", body)
	}

	rec, body = doJSON(t, router, http.MethodPost, "/api/v1/analyze-scholarship",
		map[string]any{"scholarship_id": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["cached"] != true {
		t.Fatalf("second call not cached: %v", body)
	}
	if body["message"] != "Persona already exists" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestAnalyzeScholarshipUnknownID(t *testing.T) {
	router := setupRouter(t)
	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/analyze-scholarship",
		map[string]any{"scholarship_id": 999})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGenerateEssayWithoutProviderFallsBack(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/generate-essay",
		map[string]any{"scholarship_id": 1, "student_id": 1, "essay_type": "adaptive"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}
	if body["fallback"] != true {
		t.Fatalf("fallback = %v", body["fallback"])
	}
	essay, ok := body["essay"].(map[string]any)
	if !ok {
		t.Fatalf("essay = %v", body["essay"])
	}
	paragraphs, ok := essay["essay"].([]any)
	if !ok || len(paragraphs) != 3 {
		t.Fatalf("paragraphs = %v", essay["essay"])
	}
}

func TestGenerateBaselineEssayRelabelsTone(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/generate-essay",
		map[string]any{"scholarship_id": 1, "student_id": 1, "essay_type": "baseline"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}
	essay := body["essay"].(map[string]any)
	if essay["tone_used"] != "Generic Academic" {
		t.Fatalf("tone_used = %v", essay["tone_used"])
	}
}

func TestCompareEssaysWithInlineParagraphs(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/compare-essays", map[string]any{
		"scholarship_id": 1,
		"adaptive_essay": []string{"Adaptive paragraph."},
		"baseline_essay": []string{"Baseline paragraph."},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}
	evaluation, ok := body["evaluation"].(map[string]any)
	if !ok {
		t.Fatalf("evaluation = %v", body["evaluation"])
	}
	if _, ok := evaluation["alignment_gain"].(float64); !ok {
		t.Fatalf("alignment_gain = %v", evaluation["alignment_gain"])
	}
}

func TestCompareEssaysRejectsMissingInputs(t *testing.T) {
	router := setupRouter(t)
	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/compare-essays",
		map[string]any{"scholarship_id": 1})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestExtractFromResumeWithoutUploadFails(t *testing.T) {
	router := setupRouter(t)
	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/profiles/extract-from-resume/1", nil)
	if rec.Code != http.StatusPreconditionFailed {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCompleteFlow(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/test-flow/1?student_id=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}
	if body["success"] != true {
		t.Fatalf("flow not successful: %v", body)
	}
	results, ok := body["results"].(map[string]any)
	if !ok {
		t.Fatalf("results = %v", body["results"])
	}
	for _, step := range []string{"persona", "adaptive_essay", "baseline_essay", "evaluation"} {
		if _, ok := results[step]; !ok {
			t.Fatalf("step %q missing from results: %v", step, results)
		}
	}
}

func TestProfileCRUD(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/profiles/create", map[string]any{
		"name":   "Test Student",
		"email":  "test.student@example.edu",
		"goals":  "Graduate",
		"skills": []string{"Python"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %v", rec.Code, body)
	}
	profile := body["profile"].(map[string]any)
	id := int64(profile["id"].(float64))

	rec, body = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/profiles/%d", id), map[string]any{
		"name": "Renamed Student",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %v", rec.Code, body)
	}
	updated := body["profile"].(map[string]any)
	if updated["name"] != "Renamed Student" {
		t.Fatalf("name = %v", updated["name"])
	}
	if updated["profile_source"] != "manual" {
		t.Fatalf("profile_source = %v", updated["profile_source"])
	}

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/profiles/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get missing status = %d", rec.Code)
	}
}
