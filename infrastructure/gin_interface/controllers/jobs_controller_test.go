package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/palgaurav085-cmd/animexa-worker/config"
	"github.com/palgaurav085-cmd/animexa-worker/infrastructure/adapters"
	"github.com/palgaurav085-cmd/animexa-worker/infrastructure/gin_interface/dto"
	"github.com/palgaurav085-cmd/animexa-worker/middleware"
	"github.com/gin-gonic/gin"
)

const testSecret = "test-worker-secret"

type syncRunner struct{}

func (syncRunner) Submit(_ string, task func()) error {
	task()
	return nil
}

func (syncRunner) Active() []string { return nil }

func (syncRunner) Wait(_ context.Context) error { return nil }

type stubPipeline struct {
	registry outbound.JobRegistryPort
}

func (p *stubPipeline) Run(_ context.Context, jobID string, _ string) {
	_ = p.registry.MarkRunning(jobID)
	_ = p.registry.MarkSucceeded(jobID, "https://clips.s3.us-east-1.amazonaws.com/jobs/"+jobID+"/final.mp4")
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := adapters.NewZerologWrapper()
	registry := adapters.NewMemoryJobRegistry(logger, 0)

	router := gin.New()
	authHandler := middleware.NewAuthHandler(&config.AuthConfig{WorkerSecret: testSecret})
	router.Use(authHandler.AuthMiddleware())

	controller := NewJobsController(logger, registry, &stubPipeline{registry: registry}, syncRunner{})
	controller.RegisterRoutes(router)

	return router
}

func TestCreateJobRequiresSecret(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"script":"A cat sits."}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateJobAndPollStatus(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"script":"A cat sits. A dog runs."}`))
	req.Header.Set(middleware.WorkerSecretHeader, testSecret)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var created dto.CreateJobResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.JobID == "" {
		t.Fatal("empty job id")
	}

	req = httptest.NewRequest(http.MethodGet, "/jobs/"+created.JobID, nil)
	req.Header.Set(middleware.WorkerSecretHeader, testSecret)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var job dto.JobResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &job); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if job.Status != "succeeded" {
		t.Errorf("status = %q, want succeeded", job.Status)
	}
	if job.Progress != 100 {
		t.Errorf("progress = %d, want 100", job.Progress)
	}
	wantURL := "https://clips.s3.us-east-1.amazonaws.com/jobs/" + created.JobID + "/final.mp4"
	if job.URL != wantURL {
		t.Errorf("url = %q, want %q", job.URL, wantURL)
	}
}

func TestCreateJobRejectsMissingScript(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{}`))
	req.Header.Set(middleware.WorkerSecretHeader, testSecret)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetJobUnknownID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/jobs/never-submitted", nil)
	req.Header.Set(middleware.WorkerSecretHeader, testSecret)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "not-found" {
		t.Errorf("body = %v", body)
	}
}

func TestHealthSkipsAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
