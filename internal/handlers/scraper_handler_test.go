package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/actuarial-job-board/internal/dtos"
	"github.com/justsurfingit/actuarial-job-board/internal/dump"
	"github.com/justsurfingit/actuarial-job-board/internal/models"
)

type fakeDumpService struct {
	jobs    []models.JobPosting
	loaded  int
	skipped int
	err     error

	gotFilter dump.Filter
}

func (f *fakeDumpService) Read(filter dump.Filter) ([]models.JobPosting, error) {
	f.gotFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func (f *fakeDumpService) Load(context.Context) (int, int, error) {
	return f.loaded, f.skipped, f.err
}

func newScraperRouter(svc DumpService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewScraperHandler(svc)
	r := gin.New()
	r.GET("/api/scraper-jobs", h.GetScrapedJobs)
	r.POST("/api/load-scraped-jobs", h.LoadScrapedJobs)
	return r
}

func TestGetScrapedJobs(t *testing.T) {
	svc := &fakeDumpService{
		jobs: []models.JobPosting{
			{Title: "Pricing Actuary", Company: "Acme", Location: "Remote"},
		},
	}
	r := newScraperRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/scraper-jobs?location=remote&job_type=full-time&search=acme", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dtos.ScrapedJobsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)

	// Query params flow through to the dump filter untouched.
	assert.Equal(t, dump.Filter{Location: "remote", JobType: "full-time", Search: "acme"}, svc.gotFilter)
}

func TestGetScrapedJobsMissingFile(t *testing.T) {
	r := newScraperRouter(&fakeDumpService{err: dump.ErrDumpNotFound})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/scraper-jobs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Scraped jobs file not found"}`, w.Body.String())
}

func TestLoadScrapedJobs(t *testing.T) {
	r := newScraperRouter(&fakeDumpService{loaded: 12, skipped: 3})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/load-scraped-jobs", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dtos.LoadResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Loaded)
	assert.Equal(t, 3, resp.Skipped)
	assert.Equal(t, "Successfully loaded 12 jobs, skipped 3 duplicates", resp.Message)
}

func TestLoadScrapedJobsMissingFile(t *testing.T) {
	r := newScraperRouter(&fakeDumpService{err: dump.ErrDumpNotFound})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/load-scraped-jobs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoadScrapedJobsFailure(t *testing.T) {
	r := newScraperRouter(&fakeDumpService{err: errors.New("insert failed")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/load-scraped-jobs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
