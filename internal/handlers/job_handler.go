package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/actuarial-job-board/internal/dtos"
	"github.com/justsurfingit/actuarial-job-board/internal/models"
	"github.com/justsurfingit/actuarial-job-board/internal/storage"
)

// JobService is what the handler needs from the service layer; declared
// here so tests can substitute a fake.
type JobService interface {
	List(ctx context.Context, q dtos.ListJobsQuery) (*dtos.JobListResponse, error)
	Get(ctx context.Context, id uint) (*models.JobPosting, error)
	Create(ctx context.Context, req dtos.CreateJobRequest) (*models.JobPosting, error)
	Update(ctx context.Context, id uint, req dtos.UpdateJobRequest) (*models.JobPosting, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, query string) ([]models.JobPosting, error)
}

type JobHandler struct {
	jobs JobService
}

func NewJobHandler(jobs JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// HealthCheck is GET /api/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListJobs is GET /api/jobs.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var q dtos.ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.jobs.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetJob is GET /api/jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is POST /api/jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob is PUT /api/jobs/:id. Only fields present in the body are
// overwritten.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob is DELETE /api/jobs/:id.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// SearchJobs is GET /api/jobs/search?q=...
func (h *JobHandler) SearchJobs(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	jobs, err := h.jobs.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.SearchResponse{Jobs: jobs})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
