package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/actuarial-job-board/internal/dtos"
	"github.com/justsurfingit/actuarial-job-board/internal/dump"
	"github.com/justsurfingit/actuarial-job-board/internal/models"
)

// DumpService reads the persisted scrape dump and loads it into the store.
type DumpService interface {
	Read(filter dump.Filter) ([]models.JobPosting, error)
	Load(ctx context.Context) (loaded, skipped int, err error)
}

type ScraperHandler struct {
	dumps DumpService
}

func NewScraperHandler(dumps DumpService) *ScraperHandler {
	return &ScraperHandler{dumps: dumps}
}

// GetScrapedJobs is GET /api/scraper-jobs. It serves the raw dump file with
// the same filters as the listing endpoint, but without pagination.
func (h *ScraperHandler) GetScrapedJobs(c *gin.Context) {
	filter := dump.Filter{
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
		Search:   c.Query("search"),
	}

	jobs, err := h.dumps.Read(filter)
	if err != nil {
		respondDumpError(c, err)
		return
	}
	if jobs == nil {
		jobs = []models.JobPosting{}
	}
	c.JSON(http.StatusOK, dtos.ScrapedJobsResponse{Jobs: jobs, Total: len(jobs)})
}

// LoadScrapedJobs is POST /api/load-scraped-jobs. It runs dump ingestion
// and reports how many records were loaded vs skipped as duplicates.
func (h *ScraperHandler) LoadScrapedJobs(c *gin.Context) {
	loaded, skipped, err := h.dumps.Load(c.Request.Context())
	if err != nil {
		respondDumpError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.LoadResultResponse{
		Message: fmt.Sprintf("Successfully loaded %d jobs, skipped %d duplicates", loaded, skipped),
		Loaded:  loaded,
		Skipped: skipped,
	})
}

func respondDumpError(c *gin.Context, err error) {
	if errors.Is(err, dump.ErrDumpNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scraped jobs file not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
