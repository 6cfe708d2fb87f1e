package dtos

import (
	"github.com/justsurfingit/actuarial-job-board/internal/models"
)

// CreateJobRequest validates the POST /api/jobs payload. Title, company and
// location are the only required fields.
type CreateJobRequest struct {
	Title    string `json:"title" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Location string `json:"location" binding:"required"`

	// Optional fields
	JobType         string   `json:"job_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	Tags            string   `json:"tags"`
	Description     string   `json:"description"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	ExperienceLevel string   `json:"experience_level"`
	SkillsRequired  string   `json:"skills_required"`
	ApplicationURL  string   `json:"application_url"`
	Source          string   `json:"source"` // defaults to "manual" if empty
}

// UpdateJobRequest is a partial update: nil pointers leave the field alone.
type UpdateJobRequest struct {
	Title           *string  `json:"title"`
	Company         *string  `json:"company"`
	Location        *string  `json:"location"`
	JobType         *string  `json:"job_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	Tags            *string  `json:"tags"`
	Description     *string  `json:"description"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	ExperienceLevel *string  `json:"experience_level"`
	SkillsRequired  *string  `json:"skills_required"`
	ApplicationURL  *string  `json:"application_url"`
	Source          *string  `json:"source"`
}

// ListJobsQuery binds the listing endpoint's query string.
type ListJobsQuery struct {
	Page     int    `form:"page,default=1"`
	PerPage  int    `form:"per_page"`
	Location string `form:"location"`
	JobType  string `form:"job_type"`
	Tag      string `form:"tag"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

type JobListResponse struct {
	Jobs       []models.JobPosting `json:"jobs"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PerPage    int                 `json:"per_page"`
	TotalPages int                 `json:"total_pages"`
}

type SearchResponse struct {
	Jobs []models.JobPosting `json:"jobs"`
}

type ScrapedJobsResponse struct {
	Jobs  []models.JobPosting `json:"jobs"`
	Total int                 `json:"total"`
}

type LoadResultResponse struct {
	Message string `json:"message"`
	Loaded  int    `json:"loaded"`
	Skipped int    `json:"skipped"`
}
