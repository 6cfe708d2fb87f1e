package services

import (
	"context"
	"time"

	"github.com/justsurfingit/actuarial-job-board/internal/config"
	"github.com/justsurfingit/actuarial-job-board/internal/dtos"
	"github.com/justsurfingit/actuarial-job-board/internal/models"
	"github.com/justsurfingit/actuarial-job-board/internal/storage"
)

// JobService implements the CRUD, listing and search operations over the
// store.
type JobService struct {
	store           storage.Store
	defaultPageSize int
	maxPageSize     int
}

func NewJobService(store storage.Store, cfg *config.Config) *JobService {
	return &JobService{
		store:           store,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}
}

// List returns one page of matches. Page defaults to 1, per_page to the
// configured default and is clamped to the configured maximum.
func (s *JobService) List(ctx context.Context, q dtos.ListJobsQuery) (*dtos.JobListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = s.defaultPageSize
	}
	if perPage > s.maxPageSize {
		perPage = s.maxPageSize
	}

	jobs, total, err := s.store.ListJobs(ctx, storage.ListOptions{
		Filter: storage.JobFilter{
			Location: q.Location,
			JobType:  q.JobType,
			Tag:      q.Tag,
			Search:   q.Search,
		},
		Sort:   q.Sort,
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	})
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.JobPosting{}
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &dtos.JobListResponse{
		Jobs:       jobs,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (s *JobService) Get(ctx context.Context, id uint) (*models.JobPosting, error) {
	return s.store.GetJob(ctx, id)
}

// Create builds a record from the request with the documented defaults and
// inserts it. Duplicate titles at the same company and location are allowed
// here; that key is only a soft constraint on the API.
func (s *JobService) Create(ctx context.Context, req dtos.CreateJobRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		PostingDate:     time.Now().UTC(),
		JobType:         req.JobType,
		Tags:            req.Tags,
		Description:     req.Description,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		ExperienceLevel: req.ExperienceLevel,
		SkillsRequired:  req.SkillsRequired,
		ApplicationURL:  req.ApplicationURL,
		Source:          req.Source,
	}
	if job.JobType == "" {
		job.JobType = models.JobTypeFullTime
	}
	if job.Source == "" {
		job.Source = models.SourceManual
	}

	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update overwrites only the fields present in the request.
func (s *JobService) Update(ctx context.Context, id uint, req dtos.UpdateJobRequest) (*models.JobPosting, error) {
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Tags != nil {
		job.Tags = *req.Tags
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.SkillsRequired != nil {
		job.SkillsRequired = *req.SkillsRequired
	}
	if req.ApplicationURL != nil {
		job.ApplicationURL = *req.ApplicationURL
	}
	if req.Source != nil {
		job.Source = *req.Source
	}

	if err := s.store.UpdateJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, id uint) error {
	return s.store.DeleteJob(ctx, id)
}

func (s *JobService) Search(ctx context.Context, query string) ([]models.JobPosting, error) {
	jobs, err := s.store.SearchJobs(ctx, query)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.JobPosting{}
	}
	return jobs, nil
}
