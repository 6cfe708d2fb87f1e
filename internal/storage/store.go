package storage

import (
	"context"
	"errors"

	"github.com/justsurfingit/actuarial-job-board/internal/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// JobFilter narrows listing queries. Zero values mean "no filter".
type JobFilter struct {
	Location string // substring, case-insensitive
	JobType  string // exact match
	Tag      string // substring, case-insensitive
	Search   string // substring over title/company/description
}

// Sort keys accepted by ListJobs. Anything else falls back to SortDefault.
const (
	SortPostingDateDesc = "posting_date_desc"
	SortPostingDateAsc  = "posting_date_asc"
	SortTitleAsc        = "title_asc"
	SortTitleDesc       = "title_desc"
	SortCompanyAsc      = "company_asc"
	SortCompanyDesc     = "company_desc"
	SortDefault         = SortPostingDateDesc
)

// ListOptions combines filtering, sorting and pagination for ListJobs.
type ListOptions struct {
	Filter JobFilter
	Sort   string
	Offset int
	Limit  int
}

// Store is the persistence boundary for job postings. Keeping it an
// interface lets the services run against an in-memory fake in tests.
type Store interface {
	// ListJobs returns one page of matches plus the total match count.
	ListJobs(ctx context.Context, opts ListOptions) ([]models.JobPosting, int64, error)
	GetJob(ctx context.Context, id uint) (*models.JobPosting, error)
	CreateJob(ctx context.Context, job *models.JobPosting) error
	UpdateJob(ctx context.Context, job *models.JobPosting) error
	DeleteJob(ctx context.Context, id uint) error
	// SearchJobs is the free-text endpoint query: substring match over
	// title, company, description and tags, unpaginated.
	SearchJobs(ctx context.Context, query string) ([]models.JobPosting, error)

	// FindByPostingKey looks up the scrape-ingestion natural key.
	FindByPostingKey(ctx context.Context, title, company, applicationURL string) (*models.JobPosting, error)
	// FindByPlacementKey looks up the scraper's direct-save natural key.
	// This intentionally differs from FindByPostingKey; the two ingestion
	// paths have always used different keys.
	FindByPlacementKey(ctx context.Context, title, company, location string) (*models.JobPosting, error)

	// Transaction runs fn against a transactional view of the store.
	// An error from fn rolls the whole batch back.
	Transaction(ctx context.Context, fn func(Store) error) error
}
