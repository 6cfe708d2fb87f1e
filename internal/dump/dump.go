// Package dump reads and writes the scrape-output file, the hand-off
// artifact between the offline scraper and the API.
package dump

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/justsurfingit/actuarial-job-board/internal/models"
)

// ErrDumpNotFound is returned when no scrape has been persisted yet.
var ErrDumpNotFound = errors.New("scraped jobs file not found")

// Filter narrows dump reads. Matching mirrors the listing endpoint:
// location and search are case-insensitive substrings, job type is exact.
type Filter struct {
	Location string
	JobType  string
	Search   string
}

// Write persists jobs as an indented UTF-8 JSON array.
func Write(path string, jobs []models.JobPosting) error {
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scraped jobs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read loads the dump file back into typed records.
func Read(path string) ([]models.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDumpNotFound
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var jobs []models.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return jobs, nil
}

// Apply filters jobs in memory, keeping input order. No pagination here;
// dump reads always return the full match set.
func Apply(jobs []models.JobPosting, f Filter) []models.JobPosting {
	out := make([]models.JobPosting, 0, len(jobs))
	search := strings.ToLower(f.Search)
	location := strings.ToLower(f.Location)

	for _, job := range jobs {
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		if f.JobType != "" && job.JobType != f.JobType {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(job.Title), search) &&
			!strings.Contains(strings.ToLower(job.Company), search) &&
			!strings.Contains(strings.ToLower(job.Description), search) {
			continue
		}
		out = append(out, job)
	}
	return out
}
