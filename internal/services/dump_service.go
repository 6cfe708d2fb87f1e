package services

import (
	"context"

	"github.com/justsurfingit/actuarial-job-board/internal/dump"
	"github.com/justsurfingit/actuarial-job-board/internal/models"
)

// DumpService serves the scrape-dump endpoints: reading the persisted file
// with filters and loading it into the store.
type DumpService struct {
	path   string
	ingest *IngestService
}

func NewDumpService(path string, ingest *IngestService) *DumpService {
	return &DumpService{path: path, ingest: ingest}
}

// Read returns the dump contents filtered in memory, unpaginated.
func (s *DumpService) Read(filter dump.Filter) ([]models.JobPosting, error) {
	jobs, err := dump.Read(s.path)
	if err != nil {
		return nil, err
	}
	return dump.Apply(jobs, filter), nil
}

// Load runs dump-file ingestion and reports loaded/skipped counts.
func (s *DumpService) Load(ctx context.Context) (loaded, skipped int, err error) {
	jobs, err := dump.Read(s.path)
	if err != nil {
		return 0, 0, err
	}
	res, err := s.ingest.LoadDump(ctx, jobs)
	if err != nil {
		return 0, 0, err
	}
	return res.Loaded, res.Skipped, nil
}
