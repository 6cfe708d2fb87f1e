package services

import (
	"context"
	"errors"
	"time"

	"github.com/justsurfingit/actuarial-job-board/internal/models"
	"github.com/justsurfingit/actuarial-job-board/internal/storage"
)

// IngestResult reports one batch ingestion.
type IngestResult struct {
	Loaded  int
	Skipped int
}

// IngestService merges candidate records into the store, skipping
// natural-key duplicates. Each batch is one transaction: any failure rolls
// the whole batch back.
//
// Two concurrent ingesters racing on the same key can still both insert;
// dedup is read-then-write with no unique index backing it. Known gap.
type IngestService struct {
	store storage.Store
}

func NewIngestService(store storage.Store) *IngestService {
	return &IngestService{store: store}
}

// LoadDump ingests dump-file records, deduplicating on
// title+company+application URL.
func (s *IngestService) LoadDump(ctx context.Context, jobs []models.JobPosting) (IngestResult, error) {
	return s.ingest(ctx, jobs, func(ctx context.Context, tx storage.Store, job models.JobPosting) (bool, error) {
		return exists(tx.FindByPostingKey(ctx, job.Title, job.Company, job.ApplicationURL))
	})
}

// SaveScraped ingests freshly scraped records, deduplicating on
// title+company+location. The different key is deliberate; the two
// ingestion paths have always disagreed on what makes a duplicate.
func (s *IngestService) SaveScraped(ctx context.Context, jobs []models.JobPosting) (IngestResult, error) {
	return s.ingest(ctx, jobs, func(ctx context.Context, tx storage.Store, job models.JobPosting) (bool, error) {
		return exists(tx.FindByPlacementKey(ctx, job.Title, job.Company, job.Location))
	})
}

type dupCheck func(ctx context.Context, tx storage.Store, job models.JobPosting) (bool, error)

func (s *IngestService) ingest(ctx context.Context, jobs []models.JobPosting, isDup dupCheck) (IngestResult, error) {
	var res IngestResult
	err := s.store.Transaction(ctx, func(tx storage.Store) error {
		for _, job := range jobs {
			dup, err := isDup(ctx, tx, job)
			if err != nil {
				return err
			}
			if dup {
				res.Skipped++
				continue
			}

			record := job
			record.ID = 0 // the store assigns identifiers
			if record.PostingDate.IsZero() {
				record.PostingDate = time.Now().UTC()
			}
			if record.JobType == "" {
				record.JobType = models.JobTypeFullTime
			}
			if record.Source == "" {
				record.Source = "scraper"
			}

			if err := tx.CreateJob(ctx, &record); err != nil {
				return err
			}
			res.Loaded++
		}
		return nil
	})
	if err != nil {
		return IngestResult{}, err
	}
	return res, nil
}

func exists(_ *models.JobPosting, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	return false, err
}
