package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/justsurfingit/actuarial-job-board/internal/models"
	"github.com/justsurfingit/actuarial-job-board/internal/storage"
)

// fakeStore mimics the postgres store in memory, including the ILIKE
// substring semantics and transactional rollback.
type fakeStore struct {
	jobs   []models.JobPosting
	nextID uint

	// failCreateOn makes the n-th CreateJob call fail (1-based, 0 = never).
	failCreateOn int
	createCalls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *fakeStore) ListJobs(_ context.Context, opts storage.ListOptions) ([]models.JobPosting, int64, error) {
	matched := make([]models.JobPosting, 0, len(s.jobs))
	f := opts.Filter
	for _, j := range s.jobs {
		if f.Location != "" && !containsFold(j.Location, f.Location) {
			continue
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		if f.Tag != "" && !containsFold(j.Tags, f.Tag) {
			continue
		}
		if f.Search != "" &&
			!containsFold(j.Title, f.Search) &&
			!containsFold(j.Company, f.Search) &&
			!containsFold(j.Description, f.Search) {
			continue
		}
		matched = append(matched, j)
	}

	less := func(i, k int) bool { return matched[i].PostingDate.After(matched[k].PostingDate) }
	switch opts.Sort {
	case storage.SortPostingDateAsc:
		less = func(i, k int) bool { return matched[i].PostingDate.Before(matched[k].PostingDate) }
	case storage.SortTitleAsc:
		less = func(i, k int) bool { return matched[i].Title < matched[k].Title }
	case storage.SortTitleDesc:
		less = func(i, k int) bool { return matched[i].Title > matched[k].Title }
	case storage.SortCompanyAsc:
		less = func(i, k int) bool { return matched[i].Company < matched[k].Company }
	case storage.SortCompanyDesc:
		less = func(i, k int) bool { return matched[i].Company > matched[k].Company }
	}
	sort.SliceStable(matched, less)

	total := int64(len(matched))
	start := opts.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + opts.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *fakeStore) GetJob(_ context.Context, id uint) (*models.JobPosting, error) {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			job := s.jobs[i]
			return &job, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *fakeStore) CreateJob(_ context.Context, job *models.JobPosting) error {
	s.createCalls++
	if s.failCreateOn > 0 && s.createCalls == s.failCreateOn {
		return errors.New("insert failed")
	}
	job.ID = s.nextID
	s.nextID++
	s.jobs = append(s.jobs, *job)
	return nil
}

func (s *fakeStore) UpdateJob(_ context.Context, job *models.JobPosting) error {
	for i := range s.jobs {
		if s.jobs[i].ID == job.ID {
			s.jobs[i] = *job
			return nil
		}
	}
	return storage.ErrNotFound
}

func (s *fakeStore) DeleteJob(_ context.Context, id uint) error {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (s *fakeStore) SearchJobs(_ context.Context, query string) ([]models.JobPosting, error) {
	var out []models.JobPosting
	for _, j := range s.jobs {
		if containsFold(j.Title, query) ||
			containsFold(j.Company, query) ||
			containsFold(j.Description, query) ||
			containsFold(j.Tags, query) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *fakeStore) FindByPostingKey(_ context.Context, title, company, applicationURL string) (*models.JobPosting, error) {
	for i := range s.jobs {
		j := s.jobs[i]
		if j.Title == title && j.Company == company && j.ApplicationURL == applicationURL {
			return &j, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *fakeStore) FindByPlacementKey(_ context.Context, title, company, location string) (*models.JobPosting, error) {
	for i := range s.jobs {
		j := s.jobs[i]
		if j.Title == title && j.Company == company && j.Location == location {
			return &j, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *fakeStore) Transaction(_ context.Context, fn func(storage.Store) error) error {
	snapshot := make([]models.JobPosting, len(s.jobs))
	copy(snapshot, s.jobs)
	snapshotID := s.nextID

	if err := fn(s); err != nil {
		s.jobs = snapshot
		s.nextID = snapshotID
		return err
	}
	return nil
}
