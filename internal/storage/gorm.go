package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/justsurfingit/actuarial-job-board/internal/models"
)

// GormStore is the postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var sortClauses = map[string]string{
	SortPostingDateDesc: "posting_date DESC",
	SortPostingDateAsc:  "posting_date ASC",
	SortTitleAsc:        "title ASC",
	SortTitleDesc:       "title DESC",
	SortCompanyAsc:      "company ASC",
	SortCompanyDesc:     "company DESC",
}

func (s *GormStore) ListJobs(ctx context.Context, opts ListOptions) ([]models.JobPosting, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.JobPosting{})

	f := opts.Filter
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.JobType != "" {
		q = q.Where("job_type = ?", f.JobType)
	}
	if f.Tag != "" {
		q = q.Where("tags ILIKE ?", "%"+f.Tag+"%")
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title ILIKE ? OR company ILIKE ? OR description ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := sortClauses[opts.Sort]
	if !ok {
		order = sortClauses[SortDefault]
	}

	var jobs []models.JobPosting
	err := q.Order(order).Offset(opts.Offset).Limit(opts.Limit).Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (s *GormStore) GetJob(ctx context.Context, id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	err := s.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (s *GormStore) CreateJob(ctx context.Context, job *models.JobPosting) error {
	return s.db.WithContext(ctx).Create(job).Error
}

func (s *GormStore) UpdateJob(ctx context.Context, job *models.JobPosting) error {
	return s.db.WithContext(ctx).Save(job).Error
}

func (s *GormStore) DeleteJob(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.JobPosting{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) SearchJobs(ctx context.Context, query string) ([]models.JobPosting, error) {
	like := "%" + query + "%"
	var jobs []models.JobPosting
	err := s.db.WithContext(ctx).
		Where("title ILIKE ? OR company ILIKE ? OR description ILIKE ? OR tags ILIKE ?",
			like, like, like, like).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *GormStore) FindByPostingKey(ctx context.Context, title, company, applicationURL string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := s.db.WithContext(ctx).
		Where("title = ? AND company = ? AND application_url = ?", title, company, applicationURL).
		First(&job).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (s *GormStore) FindByPlacementKey(ctx context.Context, title, company, location string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := s.db.WithContext(ctx).
		Where("title = ? AND company = ? AND location = ?", title, company, location).
		First(&job).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
