package models

import (
	"time"
)

// Job type values stored in the job_type column.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Source values: "manual" for API-created records, "actuary_list" for scraped ones.
const (
	SourceManual      = "manual"
	SourceActuaryList = "actuary_list"
)

// JobPosting is the single entity of the board. The same value is used for
// store rows, API payloads and the scrape-dump file, so the JSON tags double
// as the dump format (posting_date serializes as RFC 3339).
type JobPosting struct {
	ID              uint      `gorm:"primaryKey" json:"id,omitempty"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	Company         string    `gorm:"size:200;not null" json:"company"`
	Location        string    `gorm:"size:200;not null" json:"location"`
	PostingDate     time.Time `json:"posting_date"`
	JobType         string    `gorm:"size:50;not null;default:'full-time'" json:"job_type"`
	Tags            string    `gorm:"type:text" json:"tags"`
	Description     string    `gorm:"type:text" json:"description"`
	SalaryMin       *float64  `json:"salary_min"`
	SalaryMax       *float64  `json:"salary_max"`
	ExperienceLevel string    `gorm:"size:50" json:"experience_level"`
	SkillsRequired  string    `gorm:"type:text" json:"skills_required"`
	ApplicationURL  string    `gorm:"size:500" json:"application_url"`
	Source          string    `gorm:"size:100;default:'manual'" json:"source"`
}

// TableName pins the GORM table name to the original schema.
func (JobPosting) TableName() string {
	return "jobs"
}
