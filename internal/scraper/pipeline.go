// Package scraper drives a headless browser over the Actuary List board and
// turns listing cards into normalized JobPosting records.
package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/justsurfingit/actuarial-job-board/internal/models"
	"github.com/justsurfingit/actuarial-job-board/internal/normalize"
)

// ListingURL is the only site this pipeline knows about.
const ListingURL = "https://www.actuarylist.com/"

// Structural selectors of the board's job grid. These follow the site's
// generated class names and break when the site redeploys with new hashes.
const (
	sectionSelector  = "section.Job_grid-section__kgIsR"
	articleSelector  = "section.Job_grid-section__kgIsR article"
	companySelector  = ".Job_job-card__company__7T9qY"
	positionSelector = ".Job_job-card__position__ic1rc"
	linkSelector     = "a.Job_job-page-link__a5I5g"
	locationSelector = ".Job_job-card__locations__x1exr"
	postedSelector   = ".Job_job-card__posted-on__NCZaJ"
)

// Skip records one listing container that could not be parsed. Skips do not
// count toward the caller's maximum.
type Skip struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Report is the outcome of one scrape run.
type Report struct {
	Jobs    []models.JobPosting `json:"jobs"`
	Skipped []Skip              `json:"skipped"`
}

// Pipeline scrolls the listing page until it stops growing, then extracts
// and normalizes every discovered card.
type Pipeline struct {
	Browser           Browser
	MaxScrollAttempts int
	ScrollPause       time.Duration
	WaitTimeout       time.Duration
	Now               func() time.Time
	Log               zerolog.Logger
}

func NewPipeline(b Browser, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		Browser:           b,
		MaxScrollAttempts: 10,
		ScrollPause:       2 * time.Second,
		WaitTimeout:       15 * time.Second,
		Now:               func() time.Time { return time.Now().UTC() },
		Log:               log,
	}
}

// Run performs one full scrape. A page-level failure aborts the whole run
// with an error and no partial results; per-card problems only produce skip
// records.
func (p *Pipeline) Run(ctx context.Context, maxJobs int) (*Report, error) {
	p.Log.Info().Str("url", ListingURL).Msg("Opening listing page")
	if err := p.Browser.Navigate(ListingURL); err != nil {
		return nil, fmt.Errorf("navigate to listing page: %w", err)
	}
	if err := p.Browser.WaitVisible(sectionSelector, p.WaitTimeout); err != nil {
		return nil, fmt.Errorf("wait for job grid: %w", err)
	}

	if err := p.loadAllListings(ctx); err != nil {
		return nil, err
	}

	cards, err := p.Browser.FindAll(articleSelector)
	if err != nil {
		return nil, fmt.Errorf("find job cards: %w", err)
	}
	p.Log.Info().Int("cards", len(cards)).Msg("Extracting job cards")

	report := &Report{}
	for i, card := range cards {
		if len(report.Jobs) >= maxJobs {
			break
		}
		job, reason := p.extract(card)
		if reason != "" {
			p.Log.Debug().Int("index", i).Str("reason", reason).Msg("Skipping card")
			report.Skipped = append(report.Skipped, Skip{Index: i, Reason: reason})
			continue
		}
		report.Jobs = append(report.Jobs, *job)
	}

	p.Log.Info().
		Int("scraped", len(report.Jobs)).
		Int("skipped", len(report.Skipped)).
		Msg("Scrape finished")
	return report, nil
}

// loadAllListings scrolls to the bottom until the page height plateaus or
// the attempt cap is hit. The board uses infinite scroll with no "load
// more" button, so height growth is the only completion signal.
func (p *Pipeline) loadAllListings(ctx context.Context) error {
	last, err := p.Browser.CurrentHeight()
	if err != nil {
		return fmt.Errorf("read page height: %w", err)
	}
	for attempt := 0; attempt < p.MaxScrollAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Browser.ScrollToBottom(); err != nil {
			return fmt.Errorf("scroll: %w", err)
		}
		time.Sleep(p.ScrollPause)

		height, err := p.Browser.CurrentHeight()
		if err != nil {
			return fmt.Errorf("read page height: %w", err)
		}
		if height == last {
			break
		}
		last = height
	}
	return nil
}

func (p *Pipeline) extract(card Element) (*models.JobPosting, string) {
	company, err := card.Text(companySelector)
	if err != nil || company == "" {
		return nil, "missing company"
	}
	title, err := card.Text(positionSelector)
	if err != nil || title == "" {
		return nil, "missing title"
	}
	applicationURL, err := card.Attribute(linkSelector, "href")
	if err != nil || applicationURL == "" {
		return nil, "missing application url"
	}
	location, err := card.Text(locationSelector)
	if err != nil || location == "" {
		return nil, "missing location"
	}
	posted, err := card.Text(postedSelector)
	if err != nil {
		return nil, "missing posting date"
	}

	now := p.Now()
	job := &models.JobPosting{
		Title:          title,
		Company:        company,
		Location:       location,
		PostingDate:    normalize.ParseRelativeDate(posted, now),
		JobType:        normalize.InferJobType(title, "", ""),
		Tags:           normalize.ExtractTags(title, "", location),
		Description:    fmt.Sprintf("Actuarial position at %s", company),
		ApplicationURL: applicationURL,
		Source:         models.SourceActuaryList,
	}
	return job, ""
}
