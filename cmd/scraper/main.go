package main

import (
	"context"
	"flag"

	"github.com/justsurfingit/actuarial-job-board/internal/config"
	"github.com/justsurfingit/actuarial-job-board/internal/database"
	"github.com/justsurfingit/actuarial-job-board/internal/dump"
	"github.com/justsurfingit/actuarial-job-board/internal/logger"
	"github.com/justsurfingit/actuarial-job-board/internal/scraper"
	"github.com/justsurfingit/actuarial-job-board/internal/services"
	"github.com/justsurfingit/actuarial-job-board/internal/storage"
)

func main() {
	maxJobs := flag.Int("max-jobs", 100, "maximum number of jobs to scrape")
	noHeadless := flag.Bool("no-headless", false, "run the browser in visible mode")
	noDB := flag.Bool("no-db", false, "skip saving to the database")
	noJSON := flag.Bool("no-json", false, "skip saving the JSON dump")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Debug)
	log := logger.Get()

	log.Info().Int("max_jobs", *maxJobs).Msg("🚀 Starting Actuary List scraper")

	browser, err := scraper.LaunchPlaywright(!*noHeadless)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to launch browser")
	}
	defer browser.Close()

	pipeline := scraper.NewPipeline(browser, log)
	report, err := pipeline.Run(context.Background(), *maxJobs)
	if err != nil {
		// A page-level failure yields nothing; the run has to be re-invoked.
		log.Error().Err(err).Msg("❌ Scrape failed, nothing to save")
		return
	}
	for _, skip := range report.Skipped {
		log.Warn().Int("index", skip.Index).Str("reason", skip.Reason).Msg("Skipped listing")
	}
	if len(report.Jobs) == 0 {
		log.Warn().Msg("No jobs found to process")
		return
	}

	if !*noJSON {
		if err := dump.Write(cfg.DumpPath, report.Jobs); err != nil {
			log.Error().Err(err).Msg("Failed to save JSON dump")
		} else {
			log.Info().Str("path", cfg.DumpPath).Msg("💾 Saved scraped data")
		}
	}

	if !*noDB {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		ingest := services.NewIngestService(storage.NewGormStore(db))
		res, err := ingest.SaveScraped(context.Background(), report.Jobs)
		if err != nil {
			log.Error().Err(err).Msg("Failed to save jobs to database")
		} else {
			log.Info().Int("saved", res.Loaded).Int("skipped", res.Skipped).Msg("💾 Saved jobs to database")
		}
	}

	log.Info().Int("jobs", len(report.Jobs)).Msg("✅ Scraping completed")
}
