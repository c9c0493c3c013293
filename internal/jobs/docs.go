// Package jobs provides scheduled background tasks for the export platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order pipeline.
//
// # Available Jobs
//
// 1. DocumentationSweepJob - Runs every minute to regenerate document
// packages for orders stuck in documentation status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep job treats an empty documentation queue as the normal steady
// state and only logs genuine render or storage failures.
package jobs
