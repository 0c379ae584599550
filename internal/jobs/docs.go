// Package jobs provides scheduled background tasks for the constructor service.
//
// Jobs run on github.com/robfig/cron/v3 schedules with a seconds field.
//
// # Available Jobs
//
// 1. CatalogRefreshJob - reloads the in-memory catalog cache from the database
//
// # Usage
//
//	refresh, err := jobs.NewCatalogRefreshJob(cache, "*/30 * * * * *", logger, collector)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(logger, refresh)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and counted; the cache keeps serving the last
// good catalog. A job that fails to start stops the jobs started before it.
package jobs
