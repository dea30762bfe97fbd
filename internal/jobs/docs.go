// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order store.
//
// # Available Jobs
//
// 1. OrderVolumeJob - Periodically reports the number of stored orders per area
//
// # Usage
//
//	job := jobs.NewOrderVolumeJob(getOrderVolumeHandler, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer job.Stop()
//
// # Error Handling
//
// The volume job only reads; a failed run is logged and the next scheduled
// run starts from a clean slate.
package jobs
