package scheduler

import (
	"log/slog"
	"propSettler/scheduler/scheduler_jobs"
	"propSettler/services/parlayService"
	"propSettler/services/settlementService"
	"time"

	"github.com/robfig/cron/v3"
)

func SetupCron(sw *settlementService.Sweeper, ps *parlayService.Settler, log *slog.Logger, pageSize int, budget time.Duration) *cron.Cron {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 10 * * * *", func() {
		// ten past every hour: most games report final within the hour after
		// they end
		if err := scheduler_jobs.SettlePredictions(sw, log, pageSize, budget); err != nil {
			log.Error("scheduled prediction settlement failed", "error", err)
		}
	})
	if err != nil {
		log.Error("cron setup failed", "job", "settle_predictions", "error", err)
	}

	_, err = cronService.AddFunc("0 40 * * * *", func() {
		// half an hour later, after the leg predictions have settled
		if err := scheduler_jobs.SettleParlays(ps, log); err != nil {
			log.Error("scheduled parlay settlement failed", "error", err)
		}
	})
	if err != nil {
		log.Error("cron setup failed", "job", "settle_parlays", "error", err)
	}

	cronService.Start()
	return cronService
}
