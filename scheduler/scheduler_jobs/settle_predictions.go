package scheduler_jobs

import (
	"context"
	"fmt"
	"log/slog"
	"propSettler/services/settlementService"
	"runtime/debug"
	"time"
)

// maxBatchesPerRun caps one cron tick; anything left over is picked up next hour.
const maxBatchesPerRun = 50

func SettlePredictions(sw *settlementService.Sweeper, log *slog.Logger, pageSize int, budget time.Duration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("recovered in SettlePredictions", "panic", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in SettlePredictions: %v", r)
		}
	}()

	ctx := context.Background()
	batch := 0
	for i := 0; i < maxBatchesPerRun; i++ {
		summary, err := sw.RunBatch(ctx, batch, pageSize, budget)
		if err != nil {
			return err
		}
		if !summary.HasMoreBatches {
			break
		}
		batch = summary.NextBatch
	}
	return nil
}
