package scheduler_jobs

import (
	"context"
	"fmt"
	"log/slog"
	"propSettler/services/parlayService"
	"runtime/debug"
)

func SettleParlays(ps *parlayService.Settler, log *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("recovered in SettleParlays", "panic", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in SettleParlays: %v", r)
		}
	}()

	_, err = ps.SettlePending(context.Background())
	return err
}
