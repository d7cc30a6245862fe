package settlementService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"propSettler/models"
	"propSettler/repo"
	"propSettler/services/common"
	"propSettler/services/gameService"
	"propSettler/services/statService"
	"runtime/debug"
	"time"
)

// BatchSummary is the structured result of one sweep invocation. The caller
// re-invokes with NextBatch while HasMoreBatches holds.
type BatchSummary struct {
	Updated        int   `json:"updated"`
	Errors         int   `json:"errors"`
	Skipped        int   `json:"skipped"`
	Remaining      int64 `json:"remaining"`
	TotalPending   int64 `json:"totalPending"`
	BatchSize      int   `json:"batchSize"`
	CurrentBatch   int   `json:"currentBatch"`
	HasMoreBatches bool  `json:"hasMoreBatches"`
	NextBatch      int   `json:"nextBatch"`
	RuntimeMs      int64 `json:"runtimeMs"`
}

type itemOutcome int

const (
	itemUntouched itemOutcome = iota
	itemUpdated
	itemError
)

// Sweeper runs time-boxed settlement sweeps over pending predictions.
type Sweeper struct {
	Resolver    *gameService.Resolver
	Predictions repo.PredictionRepository
	Adapters    *statService.Registry
	ErrorLogs   repo.ErrorLogRepository
	Log         *slog.Logger
	Now         func() time.Time // nil means time.Now
}

func (s *Sweeper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RunBatch processes one page of pending predictions ordered by creation time.
// The budget is checked before every item; once exceeded the rest of the page is
// reported as skipped and left pending, so the invocation always returns well
// inside the host's time ceiling. Item failures never abort the batch.
func (s *Sweeper) RunBatch(ctx context.Context, batchNumber, pageSize int, budget time.Duration) (BatchSummary, error) {
	start := time.Now()
	summary := BatchSummary{
		BatchSize:    pageSize,
		CurrentBatch: batchNumber,
	}

	totalPending, err := s.Predictions.CountByStatus(models.PredictionPending)
	if err != nil {
		return summary, err
	}
	summary.TotalPending = totalPending

	page, err := s.Predictions.PendingPage(batchNumber*pageSize, pageSize)
	if err != nil {
		return summary, err
	}

	for i := range page {
		if time.Since(start) > budget {
			summary.Skipped = len(page) - i
			s.Log.Warn("time budget exceeded, stopping batch early",
				"batch", batchNumber, "processed", i, "skipped", summary.Skipped)
			break
		}

		switch s.settleOne(ctx, &page[i]) {
		case itemUpdated:
			summary.Updated++
		case itemError:
			summary.Errors++
		}
	}

	summary.Remaining = totalPending - int64(summary.Updated)
	summary.HasMoreBatches = int64((batchNumber+1)*pageSize) < totalPending
	summary.NextBatch = batchNumber + 1
	summary.RuntimeMs = time.Since(start).Milliseconds()

	s.Log.Info("settlement batch finished",
		"batch", batchNumber,
		"updated", summary.Updated,
		"errors", summary.Errors,
		"skipped", summary.Skipped,
		"remaining", summary.Remaining,
		"runtimeMs", summary.RuntimeMs)
	return summary, nil
}

// settleOne drives one prediction through resolve -> finality -> stat fetch ->
// evaluate. Every anticipated failure becomes a state transition or a no-op;
// anything unanticipated is recovered, logged and counted as an error.
func (s *Sweeper) settleOne(ctx context.Context, pred *models.Prediction) (outcome itemOutcome) {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			common.LogError(s.ErrorLogs, s.Log, "settleOne",
				fmt.Errorf("panic settling prediction %d: %v", pred.ID, r))
			outcome = itemError
		}
	}()

	game, err := s.Resolver.Resolve(pred.GameRef, pred.Sport)
	if errors.Is(err, gameService.ErrGameNotFound) {
		return s.markReview(pred, fmt.Sprintf("no game matched reference %q", pred.GameRef))
	}
	if err != nil {
		common.LogError(s.ErrorLogs, s.Log, "settleOne", fmt.Errorf("resolving prediction %d: %w", pred.ID, err))
		return itemError
	}

	if !IsFinal(game, s.now()) {
		s.Log.Debug("game not final yet", "prediction", pred.ID, "game", game.ID, "status", game.Status)
		return itemUntouched
	}

	externalID := externalIDForSport(game, pred.Sport)
	if externalID == nil {
		return s.markReview(pred, fmt.Sprintf("game %d has no %s provider id", game.ID, pred.Sport))
	}

	adapter, ok := s.Adapters.AdapterFor(pred.Sport)
	if !ok {
		return s.markReview(pred, fmt.Sprintf("no stat provider for sport %q", pred.Sport))
	}

	hint := ""
	if pred.TeamAbbrev != nil {
		hint = *pred.TeamAbbrev
	}
	actual, err := adapter.GetStat(ctx, *externalID, pred.PlayerName, pred.StatKey, hint)
	if errors.Is(err, statService.ErrStatUnavailable) {
		s.Log.Warn("stat unavailable", "prediction", pred.ID, "player", pred.PlayerName,
			"statKey", pred.StatKey, "error", err)
		return s.markReview(pred, fmt.Sprintf("stat unavailable: %v", err))
	}
	if err != nil {
		common.LogError(s.ErrorLogs, s.Log, "settleOne", fmt.Errorf("fetching stat for prediction %d: %w", pred.ID, err))
		return itemError
	}

	result := Evaluate(pred.Direction, pred.Threshold, actual)
	completedAt := s.now()

	pred.ActualValue = &actual
	pred.Result = &result
	pred.Status = models.PredictionCompleted
	pred.CompletedAt = &completedAt
	pred.Notes = fmt.Sprintf("%s %s: actual %g vs %s %g -> %s",
		pred.PlayerName, pred.StatKey, actual, pred.Direction, pred.Threshold, result)

	if err := s.Predictions.Save(pred); err != nil {
		common.LogError(s.ErrorLogs, s.Log, "settleOne", fmt.Errorf("saving prediction %d: %w", pred.ID, err))
		return itemError
	}

	s.Log.Info("prediction settled", "prediction", pred.ID, "player", pred.PlayerName,
		"statKey", pred.StatKey, "actual", actual, "result", result)
	return itemUpdated
}

// markReview parks a prediction for manual or reconciliation-driven follow-up.
// This is an administrative terminal state, so it counts as updated.
func (s *Sweeper) markReview(pred *models.Prediction, note string) itemOutcome {
	pred.Status = models.PredictionNeedsReview
	pred.Notes = note
	if err := s.Predictions.Save(pred); err != nil {
		common.LogError(s.ErrorLogs, s.Log, "markReview", fmt.Errorf("saving prediction %d: %w", pred.ID, err))
		return itemError
	}
	s.Log.Warn("prediction needs review", "prediction", pred.ID, "note", note)
	return itemUpdated
}

func externalIDForSport(game *models.Game, sport string) *string {
	switch sport {
	case statService.SportHockey:
		return game.NhlID
	case statService.SportBaseball:
		return game.MlbID
	case statService.SportBasketball:
		return game.EspnID
	}
	return nil
}
