package settlementService

import (
	"context"
	"errors"
	"fmt"
	"propSettler/models"
	"propSettler/repo"
	"propSettler/services/gameService"
)

const (
	ActionRequeue          = "requeue"
	ActionCloseMissing     = "close_missing"
	ActionCloseFinalNoStat = "close_final_no_stats"
)

type ReconcileSummary struct {
	Examined int `json:"examined"`
	Requeued int `json:"requeued"`
	Closed   int `json:"closed"`
	Skipped  int `json:"skipped"`
}

// Reconcile moves stuck needs_review predictions forward. requeue puts records
// whose game has since been confirmed final back into the sweep; the close
// actions park records in manual_closed when the provider will never produce
// what automatic settlement needs.
func (s *Sweeper) Reconcile(ctx context.Context, action string, filter repo.PredictionFilter) (ReconcileSummary, error) {
	var summary ReconcileSummary

	switch action {
	case ActionRequeue, ActionCloseMissing, ActionCloseFinalNoStat:
	default:
		return summary, fmt.Errorf("unknown reconcile action %q", action)
	}

	if len(filter.Statuses) == 0 {
		filter.Statuses = []string{models.PredictionNeedsReview}
	}

	preds, err := s.Predictions.Filtered(filter)
	if err != nil {
		return summary, err
	}
	summary.Examined = len(preds)

	for i := range preds {
		pred := &preds[i]
		game, resolveErr := s.Resolver.Resolve(pred.GameRef, pred.Sport)
		gameMissing := errors.Is(resolveErr, gameService.ErrGameNotFound)
		if resolveErr != nil && !gameMissing {
			return summary, resolveErr
		}

		switch action {
		case ActionRequeue:
			if gameMissing || !IsFinal(game, s.now()) {
				summary.Skipped++
				continue
			}
			pred.Status = models.PredictionPending
			pred.Notes = fmt.Sprintf("requeued for settlement (was: %s)", pred.Notes)
			if err := s.Predictions.Save(pred); err != nil {
				return summary, err
			}
			summary.Requeued++

		case ActionCloseMissing:
			if !gameMissing {
				summary.Skipped++
				continue
			}
			pred.Status = models.PredictionManualClosed
			pred.Notes = fmt.Sprintf("closed: game reference %q never resolved", pred.GameRef)
			if err := s.Predictions.Save(pred); err != nil {
				return summary, err
			}
			summary.Closed++

		case ActionCloseFinalNoStat:
			if gameMissing || !IsFinal(game, s.now()) {
				summary.Skipped++
				continue
			}
			pred.Status = models.PredictionManualClosed
			pred.Notes = fmt.Sprintf("closed: game %d final but provider never published %s for %s",
				game.ID, pred.StatKey, pred.PlayerName)
			if err := s.Predictions.Save(pred); err != nil {
				return summary, err
			}
			summary.Closed++
		}
	}

	s.Log.Info("reconciliation finished", "action", action,
		"examined", summary.Examined, "requeued", summary.Requeued,
		"closed", summary.Closed, "skipped", summary.Skipped)
	return summary, nil
}
