package parlayService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"propSettler/models"
	"propSettler/repo"
)

type Summary struct {
	Validated int `json:"validated"`
	Won       int `json:"won"`
	Lost      int `json:"lost"`
	Pending   int `json:"pending"`
}

// Settler aggregates settled leg predictions into parlay outcomes.
type Settler struct {
	Parlays     repo.ParlayRepository
	Predictions repo.PredictionRepository
	Log         *slog.Logger
}

// SettlePending runs the second settlement pass. A parlay is lost as soon as any
// leg's prediction settled to anything but correct, even while other legs are
// unresolved; it is won only when every leg matched a completed correct
// prediction; otherwise it stays pending. Leg outcomes are persisted as they
// resolve so partial progress survives between passes.
func (s *Settler) SettlePending(ctx context.Context) (Summary, error) {
	var summary Summary

	parlays, err := s.Parlays.PendingParlays()
	if err != nil {
		return summary, err
	}
	summary.Validated = len(parlays)

	for i := range parlays {
		parlay := &parlays[i]
		won, lost, err := s.settleParlay(parlay)
		if err != nil {
			return summary, err
		}
		switch {
		case lost:
			summary.Lost++
		case won:
			summary.Won++
		default:
			summary.Pending++
		}
	}

	s.Log.Info("parlay settlement finished", "validated", summary.Validated,
		"won", summary.Won, "lost", summary.Lost, "pending", summary.Pending)
	return summary, nil
}

func (s *Settler) settleParlay(parlay *models.Parlay) (won, lost bool, err error) {
	legs, err := s.Parlays.LegsByParlay(parlay.ID)
	if err != nil {
		return false, false, err
	}
	if len(legs) == 0 {
		return false, false, nil
	}

	anyLost := false
	allResolved := true

	for i := range legs {
		leg := &legs[i]
		pred, err := s.Predictions.CompletedLegMatch(parlay.ID, leg.Selection, leg.BetType, leg.Threshold)
		if errors.Is(err, repo.ErrNotFound) {
			allResolved = false
			continue
		}
		if err != nil {
			return false, false, err
		}

		// Only a correct prediction wins a leg; a push loses the parlay leg
		// under the current product rule.
		legWon := pred.Result != nil && *pred.Result == models.ResultCorrect
		if legWon {
			leg.Outcome = models.LegWon
		} else {
			leg.Outcome = models.LegLost
			anyLost = true
		}
		actual := 0.0
		if pred.ActualValue != nil {
			actual = *pred.ActualValue
		}
		result := ""
		if pred.Result != nil {
			result = *pred.Result
		}
		leg.ResultNote = fmt.Sprintf("%s %s: actual %g (%s)", leg.Selection, leg.BetType, actual, result)
		if err := s.Parlays.SaveLeg(leg); err != nil {
			return false, false, err
		}
	}

	switch {
	case anyLost:
		parlay.Status = models.ParlayLost
		parlay.Outcome = models.ParlayLost
	case allResolved:
		parlay.Status = models.ParlayWon
		parlay.Outcome = models.ParlayWon
	default:
		return false, false, nil
	}

	if err := s.Parlays.SaveParlay(parlay); err != nil {
		return false, false, err
	}
	s.Log.Info("parlay settled", "parlay", parlay.ID, "status", parlay.Status, "legs", len(legs))
	return parlay.Status == models.ParlayWon, parlay.Status == models.ParlayLost, nil
}
