package parlayService

import (
	"context"
	"io"
	"log/slog"
	"propSettler/models"
	"propSettler/repo"
	"testing"
)

func uintPtr(v uint) *uint      { return &v }
func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func newTestSettler(parlays *repo.MemoryParlays, preds *repo.MemoryPredictions) *Settler {
	return &Settler{
		Parlays:     parlays,
		Predictions: preds,
		Log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func addCompletedLeg(preds *repo.MemoryPredictions, parlayID uint, player, statKey string, threshold float64, result string, actual float64) {
	preds.Add(models.Prediction{
		ParlayID:    uintPtr(parlayID),
		PlayerName:  player,
		StatKey:     statKey,
		Threshold:   threshold,
		Status:      models.PredictionCompleted,
		Result:      strPtr(result),
		ActualValue: f64Ptr(actual),
	})
}

func TestSettlePending_AllLegsCorrectWins(t *testing.T) {
	parlays := &repo.MemoryParlays{}
	parlays.AddParlay(models.Parlay{ID: 1, Status: models.ParlayPending})
	parlays.AddLeg(models.ParlayLeg{ID: 1, ParlayID: 1, LegIndex: 0, Selection: "Jayson Tatum", BetType: "points", Threshold: 24.5, Outcome: models.LegPending})
	parlays.AddLeg(models.ParlayLeg{ID: 2, ParlayID: 1, LegIndex: 1, Selection: "Derrick White", BetType: "assists", Threshold: 4.5, Outcome: models.LegPending})

	preds := &repo.MemoryPredictions{}
	addCompletedLeg(preds, 1, "Jayson Tatum", "points", 24.5, models.ResultCorrect, 27)
	addCompletedLeg(preds, 1, "Derrick White", "assists", 4.5, models.ResultCorrect, 6)

	summary, err := newTestSettler(parlays, preds).SettlePending(context.Background())
	if err != nil {
		t.Fatalf("SettlePending returned error: %v", err)
	}

	if summary.Validated != 1 || summary.Won != 1 {
		t.Errorf("expected validated=1 won=1, got %+v", summary)
	}
	if parlays.Parlays[0].Status != models.ParlayWon {
		t.Errorf("expected parlay won, got %s", parlays.Parlays[0].Status)
	}
	for _, leg := range parlays.Legs {
		if leg.Outcome != models.LegWon {
			t.Errorf("leg %d: expected won, got %s", leg.LegIndex, leg.Outcome)
		}
	}
}

func TestSettlePending_UnresolvedLegStaysPending(t *testing.T) {
	parlays := &repo.MemoryParlays{}
	parlays.AddParlay(models.Parlay{ID: 1, Status: models.ParlayPending})
	parlays.AddLeg(models.ParlayLeg{ID: 1, ParlayID: 1, LegIndex: 0, Selection: "Jayson Tatum", BetType: "points", Threshold: 24.5, Outcome: models.LegPending})
	parlays.AddLeg(models.ParlayLeg{ID: 2, ParlayID: 1, LegIndex: 1, Selection: "Derrick White", BetType: "assists", Threshold: 4.5, Outcome: models.LegPending})
	parlays.AddLeg(models.ParlayLeg{ID: 3, ParlayID: 1, LegIndex: 2, Selection: "Jaylen Brown", BetType: "rebounds", Threshold: 6.5, Outcome: models.LegPending})

	preds := &repo.MemoryPredictions{}
	addCompletedLeg(preds, 1, "Jayson Tatum", "points", 24.5, models.ResultCorrect, 27)
	addCompletedLeg(preds, 1, "Derrick White", "assists", 4.5, models.ResultCorrect, 6)
	// no completed prediction for the Jaylen Brown leg

	summary, err := newTestSettler(parlays, preds).SettlePending(context.Background())
	if err != nil {
		t.Fatalf("SettlePending returned error: %v", err)
	}

	if summary.Pending != 1 || summary.Won != 0 || summary.Lost != 0 {
		t.Errorf("expected pending=1, got %+v", summary)
	}
	if parlays.Parlays[0].Status != models.ParlayPending {
		t.Errorf("parlay must stay pending until every leg resolves, got %s", parlays.Parlays[0].Status)
	}
	// resolved legs still record their outcome between passes
	if parlays.Legs[0].Outcome != models.LegWon || parlays.Legs[1].Outcome != models.LegWon {
		t.Errorf("resolved legs should persist outcomes, got %s / %s",
			parlays.Legs[0].Outcome, parlays.Legs[1].Outcome)
	}
	if parlays.Legs[2].Outcome != models.LegPending {
		t.Errorf("unresolved leg must stay pending, got %s", parlays.Legs[2].Outcome)
	}
}

func TestSettlePending_IncorrectLegLosesImmediately(t *testing.T) {
	parlays := &repo.MemoryParlays{}
	parlays.AddParlay(models.Parlay{ID: 1, Status: models.ParlayPending})
	parlays.AddLeg(models.ParlayLeg{ID: 1, ParlayID: 1, LegIndex: 0, Selection: "Jayson Tatum", BetType: "points", Threshold: 24.5, Outcome: models.LegPending})
	parlays.AddLeg(models.ParlayLeg{ID: 2, ParlayID: 1, LegIndex: 1, Selection: "Derrick White", BetType: "assists", Threshold: 4.5, Outcome: models.LegPending})
	parlays.AddLeg(models.ParlayLeg{ID: 3, ParlayID: 1, LegIndex: 2, Selection: "Jaylen Brown", BetType: "rebounds", Threshold: 6.5, Outcome: models.LegPending})

	preds := &repo.MemoryPredictions{}
	addCompletedLeg(preds, 1, "Jayson Tatum", "points", 24.5, models.ResultIncorrect, 19)
	// other two legs still unresolved

	summary, err := newTestSettler(parlays, preds).SettlePending(context.Background())
	if err != nil {
		t.Fatalf("SettlePending returned error: %v", err)
	}

	if summary.Lost != 1 {
		t.Errorf("one lost leg must lose the parlay immediately, got %+v", summary)
	}
	if parlays.Parlays[0].Status != models.ParlayLost {
		t.Errorf("expected parlay lost, got %s", parlays.Parlays[0].Status)
	}
}

func TestSettlePending_PushLegLosesParlay(t *testing.T) {
	parlays := &repo.MemoryParlays{}
	parlays.AddParlay(models.Parlay{ID: 1, Status: models.ParlayPending})
	parlays.AddLeg(models.ParlayLeg{ID: 1, ParlayID: 1, LegIndex: 0, Selection: "Jayson Tatum", BetType: "points", Threshold: 24.5, Outcome: models.LegPending})
	parlays.AddLeg(models.ParlayLeg{ID: 2, ParlayID: 1, LegIndex: 1, Selection: "Derrick White", BetType: "assists", Threshold: 4, Outcome: models.LegPending})

	preds := &repo.MemoryPredictions{}
	addCompletedLeg(preds, 1, "Jayson Tatum", "points", 24.5, models.ResultCorrect, 27)
	addCompletedLeg(preds, 1, "Derrick White", "assists", 4, models.ResultPush, 4)

	summary, err := newTestSettler(parlays, preds).SettlePending(context.Background())
	if err != nil {
		t.Fatalf("SettlePending returned error: %v", err)
	}

	if summary.Lost != 1 {
		t.Errorf("a pushed leg counts as a loss, got %+v", summary)
	}
	if parlays.Legs[1].Outcome != models.LegLost {
		t.Errorf("pushed leg should record lost, got %s", parlays.Legs[1].Outcome)
	}
}

func TestSettlePending_EmptyParlayStaysPending(t *testing.T) {
	parlays := &repo.MemoryParlays{}
	parlays.AddParlay(models.Parlay{ID: 1, Status: models.ParlayPending})

	summary, err := newTestSettler(parlays, &repo.MemoryPredictions{}).SettlePending(context.Background())
	if err != nil {
		t.Fatalf("SettlePending returned error: %v", err)
	}

	if summary.Pending != 1 {
		t.Errorf("a parlay with no legs must not be marked won, got %+v", summary)
	}
	if parlays.Parlays[0].Status != models.ParlayPending {
		t.Errorf("expected pending, got %s", parlays.Parlays[0].Status)
	}
}

func TestSettlePending_DuplicateMatchUsesLowestID(t *testing.T) {
	parlays := &repo.MemoryParlays{}
	parlays.AddParlay(models.Parlay{ID: 1, Status: models.ParlayPending})
	parlays.AddLeg(models.ParlayLeg{ID: 1, ParlayID: 1, LegIndex: 0, Selection: "Jayson Tatum", BetType: "points", Threshold: 24.5, Outcome: models.LegPending})

	preds := &repo.MemoryPredictions{}
	preds.Add(models.Prediction{
		ID: 10, ParlayID: uintPtr(1), PlayerName: "Jayson Tatum", StatKey: "points", Threshold: 24.5,
		Status: models.PredictionCompleted, Result: strPtr(models.ResultCorrect), ActualValue: f64Ptr(27),
	})
	preds.Add(models.Prediction{
		ID: 11, ParlayID: uintPtr(1), PlayerName: "Jayson Tatum", StatKey: "points", Threshold: 24.5,
		Status: models.PredictionCompleted, Result: strPtr(models.ResultIncorrect), ActualValue: f64Ptr(19),
	})

	summary, err := newTestSettler(parlays, preds).SettlePending(context.Background())
	if err != nil {
		t.Fatalf("SettlePending returned error: %v", err)
	}

	if summary.Won != 1 {
		t.Errorf("lowest-id duplicate must decide the leg, got %+v", summary)
	}
}
