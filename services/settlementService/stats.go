package settlementService

import "propSettler/models"

type StatsSummary struct {
	Pending   int64   `json:"pending"`
	Completed int64   `json:"completed"`
	Correct   int64   `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

// Stats reports aggregate settlement counts. Accuracy is correct over completed;
// pushes and incorrect picks both count against it.
func (s *Sweeper) Stats() (StatsSummary, error) {
	var summary StatsSummary
	var err error

	if summary.Pending, err = s.Predictions.CountByStatus(models.PredictionPending); err != nil {
		return summary, err
	}
	if summary.Completed, err = s.Predictions.CountByStatus(models.PredictionCompleted); err != nil {
		return summary, err
	}
	if summary.Correct, err = s.Predictions.CountCompletedWithResult(models.ResultCorrect); err != nil {
		return summary, err
	}
	if summary.Completed > 0 {
		summary.Accuracy = float64(summary.Correct) / float64(summary.Completed)
	}
	return summary, nil
}
