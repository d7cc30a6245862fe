package settlementService

import "propSettler/models"

// Evaluate judges an actual value against a prop line. Exact equality is a push;
// no epsilon is applied, lines like 24.5 can never tie and integer lines tie
// exactly.
func Evaluate(direction string, threshold, actual float64) string {
	if actual == threshold {
		return models.ResultPush
	}
	if direction == models.DirectionOver && actual > threshold {
		return models.ResultCorrect
	}
	if direction == models.DirectionUnder && actual < threshold {
		return models.ResultCorrect
	}
	return models.ResultIncorrect
}
