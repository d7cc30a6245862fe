package settlementService

import (
	"propSettler/models"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		threshold float64
		actual    float64
		expected  string
	}{
		{
			name:      "over clears the line",
			direction: models.DirectionOver,
			threshold: 24.5,
			actual:    27,
			expected:  models.ResultCorrect,
		},
		{
			name:      "over falls short",
			direction: models.DirectionOver,
			threshold: 24.5,
			actual:    21,
			expected:  models.ResultIncorrect,
		},
		{
			name:      "under stays below",
			direction: models.DirectionUnder,
			threshold: 6.5,
			actual:    4,
			expected:  models.ResultCorrect,
		},
		{
			name:      "under goes over",
			direction: models.DirectionUnder,
			threshold: 6.5,
			actual:    9,
			expected:  models.ResultIncorrect,
		},
		{
			name:      "exact tie on integer line is a push for under",
			direction: models.DirectionUnder,
			threshold: 2,
			actual:    2,
			expected:  models.ResultPush,
		},
		{
			name:      "exact tie on integer line is a push for over",
			direction: models.DirectionOver,
			threshold: 30,
			actual:    30,
			expected:  models.ResultPush,
		},
		{
			name:      "zero actual under a half-point line",
			direction: models.DirectionUnder,
			threshold: 0.5,
			actual:    0,
			expected:  models.ResultCorrect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.direction, tt.threshold, tt.actual)
			if result != tt.expected {
				t.Errorf("Evaluate(%s, %g, %g) = %s, expected %s",
					tt.direction, tt.threshold, tt.actual, result, tt.expected)
			}
		})
	}
}
