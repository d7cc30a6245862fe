package models

import (
	"gorm.io/gorm"
	"time"
)

const (
	PredictionPending      = "pending"
	PredictionCompleted    = "completed"
	PredictionNeedsReview  = "needs_review"
	PredictionManualClosed = "manual_closed"

	ResultCorrect   = "correct"
	ResultIncorrect = "incorrect"
	ResultPush      = "push"

	DirectionOver  = "over"
	DirectionUnder = "under"
)

// Prediction is one player-prop pick waiting to be settled. ActualValue and Result
// are set if and only if Status is completed.
type Prediction struct {
	gorm.Model
	ID          uint `gorm:"primaryKey"`
	GameRef     string
	Sport       string
	PlayerName  string
	TeamAbbrev  *string // optional disambiguation hint for the stat adapters
	StatKey     string
	Threshold   float64
	Direction   string // "over" or "under"
	Status      string `gorm:"default:pending;index"`
	ActualValue *float64
	Result      *string
	Notes       string
	ParlayID    *uint // set when the pick was materialized from a parlay leg
	CompletedAt *time.Time
}
