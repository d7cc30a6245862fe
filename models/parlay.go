package models

import "gorm.io/gorm"

const (
	ParlayPending = "pending"
	ParlayWon     = "won"
	ParlayLost    = "lost"

	LegPending = "pending"
	LegWon     = "won"
	LegLost    = "lost"
)

type Parlay struct {
	gorm.Model
	ID      uint   `gorm:"primaryKey"`
	Status  string `gorm:"default:pending;index"` // "pending", "won", "lost"
	Outcome string `gorm:"default:pending"`
	Legs    []ParlayLeg
}

// ParlayLeg has no foreign key to Prediction; the join is done by field equality
// (parlay id, selection, bet type, threshold) at settlement time.
type ParlayLeg struct {
	gorm.Model
	ID         uint   `gorm:"primaryKey"`
	ParlayID   uint   `gorm:"index"`
	Parlay     Parlay `gorm:"foreignKey:ParlayID"`
	LegIndex   int
	Selection  string // player or team the leg is on
	BetType    string // canonical stat key
	Threshold  float64
	Outcome    string `gorm:"default:pending"` // "pending", "won", "lost"
	ResultNote string
}
