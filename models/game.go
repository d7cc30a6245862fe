package models

import (
	"gorm.io/gorm"
	"time"
)

// Game rows are written by the schedule ingestion job; settlement only reads them.
type Game struct {
	gorm.Model
	ID          uint `gorm:"primaryKey"`
	Sport       string
	HomeTeam    string
	AwayTeam    string
	ScheduledAt time.Time
	Status      string // free text from upstream, not a closed enum
	HomeScore   *int
	AwayScore   *int
	NhlID       *string
	MlbID       *string
	EspnID      *string
	OddsEventID *string
}
