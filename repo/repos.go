package repo

import (
	"errors"
	"propSettler/models"
	"time"
)

// ErrNotFound is returned by lookups that matched nothing. Callers treat it as
// "not resolvable yet", not as a failure.
var ErrNotFound = errors.New("record not found")

// ExternalIDField names a provider id column on the games table.
type ExternalIDField string

const (
	FieldNhlID       ExternalIDField = "nhl_id"
	FieldMlbID       ExternalIDField = "mlb_id"
	FieldEspnID      ExternalIDField = "espn_id"
	FieldOddsEventID ExternalIDField = "odds_event_id"
)

type GameRepository interface {
	ByID(id uint) (*models.Game, error)
	ByExternalID(field ExternalIDField, value string) (*models.Game, error)
	ByExternalIDAndSport(field ExternalIDField, value string, sport string) (*models.Game, error)
}

// PredictionFilter narrows reconciliation queries. Zero values mean "no filter".
type PredictionFilter struct {
	Statuses []string
	Sport    string
	From     *time.Time
	To       *time.Time
	Limit    int
}

type PredictionRepository interface {
	PendingPage(offset, limit int) ([]models.Prediction, error)
	CountByStatus(status string) (int64, error)
	CountCompletedWithResult(result string) (int64, error)
	Filtered(filter PredictionFilter) ([]models.Prediction, error)
	// CompletedLegMatch joins a parlay leg to its prediction by field equality.
	// When several rows match, the lowest id wins.
	CompletedLegMatch(parlayID uint, selection, betType string, threshold float64) (*models.Prediction, error)
	Save(p *models.Prediction) error
}

type ParlayRepository interface {
	PendingParlays() ([]models.Parlay, error)
	LegsByParlay(parlayID uint) ([]models.ParlayLeg, error)
	SaveParlay(p *models.Parlay) error
	SaveLeg(l *models.ParlayLeg) error
}

type ErrorLogRepository interface {
	Log(source, message string) error
}
