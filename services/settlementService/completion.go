package settlementService

import (
	"propSettler/models"
	"strings"
	"time"
)

// Statuses that mean a game is over, across every feed we've seen. Free public
// providers are not consistent about the wording.
var finalStatuses = map[string]bool{
	"final":        true,
	"completed":    true,
	"complete":     true,
	"f":            true,
	"closed":       true,
	"post":         true,
	"off":          true,
	"status_final": true,
}

// IsFinal reports whether a game has concluded: either its status is in the
// final vocabulary, or it was scheduled before yesterday 23:59:59. The date
// fallback covers providers that stop updating status fields; it accepts a small
// false-positive risk on postponed games in exchange for much higher coverage
// (the stat adapters re-check provider-side finality before settling).
func IsFinal(game *models.Game, now time.Time) bool {
	if finalStatuses[strings.ToLower(strings.TrimSpace(game.Status))] {
		return true
	}

	y, m, d := now.Date()
	endOfYesterday := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).Add(-time.Second)
	return game.ScheduledAt.Before(endOfYesterday)
}
