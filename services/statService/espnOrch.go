package statService

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"propSettler/models/external"
	"propSettler/services/cacheService"
	"strconv"
	"strings"
)

const nbaSummaryUrl = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba/summary?event=%s"

// espnColumns maps canonical basketball keys to the ESPN box-score column names.
var espnColumns = map[string]string{
	StatBasketPoints:  "points",
	StatRebounds:      "rebounds",
	StatBasketAssists: "assists",
	StatSteals:        "steals",
	StatBlocks:        "blocks",
	StatTurnovers:     "turnovers",
	StatThreesMade:    "threePointFieldGoalsMade-threePointFieldGoalsAttempted",
}

// ESPNBasketballAdapter settles basketball props from the ESPN NBA game summary.
// The box score is column oriented: a keys row names each column and every
// athlete carries a parallel slice of stat strings.
type ESPNBasketballAdapter struct {
	Cache *cacheService.PayloadCache
	Log   *slog.Logger
}

func (a *ESPNBasketballAdapter) Sport() string {
	return SportBasketball
}

func (a *ESPNBasketballAdapter) GetStat(ctx context.Context, externalGameID, playerName, statKey, extraHint string) (float64, error) {
	canonical, ok := CanonicalKey(SportBasketball, statKey)
	if !ok {
		return 0, fmt.Errorf("%w: unknown basketball stat key %q", ErrStatUnavailable, statKey)
	}

	payload, err := fetchPayload(ctx, a.Cache, "nba:"+externalGameID, fmt.Sprintf(nbaSummaryUrl, externalGameID))
	if err != nil {
		a.Log.Warn("espn summary fetch failed", "gameID", externalGameID, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrStatUnavailable, err)
	}

	var summary external.ESPN_Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return 0, fmt.Errorf("%w: bad espn payload: %v", ErrStatUnavailable, err)
	}

	if !espnGameFinal(summary) {
		return 0, fmt.Errorf("%w: espn game %s not final", ErrStatUnavailable, externalGameID)
	}

	keys, stats, ok := espnPlayerRow(summary, playerName)
	if !ok {
		return 0, fmt.Errorf("%w: player %q not in espn boxscore %s", ErrStatUnavailable, playerName, externalGameID)
	}
	return statFromColumns(keys, stats, canonical, playerName)
}

// espnPlayerRow finds the player's stat row. Candidates are pooled across both
// team boxes before matching, so an exact match on one roster always beats a
// looser match (shared last name) on the other.
func espnPlayerRow(summary external.ESPN_Summary, playerName string) (keys []string, stats []string, ok bool) {
	var names []string
	var rowKeys [][]string
	var rowStats [][]string
	for _, teamBox := range summary.Boxscore.Players {
		for _, statGroup := range teamBox.Statistics {
			for _, athlete := range statGroup.Athletes {
				if athlete.DidNotPlay {
					continue
				}
				names = append(names, athlete.Athlete.DisplayName)
				rowKeys = append(rowKeys, statGroup.Keys)
				rowStats = append(rowStats, athlete.Stats)
			}
		}
	}
	idx := BestMatch(names, playerName)
	if idx < 0 {
		return nil, nil, false
	}
	return rowKeys[idx], rowStats[idx], true
}

func espnGameFinal(summary external.ESPN_Summary) bool {
	if len(summary.Header.Competitions) == 0 {
		return false
	}
	status := summary.Header.Competitions[0].Status.Type
	return status.Completed || status.Name == "STATUS_FINAL"
}

func statFromColumns(keys []string, stats []string, canonical, playerName string) (float64, error) {
	if canonical == StatPointsRebsAssists {
		var total float64
		for _, part := range []string{StatBasketPoints, StatRebounds, StatBasketAssists} {
			v, err := statFromColumns(keys, stats, part, playerName)
			if err != nil {
				return 0, err
			}
			total += v
		}
		return total, nil
	}

	column, ok := espnColumns[canonical]
	if !ok {
		return 0, fmt.Errorf("%w: stat %q has no espn column", ErrStatUnavailable, canonical)
	}

	idx := -1
	for i, key := range keys {
		if key == column {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= len(stats) {
		return 0, fmt.Errorf("%w: column %q missing for %s", ErrStatUnavailable, column, playerName)
	}

	raw := stats[idx]
	// made-attempted columns read "5-12"
	if i := strings.Index(raw, "-"); i > 0 {
		raw = raw[:i]
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable value %q in column %q for %s", ErrStatUnavailable, stats[idx], column, playerName)
	}
	return value, nil
}
