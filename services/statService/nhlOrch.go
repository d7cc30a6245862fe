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

const nhlBoxscoreUrl = "https://api-web.nhle.com/v1/gamecenter/%s/boxscore"

// NHLAdapter settles hockey props from the NHL api-web gamecenter boxscore.
type NHLAdapter struct {
	Cache *cacheService.PayloadCache
	Log   *slog.Logger
}

func (a *NHLAdapter) Sport() string {
	return SportHockey
}

func (a *NHLAdapter) GetStat(ctx context.Context, externalGameID, playerName, statKey, extraHint string) (float64, error) {
	canonical, ok := CanonicalKey(SportHockey, statKey)
	if !ok {
		return 0, fmt.Errorf("%w: unknown hockey stat key %q", ErrStatUnavailable, statKey)
	}

	payload, err := fetchPayload(ctx, a.Cache, "nhl:"+externalGameID, fmt.Sprintf(nhlBoxscoreUrl, externalGameID))
	if err != nil {
		a.Log.Warn("nhl boxscore fetch failed", "gameID", externalGameID, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrStatUnavailable, err)
	}

	var box external.NHL_Boxscore
	if err := json.Unmarshal(payload, &box); err != nil {
		return 0, fmt.Errorf("%w: bad nhl payload: %v", ErrStatUnavailable, err)
	}

	// Never settle from a live or future box score.
	state := strings.ToUpper(box.GameState)
	if state != "OFF" && state != "FINAL" {
		return 0, fmt.Errorf("%w: nhl game %s not final (state %s)", ErrStatUnavailable, externalGameID, box.GameState)
	}

	if canonical == StatSaves || canonical == StatGoalsAgainst {
		goalies := append(box.PlayerByGameStats.HomeTeam.Goalies, box.PlayerByGameStats.AwayTeam.Goalies...)
		names := make([]string, len(goalies))
		for i, g := range goalies {
			names[i] = g.Name.Default
		}
		idx := BestMatch(names, playerName)
		if idx < 0 {
			return 0, fmt.Errorf("%w: goalie %q not in nhl boxscore %s", ErrStatUnavailable, playerName, externalGameID)
		}
		return statFromGoalie(goalies[idx], canonical)
	}

	skaters := allSkaters(box)
	names := make([]string, len(skaters))
	for i, s := range skaters {
		names[i] = s.Name.Default
	}
	idx := BestMatch(names, playerName)
	if idx < 0 {
		return 0, fmt.Errorf("%w: player %q not in nhl boxscore %s", ErrStatUnavailable, playerName, externalGameID)
	}
	return statFromSkater(skaters[idx], canonical)
}

func allSkaters(box external.NHL_Boxscore) []external.NHL_Skater {
	var skaters []external.NHL_Skater
	skaters = append(skaters, box.PlayerByGameStats.HomeTeam.Forwards...)
	skaters = append(skaters, box.PlayerByGameStats.HomeTeam.Defense...)
	skaters = append(skaters, box.PlayerByGameStats.AwayTeam.Forwards...)
	skaters = append(skaters, box.PlayerByGameStats.AwayTeam.Defense...)
	return skaters
}

func statFromSkater(s external.NHL_Skater, canonical string) (float64, error) {
	switch canonical {
	case StatGoals:
		return float64(s.Goals), nil
	case StatAssists:
		return float64(s.Assists), nil
	case StatPoints:
		// the boxscore does not expose points directly
		return float64(s.Goals + s.Assists), nil
	case StatShotsOnGoal:
		return float64(s.Shots), nil
	case StatHitsDelivered:
		return float64(s.Hits), nil
	case StatBlockedShots:
		return float64(s.BlockedShots), nil
	case StatPenaltyMinutes:
		return float64(s.PIM), nil
	case StatPowerPlayPoints:
		// The boxscore carries power-play goals but not power-play assists. With
		// zero PP goals and zero assists of any kind the total must be zero;
		// anything else could hide a PP assist, so refuse to guess.
		if s.PowerPlayGoals == 0 && s.Assists == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: power-play points not fully derivable for %s", ErrStatUnavailable, s.Name.Default)
	}
	return 0, fmt.Errorf("%w: stat %q not a skater stat", ErrStatUnavailable, canonical)
}

func statFromGoalie(g external.NHL_Goalie, canonical string) (float64, error) {
	switch canonical {
	case StatGoalsAgainst:
		return float64(g.GoalsAgainst), nil
	case StatSaves:
		// "24/26" -> 24
		parts := strings.SplitN(g.SaveShotsAgainst, "/", 2)
		saves, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, fmt.Errorf("%w: unparseable saves %q for %s", ErrStatUnavailable, g.SaveShotsAgainst, g.Name.Default)
		}
		return float64(saves), nil
	}
	return 0, fmt.Errorf("%w: stat %q not a goalie stat", ErrStatUnavailable, canonical)
}
