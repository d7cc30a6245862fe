package statService

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"propSettler/models/external"
	"propSettler/services/cacheService"
	"sort"
	"strings"
)

const mlbLiveFeedUrl = "https://statsapi.mlb.com/api/v1.1/game/%s/feed/live"

// MLBAdapter settles baseball props from the MLB StatsAPI live feed, which
// carries the game status and the box score in a single payload.
type MLBAdapter struct {
	Cache *cacheService.PayloadCache
	Log   *slog.Logger
}

func (a *MLBAdapter) Sport() string {
	return SportBaseball
}

func (a *MLBAdapter) GetStat(ctx context.Context, externalGameID, playerName, statKey, extraHint string) (float64, error) {
	canonical, ok := CanonicalKey(SportBaseball, statKey)
	if !ok {
		return 0, fmt.Errorf("%w: unknown baseball stat key %q", ErrStatUnavailable, statKey)
	}

	payload, err := fetchPayload(ctx, a.Cache, "mlb:"+externalGameID, fmt.Sprintf(mlbLiveFeedUrl, externalGameID))
	if err != nil {
		a.Log.Warn("mlb live feed fetch failed", "gameID", externalGameID, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrStatUnavailable, err)
	}

	var feed external.MLB_LiveFeed
	if err := json.Unmarshal(payload, &feed); err != nil {
		return 0, fmt.Errorf("%w: bad mlb payload: %v", ErrStatUnavailable, err)
	}

	if feed.GameData.Status.AbstractGameState != "Final" {
		return 0, fmt.Errorf("%w: mlb game %s not final (state %s)", ErrStatUnavailable,
			externalGameID, feed.GameData.Status.AbstractGameState)
	}

	players := mlbCandidates(feed, extraHint)
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Person.FullName
	}
	idx := BestMatch(names, playerName)
	if idx < 0 {
		return 0, fmt.Errorf("%w: player %q not in mlb boxscore %s", ErrStatUnavailable, playerName, externalGameID)
	}
	player := players[idx]

	if isPitchingKey(canonical) {
		return statFromPitching(player.Stats.Pitching, player.Person.FullName, canonical)
	}
	return statFromBatting(player.Stats.Batting, player.Person.FullName, canonical)
}

// mlbCandidates flattens both rosters; when the hint names one team's
// abbreviation only that side is searched.
func mlbCandidates(feed external.MLB_LiveFeed, extraHint string) []external.MLB_BoxPlayer {
	hint := strings.ToUpper(strings.TrimSpace(extraHint))
	home := feed.LiveData.Boxscore.Teams.Home
	away := feed.LiveData.Boxscore.Teams.Away

	var players []external.MLB_BoxPlayer
	if hint == "" || hint == strings.ToUpper(home.Team.Abbreviation) {
		for _, p := range home.Players {
			players = append(players, p)
		}
	}
	if hint == "" || hint == strings.ToUpper(away.Team.Abbreviation) {
		for _, p := range away.Players {
			players = append(players, p)
		}
	}
	if len(players) == 0 {
		// hint matched neither side; better to search everyone than nobody
		for _, p := range home.Players {
			players = append(players, p)
		}
		for _, p := range away.Players {
			players = append(players, p)
		}
	}
	// map iteration order is random; sort so match-tier ties settle the same
	// player on every run
	sort.Slice(players, func(i, j int) bool {
		return players[i].Person.ID < players[j].Person.ID
	})
	return players
}

func isPitchingKey(canonical string) bool {
	switch canonical {
	case StatPitcherStrikeouts, StatEarnedRuns, StatOutsRecorded, StatHitsAllowed, StatWalksAllowed:
		return true
	}
	return false
}

func statFromBatting(b external.MLB_BattingStats, playerName, canonical string) (float64, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s has no %s in box score (did not bat?)", ErrStatUnavailable, playerName, field)
	}

	switch canonical {
	case StatHits:
		if b.Hits == nil {
			return 0, missing("hits")
		}
		return float64(*b.Hits), nil
	case StatHomeRuns:
		if b.HomeRuns == nil {
			return 0, missing("home runs")
		}
		return float64(*b.HomeRuns), nil
	case StatRBIs:
		if b.RBI == nil {
			return 0, missing("rbi")
		}
		return float64(*b.RBI), nil
	case StatRuns:
		if b.Runs == nil {
			return 0, missing("runs")
		}
		return float64(*b.Runs), nil
	case StatWalks:
		if b.BaseOnBalls == nil {
			return 0, missing("walks")
		}
		return float64(*b.BaseOnBalls), nil
	case StatStrikeouts:
		if b.StrikeOuts == nil {
			return 0, missing("strikeouts")
		}
		return float64(*b.StrikeOuts), nil
	case StatStolenBases:
		if b.StolenBases == nil {
			return 0, missing("stolen bases")
		}
		return float64(*b.StolenBases), nil
	case StatTotalBases:
		// TB = singles + 2*2B + 3*3B + 4*HR, i.e. hits + doubles + 2*triples + 3*HR
		if b.Hits == nil || b.Doubles == nil || b.Triples == nil || b.HomeRuns == nil {
			return 0, missing("total-base components")
		}
		return float64(*b.Hits + *b.Doubles + 2**b.Triples + 3**b.HomeRuns), nil
	}
	return 0, fmt.Errorf("%w: stat %q not a batting stat", ErrStatUnavailable, canonical)
}

func statFromPitching(p external.MLB_PitchingStats, playerName, canonical string) (float64, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s has no %s in box score (did not pitch?)", ErrStatUnavailable, playerName, field)
	}

	switch canonical {
	case StatPitcherStrikeouts:
		if p.StrikeOuts == nil {
			return 0, missing("strikeouts")
		}
		return float64(*p.StrikeOuts), nil
	case StatEarnedRuns:
		if p.EarnedRuns == nil {
			return 0, missing("earned runs")
		}
		return float64(*p.EarnedRuns), nil
	case StatOutsRecorded:
		if p.Outs == nil {
			return 0, missing("outs")
		}
		return float64(*p.Outs), nil
	case StatHitsAllowed:
		if p.Hits == nil {
			return 0, missing("hits allowed")
		}
		return float64(*p.Hits), nil
	case StatWalksAllowed:
		if p.BaseOnBalls == nil {
			return 0, missing("walks allowed")
		}
		return float64(*p.BaseOnBalls), nil
	}
	return 0, fmt.Errorf("%w: stat %q not a pitching stat", ErrStatUnavailable, canonical)
}
