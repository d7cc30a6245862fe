package statService

import "strings"

// Canonical stat keys per sport. Upstream pick generators have shipped several
// generations of key names; everything funnels through these tables before an
// adapter touches a provider payload.

const (
	// hockey
	StatGoals           = "goals"
	StatAssists         = "assists"
	StatPoints          = "points" // derived: goals + assists
	StatShotsOnGoal     = "shots_on_goal"
	StatHitsDelivered   = "hits_delivered"
	StatBlockedShots    = "blocked_shots"
	StatPowerPlayPoints = "power_play_points" // partially derivable, see NHL adapter
	StatPenaltyMinutes  = "penalty_minutes"
	StatSaves           = "saves"
	StatGoalsAgainst    = "goals_against"

	// baseball
	StatHits              = "hits"
	StatHomeRuns          = "home_runs"
	StatRBIs              = "rbis"
	StatRuns              = "runs"
	StatWalks             = "walks"
	StatStrikeouts        = "strikeouts"
	StatStolenBases       = "stolen_bases"
	StatTotalBases        = "total_bases" // derived from hit components
	StatPitcherStrikeouts = "pitcher_strikeouts"
	StatEarnedRuns        = "earned_runs"
	StatOutsRecorded      = "outs_recorded"
	StatHitsAllowed       = "hits_allowed"
	StatWalksAllowed      = "walks_allowed"

	// basketball (sharing spellings with hockey is fine, alias tables are
	// namespaced by sport)
	StatBasketPoints      = "points"
	StatRebounds          = "rebounds"
	StatBasketAssists     = "assists"
	StatThreesMade        = "three_pointers_made"
	StatSteals            = "steals"
	StatBlocks            = "blocks"
	StatTurnovers         = "turnovers"
	StatPointsRebsAssists = "pra" // derived: points + rebounds + assists
)

var hockeyAliases = map[string]string{
	"goal":              StatGoals,
	"goals":             StatGoals,
	"assist":            StatAssists,
	"assists":           StatAssists,
	"points":            StatPoints,
	"player_points":     StatPoints,
	"pts":               StatPoints,
	"shots":             StatShotsOnGoal,
	"sog":               StatShotsOnGoal,
	"shots_on_goal":     StatShotsOnGoal,
	"hits":              StatHitsDelivered,
	"hits_delivered":    StatHitsDelivered,
	"blocks":            StatBlockedShots,
	"blocked_shots":     StatBlockedShots,
	"ppp":               StatPowerPlayPoints,
	"power_play_points": StatPowerPlayPoints,
	"pim":               StatPenaltyMinutes,
	"penalty_minutes":   StatPenaltyMinutes,
	"saves":             StatSaves,
	"goalie_saves":      StatSaves,
	"goals_against":     StatGoalsAgainst,
}

var baseballAliases = map[string]string{
	"hits":                StatHits,
	"batter_hits":         StatHits,
	"hr":                  StatHomeRuns,
	"homers":              StatHomeRuns,
	"home_runs":           StatHomeRuns,
	"rbi":                 StatRBIs,
	"rbis":                StatRBIs,
	"runs_batted_in":      StatRBIs,
	"runs":                StatRuns,
	"runs_scored":         StatRuns,
	"bb":                  StatWalks,
	"walks":               StatWalks,
	"batter_walks":        StatWalks,
	"so":                  StatStrikeouts,
	"strikeouts":          StatStrikeouts,
	"batter_strikeouts":   StatStrikeouts,
	"sb":                  StatStolenBases,
	"stolen_bases":        StatStolenBases,
	"tb":                  StatTotalBases,
	"bases":               StatTotalBases,
	"total_bases":         StatTotalBases,
	"ks":                  StatPitcherStrikeouts,
	"pitcher_ks":          StatPitcherStrikeouts,
	"pitcher_strikeouts":  StatPitcherStrikeouts,
	"strikeouts_pitched":  StatPitcherStrikeouts,
	"earned_runs":         StatEarnedRuns,
	"outs":                StatOutsRecorded,
	"outs_recorded":       StatOutsRecorded,
	"pitching_outs":       StatOutsRecorded,
	"hits_allowed":        StatHitsAllowed,
	"walks_allowed":       StatWalksAllowed,
	"pitcher_walks":       StatWalksAllowed,
}

var basketballAliases = map[string]string{
	"pts":                     StatBasketPoints,
	"points":                  StatBasketPoints,
	"player_points":           StatBasketPoints,
	"reb":                     StatRebounds,
	"rebounds":                StatRebounds,
	"total_rebounds":          StatRebounds,
	"ast":                     StatBasketAssists,
	"assists":                 StatBasketAssists,
	"3pt":                     StatThreesMade,
	"threes":                  StatThreesMade,
	"threes_made":             StatThreesMade,
	"three_pointers":          StatThreesMade,
	"three_pointers_made":     StatThreesMade,
	"stl":                     StatSteals,
	"steals":                  StatSteals,
	"blk":                     StatBlocks,
	"blocks":                  StatBlocks,
	"to":                      StatTurnovers,
	"turnovers":               StatTurnovers,
	"pra":                     StatPointsRebsAssists,
	"points_rebounds_assists": StatPointsRebsAssists,
}

var aliasesBySport = map[string]map[string]string{
	SportHockey:     hockeyAliases,
	SportBaseball:   baseballAliases,
	SportBasketball: basketballAliases,
}

// CanonicalKey maps any historical alias of a stat key to its canonical form for
// the given sport. Unknown keys report false.
func CanonicalKey(sport, statKey string) (string, bool) {
	aliases, ok := aliasesBySport[sport]
	if !ok {
		return "", false
	}
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(statKey)), " ", "_")
	canonical, ok := aliases[key]
	return canonical, ok
}
