package statService

import "testing"

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		sport    string
		statKey  string
		expected string
		ok       bool
	}{
		{SportHockey, "sog", StatShotsOnGoal, true},
		{SportHockey, "Player Points", StatPoints, true},
		{SportHockey, "ppp", StatPowerPlayPoints, true},
		{SportHockey, "goalie_saves", StatSaves, true},
		{SportBaseball, "tb", StatTotalBases, true},
		{SportBaseball, "Runs Batted In", StatRBIs, true},
		{SportBaseball, "pitcher_ks", StatPitcherStrikeouts, true},
		{SportBasketball, "PTS", StatBasketPoints, true},
		{SportBasketball, "3pt", StatThreesMade, true},
		{SportBasketball, "points_rebounds_assists", StatPointsRebsAssists, true},
		{SportBasketball, "  rebounds  ", StatRebounds, true},
		{SportHockey, "batting_average", "", false},
		{SportBasketball, "sog", "", false},
		{"cricket", "runs", "", false},
	}

	for _, tt := range tests {
		got, ok := CanonicalKey(tt.sport, tt.statKey)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("CanonicalKey(%s, %q) = (%q, %v), expected (%q, %v)",
				tt.sport, tt.statKey, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestCanonicalKey_CanonicalFormsAreFixpoints(t *testing.T) {
	for sport, aliases := range aliasesBySport {
		for _, canonical := range aliases {
			got, ok := CanonicalKey(sport, canonical)
			if !ok || got != canonical {
				t.Errorf("%s: canonical key %q must map to itself, got (%q, %v)", sport, canonical, got, ok)
			}
		}
	}
}
