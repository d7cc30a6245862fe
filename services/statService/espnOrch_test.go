package statService

import (
	"encoding/json"
	"errors"
	"fmt"
	"propSettler/models/external"
	"testing"
)

var nbaKeys = []string{
	"minutes",
	"fieldGoalsMade-fieldGoalsAttempted",
	"threePointFieldGoalsMade-threePointFieldGoalsAttempted",
	"rebounds",
	"assists",
	"steals",
	"blocks",
	"turnovers",
	"points",
}

var tatumRow = []string{"36", "10-21", "5-12", "8", "4", "1", "0", "2", "27"}

func TestStatFromColumns(t *testing.T) {
	tests := []struct {
		canonical string
		expected  float64
	}{
		{StatBasketPoints, 27},
		{StatRebounds, 8},
		{StatBasketAssists, 4},
		{StatSteals, 1},
		{StatBlocks, 0},
		{StatTurnovers, 2},
		// made-attempted column "5-12" reads as 5 made
		{StatThreesMade, 5},
		// derived: 27 + 8 + 4
		{StatPointsRebsAssists, 39},
	}

	for _, tt := range tests {
		got, err := statFromColumns(nbaKeys, tatumRow, tt.canonical, "Jayson Tatum")
		if err != nil {
			t.Errorf("statFromColumns(%s) returned error: %v", tt.canonical, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("statFromColumns(%s) = %g, expected %g", tt.canonical, got, tt.expected)
		}
	}
}

func TestStatFromColumns_MissingColumn(t *testing.T) {
	keys := []string{"minutes", "points"}
	stats := []string{"12", "6"}

	if _, err := statFromColumns(keys, stats, StatRebounds, "Bench Player"); !errors.Is(err, ErrStatUnavailable) {
		t.Errorf("expected ErrStatUnavailable for absent column, got %v", err)
	}
	// pra is only as available as its weakest component
	if _, err := statFromColumns(keys, stats, StatPointsRebsAssists, "Bench Player"); !errors.Is(err, ErrStatUnavailable) {
		t.Errorf("expected ErrStatUnavailable for pra with missing component, got %v", err)
	}
}

func TestStatFromColumns_ShortStatsRow(t *testing.T) {
	// DNP-adjacent rows sometimes ship fewer cells than the keys row
	if _, err := statFromColumns(nbaKeys, []string{"0"}, StatBasketPoints, "Garbage Time"); !errors.Is(err, ErrStatUnavailable) {
		t.Errorf("expected ErrStatUnavailable for truncated stats row, got %v", err)
	}
}

func TestStatFromColumns_UnparseableValue(t *testing.T) {
	keys := []string{"points"}
	stats := []string{"--"}

	if _, err := statFromColumns(keys, stats, StatBasketPoints, "Jayson Tatum"); !errors.Is(err, ErrStatUnavailable) {
		t.Errorf("expected ErrStatUnavailable for unparseable cell, got %v", err)
	}
}

func TestEspnPlayerRow_ExactMatchBeatsCrossRosterLastName(t *testing.T) {
	// Justin Holiday's team box comes first; an exact match for Jrue on the
	// second roster must still win over the shared last name on the first.
	payload := `{"boxscore":{"players":[
		{"statistics":[{"keys":["points"],"athletes":[
			{"athlete":{"displayName":"Justin Holiday"},"stats":["4"]}]}]},
		{"statistics":[{"keys":["points"],"athletes":[
			{"athlete":{"displayName":"Jrue Holiday"},"stats":["18"]}]}]}
	]}}`
	var summary external.ESPN_Summary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}

	keys, stats, ok := espnPlayerRow(summary, "Jrue Holiday")
	if !ok {
		t.Fatal("expected a player row")
	}
	if len(keys) != 1 || keys[0] != "points" {
		t.Fatalf("unexpected keys: %v", keys)
	}
	if len(stats) != 1 || stats[0] != "18" {
		t.Errorf("matched the wrong roster's Holiday: stats %v", stats)
	}
}

func TestEspnPlayerRow_SkipsDidNotPlay(t *testing.T) {
	payload := `{"boxscore":{"players":[
		{"statistics":[{"keys":["points"],"athletes":[
			{"athlete":{"displayName":"Jayson Tatum"},"didNotPlay":true,"stats":[]}]}]}
	]}}`
	var summary external.ESPN_Summary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}

	if _, _, ok := espnPlayerRow(summary, "Jayson Tatum"); ok {
		t.Error("DNP row must not be matchable")
	}
}

func summaryWithStatus(t *testing.T, name string, completed bool) external.ESPN_Summary {
	t.Helper()
	payload := fmt.Sprintf(`{"header":{"competitions":[{"status":{"type":{"name":%q,"completed":%v}}}]}}`,
		name, completed)
	var summary external.ESPN_Summary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}
	return summary
}

func TestEspnGameFinal(t *testing.T) {
	if espnGameFinal(external.ESPN_Summary{}) {
		t.Error("summary without competitions must not read as final")
	}
	if espnGameFinal(summaryWithStatus(t, "STATUS_IN_PROGRESS", false)) {
		t.Error("in-progress game must not read as final")
	}
	if !espnGameFinal(summaryWithStatus(t, "STATUS_FINAL", false)) {
		t.Error("STATUS_FINAL must read as final")
	}
	if !espnGameFinal(summaryWithStatus(t, "", true)) {
		t.Error("completed flag must read as final")
	}
}
