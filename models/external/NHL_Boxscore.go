package external

// NHL_Boxscore is the api-web.nhle.com gamecenter boxscore payload, trimmed to the
// fields settlement reads.
type NHL_Boxscore struct {
	ID        int    `json:"id"`
	Season    int    `json:"season"`
	GameType  int    `json:"gameType"`
	GameDate  string `json:"gameDate"`
	GameState string `json:"gameState"` // "FUT", "LIVE", "OFF", "FINAL"
	HomeTeam  struct {
		ID     int    `json:"id"`
		Abbrev string `json:"abbrev"`
		Score  int    `json:"score"`
	} `json:"homeTeam"`
	AwayTeam struct {
		ID     int    `json:"id"`
		Abbrev string `json:"abbrev"`
		Score  int    `json:"score"`
	} `json:"awayTeam"`
	PlayerByGameStats struct {
		HomeTeam NHL_TeamPlayers `json:"homeTeam"`
		AwayTeam NHL_TeamPlayers `json:"awayTeam"`
	} `json:"playerByGameStats"`
}

type NHL_TeamPlayers struct {
	Forwards []NHL_Skater `json:"forwards"`
	Defense  []NHL_Skater `json:"defense"`
	Goalies  []NHL_Goalie `json:"goalies"`
}

type NHL_Skater struct {
	PlayerID int `json:"playerId"`
	Name     struct {
		Default string `json:"default"`
	} `json:"name"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	PlusMinus      int    `json:"plusMinus"`
	PIM            int    `json:"pim"`
	Hits           int    `json:"hits"`
	PowerPlayGoals int    `json:"powerPlayGoals"`
	Shots          int    `json:"sog"`
	BlockedShots   int    `json:"blockedShots"`
	Shifts         int    `json:"shifts"`
	TOI            string `json:"toi"`
}

type NHL_Goalie struct {
	PlayerID int `json:"playerId"`
	Name     struct {
		Default string `json:"default"`
	} `json:"name"`
	SaveShotsAgainst string `json:"saveShotsAgainst"` // "24/26"
	GoalsAgainst     int    `json:"goalsAgainst"`
	TOI              string `json:"toi"`
}
