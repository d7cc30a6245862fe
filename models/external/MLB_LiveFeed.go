package external

// MLB_LiveFeed is the statsapi.mlb.com live feed payload. One request carries both
// the game status and the full box score, so the adapter never needs a second call.
type MLB_LiveFeed struct {
	GamePk   int `json:"gamePk"`
	GameData struct {
		Status struct {
			AbstractGameState string `json:"abstractGameState"` // "Preview", "Live", "Final"
			DetailedState     string `json:"detailedState"`
		} `json:"status"`
		Teams struct {
			Home MLB_TeamInfo `json:"home"`
			Away MLB_TeamInfo `json:"away"`
		} `json:"teams"`
	} `json:"gameData"`
	LiveData struct {
		Boxscore struct {
			Teams struct {
				Home MLB_BoxTeam `json:"home"`
				Away MLB_BoxTeam `json:"away"`
			} `json:"teams"`
		} `json:"boxscore"`
	} `json:"liveData"`
}

type MLB_TeamInfo struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type MLB_BoxTeam struct {
	Team struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
	Players map[string]MLB_BoxPlayer `json:"players"` // keyed "ID<personId>"
}

type MLB_BoxPlayer struct {
	Person struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	} `json:"person"`
	Position struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
	Stats struct {
		Batting  MLB_BattingStats  `json:"batting"`
		Pitching MLB_PitchingStats `json:"pitching"`
	} `json:"stats"`
}

type MLB_BattingStats struct {
	AtBats      *int `json:"atBats"`
	Runs        *int `json:"runs"`
	Hits        *int `json:"hits"`
	Doubles     *int `json:"doubles"`
	Triples     *int `json:"triples"`
	HomeRuns    *int `json:"homeRuns"`
	RBI         *int `json:"rbi"`
	BaseOnBalls *int `json:"baseOnBalls"`
	StrikeOuts  *int `json:"strikeOuts"`
	StolenBases *int `json:"stolenBases"`
}

type MLB_PitchingStats struct {
	InningsPitched *string `json:"inningsPitched"` // "6.2"
	Hits           *int    `json:"hits"`
	EarnedRuns     *int    `json:"earnedRuns"`
	BaseOnBalls    *int    `json:"baseOnBalls"`
	StrikeOuts     *int    `json:"strikeOuts"`
	Outs           *int    `json:"outs"`
}
