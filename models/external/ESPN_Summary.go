package external

// ESPN_Summary is the site.api.espn.com game summary payload. The box score is
// column oriented: Keys names each column and every athlete carries a parallel
// Stats slice of strings.
type ESPN_Summary struct {
	Header struct {
		ID           string `json:"id"`
		Competitions []struct {
			ID     string `json:"id"`
			Date   string `json:"date"`
			Status struct {
				Type struct {
					ID          string `json:"id"`
					Name        string `json:"name"` // e.g. "STATUS_FINAL"
					State       string `json:"state"`
					Completed   bool   `json:"completed"`
					Description string `json:"description"`
				} `json:"type"`
			} `json:"status"`
		} `json:"competitions"`
	} `json:"header"`
	Boxscore struct {
		Players []ESPN_PlayerBox `json:"players"`
	} `json:"boxscore"`
}

type ESPN_PlayerBox struct {
	Team struct {
		ID           string `json:"id"`
		Abbreviation string `json:"abbreviation"`
		DisplayName  string `json:"displayName"`
	} `json:"team"`
	Statistics []struct {
		Keys     []string       `json:"keys"`
		Labels   []string       `json:"labels"`
		Athletes []ESPN_Athlete `json:"athletes"`
	} `json:"statistics"`
}

type ESPN_Athlete struct {
	Athlete struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		ShortName   string `json:"shortName"`
	} `json:"athlete"`
	Starter    bool     `json:"starter"`
	DidNotPlay bool     `json:"didNotPlay"`
	Stats      []string `json:"stats"`
}
