package match

// Match is one fixture as reported by the upstream API. Its category
// (live/upcoming/completed) is derived from Status, never from dates.
type Match struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	MatchType      string     `json:"matchType"`
	Status         string     `json:"status"`
	Venue          string     `json:"venue"`
	Date           string     `json:"date"`
	DateTimeGMT    string     `json:"dateTimeGMT"`
	Teams          []string   `json:"teams"`
	Score          []Score    `json:"score,omitempty"`
	SeriesID       string     `json:"series_id"`
	FantasyEnabled bool       `json:"fantasyEnabled"`
	ResultSet      bool       `json:"resultSet"`
	TeamInfo       []TeamInfo `json:"teamInfo,omitempty"`
}

// Score is one innings' running total. Inning is free text such as
// "India Inning 1" and is the only link back to a team.
type Score struct {
	Runs    int     `json:"r"`
	Wickets int     `json:"w"`
	Overs   float64 `json:"o"`
	Inning  string  `json:"inning"`
}

type TeamInfo struct {
	Name      string `json:"name"`
	ShortName string `json:"shortname"`
	Img       string `json:"img"`
}

// Team returns the team name at idx or a placeholder such as "Team 1".
func (m Match) Team(idx int) string {
	if idx >= 0 && idx < len(m.Teams) && m.Teams[idx] != "" {
		return m.Teams[idx]
	}
	return teamPlaceholder(idx)
}

func teamPlaceholder(idx int) string {
	switch idx {
	case 0:
		return "Team 1"
	case 1:
		return "Team 2"
	default:
		return "Team"
	}
}
