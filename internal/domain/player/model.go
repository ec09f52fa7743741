package player

import "strings"

// Player is a list entry from the players endpoint.
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Info is a player profile. Every field besides ID and Name is optional
// upstream.
type Info struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Role         string `json:"role,omitempty"`
	BattingStyle string `json:"battingStyle,omitempty"`
	BowlingStyle string `json:"bowlingStyle,omitempty"`
	PlaceOfBirth string `json:"placeOfBirth,omitempty"`
	Country      string `json:"country,omitempty"`
	PlayerImg    string `json:"playerImg,omitempty"`
	Stats        []Stat `json:"stats,omitempty"`
}

// Stat is one career figure, e.g. batting / odi / runs / "4521".
type Stat struct {
	Function  string `json:"fn"`
	MatchType string `json:"matchtype"`
	Name      string `json:"stat"`
	Value     string `json:"value"`
}

// StatsFor returns the figures for one discipline ("batting", "bowling")
// and match type, matched case-insensitively.
func (i Info) StatsFor(function, matchType string) []Stat {
	out := make([]Stat, 0)
	for _, s := range i.Stats {
		if strings.EqualFold(strings.TrimSpace(s.Function), function) &&
			strings.EqualFold(strings.TrimSpace(s.MatchType), matchType) {
			out = append(out, s)
		}
	}
	return out
}
