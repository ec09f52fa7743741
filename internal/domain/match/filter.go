package match

import "strings"

// Tab selects one of the match list views.
type Tab string

const (
	TabLive     Tab = "live"
	TabUpcoming Tab = "upcoming"
	TabRecent   Tab = "recent"
)

// ParseTab maps user input to a Tab. Anything unrecognised is TabRecent.
func ParseTab(raw string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(raw))) {
	case TabLive:
		return TabLive
	case TabUpcoming:
		return TabUpcoming
	default:
		return TabRecent
	}
}

// InTab reports whether m belongs on tab.
func InTab(m Match, tab Tab) bool {
	switch tab {
	case TabLive:
		return IsLive(m.Status)
	case TabUpcoming:
		return IsUpcoming(m.Status)
	default:
		return IsRecent(m)
	}
}

// Filter keeps the matches on tab whose name, series id, venue or a team
// contains query (case-insensitive). A blank query keeps every match on
// the tab. Input order is preserved.
func Filter(matches []Match, tab Tab, query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if !InTab(m, tab) {
			continue
		}
		if q != "" && !matchesQuery(m, q) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesQuery(m Match, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.SeriesID), q) ||
		strings.Contains(strings.ToLower(m.Venue), q) {
		return true
	}
	for _, team := range m.Teams {
		if strings.Contains(strings.ToLower(team), q) {
			return true
		}
	}
	return false
}
