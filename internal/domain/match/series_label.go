package match

import "strings"

// OtherMatchesLabel groups matches whose name carries no series segment.
const OtherMatchesLabel = "Other Matches"

const nameSeparator = ", "

// Group is a run of matches sharing a series label.
type Group struct {
	SeriesName string
	Matches    []Match
}

// SeriesLabel derives a series name from a display name shaped like
// "Team1 vs Team2, <stage>, <series> <year>". Best effort: the name is
// free text and nothing guarantees that shape.
func SeriesLabel(m Match) string {
	parts := strings.Split(m.Name, nameSeparator)
	switch {
	case len(parts) >= 3:
		return strings.Join(parts[2:], nameSeparator)
	case len(parts) == 2:
		return parts[1]
	default:
		return OtherMatchesLabel
	}
}

// GroupBySeries partitions matches by SeriesLabel. Groups come out in the
// order their label is first seen; each group keeps input order.
func GroupBySeries(matches []Match) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, m := range matches {
		label := SeriesLabel(m)
		pos, ok := index[label]
		if !ok {
			pos = len(groups)
			index[label] = pos
			groups = append(groups, Group{SeriesName: label})
		}
		groups[pos].Matches = append(groups[pos].Matches, m)
	}

	return groups
}
