package match

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const yetToBat = "Yet to bat"

// InningsForTeam returns the innings scored by the team at teamIdx.
//
// The upstream links an innings to a team only through its free-text label,
// so each label is given to the team whose full name (or short name, as a
// whole word) appears in it; on overlap the longest matching name wins,
// which keeps "India A Inning 1" away from "India". A team no label names
// falls back to the score at its own position, unless that entry already
// belongs to someone else.
func InningsForTeam(m Match, teamIdx int) []Score {
	if teamIdx < 0 || len(m.Score) == 0 {
		return nil
	}

	owners := scoreOwners(m)
	out := make([]Score, 0, 2)
	for i, s := range m.Score {
		if owners[i] == teamIdx {
			out = append(out, s)
		}
	}
	if len(out) > 0 {
		return out
	}

	if teamIdx < len(m.Score) && owners[teamIdx] < 0 {
		return []Score{m.Score[teamIdx]}
	}
	return nil
}

// ScoreLine formats the team's innings, "Yet to bat" when there are none.
func ScoreLine(m Match, teamIdx int) string {
	return FormatScore(InningsForTeam(m, teamIdx))
}

// FormatScore renders innings as "r/w (o)" joined by " | ".
func FormatScore(scores []Score) string {
	if len(scores) == 0 {
		return yetToBat
	}
	parts := make([]string, 0, len(scores))
	for _, s := range scores {
		parts = append(parts, fmt.Sprintf("%d/%d (%s)", s.Runs, s.Wickets, strconv.FormatFloat(s.Overs, 'f', -1, 64)))
	}
	return strings.Join(parts, " | ")
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate renders an upstream date as "Jan 2, 2006". Input that does not
// parse is returned untouched.
func FormatDate(raw string) string {
	value := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}

func scoreOwners(m Match) []int {
	names := teamNames(m)
	owners := make([]int, len(m.Score))
	for i, s := range m.Score {
		owners[i] = -1
		best := 0
		label := strings.ToLower(s.Inning)
		for teamIdx, candidates := range names {
			for _, c := range candidates {
				if len(c.value) <= best || !c.matches(label) {
					continue
				}
				owners[i] = teamIdx
				best = len(c.value)
			}
		}
	}
	return owners
}

type teamName struct {
	value     string
	wholeWord bool
}

func (n teamName) matches(label string) bool {
	if !n.wholeWord {
		return strings.Contains(label, n.value)
	}
	for offset := 0; offset < len(label); {
		idx := strings.Index(label[offset:], n.value)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(n.value)
		if boundaryBefore(label, start) && boundaryAfter(label, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func teamNames(m Match) [][]teamName {
	out := make([][]teamName, len(m.Teams))
	for i, team := range m.Teams {
		team = strings.TrimSpace(team)
		if team == "" {
			continue
		}
		out[i] = append(out[i], teamName{value: strings.ToLower(team)})
		for _, info := range m.TeamInfo {
			if !strings.EqualFold(strings.TrimSpace(info.Name), team) {
				continue
			}
			if short := strings.TrimSpace(info.ShortName); short != "" {
				out[i] = append(out[i], teamName{value: strings.ToLower(short), wholeWord: true})
			}
			break
		}
	}
	return out
}

func boundaryBefore(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, pos int) bool {
	if pos >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
