package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is the display bucket a match status falls into.
type Category string

const (
	CategoryLive      Category = "live"
	CategoryUpcoming  Category = "upcoming"
	CategoryCompleted Category = "completed"
	// CategoryOther marks a status no rule recognises.
	CategoryOther Category = "other"
)

// StatusRule is one keyword of the classifier. An exclusion rule vetoes its
// category: when any exclusion keyword is present the category never
// applies, whatever inclusion keywords also appear.
type StatusRule struct {
	Keyword   string
	Category  Category
	Exclusion bool
}

// StatusRules is the classifier table. Keywords are lower case and match
// case-insensitively at the start of a word, so "scheduled" does not fire
// inside "rescheduled". A trailing space is part of the keyword ("day "
// must be followed by a space).
var StatusRules = []StatusRule{
	{Keyword: "won by", Category: CategoryLive, Exclusion: true},
	{Keyword: "match drawn", Category: CategoryLive, Exclusion: true},
	{Keyword: "no result", Category: CategoryLive, Exclusion: true},
	{Keyword: "abandoned", Category: CategoryLive, Exclusion: true},
	{Keyword: "match starts at", Category: CategoryLive, Exclusion: true},
	{Keyword: "scheduled", Category: CategoryLive, Exclusion: true},

	{Keyword: "live", Category: CategoryLive},
	{Keyword: "match started", Category: CategoryLive},
	{Keyword: "innings break", Category: CategoryLive},
	{Keyword: "day ", Category: CategoryLive},
	{Keyword: "session", Category: CategoryLive},
	{Keyword: "batting", Category: CategoryLive},
	{Keyword: "bowling", Category: CategoryLive},
	{Keyword: "lunch", Category: CategoryLive},
	{Keyword: "tea break", Category: CategoryLive},
	{Keyword: "stumps", Category: CategoryLive},
	{Keyword: "rain delay", Category: CategoryLive},
	{Keyword: "wet outfield", Category: CategoryLive},
	{Keyword: "toss", Category: CategoryLive},
	{Keyword: "elected to", Category: CategoryLive},
	{Keyword: "opt to", Category: CategoryLive},
	{Keyword: "trail by", Category: CategoryLive},
	{Keyword: "lead by", Category: CategoryLive},
	{Keyword: "need ", Category: CategoryLive},
	{Keyword: "require ", Category: CategoryLive},
	{Keyword: "break", Category: CategoryLive},

	{Keyword: "not started", Category: CategoryUpcoming},
	{Keyword: "scheduled", Category: CategoryUpcoming},
	{Keyword: "upcoming", Category: CategoryUpcoming},
	{Keyword: "match starts at", Category: CategoryUpcoming},
	{Keyword: "starts at", Category: CategoryUpcoming},

	{Keyword: "won by", Category: CategoryCompleted},
	{Keyword: "won the", Category: CategoryCompleted},
	{Keyword: "drawn", Category: CategoryCompleted},
	{Keyword: "draw", Category: CategoryCompleted},
	{Keyword: "tied", Category: CategoryCompleted},
	{Keyword: "no result", Category: CategoryCompleted},
	{Keyword: "abandoned", Category: CategoryCompleted},
	{Keyword: "match tied", Category: CategoryCompleted},
}

// Matches reports whether status belongs to category under StatusRules.
// Exclusions are evaluated before any inclusion.
func Matches(status string, category Category) bool {
	return matchesRules(StatusRules, status, category)
}

func matchesRules(rules []StatusRule, status string, category Category) bool {
	if strings.TrimSpace(status) == "" {
		return false
	}
	lower := strings.ToLower(status)

	for _, rule := range rules {
		if rule.Category == category && rule.Exclusion && containsKeyword(lower, rule.Keyword) {
			return false
		}
	}
	for _, rule := range rules {
		if rule.Category == category && !rule.Exclusion && containsKeyword(lower, rule.Keyword) {
			return true
		}
	}
	return false
}

func IsLive(status string) bool {
	return Matches(status, CategoryLive)
}

func IsUpcoming(status string) bool {
	return Matches(status, CategoryUpcoming)
}

func IsCompleted(status string) bool {
	return Matches(status, CategoryCompleted)
}

// Classify picks a single category. The predicates can overlap, so live
// wins over completed, and completed over upcoming.
func Classify(status string) Category {
	switch {
	case IsLive(status):
		return CategoryLive
	case IsCompleted(status):
		return CategoryCompleted
	case IsUpcoming(status):
		return CategoryUpcoming
	default:
		return CategoryOther
	}
}

// IsRecent is the "recent results" bucket: a completed status, or a match
// the upstream has flagged with a result.
func IsRecent(m Match) bool {
	return IsCompleted(m.Status) || m.ResultSet
}

func containsKeyword(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], keyword)
		if idx < 0 {
			return false
		}
		pos := offset + idx
		if pos == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:pos])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		offset = pos + 1
	}
	return false
}
