package series

import (
	"sort"
	"strings"
	"time"
)

type Status string

const (
	StatusUpcoming  Status = "Upcoming"
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
	StatusUnknown   Status = "Unknown"
)

var fullDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
}

var yearlessLayouts = []string{
	"Jan 2",
	"January 2",
	"2 Jan",
}

// Valid reports whether a listing is usable: it needs a name and a start
// date.
func Valid(s Series) bool {
	return strings.TrimSpace(s.Name) != "" && strings.TrimSpace(s.StartDate) != ""
}

// StatusAt derives the series state at now. The end date counts as a whole
// day, so a series ending today is still ongoing.
func StatusAt(s Series, now time.Time) Status {
	start, end, ok := Window(s)
	if !ok {
		return StatusUnknown
	}
	switch {
	case now.Before(start):
		return StatusUpcoming
	case !now.Before(end):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

// Progress is the elapsed share of an ongoing series in [0, 1]. It is 0
// when the window is unknown.
func Progress(s Series, now time.Time) float64 {
	start, end, ok := Window(s)
	if !ok {
		return 0
	}
	total := end.Sub(start)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(start)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= total:
		return 1
	default:
		return float64(elapsed) / float64(total)
	}
}

// Window returns the [start, end) interval in UTC, end being midnight after
// the last day. End dates such as "Mar 13" carry no year: they take the
// start year, rolled forward when that lands before the start.
func Window(s Series) (time.Time, time.Time, bool) {
	start, ok := parseFull(s.StartDate)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	end, ok := parseFull(s.EndDate)
	if !ok {
		end, ok = parseYearless(s.EndDate, start)
		if !ok {
			return time.Time{}, time.Time{}, false
		}
	}

	return start, end.AddDate(0, 0, 1), true
}

// Format names the series format from its fixture counts.
func Format(s Series) string {
	formats := make([]string, 0, 3)
	if s.ODI > 0 {
		formats = append(formats, "ODI")
	}
	if s.T20 > 0 {
		formats = append(formats, "T20")
	}
	if s.Test > 0 {
		formats = append(formats, "Test")
	}

	switch len(formats) {
	case 0:
		return "Series"
	case 1:
		return formats[0]
	default:
		return "Mixed"
	}
}

// SortByStartDesc orders series most recent first. Unparseable start dates
// sink to the end; ties keep their input order.
func SortByStartDesc(items []Series) {
	sort.SliceStable(items, func(i, j int) bool {
		a, okA := parseFull(items[i].StartDate)
		b, okB := parseFull(items[j].StartDate)
		if okA != okB {
			return okA
		}
		return a.After(b)
	})
}

func parseFull(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range fullDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return dayStart(t), true
		}
	}
	return time.Time{}, false
}

func parseYearless(raw string, start time.Time) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range yearlessLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		end := time.Date(start.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if end.Before(start) {
			end = end.AddDate(1, 0, 0)
		}
		return end, true
	}
	return time.Time{}, false
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
