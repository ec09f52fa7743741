package player

import "testing"

func TestInfoStatsFor(t *testing.T) {
	info := Info{
		ID: "p1",
		Stats: []Stat{
			{Function: "batting", MatchType: "odi", Name: "runs", Value: "4521"},
			{Function: "batting", MatchType: "test", Name: "runs", Value: "210"},
			{Function: "bowling", MatchType: "odi", Name: "wkts", Value: "12"},
			{Function: " Batting", MatchType: "ODI", Name: "100s", Value: "9"},
		},
	}

	got := info.StatsFor("batting", "odi")
	if len(got) != 2 {
		t.Fatalf("unexpected stat count: got=%d want=2", len(got))
	}
	if got[0].Value != "4521" || got[1].Name != "100s" {
		t.Fatalf("unexpected stats: %+v", got)
	}
	if len(info.StatsFor("fielding", "odi")) != 0 {
		t.Fatalf("expected no fielding stats")
	}
}
