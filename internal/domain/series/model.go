package series

import "github.com/riskibarqy/cricket-scores/internal/domain/match"

// Series is a tournament or tour as listed by the upstream. The counts are
// the number of fixtures per format.
type Series struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	ODI       int    `json:"odi"`
	T20       int    `json:"t20"`
	Test      int    `json:"test"`
	Squads    int    `json:"squads"`
	Matches   int    `json:"matches"`
}

// Detail is the series header returned by series_info. The upstream spells
// the date keys in lower case here.
type Detail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startdate"`
	EndDate   string `json:"enddate"`
	ODI       int    `json:"odi"`
	T20       int    `json:"t20"`
	Test      int    `json:"test"`
	Squads    int    `json:"squads"`
	Matches   int    `json:"matches"`
}

type Info struct {
	Info      Detail        `json:"info"`
	MatchList []match.Match `json:"matchList"`
}

// Series converts the header into the list shape.
func (d Detail) Series() Series {
	return Series{
		ID:        d.ID,
		Name:      d.Name,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		ODI:       d.ODI,
		T20:       d.T20,
		Test:      d.Test,
		Squads:    d.Squads,
		Matches:   d.Matches,
	}
}
