package match

// Scorecard extends a match with per-innings batting and bowling detail.
// Only some matches have one; a missing scorecard is not an error.
type Scorecard struct {
	Match
	TPIScore string            `json:"tpiScore,omitempty"`
	Innings  []ScorecardInning `json:"scorecard"`
}

type ScorecardInning struct {
	Inning       string         `json:"inning"`
	BattingOrder []string       `json:"battingOrder,omitempty"`
	Batting      []BattingEntry `json:"batting"`
	Bowling      []BowlingEntry `json:"bowling"`
	Extras       *Extras        `json:"extras,omitempty"`
	TotalRuns    int            `json:"totalRuns,omitempty"`
	TotalWickets int            `json:"totalWickets,omitempty"`
	TotalOvers   float64        `json:"totalOvers,omitempty"`
	Equation     string         `json:"equation,omitempty"`
}

type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BattingEntry struct {
	Batsman       PlayerRef `json:"batsman"`
	Dismissal     string    `json:"dismissal"`
	DismissalText string    `json:"dismissal-text"`
	Runs          int       `json:"r"`
	Balls         int       `json:"b"`
	Fours         int       `json:"4s"`
	Sixes         int       `json:"6s"`
	StrikeRate    float64   `json:"sr"`
}

type BowlingEntry struct {
	Bowler  PlayerRef `json:"bowler"`
	Overs   float64   `json:"o"`
	Maidens int       `json:"m"`
	Runs    int       `json:"r"`
	Wickets int       `json:"w"`
	Economy float64   `json:"eco"`
	Dots    int       `json:"0s,omitempty"`
	Fours   int       `json:"4s,omitempty"`
	Sixes   int       `json:"6s,omitempty"`
	Wides   int       `json:"wd,omitempty"`
	NoBalls int       `json:"nb,omitempty"`
}

type Extras struct {
	Runs    int `json:"r"`
	Byes    int `json:"b,omitempty"`
	LegByes int `json:"lb,omitempty"`
	Wides   int `json:"w,omitempty"`
	NoBalls int `json:"nb,omitempty"`
	Penalty int `json:"p,omitempty"`
}

// Total returns the innings total, summing batting runs and extras when
// the upstream left TotalRuns empty.
func (i ScorecardInning) Total() int {
	if i.TotalRuns > 0 {
		return i.TotalRuns
	}
	total := 0
	for _, b := range i.Batting {
		total += b.Runs
	}
	if i.Extras != nil {
		total += i.Extras.Runs
	}
	return total
}
