package cricapi

// envelope is the wrapper every endpoint returns. Data is a pointer so a
// JSON null (or a missing key) can be told apart from an empty list.
type envelope[T any] struct {
	APIKey string `json:"apikey,omitempty"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	Data   *T     `json:"data"`
	Info   Info   `json:"info"`
}

// Info carries the upstream's quota and paging counters.
type Info struct {
	HitsToday  int     `json:"hitsToday"`
	HitsUsed   int     `json:"hitsUsed"`
	HitsLimit  int     `json:"hitsLimit"`
	Credits    int     `json:"credits"`
	Server     int     `json:"server"`
	OffsetRows int     `json:"offsetRows"`
	TotalRows  int     `json:"totalRows"`
	QueryTime  float64 `json:"queryTime"`
}
