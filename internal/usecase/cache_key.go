package usecase

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

const (
	keyCountries      = "countries"
	keySeries         = "series"
	keySeriesInfo     = "series-info"
	keyMatches        = "matches"
	keyCurrentMatches = "current-matches"
	keyMatchInfo      = "match-info"
	keyMatchScorecard = "match-scorecard"
	keyPlayers        = "players"
	keyPlayerInfo     = "player-info"
)

// cacheKey joins a resource name and its parameters with ':'.
func cacheKey(resource string, parts ...string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(resource)
	for _, part := range parts {
		_ = buf.WriteByte(':')
		_, _ = buf.WriteString(part)
	}
	return buf.String()
}

// searchKey keys a list resource: the bare name when search is blank,
// otherwise "<resource>:search:<search>".
func searchKey(resource, search string) string {
	search = strings.TrimSpace(search)
	if search == "" {
		return resource
	}
	return cacheKey(resource, "search", search)
}
