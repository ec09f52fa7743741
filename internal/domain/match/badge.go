package match

import "strings"

const (
	badgeRed    = "#dc2626"
	badgeBlue   = "#2563eb"
	badgeGreen  = "#16a34a"
	badgeOrange = "#f97316"
	badgeGray   = "#6b7280"
)

var badgeRules = []struct {
	keywords []string
	color    string
}{
	{keywords: []string{"test", "first class", "first-class"}, color: badgeRed},
	{keywords: []string{"odi", "list a"}, color: badgeBlue},
	{keywords: []string{"t20"}, color: badgeGreen},
	{keywords: []string{"t10"}, color: badgeOrange},
}

// TypeBadgeColor maps a match format to its badge colour. Formats are
// matched by substring in rule order, so "Women's T20" is green and
// "Youth ODI" blue.
func TypeBadgeColor(matchType string) string {
	lower := strings.ToLower(strings.TrimSpace(matchType))
	if lower == "" {
		return badgeGray
	}
	for _, rule := range badgeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.color
			}
		}
	}
	return badgeGray
}
