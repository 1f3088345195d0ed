package classify

import (
	"regexp"
	"strconv"
	"strings"

	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
)

var budgetPattern = regexp.MustCompile(`under\s+\$?(\d+)`)

// Location tokens in match-priority order; the first substring hit wins.
var knownLocations = []string{"nyc", "new york", "la", "los angeles", "chicago"}

var productItems = []string{"iphone", "galaxy", "pixel", "macbook"}

// ParseQuery derives the structured Query fields from raw text. The domain
// is set only when a classifier rule also matches; callers that got a
// no-match from Classify still receive the parsed constraints.
func ParseQuery(raw string) contractx.Query {
	lowered := strings.ToLower(raw)

	q := contractx.Query{Raw: raw}

	if m, ok := Classify(raw); ok {
		q.Domain = m.Domain
	}

	switch {
	case strings.Contains(lowered, "haircut"):
		q.Item = "haircut"
	case strings.Contains(lowered, "repair") || strings.Contains(lowered, "screen"):
		q.Item = "screen_repair"
	default:
		for _, item := range productItems {
			if strings.Contains(lowered, item) {
				q.Item = item
				break
			}
		}
	}

	if m := budgetPattern.FindStringSubmatch(lowered); m != nil {
		if budget, err := strconv.Atoi(m[1]); err == nil {
			q.Budget = budget
		}
	}

	for _, loc := range knownLocations {
		if strings.Contains(lowered, loc) {
			q.Location = loc
			break
		}
	}

	if strings.Contains(lowered, "pickup") {
		q.Delivery = "pickup"
	}

	return q
}
