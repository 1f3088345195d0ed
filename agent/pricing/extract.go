package pricing

import (
	"regexp"
	"strconv"
	"strings"

	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
)

// Currency token: leading dollar marker, 1-5 integer digits, optional
// thousands group, optional exactly-two-digit fraction.
var currencyPattern = regexp.MustCompile(`\$(\d{1,5}(?:,\d{3})?(?:\.\d{2})?)`)

// Plausibility floors per domain. Negotiation text mentions turn counts,
// discount amounts, and slot times near dollar markers; values below the
// floor are treated as incidental, not quoted prices.
const (
	serviceFloor = 20
	productFloor = 100
)

// ExtractPrice scans free text for the most plausible quoted price.
//
// The largest surviving value wins: in an adversarial back-and-forth the
// biggest number mentioned is taken as the seller's current anchor. This is
// a heuristic, not a guarantee; ceiling phrases like "under $900" can
// outrank a genuinely lower quote.
func ExtractPrice(text string, domain contractx.Domain) (float64, bool) {
	matches := currencyPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return 0, false
	}

	floor := float64(productFloor)
	if domain == contractx.DomainService {
		floor = serviceFloor
	}

	var filtered []float64
	for _, v := range values {
		if v >= floor {
			filtered = append(filtered, v)
		}
	}

	// Never fail outright once a currency-shaped token existed.
	if len(filtered) == 0 {
		filtered = values
	}

	best := filtered[0]
	for _, v := range filtered[1:] {
		if v > best {
			best = v
		}
	}
	return best, true
}
