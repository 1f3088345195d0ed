package classify

import (
	"strings"

	catalogx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/catalog"
	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
)

// Rule maps a set of trigger keywords to a domain and a fixed candidate
// seller set. Rules are evaluated top to bottom; the first hit wins, so
// service rules stay ahead of product rules.
type Rule struct {
	Keywords   []string
	Domain     contractx.Domain
	Candidates []string
}

var rules = []Rule{
	{
		Keywords:   []string{"haircut"},
		Domain:     contractx.DomainService,
		Candidates: []string{catalogx.AgentUlta},
	},
	{
		Keywords:   []string{"repair", "screen"},
		Domain:     contractx.DomainService,
		Candidates: []string{catalogx.AgentUBreakiFix},
	},
	{
		Keywords:   []string{"iphone", "macbook"},
		Domain:     contractx.DomainProduct,
		Candidates: []string{catalogx.AgentWalmart, catalogx.AgentTarget, catalogx.AgentBestBuy},
	},
}

// Match is the outcome of a successful classification.
type Match struct {
	Domain     contractx.Domain
	Candidates []string
}

// Classify maps free-text intent to a domain and candidate seller set.
// The second return is false when no rule matched; that is a valid
// no-match result, not an error.
func Classify(query string) (Match, bool) {
	lowered := strings.ToLower(query)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				candidates := make([]string, len(rule.Candidates))
				copy(candidates, rule.Candidates)
				return Match{Domain: rule.Domain, Candidates: candidates}, true
			}
		}
	}
	return Match{}, false
}
