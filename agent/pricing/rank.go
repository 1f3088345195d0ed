package pricing

import (
	"sort"

	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
)

// Rank returns the offers sorted ascending by price. The sort is stable:
// ties keep their original candidate order. The input slice is not mutated.
// An empty input yields an empty (non-nil) ranking.
func Rank(offers []contractx.Offer) []contractx.Offer {
	ranked := make([]contractx.Offer, len(offers))
	copy(ranked, offers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price < ranked[j].Price
	})
	return ranked
}

// BestDeal returns the lowest-priced offer of an already-ranked list.
// The second return is false for an empty ranking.
func BestDeal(ranked []contractx.Offer) (contractx.Offer, bool) {
	if len(ranked) == 0 {
		return contractx.Offer{}, false
	}
	return ranked[0], true
}
