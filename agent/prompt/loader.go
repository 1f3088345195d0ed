package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/customer.txt
	customerRaw string

	//go:embed template/walmart.txt
	walmartRaw string

	//go:embed template/target.txt
	targetRaw string

	//go:embed template/bestbuy.txt
	bestbuyRaw string

	//go:embed template/ulta.txt
	ultaRaw string

	//go:embed template/ubreakifix.txt
	ubreakifixRaw string
)

// PromptSet holds the negotiation system prompts: one for the customer role
// and one per seller agent.
type PromptSet struct {
	Customer   string
	Walmart    string
	Target     string
	BestBuy    string
	Ulta       string
	UBreakiFix string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// Safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Customer:   strings.TrimSpace(customerRaw),
		Walmart:    strings.TrimSpace(walmartRaw),
		Target:     strings.TrimSpace(targetRaw),
		BestBuy:    strings.TrimSpace(bestbuyRaw),
		Ulta:       strings.TrimSpace(ultaRaw),
		UBreakiFix: strings.TrimSpace(ubreakifixRaw),
	}
}
