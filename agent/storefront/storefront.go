package storefront

import (
	"fmt"
	"strings"

	catalogx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/catalog"
)

// Storefront answers price/stock/inventory questions for one retail store
// without any AI involvement, straight from catalog data.
type Storefront struct {
	store catalogx.Store
}

func NewStorefront(store catalogx.Store) *Storefront {
	return &Storefront{store: store}
}

func (s *Storefront) Name() string     { return s.store.Name }
func (s *Storefront) Location() string { return s.store.Location }

func (s *Storefront) HandleQuery(query string) string {
	lowered := strings.ToLower(query)
	switch {
	case strings.Contains(lowered, "price"):
		return s.pricing(lowered)
	case strings.Contains(lowered, "stock"):
		return s.stock(lowered)
	default:
		return s.listInventory()
	}
}

func (s *Storefront) listInventory() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n\n", s.store.Name, s.store.Location)
	for i, p := range s.store.Inventory {
		fmt.Fprintf(&b, "%d. %s %s - $%.2f (%d in stock)\n", i+1, p.Brand, p.Model, p.BasePrice, p.Stock)
	}
	return b.String()
}

func (s *Storefront) pricing(query string) string {
	var lines []string
	for _, p := range s.store.Inventory {
		if !strings.Contains(query, strings.ToLower(p.Model)) {
			continue
		}
		pickup := s.store.Rules["pickup_discount"]
		lines = append(lines, fmt.Sprintf("%s %s: $%.2f (Pickup: $%.2f)", p.Brand, p.Model, p.BasePrice, p.BasePrice-pickup))
	}
	if len(lines) == 0 {
		return "No matches."
	}
	return strings.Join(lines, "\n")
}

func (s *Storefront) stock(query string) string {
	var lines []string
	for _, p := range s.store.Inventory {
		if !strings.Contains(query, strings.ToLower(p.Model)) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s: %d units", p.Brand, p.Model, p.Stock))
	}
	if len(lines) == 0 {
		return "Specify product."
	}
	return strings.Join(lines, "\n")
}

// ServiceDesk answers price/slot questions for one service provider.
type ServiceDesk struct {
	provider catalogx.Provider
}

func NewServiceDesk(provider catalogx.Provider) *ServiceDesk {
	return &ServiceDesk{provider: provider}
}

func (d *ServiceDesk) Name() string { return d.provider.Name }

func (d *ServiceDesk) HandleQuery(query string) string {
	lowered := strings.ToLower(query)
	switch {
	case strings.Contains(lowered, "price"):
		return d.pricing()
	case strings.Contains(lowered, "slot"):
		return d.slots()
	default:
		return fmt.Sprintf("Hi from %s! Ask about pricing or slots.", d.provider.Name)
	}
}

func (d *ServiceDesk) pricing() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Services:\n", d.provider.Name)
	for _, svc := range d.provider.Services {
		fmt.Fprintf(&b, "- %s: $%.2f\n", svc.Type, svc.BasePrice)
	}
	return b.String()
}

func (d *ServiceDesk) slots() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Slots:\n", d.provider.Name)
	for _, svc := range d.provider.Services {
		fmt.Fprintf(&b, "- %s: %s\n", svc.Type, strings.Join(svc.AvailableSlots, ", "))
	}
	return b.String()
}
