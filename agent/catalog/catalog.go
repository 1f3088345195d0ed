package catalog

import (
	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
	promptx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/prompt"
)

// Descriptor is the static negotiation identity of one seller agent: who it
// is, what it sells, and the policy baked into its system prompt. The floor
// price is stored for reference only; the engine does not enforce it.
type Descriptor struct {
	Name         string
	Role         contractx.Role
	Domain       contractx.Domain
	Location     string
	FloorPrice   float64
	SystemPrompt string
}

// Context returns the descriptor as a generation role context.
func (d Descriptor) Context() contractx.RoleContext {
	return contractx.RoleContext{
		Name:         d.Name,
		Role:         d.Role,
		SystemPrompt: d.SystemPrompt,
	}
}

// Catalog is the read-only agent registry. It is built once at process
// start and passed by reference; nothing mutates it afterwards.
type Catalog struct {
	requester contractx.RoleContext
	sellers   map[string]Descriptor
	order     []string
	stores    []Store
	providers []Provider
}

// New builds the catalog from the static marketplace data and the embedded
// prompt set.
func New(prompts promptx.PromptSet) *Catalog {
	descriptors := sellerDescriptors(prompts)

	sellers := make(map[string]Descriptor, len(descriptors))
	order := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		sellers[d.Name] = d
		order = append(order, d.Name)
	}

	return &Catalog{
		requester: contractx.RoleContext{
			Name:         customerAgentName,
			Role:         contractx.RoleRequester,
			SystemPrompt: prompts.Customer,
		},
		sellers:   sellers,
		order:     order,
		stores:    staticStores(),
		providers: staticProviders(),
	}
}

// Requester returns the customer-side role context.
func (c *Catalog) Requester() contractx.RoleContext {
	return c.requester
}

// Seller looks up a seller descriptor by agent name.
func (c *Catalog) Seller(name string) (Descriptor, bool) {
	d, ok := c.sellers[name]
	return d, ok
}

// SellerNames returns all seller agent names in registration order.
func (c *Catalog) SellerNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Stores returns the retail store listings.
func (c *Catalog) Stores() []Store {
	out := make([]Store, len(c.stores))
	copy(out, c.stores)
	return out
}

// Providers returns the service provider listings.
func (c *Catalog) Providers() []Provider {
	out := make([]Provider, len(c.providers))
	copy(out, c.providers)
	return out
}
