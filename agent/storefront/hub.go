package storefront

import (
	catalogx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/catalog"
)

// Hub routes a plain chat message to the rule-based responder registered
// under the receiver id (store_1, salon_2, ...).
type Hub struct {
	stores   map[string]*Storefront
	services map[string]*ServiceDesk
}

func NewHub(catalog *catalogx.Catalog) *Hub {
	stores := make(map[string]*Storefront)
	for _, store := range catalog.Stores() {
		stores[store.ID] = NewStorefront(store)
	}
	services := make(map[string]*ServiceDesk)
	for _, provider := range catalog.Providers() {
		services[provider.ID] = NewServiceDesk(provider)
	}
	return &Hub{stores: stores, services: services}
}

// Route delivers content to the receiver and returns its reply. The second
// return is false for an unknown receiver.
func (h *Hub) Route(receiver, content string) (string, bool) {
	if s, ok := h.stores[receiver]; ok {
		return s.HandleQuery(content), true
	}
	if d, ok := h.services[receiver]; ok {
		return d.HandleQuery(content), true
	}
	return "", false
}

// Stores lists the rule-based store agents keyed by id.
func (h *Hub) Stores() map[string]*Storefront {
	out := make(map[string]*Storefront, len(h.stores))
	for id, s := range h.stores {
		out[id] = s
	}
	return out
}

// Services lists the rule-based service agents keyed by id.
func (h *Hub) Services() map[string]*ServiceDesk {
	out := make(map[string]*ServiceDesk, len(h.services))
	for id, d := range h.services {
		out[id] = d
	}
	return out
}
