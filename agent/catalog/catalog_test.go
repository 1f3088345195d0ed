package catalog

import (
	"testing"

	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
	promptx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/prompt"
)

func TestCatalogSellerLookup(t *testing.T) {
	t.Parallel()

	c := New(promptx.LoadPromptSet())

	d, ok := c.Seller(AgentBestBuy)
	if !ok {
		t.Fatal("expected BestBuyChicago descriptor")
	}
	if d.Domain != contractx.DomainProduct {
		t.Fatalf("unexpected domain: %s", d.Domain)
	}
	if d.FloorPrice != 899 {
		t.Fatalf("unexpected floor: %v", d.FloorPrice)
	}
	if d.SystemPrompt == "" {
		t.Fatal("expected a system prompt")
	}

	roleCtx := d.Context()
	if roleCtx.Name != AgentBestBuy || roleCtx.Role != contractx.RoleSeller {
		t.Fatalf("unexpected role context: %#v", roleCtx)
	}

	if _, ok := c.Seller("NoSuchAgent"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestCatalogRequester(t *testing.T) {
	t.Parallel()

	c := New(promptx.LoadPromptSet())

	req := c.Requester()
	if req.Role != contractx.RoleRequester {
		t.Fatalf("unexpected role: %s", req.Role)
	}
	if req.Name != "USCustomerAgent" {
		t.Fatalf("unexpected name: %s", req.Name)
	}
	if req.SystemPrompt == "" {
		t.Fatal("expected a customer prompt")
	}
}

func TestCatalogListingsAreCopies(t *testing.T) {
	t.Parallel()

	c := New(promptx.LoadPromptSet())

	stores := c.Stores()
	if len(stores) != 3 {
		t.Fatalf("expected 3 stores, got %d", len(stores))
	}
	stores[0].Name = "mutated"
	if c.Stores()[0].Name == "mutated" {
		t.Fatal("catalog store listing must not share backing array with callers")
	}

	providers := c.Providers()
	if len(providers) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(providers))
	}

	names := c.SellerNames()
	if len(names) != 5 {
		t.Fatalf("expected 5 sellers, got %d", len(names))
	}
	names[0] = "mutated"
	if c.SellerNames()[0] == "mutated" {
		t.Fatal("seller name listing must not share backing array with callers")
	}
}
