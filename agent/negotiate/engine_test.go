package negotiate

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	catalogx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/catalog"
	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
	promptx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/prompt"
)

// fakeGenerator answers with a canned quote per seller and a fixed counter
// for the requester role. Sellers listed in failFor error out; sellers in
// blockFor wait until the call context expires.
type fakeGenerator struct {
	quotes   map[string]string
	failFor  map[string]error
	blockFor map[string]bool
	onCall   func(role contractx.RoleContext)
}

func (f *fakeGenerator) Generate(ctx context.Context, role contractx.RoleContext, incoming string, turnBudget int) (string, error) {
	if f.onCall != nil {
		f.onCall(role)
	}
	if role.Role == contractx.RoleRequester {
		return "Can you beat this?", nil
	}
	if err, ok := f.failFor[role.Name]; ok {
		return "", err
	}
	if f.blockFor[role.Name] {
		<-ctx.Done()
		return "", ctx.Err()
	}
	quote, ok := f.quotes[role.Name]
	if !ok {
		return "", errors.New("no canned quote for " + role.Name)
	}
	return quote, nil
}

func newTestEngine(t *testing.T, gen contractx.Generator, cfg Config) *Engine {
	t.Helper()
	if cfg.AILabel == "" {
		cfg.AILabel = "test-model"
	}
	engine, err := New(catalogx.New(promptx.LoadPromptSet()), gen, cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return engine
}

func TestNegotiateProductScenario(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		quotes: map[string]string{
			catalogx.AgentWalmart: "$969 with pickup or $965 Walmart+",
			catalogx.AgentTarget:  "$930 with RedCard",
			catalogx.AgentBestBuy: "$899 pickup - best price!",
		},
	}
	engine := newTestEngine(t, gen, Config{})

	result, err := engine.Negotiate(context.Background(), "iPhone under $900 NYC pickup", 3)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}

	if len(result.NegotiationLog) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(result.NegotiationLog))
	}
	wantLogOrder := []string{catalogx.AgentWalmart, catalogx.AgentTarget, catalogx.AgentBestBuy}
	for i, rec := range result.NegotiationLog {
		if rec.Round != i+1 {
			t.Fatalf("log[%d].Round = %d, want %d", i, rec.Round, i+1)
		}
		if rec.Seller != wantLogOrder[i] {
			t.Fatalf("log[%d].Seller = %s, want %s", i, rec.Seller, wantLogOrder[i])
		}
		if rec.Customer != "USCustomerAgent" {
			t.Fatalf("log[%d].Customer = %s", i, rec.Customer)
		}
		if rec.Error != "" {
			t.Fatalf("log[%d] unexpectedly failed: %s", i, rec.Error)
		}
	}

	wantRanking := []struct {
		agent string
		price float64
	}{
		{catalogx.AgentBestBuy, 899},
		{catalogx.AgentTarget, 930},
		{catalogx.AgentWalmart, 969},
	}
	if len(result.RankedOffers) != len(wantRanking) {
		t.Fatalf("expected %d offers, got %d", len(wantRanking), len(result.RankedOffers))
	}
	for i, want := range wantRanking {
		got := result.RankedOffers[i]
		if got.Agent != want.agent || got.Price != want.price {
			t.Fatalf("ranked[%d] = %s:%v, want %s:%v", i, got.Agent, got.Price, want.agent, want.price)
		}
	}

	if result.BestDeal == nil || result.BestDeal.Agent != catalogx.AgentBestBuy {
		t.Fatalf("unexpected best deal: %#v", result.BestDeal)
	}
	if result.AIUsed != "test-model" {
		t.Fatalf("unexpected ai label: %s", result.AIUsed)
	}
}

func TestNegotiateHaircutScenario(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		quotes: map[string]string{
			catalogx.AgentUlta: "First-time clients pay $55, cash $59. 5PM is open.",
		},
	}
	engine := newTestEngine(t, gen, Config{})

	result, err := engine.Negotiate(context.Background(), "Haircut NYC 5PM under $60", 3)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}

	if len(result.NegotiationLog) != 1 {
		t.Fatalf("expected exactly one exchange record, got %d", len(result.NegotiationLog))
	}
	if len(result.RankedOffers) != 1 {
		t.Fatalf("expected one offer, got %d", len(result.RankedOffers))
	}
	if got := result.RankedOffers[0]; got.Agent != catalogx.AgentUlta || got.Price != 59 {
		t.Fatalf("unexpected offer: %#v", got)
	}
}

func TestNegotiateNoMatch(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &fakeGenerator{}, Config{})

	result, err := engine.Negotiate(context.Background(), "buy me a sailboat", 3)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}

	if len(result.RankedOffers) != 0 {
		t.Fatalf("expected no offers, got %#v", result.RankedOffers)
	}
	if result.BestDeal != nil {
		t.Fatalf("expected no best deal, got %#v", result.BestDeal)
	}
	if len(result.NegotiationLog) != 1 || result.NegotiationLog[0].Error != "no matching agents" {
		t.Fatalf("unexpected log: %#v", result.NegotiationLog)
	}
}

func TestNegotiateFailureDoesNotAbortRun(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		quotes: map[string]string{
			catalogx.AgentWalmart: "$965 final",
			catalogx.AgentBestBuy: "$899 pickup",
		},
		failFor: map[string]error{
			catalogx.AgentTarget: errors.New("upstream unavailable"),
		},
	}
	engine := newTestEngine(t, gen, Config{})

	result, err := engine.Negotiate(context.Background(), "iPhone pickup", 3)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}

	if len(result.NegotiationLog) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(result.NegotiationLog))
	}
	failed := result.NegotiationLog[1]
	if failed.Seller != catalogx.AgentTarget {
		t.Fatalf("unexpected failed seller: %s", failed.Seller)
	}
	if failed.Error == "" || failed.Summary != "" {
		t.Fatalf("expected failure annotation with empty summary, got %#v", failed)
	}

	if len(result.RankedOffers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(result.RankedOffers))
	}
	if result.BestDeal == nil || result.BestDeal.Agent != catalogx.AgentBestBuy {
		t.Fatalf("unexpected best deal: %#v", result.BestDeal)
	}
}

func TestNegotiateGenerationTimeout(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		quotes: map[string]string{
			catalogx.AgentWalmart: "$965 final",
			catalogx.AgentBestBuy: "$899 pickup",
		},
		blockFor: map[string]bool{
			catalogx.AgentTarget: true,
		},
	}
	engine := newTestEngine(t, gen, Config{CallTimeout: 20 * time.Millisecond})

	result, err := engine.Negotiate(context.Background(), "iPhone pickup", 3)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}

	failed := result.NegotiationLog[1]
	if !strings.Contains(failed.Error, context.DeadlineExceeded.Error()) {
		t.Fatalf("expected deadline error annotation, got %q", failed.Error)
	}
	if len(result.RankedOffers) != 2 {
		t.Fatalf("timed-out exchange should not block others: %#v", result.RankedOffers)
	}
}

func TestNegotiateRequestCancellationKeepsPartialResults(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen := &fakeGenerator{
		quotes: map[string]string{
			catalogx.AgentWalmart: "$965 final",
			catalogx.AgentTarget:  "$930 with RedCard",
			catalogx.AgentBestBuy: "$899 pickup",
		},
	}
	// Cancel the request while the second seller is talking.
	gen.onCall = func(role contractx.RoleContext) {
		if role.Name == catalogx.AgentTarget {
			cancel()
		}
	}
	engine := newTestEngine(t, gen, Config{})

	result, err := engine.Negotiate(ctx, "iPhone pickup", 3)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}

	if len(result.NegotiationLog) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(result.NegotiationLog))
	}
	if result.NegotiationLog[0].Error != "" {
		t.Fatalf("first exchange should have completed: %#v", result.NegotiationLog[0])
	}
	if result.NegotiationLog[2].Error == "" {
		t.Fatalf("remaining exchange should fail fast after cancellation: %#v", result.NegotiationLog[2])
	}
	if len(result.RankedOffers) == 0 {
		t.Fatal("expected the completed offer to survive cancellation")
	}
}

func TestNegotiateIdempotent(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		quotes: map[string]string{
			catalogx.AgentWalmart: "$965 final",
			catalogx.AgentTarget:  "$930 with RedCard",
			catalogx.AgentBestBuy: "$899 pickup",
		},
	}
	engine := newTestEngine(t, gen, Config{})

	first, err := engine.Negotiate(context.Background(), "iPhone pickup", 3)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}
	second, err := engine.Negotiate(context.Background(), "iPhone pickup", 3)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical queries diverged:\n%#v\n%#v", first, second)
	}
}

func TestNegotiateEmptyQuery(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &fakeGenerator{}, Config{})

	if _, err := engine.Negotiate(context.Background(), "  ", 3); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSummaryLengthCapped(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		quotes: map[string]string{
			catalogx.AgentUlta: "$59 cash. " + strings.Repeat("We also love long stories. ", 40),
		},
	}
	engine := newTestEngine(t, gen, Config{})

	result, err := engine.Negotiate(context.Background(), "haircut please", 3)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}
	if got := len(result.NegotiationLog[0].Summary); got > summaryLimit {
		t.Fatalf("summary length = %d, want <= %d", got, summaryLimit)
	}
	if len(result.RankedOffers) == 1 {
		if got := len(result.RankedOffers[0].Details); got > evidenceLimit {
			t.Fatalf("details length = %d, want <= %d", got, evidenceLimit)
		}
	}
}
