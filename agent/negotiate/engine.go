package negotiate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"
	catalogx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/catalog"
	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
	pricingx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/pricing"
	metricsx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/pkg/metrics"
)

const (
	defaultTurnBudget  = 2
	defaultCallTimeout = 120 * time.Second

	summaryLimit  = 500
	evidenceLimit = 400
)

const noMatchAnnotation = "no matching agents"

type Config struct {
	// TurnBudget is the per-exchange cap on seller turns. It is fixed
	// independently of the caller-supplied max_rounds field.
	TurnBudget int
	// CallTimeout bounds each individual generation call.
	CallTimeout time.Duration
	// AILabel identifies the text-generation backend in responses.
	AILabel string
}

// Engine drives one bounded 1:1 exchange per candidate seller, strictly
// sequentially, and assembles the ranked offers plus the audit log.
type Engine struct {
	catalog *catalogx.Catalog
	gen     contractx.Generator

	runner compose.Runnable[pipelineInput, contractx.Result]

	turnBudget  int
	callTimeout time.Duration
	aiLabel     string
}

var _ contractx.Negotiator = (*Engine)(nil)

func New(catalog *catalogx.Catalog, gen contractx.Generator, cfg Config) (*Engine, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if gen == nil {
		return nil, errors.New("generator is required")
	}

	turnBudget := cfg.TurnBudget
	if turnBudget <= 0 {
		turnBudget = defaultTurnBudget
	}
	callTimeout := cfg.CallTimeout
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	aiLabel := strings.TrimSpace(cfg.AILabel)
	if aiLabel == "" {
		aiLabel = "unknown model"
	}

	e := &Engine{
		catalog:     catalog,
		gen:         gen,
		turnBudget:  turnBudget,
		callTimeout: callTimeout,
		aiLabel:     aiLabel,
	}

	runner, err := e.compileNegotiationGraph(context.Background())
	if err != nil {
		return nil, err
	}
	e.runner = runner

	return e, nil
}

// Negotiate runs the full pipeline for one raw query. maxRounds is accepted
// for API compatibility but does not change the per-exchange turn budget.
func (e *Engine) Negotiate(ctx context.Context, query string, maxRounds int) (contractx.Result, error) {
	if strings.TrimSpace(query) == "" {
		return contractx.Result{}, fmt.Errorf("%w: query is required", contractx.ErrValidation)
	}
	return e.runner.Invoke(ctx, pipelineInput{Query: query, MaxRounds: maxRounds})
}

// runExchanges processes candidates one at a time, in classifier order.
// One ExchangeRecord is always appended per candidate; an Offer only when a
// price could be extracted from the completed summary.
func (e *Engine) runExchanges(ctx context.Context, query contractx.Query, candidates []string) ([]contractx.ExchangeRecord, []contractx.Offer) {
	records := make([]contractx.ExchangeRecord, 0, len(candidates))
	offers := make([]contractx.Offer, 0, len(candidates))

	for i, name := range candidates {
		round := i + 1

		seller, ok := e.catalog.Seller(name)
		if !ok {
			records = append(records, contractx.ExchangeRecord{
				Round:    round,
				Customer: e.catalog.Requester().Name,
				Seller:   name,
				Error:    "unknown seller agent",
			})
			metricsx.RecordExchange(string(contractx.ExchangeFailed))
			continue
		}

		record, offer := e.runExchange(ctx, round, seller, query)
		records = append(records, record)
		if offer != nil {
			offers = append(offers, *offer)
		}
	}

	return records, offers
}

// runExchange walks one exchange through its state machine:
// PENDING -> IN_PROGRESS -> COMPLETED or FAILED. A failure never aborts the
// run; it is folded into the record and the next candidate proceeds.
func (e *Engine) runExchange(ctx context.Context, round int, seller catalogx.Descriptor, query contractx.Query) (contractx.ExchangeRecord, *contractx.Offer) {
	requester := e.catalog.Requester()
	status := contractx.ExchangePending

	record := contractx.ExchangeRecord{
		Round:    round,
		Customer: requester.Name,
		Seller:   seller.Name,
	}

	// A request-level deadline already spent means the remaining
	// candidates fail fast, keeping whatever offers exist so far.
	if err := ctx.Err(); err != nil {
		status = contractx.ExchangeFailed
		record.Error = err.Error()
		metricsx.RecordExchange(string(status))
		return record, nil
	}

	status = contractx.ExchangeInProgress
	log.Debug().Int("round", round).Str("seller", seller.Name).Msg("exchange started")

	transcript, err := e.converse(ctx, requester, seller, query)
	if err != nil {
		status = contractx.ExchangeFailed
		record.Error = err.Error()
		log.Warn().Err(err).Int("round", round).Str("seller", seller.Name).Msg("exchange failed")
		metricsx.RecordExchange(string(status))
		return record, nil
	}

	status = contractx.ExchangeCompleted
	record.Summary = truncate(transcript, summaryLimit)
	metricsx.RecordExchange(string(status))

	price, ok := pricingx.ExtractPrice(record.Summary, seller.Domain)
	if !ok {
		// Extraction miss: the record stands, the offer is simply absent.
		log.Debug().Int("round", round).Str("seller", seller.Name).Msg("no price extracted")
		return record, nil
	}

	return record, &contractx.Offer{
		Agent:   seller.Name,
		Price:   price,
		Details: truncate(record.Summary, evidenceLimit),
	}
}

// converse drives the bounded turn loop. The requester opens with the raw
// query; each turn the seller replies, then the requester counters unless
// the budget is spent. The transcript holds only generated turns, so the
// opening query's own numbers never masquerade as a quoted price.
func (e *Engine) converse(ctx context.Context, requester contractx.RoleContext, seller catalogx.Descriptor, query contractx.Query) (string, error) {
	sellerCtx := seller.Context()

	lines := make([]string, 0, 2*e.turnBudget)
	last := query.Raw

	for turn := 1; turn <= e.turnBudget; turn++ {
		reply, err := e.generate(ctx, sellerCtx, last)
		if err != nil {
			return "", err
		}
		lines = append(lines, seller.Name+": "+reply)
		last = reply

		if turn == e.turnBudget {
			break
		}

		counter, err := e.generate(ctx, requester, last)
		if err != nil {
			return "", err
		}
		lines = append(lines, requester.Name+": "+counter)
		last = counter
	}

	return strings.Join(lines, "\n"), nil
}

func (e *Engine) generate(ctx context.Context, role contractx.RoleContext, incoming string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	reply, err := e.gen.Generate(genCtx, role, incoming, e.turnBudget)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("%w: agent=%s", contractx.ErrEmptyTranscript, role.Name)
	}
	return reply, nil
}

func (e *Engine) noMatchResult() contractx.Result {
	return contractx.Result{
		RankedOffers: []contractx.Offer{},
		NegotiationLog: []contractx.ExchangeRecord{
			{Error: noMatchAnnotation},
		},
		AIUsed: e.aiLabel,
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
