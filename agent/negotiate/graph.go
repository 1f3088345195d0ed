package negotiate

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	classifyx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/classify"
	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
	pricingx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/pricing"
)

type pipelineInput struct {
	Query     string
	MaxRounds int
}

type pipelineState struct {
	Query      contractx.Query
	Candidates []string
	Matched    bool

	Records []contractx.ExchangeRecord
	Offers  []contractx.Offer
}

func (e *Engine) compileNegotiationGraph(
	ctx context.Context,
) (compose.Runnable[pipelineInput, contractx.Result], error) {
	graph := compose.NewGraph[pipelineInput, contractx.Result]()

	if err := graph.AddLambdaNode("parse_query",
		compose.InvokableLambda(func(ctx context.Context, in pipelineInput) (*pipelineState, error) {
			state := &pipelineState{
				Query: classifyx.ParseQuery(in.Query),
			}
			if match, ok := classifyx.Classify(in.Query); ok {
				state.Matched = true
				state.Candidates = match.Candidates
			}
			return state, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node parse_query: %w", err)
	}

	if err := graph.AddLambdaNode("run_exchanges",
		compose.InvokableLambda(func(ctx context.Context, in *pipelineState) (*pipelineState, error) {
			in.Records, in.Offers = e.runExchanges(ctx, in.Query, in.Candidates)
			return in, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node run_exchanges: %w", err)
	}

	if err := graph.AddLambdaNode("rank_offers",
		compose.InvokableLambda(func(ctx context.Context, in *pipelineState) (contractx.Result, error) {
			ranked := pricingx.Rank(in.Offers)
			result := contractx.Result{
				RankedOffers:   ranked,
				NegotiationLog: in.Records,
				AIUsed:         e.aiLabel,
			}
			if best, ok := pricingx.BestDeal(ranked); ok {
				result.BestDeal = &best
			}
			return result, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node rank_offers: %w", err)
	}

	if err := graph.AddLambdaNode("no_match",
		compose.InvokableLambda(func(ctx context.Context, in *pipelineState) (contractx.Result, error) {
			return e.noMatchResult(), nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node no_match: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *pipelineState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: pipeline state is nil", contractx.ErrValidation)
			}
			if !in.Matched {
				return "no_match", nil
			}
			return "run_exchanges", nil
		},
		map[string]bool{
			"run_exchanges": true,
			"no_match":      true,
		},
	)

	if err := graph.AddEdge(compose.START, "parse_query"); err != nil {
		return nil, fmt.Errorf("add edge start->parse_query: %w", err)
	}
	if err := graph.AddBranch("parse_query", branch); err != nil {
		return nil, fmt.Errorf("add classification branch: %w", err)
	}
	if err := graph.AddEdge("run_exchanges", "rank_offers"); err != nil {
		return nil, fmt.Errorf("add edge run_exchanges->rank_offers: %w", err)
	}
	if err := graph.AddEdge("rank_offers", compose.END); err != nil {
		return nil, fmt.Errorf("add edge rank_offers->end: %w", err)
	}
	if err := graph.AddEdge("no_match", compose.END); err != nil {
		return nil, fmt.Errorf("add edge no_match->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("negotiate.pipeline"))
	if err != nil {
		return nil, fmt.Errorf("compile negotiation graph: %w", err)
	}
	return runner, nil
}
