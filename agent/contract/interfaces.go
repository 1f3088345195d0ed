package contract

import "context"

// Generator produces one reply for the given role. The implementation is an
// opaque collaborator; the engine never sees how the text is produced.
type Generator interface {
	Generate(ctx context.Context, role RoleContext, incoming string, turnBudget int) (string, error)
}

// Negotiator runs one full negotiation for a raw query.
type Negotiator interface {
	Negotiate(ctx context.Context, query string, maxRounds int) (Result, error)
}
