package negotiate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
)

// ModelGenerator adapts an eino chat model to the Generator contract. Each
// call is a fresh single-shot completion: the role's system prompt plus the
// incoming message; the transcript itself lives in the engine.
type ModelGenerator struct {
	model einomodel.BaseChatModel
}

var _ contractx.Generator = (*ModelGenerator)(nil)

func NewModelGenerator(model einomodel.BaseChatModel) (*ModelGenerator, error) {
	if model == nil {
		return nil, errors.New("chat model is required")
	}
	return &ModelGenerator{model: model}, nil
}

func (g *ModelGenerator) Generate(ctx context.Context, role contractx.RoleContext, incoming string, turnBudget int) (string, error) {
	if strings.TrimSpace(incoming) == "" {
		return "", fmt.Errorf("%w: incoming message is empty", contractx.ErrValidation)
	}

	msgs := []*schema.Message{
		schema.SystemMessage(role.SystemPrompt),
		schema.UserMessage(fmt.Sprintf("[reply within %d turns] %s", turnBudget, incoming)),
	}

	out, err := g.model.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("%w: agent=%s: %v", contractx.ErrModelInvoke, role.Name, err)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", fmt.Errorf("%w: agent=%s returned no content", contractx.ErrModelInvoke, role.Name)
	}

	return strings.TrimSpace(out.Content), nil
}
