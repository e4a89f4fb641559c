package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/server/llm"
)

// Result holds the output of both stages.
type Result struct {
	Original   string
	Translated string
	Reviewed   string
}

// Run drafts a translation of text and then asks the model to review it.
// An unknown direction fails before the model is called. Stage failures are
// returned wrapped with the stage name.
func Run(ctx context.Context, c llm.Completer, text string, d Direction) (*Result, error) {
	if _, ok := prompts[d]; !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidDirection, string(d))
	}

	draft, err := c.Complete(ctx, translatePrompt(d, text))
	if err != nil {
		return nil, fmt.Errorf("translate stage: %w", err)
	}
	draft = strings.TrimSpace(draft)

	reviewed, err := c.Complete(ctx, reviewPrompt(d, text, draft))
	if err != nil {
		return nil, fmt.Errorf("review stage: %w", err)
	}

	return &Result{
		Original:   text,
		Translated: draft,
		Reviewed:   strings.TrimSpace(reviewed),
	}, nil
}
