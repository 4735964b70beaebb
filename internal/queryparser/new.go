package queryparser

import (
	"fmt"

	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/llmprovider"
	"calendar-assistant/pkg/log"
)

const defaultMaxTokens = 512

type implParser struct {
	l         log.Logger
	llm       llmprovider.Provider
	dates     *datemath.Parser
	maxTokens int
}

// New creates a Parser backed by the given completion provider.
func New(l log.Logger, llm llmprovider.Provider, opts Options) (Parser, error) {
	if llm == nil {
		return nil, fmt.Errorf("queryparser: completion provider is required")
	}
	dates, err := datemath.NewParser(opts.Timezone)
	if err != nil {
		return nil, fmt.Errorf("queryparser: %w", err)
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &implParser{
		l:         l,
		llm:       llm,
		dates:     dates,
		maxTokens: maxTokens,
	}, nil
}
