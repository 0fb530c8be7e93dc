// Package llm - tokens.go provides prompt token accounting so oversized
// context (long job postings, big project libraries) is truncated before it
// hits the provider's context window.
package llm

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultPromptTokenBudget caps the context text embedded in a single
// section-rewrite prompt.
const DefaultPromptTokenBudget = 6000

var (
	encOnce sync.Once
	enc     *tiktoken.Tiktoken
	encErr  error
)

func encoding() (*tiktoken.Tiktoken, error) {
	encOnce.Do(func() {
		// cl100k_base is a close enough proxy for Gemini tokenization; the
		// budget only needs to be approximately right.
		enc, encErr = tiktoken.GetEncoding("cl100k_base")
	})
	return enc, encErr
}

// CountTokens returns the approximate token count of text. On encoder
// failure it falls back to a 4-chars-per-token estimate rather than failing
// the caller.
func CountTokens(text string) int {
	e, err := encoding()
	if err != nil {
		return len(text) / 4
	}
	return len(e.Encode(text, nil, nil))
}

// TruncateToTokens returns text cut down to at most maxTokens tokens.
// Text already within budget is returned unchanged.
func TruncateToTokens(text string, maxTokens int) string {
	if maxTokens <= 0 || text == "" {
		return ""
	}

	e, err := encoding()
	if err != nil {
		limit := maxTokens * 4
		if len(text) <= limit {
			return text
		}
		return text[:limit]
	}

	tokens := e.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}
	return e.Decode(tokens[:maxTokens])
}
