package conversation

import (
	"context"
	"fmt"
	"strings"

	_ "embed"

	"github.com/tmc/langchaingo/chains"
)

//go:embed author_prompt_template.txt
var authorPromptTemplate string

// AuthorFromSummary makes a best-effort author attribution for a page.
// "Not found" is represented as the empty string.
func (s *Service) AuthorFromSummary(ctx context.Context, summary, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, maxModelDuration)
	defer cancel()

	raw, err := chains.Predict(ctx, s.authorChain, map[string]any{
		"summary": summary,
		"url":     url,
	}, chains.WithTemperature(s.cfg.LLM.Temperature))
	if err != nil {
		return "", fmt.Errorf("author chain failed: %w", err)
	}

	return cleanAuthor(raw), nil
}

func cleanAuthor(raw string) string {
	author := strings.TrimSpace(raw)

	if idx := strings.IndexByte(author, '\n'); idx >= 0 {
		author = strings.TrimSpace(author[:idx])
	}

	author = leadingQuoteRe.ReplaceAllString(author, "")
	author = trailingQuoteRe.ReplaceAllString(author, "")
	author = strings.TrimSpace(author)

	if strings.EqualFold(author, "unknown") {
		return ""
	}

	return author
}
