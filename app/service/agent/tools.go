package agent

import (
	"context"
	"fmt"
	"strings"
	"websum/app/util/urldetect"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/tools"
)

var _ tools.Tool = (*summarizeTool)(nil)

type summarizeTool struct {
	svc *Service
}

func (t *summarizeTool) Name() string {
	return "web_summarizer"
}

func (t *summarizeTool) Description() string {
	return "Use this tool to summarize a webpage from a given URL. Input must be the URL of the page."
}

func (t *summarizeTool) Call(ctx context.Context, input string) (string, error) {
	// The model sometimes wraps the URL in quotes or prose.
	url, ok := urldetect.ExtractURL(input)
	if !ok {
		url = strings.TrimSpace(strings.Trim(strings.TrimSpace(input), `"'`))
	}

	summary, err := t.svc.summarizeURL(ctx, url)
	if err != nil {
		return "", fmt.Errorf("web_summarizer: %w", err)
	}

	return summary, nil
}

// summarizeURL loads the page and runs the stuff-summarization chain over its
// documents, recording the raw chain output for the caller.
func (s *Service) summarizeURL(ctx context.Context, url string) (string, error) {
	docs, err := s.webClient.Load(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to load page: %w", err)
	}

	chain := chains.LoadStuffSummarization(s.model)

	result, err := chains.Call(ctx, chain, map[string]any{
		"input_documents": docs,
	}, chains.WithTemperature(s.cfg.LLM.Temperature))
	if err != nil {
		return "", fmt.Errorf("summarization chain failed: %w", err)
	}

	summary, ok := result["text"].(string)
	if !ok {
		return "", fmt.Errorf("summarization chain returned no text")
	}

	summary = strings.TrimSpace(summary)

	s.mu.Lock()
	s.lastChainSummary = summary
	s.mu.Unlock()

	return summary, nil
}
