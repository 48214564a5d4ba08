package conversation

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	_ "embed"

	"github.com/elliotchance/pie/v2"
	"github.com/tmc/langchaingo/chains"
)

//go:embed topic_prompt_template.txt
var topicPromptTemplate string

const maxTopicWords = 6

var (
	leadingQuoteRe  = regexp.MustCompile(`^['"“”‘’]`)
	trailingQuoteRe = regexp.MustCompile(`['"“”‘’]\s*$`)
	trailingPunctRe = regexp.MustCompile(`[.!?]+$`)
)

// TopicFromSummary derives a short topic line from a summary.
func (s *Service) TopicFromSummary(ctx context.Context, summary string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, maxModelDuration)
	defer cancel()

	raw, err := chains.Predict(ctx, s.topicChain, map[string]any{
		"summary": summary,
	}, chains.WithTemperature(s.cfg.LLM.Temperature))
	if err != nil {
		return "", fmt.Errorf("topic chain failed: %w", err)
	}

	return cleanTopic(raw), nil
}

// cleanTopic normalizes raw model output into the topic contract: one line,
// no surrounding quotes, no trailing punctuation, at most six words.
func cleanTopic(raw string) string {
	lines := pie.Filter(strings.Split(raw, "\n"), func(line string) bool {
		return strings.TrimSpace(line) != ""
	})

	topic := strings.TrimSpace(pie.FirstOr(lines, ""))

	topic = leadingQuoteRe.ReplaceAllString(topic, "")
	topic = trailingQuoteRe.ReplaceAllString(topic, "")
	topic = strings.TrimSpace(topic)

	topic = trailingPunctRe.ReplaceAllString(topic, "")
	topic = strings.TrimSpace(topic)

	words := strings.Fields(topic)
	if len(words) > maxTopicWords {
		words = words[:maxTopicWords]
	}

	return strings.Join(words, " ")
}
