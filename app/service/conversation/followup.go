package conversation

import (
	"context"
	"fmt"
	"strings"

	_ "embed"

	"github.com/tmc/langchaingo/chains"
)

//go:embed followup_prompt_template.txt
var followupPromptTemplate string

// AnswerFollowup answers a question strictly from the cached summary and the
// recorded follow-up history. The prompt pins the model to the exact sentence
// "I don't know based on the summary." when the answer is not derivable.
func (s *Service) AnswerFollowup(ctx context.Context, summary, history, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, maxModelDuration)
	defer cancel()

	answer, err := chains.Predict(ctx, s.followupChain, map[string]any{
		"chat_history": history,
		"summary":      summary,
		"question":     question,
	}, chains.WithTemperature(s.cfg.LLM.Temperature))
	if err != nil {
		return "", fmt.Errorf("followup chain failed: %w", err)
	}

	return strings.TrimSpace(answer), nil
}
