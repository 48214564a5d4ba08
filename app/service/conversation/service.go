package conversation

import (
	"time"
	"websum/app/config"

	"github.com/samber/do"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

const maxModelDuration = 30 * time.Second

// Service runs the single-turn completions derived from a cached summary:
// follow-up answers, the topic line and the author attribution.
type Service struct {
	cfg *config.Config

	followupChain *chains.LLMChain
	topicChain    *chains.LLMChain
	authorChain   *chains.LLMChain
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)
	model := do.MustInvoke[llms.Model](di)

	s := &Service{
		cfg: cfg,
		followupChain: chains.NewLLMChain(model, prompts.NewPromptTemplate(
			followupPromptTemplate,
			[]string{"chat_history", "summary", "question"},
		)),
		topicChain: chains.NewLLMChain(model, prompts.NewPromptTemplate(
			topicPromptTemplate,
			[]string{"summary"},
		)),
		authorChain: chains.NewLLMChain(model, prompts.NewPromptTemplate(
			authorPromptTemplate,
			[]string{"summary", "url"},
		)),
	}

	return s, nil
}

func (s *Service) Close() error {
	return nil
}
