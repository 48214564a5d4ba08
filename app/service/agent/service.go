package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"websum/app/client/webpage"
	"websum/app/config"

	"github.com/samber/do"
	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/memory"
	"github.com/tmc/langchaingo/tools"
)

const (
	maxAgentDuration   = 2 * time.Minute
	maxAgentSteps      = 3
	conversationWindow = 3
)

// Service drives the summarization agent: a ReAct loop over a single
// web-summarizer tool, with a bounded conversation window of its own.
type Service struct {
	cfg       *config.Config
	webClient *webpage.Client
	model     llms.Model

	executor        *agents.Executor
	conversationMem *memory.ConversationWindowBuffer

	mu sync.Mutex
	// Raw output of the last summarization chain run, captured by the tool.
	// The cached summary is the chain output, not the agent's closing words.
	lastChainSummary string
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)
	model := do.MustInvoke[llms.Model](di)

	s := &Service{
		cfg:       cfg,
		webClient: do.MustInvoke[*webpage.Client](di),
		model:     model,
	}

	s.conversationMem = memory.NewConversationWindowBuffer(conversationWindow)

	reactAgent := agents.NewOneShotAgent(model, []tools.Tool{
		&summarizeTool{svc: s},
	}, agents.WithMaxIterations(maxAgentSteps))

	s.executor = agents.NewExecutor(reactAgent,
		agents.WithMemory(s.conversationMem),
		agents.WithCallbacksHandler(LogCallbackHandler{}),
	)

	return s, nil
}

// Summarize runs the agent over the input and returns the page summary.
func (s *Service) Summarize(ctx context.Context, input string) (string, error) {
	s.mu.Lock()
	s.lastChainSummary = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, maxAgentDuration)
	defer cancel()

	output, err := chains.Run(ctx, s.executor, input)
	if err != nil {
		return "", fmt.Errorf("agent run failed: %w", err)
	}

	s.mu.Lock()
	captured := s.lastChainSummary
	s.mu.Unlock()

	if captured != "" {
		return captured, nil
	}

	return strings.TrimSpace(output), nil
}

// ResetMemory drops the agent's conversation window. Called when a new page
// replaces the context, so both memories always describe the same page.
func (s *Service) ResetMemory(ctx context.Context) error {
	if err := s.conversationMem.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear agent memory: %w", err)
	}

	return nil
}

func (s *Service) Close() error {
	return nil
}
