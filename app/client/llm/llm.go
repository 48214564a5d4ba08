package llm

import (
	"fmt"
	"net/http"
	"time"
	"websum/app/config"

	"github.com/samber/do"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// New builds the shared model backend. Ollama is the default; an
// OpenAI-compatible endpoint can be configured instead.
func New(di *do.Injector) (llms.Model, error) {
	cfg := do.MustInvoke[*config.Config](di)

	switch cfg.LLM.Provider {
	case "ollama":
		opts := []ollama.Option{
			ollama.WithModel(cfg.LLM.Model),
		}

		if cfg.LLM.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.LLM.BaseURL))
		}

		model, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}

		return model, nil

	case "openai":
		opts := []openai.Option{
			openai.WithModel(cfg.LLM.Model),
			openai.WithToken(cfg.LLM.Token),
			openai.WithHTTPClient(&http.Client{
				Timeout: 30 * time.Second,
			}),
		}

		if cfg.LLM.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.LLM.BaseURL))
		}

		model, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}

		return model, nil

	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
