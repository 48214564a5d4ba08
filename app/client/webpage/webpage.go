package webpage

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"websum/app/config"

	"github.com/samber/do"
	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
)

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// Load fetches the page at url and extracts its text content.
func (c *Client) Load(ctx context.Context, url string) ([]schema.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.cfg.Fetch.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.Fetch.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	docs, err := documentloaders.NewHTML(resp.Body).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("page %s yielded no content", url)
	}

	return docs, nil
}
