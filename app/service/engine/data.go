package engine

import (
	"context"
	"errors"
)

// ErrNoContext is returned for a follow-up question asked before any page has
// been summarized.
var ErrNoContext = errors.New("no context available")

// Summarizer produces a page summary from input containing a URL.
type Summarizer interface {
	Summarize(ctx context.Context, input string) (string, error)
	ResetMemory(ctx context.Context) error
}

// Extractor derives the topic line and author attribution from a summary.
type Extractor interface {
	TopicFromSummary(ctx context.Context, summary string) (string, error)
	AuthorFromSummary(ctx context.Context, summary, url string) (string, error)
}

// Responder answers follow-up questions from the cached summary and history.
type Responder interface {
	AnswerFollowup(ctx context.Context, summary, history, question string) (string, error)
}

type SummarizeResult struct {
	Summary string
	Topic   string
	Author  string
}

type AskResult struct {
	Question string
	Response string
}
