package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"websum/app/service/agent"
	"websum/app/service/conversation"
	"websum/app/service/session"

	"github.com/samber/do"
)

// Service applies full context transitions. One mutex serializes them end to
// end, model calls included, so a follow-up can never observe a half-replaced
// context and two summarizations can never interleave.
type Service struct {
	sessionSvc *session.Service
	summarizer Summarizer
	extractor  Extractor
	responder  Responder

	mu sync.Mutex
}

func New(di *do.Injector) (*Service, error) {
	convSvc := do.MustInvoke[*conversation.Service](di)

	return &Service{
		sessionSvc: do.MustInvoke[*session.Service](di),
		summarizer: do.MustInvoke[*agent.Service](di),
		extractor:  convSvc,
		responder:  convSvc,
	}, nil
}

// Summarize replaces the conversational context with a fresh page summary.
// Nothing is written until every model call has succeeded.
func (s *Service) Summarize(ctx context.Context, url string) (*SummarizeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.summarizer.Summarize(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("summarizer.Summarize: %w", err)
	}

	topic, err := s.extractor.TopicFromSummary(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("extractor.TopicFromSummary: %w", err)
	}

	author, err := s.extractor.AuthorFromSummary(ctx, summary, url)
	if err != nil {
		return nil, fmt.Errorf("extractor.AuthorFromSummary: %w", err)
	}

	s.sessionSvc.SetSummary(summary)

	if err = s.summarizer.ResetMemory(ctx); err != nil {
		slog.Warn("Failed to reset agent memory", "error", err)
	}

	slog.Info("Context replaced",
		"url", url,
		"topic", topic,
		"summary_length", len(summary),
	)

	return &SummarizeResult{
		Summary: summary,
		Topic:   topic,
		Author:  author,
	}, nil
}

// Ask answers a follow-up question from the current context and records the
// exchange. The turn is recorded even when the model answered with its
// "I don't know" sentence.
func (s *Service) Ask(ctx context.Context, question string) (*AskResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.sessionSvc.Snapshot()
	if snap.State == session.StateEmpty {
		return nil, ErrNoContext
	}

	answer, err := s.responder.AnswerFollowup(ctx, snap.Summary, snap.History, question)
	if err != nil {
		return nil, fmt.Errorf("responder.AnswerFollowup: %w", err)
	}

	s.sessionSvc.AppendTurn(question, answer)

	return &AskResult{
		Question: question,
		Response: answer,
	}, nil
}

func (s *Service) Close() error {
	return nil
}
