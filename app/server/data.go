package server

import (
	"context"
	"websum/app/service/engine"
)

// Engine is the transition surface the router dispatches to.
type Engine interface {
	Summarize(ctx context.Context, url string) (*engine.SummarizeResult, error)
	Ask(ctx context.Context, question string) (*engine.AskResult, error)
}

type inputRequest struct {
	Input string `json:"input"`
}

type summarizeResponse struct {
	Summary   string `json:"summary"`
	MainTopic string `json:"main_topic"`
	Author    string `json:"author"`
}

type followupResponse struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
