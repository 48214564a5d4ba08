package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"websum/app/service/engine"
	"websum/app/util/urldetect"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// handleSummarize dispatches the single endpoint: input containing a URL
// replaces the context with a fresh summary, anything else is treated as a
// follow-up question against the cached one.
func (s *Server) handleSummarize(c *fiber.Ctx) error {
	var req inputRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Detail: "Invalid request body.",
		})
	}

	input := strings.TrimSpace(req.Input)

	if url, ok := urldetect.ExtractURL(input); ok {
		return s.summarize(c, url)
	}

	return s.answerFollowup(c, input)
}

func (s *Server) summarize(c *fiber.Ctx, url string) error {
	slog.Info("Summarizing URL", "url", url)

	result, err := s.engine.Summarize(c.UserContext(), url)
	if err != nil {
		slog.Error("Summarization failed", "url", url, "error", err)

		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Detail: fmt.Sprintf("Summarization failed: %v", err),
		})
	}

	return c.JSON(summarizeResponse{
		Summary:   result.Summary,
		MainTopic: result.Topic,
		Author:    result.Author,
	})
}

func (s *Server) answerFollowup(c *fiber.Ctx, question string) error {
	slog.Info("Answering follow-up question", "question", question)

	result, err := s.engine.Ask(c.UserContext(), question)
	if errors.Is(err, engine.ErrNoContext) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Detail: "No context available. Please provide a URL first.",
		})
	}

	if err != nil {
		slog.Error("Follow-up failed", "question", question, "error", err)

		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Detail: fmt.Sprintf("Follow-up failed: %v", err),
		})
	}

	return c.JSON(followupResponse{
		Question: result.Question,
		Response: result.Response,
	})
}
