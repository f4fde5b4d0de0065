// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize turns a corpus of abstracts into a consensus summary
// and answers follow-up questions from the same corpus, using a generative
// model reached through the Generator interface.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrEmptyResponse is returned when the model produces no text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Generator is the generative-model collaborator: one blocking
// "generate from prompt" round trip. Implementations carry no
// conversation state; every prompt embeds the context it needs.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Client issues synthesis and chat calls. Each call is a single request
// with no retry and no streaming.
type Client struct {
	Backend Generator
	Model   string
	Log     *zap.Logger
}

// Synthesize asks the model for a structured synthesis of corpus and
// returns the response text unmodified.
func (c *Client) Synthesize(ctx context.Context, corpus string) (string, error) {
	prompt, err := renderSynthesisPrompt(corpus)
	if err != nil {
		return "", fmt.Errorf("rendering synthesis prompt: %w", err)
	}
	return c.generate(ctx, "synthesize", prompt)
}

// Answer asks the model to answer question strictly from corpus and
// returns the response text unmodified.
func (c *Client) Answer(ctx context.Context, corpus, question string) (string, error) {
	prompt, err := renderAnswerPrompt(corpus, question)
	if err != nil {
		return "", fmt.Errorf("rendering answer prompt: %w", err)
	}
	return c.generate(ctx, "answer", prompt)
}

func (c *Client) generate(ctx context.Context, op, prompt string) (string, error) {
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}
	model := c.Model
	if model == "" {
		model = DefaultModel
	}

	start := time.Now()
	text, err := c.Backend.Generate(ctx, model, prompt)
	if err != nil {
		log.Warn("model call failed", zap.String("op", op), zap.String("model", model), zap.Error(err))
		return "", fmt.Errorf("calling %s: %w", model, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	log.Info("model call",
		zap.String("op", op),
		zap.String("model", model),
		zap.Int("prompt_bytes", len(prompt)),
		zap.Int("response_bytes", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	return text, nil
}
