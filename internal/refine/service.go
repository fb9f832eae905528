package refine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for message refinement
const DefaultModel = "gemini-3-flash-preview"

var (
	// ErrNotConfigured indicates refinement was requested without an API key
	ErrNotConfigured = errors.New("refinement is not configured")
	// ErrEmptyResult indicates the model returned no usable text
	ErrEmptyResult = errors.New("refinement returned no text")
)

// Service rewrites draft messages through Gemini. The draft itself is
// never mutated here; the caller decides what to do with the result.
type Service struct {
	client *genai.Client
	model  string
	logger *log.Logger
}

// NewService creates a refinement service. An empty API key yields a
// disabled service that reports ErrNotConfigured, so the rest of the
// application works without AI access.
func NewService(ctx context.Context, apiKey, model string, logger *log.Logger) (*Service, error) {
	if model == "" {
		model = DefaultModel
	}
	s := &Service{model: model, logger: logger}
	if apiKey == "" {
		return s, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	s.client = client
	return s, nil
}

// Enabled reports whether an API key was configured
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Refine asks the model for a more professional version of the message
func (s *Service) Refine(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf("Migliora questo messaggio per WhatsApp rendendolo professionale ma cordiale in italiano: %q", message)

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("refinement failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}
