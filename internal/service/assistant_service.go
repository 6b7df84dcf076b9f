package service

import (
	"context"
	"strings"

	"edupress/internal/apperr"
	"edupress/internal/generator"
	"edupress/internal/logger"
)

// AssistantService drafts teaching content with the generator.
type AssistantService struct {
	generator Generator
	logger    logger.Logger
}

// NewAssistantService creates a new AssistantService. gen may be nil when no API key is
// configured; every request then fails with an external service error.
func NewAssistantService(gen Generator, log logger.Logger) *AssistantService {
	return &AssistantService{generator: gen, logger: log}
}

// Generate produces content of kind for topic.
func (s *AssistantService) Generate(ctx context.Context, topic string, kind generator.Kind) (*generator.Result, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, apperr.Validation("topic", "topic is required")
	}
	if !kind.Valid() {
		return nil, apperr.Validation("kind", "kind must be outline, article or seo")
	}
	if s.generator == nil {
		return nil, apperr.External("content generation is not configured", nil)
	}

	result, err := s.generator.Generate(ctx, topic, kind)
	if err != nil {
		s.logger.With(map[string]interface{}{"kind": string(kind)}).Error(err, "content generation failed")
		return nil, apperr.External("content generation failed, please try again", err)
	}
	return result, nil
}
