package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"edupress/internal/content"
	"edupress/internal/logger"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared"
	"github.com/rotisserie/eris"
)

// Kind selects what the generator produces.
type Kind string

const (
	KindOutline Kind = "outline"
	KindArticle Kind = "article"
	KindSEO     Kind = "seo"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindOutline, KindArticle, KindSEO:
		return true
	}
	return false
}

// SEOSuggestion is the metadata proposed for a topic.
type SEOSuggestion struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Keywords    KeywordList `json:"keywords"`
}

// Result holds the generated output. Markdown and HTML are set for outlines and
// articles, SEO for the seo kind.
type Result struct {
	Kind     Kind           `json:"kind"`
	Markdown string         `json:"markdown,omitempty"`
	HTML     string         `json:"html,omitempty"`
	SEO      *SEOSuggestion `json:"seo,omitempty"`
}

// Generator produces teaching content for a topic.
type Generator interface {
	Generate(ctx context.Context, topic string, kind Kind) (*Result, error)
}

// GeneratorOptions configures the chat-backed generator.
type GeneratorOptions struct {
	Client       *Client
	Model        string
	Temperature  float64
	SystemPrompt string
	Renderer     *content.Renderer
}

const (
	defaultSystemPrompt = "You are an experienced school teacher writing for students and parents. Answer in the language of the topic."
	defaultTemperature  = 0.7
)

type chatGenerator struct {
	client       *Client
	logger       logger.Logger
	model        string
	temperature  float64
	systemPrompt string
	renderer     *content.Renderer
}

// NewGenerator constructs a Generator backed by the chat client.
func NewGenerator(opts GeneratorOptions) (Generator, error) {
	if opts.Client == nil {
		return nil, eris.New("generator client is required")
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		return nil, eris.New("generator model is required")
	}

	temperature := opts.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	systemPrompt := strings.TrimSpace(opts.SystemPrompt)
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = content.NewRenderer()
	}

	return &chatGenerator{
		client:       opts.Client,
		logger:       opts.Client.logger,
		model:        model,
		temperature:  temperature,
		systemPrompt: systemPrompt,
		renderer:     renderer,
	}, nil
}

func (g *chatGenerator) Generate(ctx context.Context, topic string, kind Kind) (*Result, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, eris.New("topic is required")
	}
	if !kind.Valid() {
		return nil, eris.Errorf("unknown generation kind %q", kind)
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(g.systemPrompt),
			openai.UserMessage(buildPrompt(topic, kind)),
		},
		Temperature: openai.Float(g.temperature),
	}

	log := g.logger.With(map[string]interface{}{"kind": string(kind), "model": g.model})

	completion, err := g.client.chat.New(ctx, params)
	if err != nil {
		log.Error(err, "requesting chat completion")
		return nil, eris.Wrap(err, "requesting chat completion")
	}
	if len(completion.Choices) == 0 {
		err := eris.New("completion returned no choices")
		log.Error(err, "processing chat completion")
		return nil, err
	}

	choice := completion.Choices[0]
	if strings.EqualFold(strings.TrimSpace(choice.FinishReason), "content_filter") {
		err := eris.New("request blocked by content filter")
		log.Error(err, "generator blocked")
		return nil, err
	}
	if refusal := strings.TrimSpace(choice.Message.Refusal); refusal != "" {
		err := eris.Errorf("model refused to generate content: %s", refusal)
		log.Error(err, "generator refused")
		return nil, err
	}

	text := strings.TrimSpace(choice.Message.Content)
	if text == "" {
		return nil, eris.New("completion content is empty")
	}

	if kind == KindSEO {
		suggestion, err := ParseSEOSuggestion(text)
		if err != nil {
			log.Error(err, "parsing seo suggestion")
			return nil, err
		}
		return &Result{Kind: kind, SEO: suggestion}, nil
	}

	html, err := g.renderer.Markdown(text)
	if err != nil {
		return nil, eris.Wrap(err, "rendering generated markdown")
	}
	return &Result{Kind: kind, Markdown: text, HTML: html}, nil
}

func buildPrompt(topic string, kind Kind) string {
	switch kind {
	case KindOutline:
		return fmt.Sprintf("As a teacher, create a detailed lesson plan or article outline about %q. Use headings and subheadings.", topic)
	case KindArticle:
		return fmt.Sprintf("As a teacher, write an SEO friendly, informative blog post that students can easily follow about %q. Write it in Markdown.", topic)
	default:
		return fmt.Sprintf(`Create an SEO title, a meta description and keywords for the article title or topic %q. Return JSON only: {"title": "", "description": "", "keywords": ""}`, topic)
	}
}

// ParseSEOSuggestion decodes the model's JSON answer, tolerating a surrounding
// markdown code fence.
func ParseSEOSuggestion(raw string) (*SEOSuggestion, error) {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil, eris.New("seo suggestion is empty")
	}

	var suggestion SEOSuggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestion); err != nil {
		return nil, eris.Wrap(err, "decoding seo suggestion json")
	}
	if strings.TrimSpace(suggestion.Title) == "" && strings.TrimSpace(suggestion.Description) == "" {
		return nil, eris.New("seo suggestion has neither title nor description")
	}
	return &suggestion, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// Drop the info string, e.g. "json".
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// KeywordList accepts either a comma separated string or a JSON array of strings
// and always encodes as a comma separated string.
type KeywordList string

func (s *KeywordList) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*s = KeywordList(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return eris.Wrap(err, "keywords must be a string or a list of strings")
	}
	*s = KeywordList(strings.Join(many, ", "))
	return nil
}
