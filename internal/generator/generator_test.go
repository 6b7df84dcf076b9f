//go:build unit

package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"edupress/internal/logger"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatService struct {
	response   *openai.ChatCompletion
	err        error
	lastParams openai.ChatCompletionNewParams
}

func (f *fakeChatService) New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	f.lastParams = body
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func completion(content, finishReason, refusal string) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		ID:      "gen-1",
		Created: time.Now().Unix(),
		Model:   "test-model",
		Object:  constant.ValueOf[constant.ChatCompletion](),
		Choices: []openai.ChatCompletionChoice{
			{
				FinishReason: finishReason,
				Message: openai.ChatCompletionMessage{
					Content: content,
					Refusal: refusal,
					Role:    constant.ValueOf[constant.Assistant](),
				},
			},
		},
	}
}

func newTestGenerator(t *testing.T, chat *fakeChatService) Generator {
	t.Helper()
	client := &Client{chat: chat, logger: logger.Nop(), baseURL: "https://fake-llm-provider.test/v1"}
	gen, err := NewGenerator(GeneratorOptions{Client: client, Model: "stub-model"})
	require.NoError(t, err)
	return gen
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(ClientOptions{})
	assert.Error(t, err)

	client, err := NewClient(ClientOptions{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, client.BaseURL())
}

func TestGenerateArticleRendersMarkdown(t *testing.T) {
	chat := &fakeChatService{response: completion("## Kesirler\n\nPaydaları **eşitle**.", "stop", "")}
	gen := newTestGenerator(t, chat)

	result, err := gen.Generate(context.Background(), "  Kesirler ", KindArticle)
	require.NoError(t, err)

	assert.Equal(t, KindArticle, result.Kind)
	assert.Contains(t, result.HTML, "<h2>Kesirler</h2>")
	assert.Contains(t, result.HTML, "<strong>eşitle</strong>")
	assert.Nil(t, result.SEO)

	assert.Equal(t, "stub-model", string(chat.lastParams.Model))
	require.Len(t, chat.lastParams.Messages, 2)
}

func TestGenerateSEO(t *testing.T) {
	fenced := "```json\n{\"title\": \"Kesirler\", \"description\": \"Kesirlerle dört işlem\", \"keywords\": [\"kesir\", \"matematik\"]}\n```"
	gen := newTestGenerator(t, &fakeChatService{response: completion(fenced, "stop", "")})

	result, err := gen.Generate(context.Background(), "Kesirler", KindSEO)
	require.NoError(t, err)
	require.NotNil(t, result.SEO)
	assert.Equal(t, "Kesirler", result.SEO.Title)
	assert.Equal(t, KeywordList("kesir, matematik"), result.SEO.Keywords)
}

func TestGenerateFailures(t *testing.T) {
	cases := []struct {
		name string
		chat *fakeChatService
		kind Kind
	}{
		{"transport error", &fakeChatService{err: errors.New("boom")}, KindOutline},
		{"no choices", &fakeChatService{response: &openai.ChatCompletion{}}, KindOutline},
		{"content filter", &fakeChatService{response: completion("x", "content_filter", "")}, KindArticle},
		{"refusal", &fakeChatService{response: completion("", "stop", "no")}, KindArticle},
		{"empty content", &fakeChatService{response: completion("   ", "stop", "")}, KindArticle},
		{"unparsable seo", &fakeChatService{response: completion("not json", "stop", "")}, KindSEO},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gen := newTestGenerator(t, c.chat)
			_, err := gen.Generate(context.Background(), "topic", c.kind)
			assert.Error(t, err)
		})
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	chat := &fakeChatService{response: completion("x", "stop", "")}
	gen := newTestGenerator(t, chat)

	_, err := gen.Generate(context.Background(), " ", KindArticle)
	assert.Error(t, err)

	_, err = gen.Generate(context.Background(), "topic", Kind("poem"))
	assert.Error(t, err)
	assert.Empty(t, chat.lastParams.Messages, "no request is sent for invalid input")
}

func TestParseSEOSuggestion(t *testing.T) {
	cases := map[string]string{
		"plain":          `{"title":"T","description":"D","keywords":"a, b"}`,
		"fenced":         "```json\n{\"title\":\"T\",\"description\":\"D\",\"keywords\":\"a, b\"}\n```",
		"bare fence":     "```\n{\"title\":\"T\",\"description\":\"D\",\"keywords\":\"a, b\"}\n```",
		"inline fence":   "```json{\"title\":\"T\",\"description\":\"D\",\"keywords\":\"a, b\"}```",
		"list keywords":  `{"title":"T","description":"D","keywords":["a","b"]}`,
		"padded content": "\n\n  " + `{"title":"T","description":"D","keywords":"a, b"}` + "  \n",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSEOSuggestion(raw)
			require.NoError(t, err)
			assert.Equal(t, &SEOSuggestion{Title: "T", Description: "D", Keywords: "a, b"}, got)
		})
	}

	_, err := ParseSEOSuggestion(`{"keywords":"only"}`)
	assert.Error(t, err)
	_, err = ParseSEOSuggestion(strings.Repeat("`", 3))
	assert.Error(t, err)
}
