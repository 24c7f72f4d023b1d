package narrative

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//go:generate mockgen -source=$GOFILE -destination=generator_mocks_test.go -package=narrative_test

var ErrEmptyCompletion = errors.New("empty completion")

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type OpenAIGeneratorParams struct {
	APIKey    string
	Model     string
	MaxTokens int
	// BaseURL is optional, mostly used to point to a proxy or a test server.
	BaseURL string
}

type OpenAIGenerator struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIGenerator(params OpenAIGeneratorParams) *OpenAIGenerator {
	clientConfig := openai.DefaultConfig(params.APIKey)
	clientConfig.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	if params.BaseURL != "" {
		clientConfig.BaseURL = params.BaseURL
	}

	model := params.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIGenerator{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     model,
		maxTokens: params.MaxTokens,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:     g.model,
			MaxTokens: g.maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		log.Warnf("openai returned no choices for model %s", g.model)
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
