package openai_client

import (
	"context"
	"errors"
	"fmt"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Client talks to an OpenAI-compatible chat completion endpoint (Groq by default).
// Calls are never retried.
type Client struct {
	api         openai.Client
	apiKey      string
	model       string
	temperature float64
	maxTokens   int64
}

var _ app.LanguageModel = &Client{}

func New(cfg *config.Config) *Client {
	var c = cfg.Clients.OpenAI

	var opts = []option.RequestOption{
		option.WithAPIKey(c.ApiKey),
		option.WithMaxRetries(0),
	}
	if c.BaseUrl != "" {
		opts = append(opts, option.WithBaseURL(c.BaseUrl))
	}
	if c.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(c.Timeout))
	}

	return &Client{
		api:         openai.NewClient(opts...),
		apiKey:      c.ApiKey,
		model:       c.Model,
		temperature: c.Temperature,
		maxTokens:   c.MaxTokens,
	}
}

func (this *Client) Configured() bool {
	return this.apiKey != ""
}

// Complete sends a single user message and returns the first choice content,
// or "" when the model returned no choices.
func (this *Client) Complete(ctx context.Context, prompt string) (string, error) {
	chat, err := this.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(this.model),
		Temperature: openai.Float(this.temperature),
		MaxTokens:   openai.Int(this.maxTokens),
	})
	if err != nil {
		return "", describe(err)
	}

	if len(chat.Choices) == 0 {
		return "", nil
	}
	return chat.Choices[0].Message.Content, nil
}

// CompleteJSON asks for output matching schema (structured outputs).
func (this *Client) CompleteJSON(ctx context.Context, system, user string, schema app.JSONSchema) (string, error) {
	var schemaParam = openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:   schema.Name,
		Schema: schema.Schema,
		Strict: openai.Bool(true),
	}
	if schema.Description != "" {
		schemaParam.Description = openai.String(schema.Description)
	}

	chat, err := this.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
		Seed:      openai.Int(42),
		Model:     openai.ChatModel(this.model),
		MaxTokens: openai.Int(this.maxTokens),
	})
	if err != nil {
		return "", describe(err)
	}

	if len(chat.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return chat.Choices[0].Message.Content, nil
}

func describe(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("chat completion failed with status %d: %w", apiErr.StatusCode, err)
	}
	return fmt.Errorf("chat completion: %w", err)
}
