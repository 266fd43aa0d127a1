package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"
)

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

type SentimentClassifierInterface interface {
	ClassifySentiment(ctx context.Context, text string) (SentimentLabel, error)
}

// OpenAISentimentClassifier asks a chat model for a single sentiment label.
type OpenAISentimentClassifier struct {
	client *openai.Client
	model  string
}

func NewOpenAISentimentClassifier(apiKey, model string) *OpenAISentimentClassifier {
	return NewOpenAISentimentClassifierWithConfig(openai.DefaultConfig(apiKey), model)
}

func NewOpenAISentimentClassifierWithConfig(cfg openai.ClientConfig, model string) *OpenAISentimentClassifier {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISentimentClassifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

const sentimentSystemPrompt = `You classify the overall sentiment a traveler expresses about their own itinerary.
Return JSON only, exactly {"label":"positive"}, {"label":"neutral"} or {"label":"negative"}.`

// ClassifySentiment returns neutral for blank text without calling the model.
func (c *OpenAISentimentClassifier) ClassifySentiment(ctx context.Context, text string) (SentimentLabel, error) {
	if strings.TrimSpace(text) == "" {
		return SentimentNeutral, nil
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sentimentSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrSentimentFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrSentimentFailed)
	}

	var payload struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		return "", fmt.Errorf("%w: decode label: %v", ErrSentimentFailed, err)
	}

	switch label := SentimentLabel(strings.ToLower(strings.TrimSpace(payload.Label))); label {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return label, nil
	default:
		return "", fmt.Errorf("%w: unknown label %q", ErrSentimentFailed, payload.Label)
	}
}
