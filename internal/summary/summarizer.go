package summary

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful assistant that creates concise bullet point summaries of video transcripts."

const userPromptTemplate = "Please summarize the following YouTube video transcript into key bullet points, focusing on the main ideas and important details:\n\n%s"

const maxSummaryTokens = 500

type Summarizer struct {
	client *openai.Client
}

func NewSummarizer(apiKey string) *Summarizer {
	return &Summarizer{client: openai.NewClient(apiKey)}
}

// NewSummarizerWithBaseURL creates a summarizer against an alternate API
// endpoint. Tests use this to point at a local server.
func NewSummarizerWithBaseURL(apiKey string, baseURL string) *Summarizer {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return &Summarizer{client: openai.NewClientWithConfig(config)}
}

// Summarize asks the model for a bullet point summary of the transcript text.
func (s *Summarizer) Summarize(ctx context.Context, transcriptText string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(userPromptTemplate, transcriptText)},
		},
		MaxTokens: maxSummaryTokens,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
