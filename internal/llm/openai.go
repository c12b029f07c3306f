package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/generation"
)

const openaiAPIBase = "https://api.openai.com/v1"

var openaiModelOrder = []string{"GPT-3.5 Turbo", "GPT-4", "GPT-4 Turbo"}

var openaiModels = map[string]string{
	"GPT-3.5 Turbo": "gpt-3.5-turbo",
	"GPT-4":         "gpt-4",
	"GPT-4 Turbo":   "gpt-4-turbo-preview",
}

// OpenAIClient implements generation.Provider using the OpenAI chat
// completions API.
type OpenAIClient struct {
	apiKey string
	client *http.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

func (c *OpenAIClient) Models() []string {
	out := make([]string, len(openaiModelOrder))
	copy(out, openaiModelOrder)
	return out
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
	Messages    []openaiMessage `json:"messages"`
}

type openaiResponse struct {
	Choices []struct {
		Message openaiMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends a blocking chat completion request and returns the text of
// the first choice.
func (c *OpenAIClient) Generate(ctx context.Context, req generation.Request) (string, error) {
	model, ok := openaiModels[req.Model]
	if !ok {
		model = openaiModels[openaiModelOrder[0]]
	}

	body, err := json.Marshal(openaiRequest{
		Model:       model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Messages:    []openaiMessage{{Role: "system", Content: req.Prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		openaiAPIBase+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai http: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var or openaiResponse
	if err := json.Unmarshal(raw, &or); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if or.Error != nil {
		return "", fmt.Errorf("openai api error %s: %s", or.Error.Type, or.Error.Message)
	}
	if len(or.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return or.Choices[0].Message.Content, nil
}
