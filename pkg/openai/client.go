// Package openai is the outbound client for the AI job-search assistant,
// plus the error classifier that turns raw transport failures into the
// stable taxonomy surfaced to callers.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	chatCompletionsURL = "https://api.openai.com/v1/chat/completions"
	responsesURL       = "https://api.openai.com/v1/responses"

	maxOutputTokens = 500
)

// Client calls the OpenAI REST API directly. One client is built at
// startup and shared; the HTTP timeout is the only retry-free guard on
// the call (a failed call fails the whole request once).
type Client struct {
	apiKey     string
	chatModel  string
	httpClient *http.Client
}

func NewClient(apiKey, chatModel string) *Client {
	return &Client{
		apiKey:    apiKey,
		chatModel: chatModel,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// Configured reports whether an API key is present. Handlers check this
// before attempting a call so a missing key is a config error, not an
// external failure.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends a system+user message pair and returns the
// assistant reply text.
func (c *Client) ChatCompletion(ctx context.Context, system, user string) (string, error) {
	payload := chatRequest{
		Model: c.chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxOutputTokens,
		Temperature: 0.7,
	}

	body, err := c.post(ctx, chatCompletionsURL, payload)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

type responsesRequest struct {
	Model           string `json:"model"`
	Input           string `json:"input"`
	MaxOutputTokens int    `json:"max_output_tokens"`
}

type responsesResponse struct {
	Output []struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	OutputText string `json:"output_text"`
}

// Respond sends a single prompt through the responses endpoint and
// returns the generated text.
func (c *Client) Respond(ctx context.Context, input string) (string, error) {
	payload := responsesRequest{
		Model:           c.chatModel,
		Input:           input,
		MaxOutputTokens: maxOutputTokens,
	}

	body, err := c.post(ctx, responsesURL, payload)
	if err != nil {
		return "", err
	}

	var parsed responsesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding responses body: %w", err)
	}
	for _, out := range parsed.Output {
		for _, content := range out.Content {
			if content.Text != "" {
				return content.Text, nil
			}
		}
	}
	if parsed.OutputText != "" {
		return parsed.OutputText, nil
	}
	return "", fmt.Errorf("response contained no output text")
}

func (c *Client) post(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
