package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AnthropicConfig holds the remote endpoint settings.
type AnthropicConfig struct {
	BaseURL       string
	APIKey        string
	Model         string
	Temperature   float64
	MaxTokens     int
	StopSequences []string
	Timeout       time.Duration
}

// Anthropic talks to an Anthropic-style messages endpoint.
type Anthropic struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	model         string
	temperature   float64
	maxTokens     int
	stopSequences []string
}

var _ Provider = (*Anthropic)(nil)

func NewAnthropic(cfg AnthropicConfig) *Anthropic {
	return &Anthropic{
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		temperature:   cfg.Temperature,
		maxTokens:     cfg.MaxTokens,
		stopSequences: cfg.StopSequences,
	}
}

func (a *Anthropic) Name() string  { return "anthropic" }
func (a *Anthropic) Model() string { return a.model }

type messagesRequest struct {
	Model         string  `json:"model"`
	MaxTokens     int     `json:"max_tokens"`
	Temperature   float64 `json:"temperature"`
	Messages      []Turn  `json:"messages"`
	StopSequences []string `json:"stop_sequences,omitempty"`
}

type messagesResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate posts the history plus the new user prompt as one messages call.
func (a *Anthropic) Generate(ctx context.Context, prompt string, history []Turn) (Result, error) {
	messages := make([]Turn, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, Turn{Role: RoleUser, Text: prompt})

	body, err := json.Marshal(messagesRequest{
		Model:         a.model,
		MaxTokens:     a.maxTokens,
		Temperature:   a.temperature,
		Messages:      messages,
		StopSequences: a.stopSequences,
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, a.classifyError(resp)
	}

	var parsed messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Content) == 0 {
		return Result{}, fmt.Errorf("empty content in response")
	}

	return Result{
		Text: strings.TrimSpace(parsed.Content[0].Text),
		Usage: Usage{
			InputTokens:  parsed.Usage.InputTokens,
			OutputTokens: parsed.Usage.OutputTokens,
		},
	}, nil
}

// classifyError maps HTTP 429 and 529 (and the overloaded_error type) to the
// transient overload signal; everything else is terminal.
func (a *Anthropic) classifyError(resp *http.Response) error {
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var parsed apiError
	_ = json.Unmarshal(payload, &parsed)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == 529,
		parsed.Error.Type == "overloaded_error":
		return fmt.Errorf("%w: status %d: %s", ErrOverloaded, resp.StatusCode, parsed.Error.Message)
	default:
		msg := parsed.Error.Message
		if msg == "" {
			msg = strings.TrimSpace(string(payload))
		}
		return fmt.Errorf("anthropic error %s: %s", resp.Status, msg)
	}
}
