package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"editorial_pipeline/internal/domain"
)

// Result is one successful generation response.
type Result struct {
	Text  string
	Usage Usage
}

// Usage is the token accounting attached to a response.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Provider performs one remote generation call.
type Provider interface {
	Generate(ctx context.Context, prompt string, history []Turn) (Result, error)
	Model() string
	Name() string
}

// UsageRecorder appends token/cost entries to the usage ledger. Entries are
// independent, so concurrent generation calls may record without coordination.
type UsageRecorder interface {
	Record(ctx context.Context, usage *domain.Usage) error
}

// Config tunes the retrying client.
type Config struct {
	CallsPerMinute int
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client wraps a Provider with rate limiting, transient-error retry and
// usage-ledger accounting. One Client owns one RateLimiter.
type Client struct {
	provider Provider
	limiter  *RateLimiter
	usage    UsageRecorder
	rates    CostTable
	logger   *slog.Logger

	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	sleep func(time.Duration)
}

func NewClient(provider Provider, usage UsageRecorder, cfg Config, logger *slog.Logger) *Client {
	return &Client{
		provider:       provider,
		limiter:        NewRateLimiter(cfg.CallsPerMinute),
		usage:          usage,
		rates:          DefaultCostTable,
		logger:         logger.With("provider", provider.Name(), "model", provider.Model()),
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		sleep:          time.Sleep,
	}
}

// Generate performs one rate-limited call, retrying transient overload
// failures with exponential backoff. Non-transient errors propagate
// immediately; exhausting the attempt budget surfaces the last error.
func (c *Client) Generate(ctx context.Context, prompt string, history []Turn) (Result, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		c.limiter.WaitIfNeeded()

		result, err := c.provider.Generate(ctx, prompt, history)
		if err == nil {
			c.recordUsage(ctx, result.Usage)
			return result, nil
		}

		if !IsTransient(err) {
			return Result{}, err
		}
		lastErr = err

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("generation call overloaded, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)
		c.sleep(backoff)
	}

	return Result{}, fmt.Errorf("after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) Model() string { return c.provider.Model() }

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) recordUsage(ctx context.Context, u Usage) {
	if c.usage == nil {
		return
	}
	entry := &domain.Usage{
		Provider:     c.provider.Name(),
		Model:        c.provider.Model(),
		InputTokens:  u.InputTokens,
		OutputTokens: u.OutputTokens,
		Cost:         c.rates.Cost(c.provider.Model(), u),
	}
	if err := c.usage.Record(ctx, entry); err != nil {
		// Accounting must not fail the generation that produced it.
		c.logger.Warn("failed to record usage", "error", err)
	}
}

// CostTable maps model identifiers to per-1K-token dollar rates.
type CostTable map[string]struct {
	Input  float64
	Output float64
}

var DefaultCostTable = CostTable{
	"claude-3-5-sonnet-latest": {Input: 0.003, Output: 0.015},
	"claude-3-haiku-20240307":  {Input: 0.00025, Output: 0.00125},
	"gpt-4-turbo-preview":      {Input: 0.01, Output: 0.03},
}

func (t CostTable) Cost(model string, u Usage) float64 {
	rates, ok := t[model]
	if !ok {
		return 0
	}
	return float64(u.InputTokens)*rates.Input/1000 + float64(u.OutputTokens)*rates.Output/1000
}
