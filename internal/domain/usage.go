package domain

import "time"

// Usage is one append-only ledger entry for a successful generation call.
type Usage struct {
	ID           int64     `db:"id"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	Cost         float64   `db:"cost"`
	CreatedAt    time.Time `db:"created_at"`
}

// BulkStats summarizes one bulk generation run.
type BulkStats struct {
	Processed int
	Succeeded int
	Failed    int
	Duration  time.Duration
}
