package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"editorial_pipeline/internal/config"
	"editorial_pipeline/internal/domain"
)

// BulkDriver runs the research-and-write pipeline serially over every
// approved suggestion that has no research yet. One failing item is retried
// a few times and then skipped; the batch always runs to the end.
type BulkDriver struct {
	researcher  *Researcher
	writer      *Writer
	suggestions SuggestionStore
	research    ResearchStore
	cfg         config.PipelineConfig
	logger      *slog.Logger

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

func NewBulkDriver(
	researcher *Researcher,
	writer *Writer,
	suggestions SuggestionStore,
	research ResearchStore,
	cfg config.PipelineConfig,
	logger *slog.Logger,
) *BulkDriver {
	return &BulkDriver{
		researcher:  researcher,
		writer:      writer,
		suggestions: suggestions,
		research:    research,
		cfg:         cfg,
		logger:      logger.With("service", "bulk"),
		sleep:       time.Sleep,
	}
}

// Run processes the whole backlog and reports progress after each item.
func (d *BulkDriver) Run(ctx context.Context, progress ProgressReporter) (domain.BulkStats, error) {
	started := time.Now()

	backlog, err := d.suggestions.ListApprovedWithoutResearch(ctx)
	if err != nil {
		return domain.BulkStats{}, fmt.Errorf("load backlog: %w", err)
	}

	stats := domain.BulkStats{}
	for i := range backlog {
		suggestion := &backlog[i]

		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(started)
			return stats, fmt.Errorf("bulk run interrupted: %w", err)
		}

		err := d.processWithRetry(ctx, suggestion.ID)
		stats.Processed++
		if err != nil {
			stats.Failed++
			d.logger.Error("bulk item failed, continuing",
				"suggestion_id", suggestion.ID,
				"title", suggestion.Title,
				"error", err,
			)
		} else {
			stats.Succeeded++
		}

		if progress != nil {
			pct := float64(stats.Processed) / float64(len(backlog)) * 100
			msg := fmt.Sprintf("processed %d/%d (%d failed)", stats.Processed, len(backlog), stats.Failed)
			if err := progress.Update(ctx, pct, msg); err != nil {
				d.logger.Warn("progress update failed", "error", err)
			}
		}
	}

	stats.Duration = time.Since(started)
	d.logger.Info("bulk run completed",
		"processed", stats.Processed,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)
	return stats, nil
}

func (d *BulkDriver) processWithRetry(ctx context.Context, suggestionID int64) error {
	var lastErr error
	for attempt := 1; attempt <= d.cfg.BulkMaxRetries; attempt++ {
		lastErr = d.processOne(ctx, suggestionID)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return lastErr
		}
		d.logger.Warn("bulk item attempt failed",
			"suggestion_id", suggestionID,
			"attempt", attempt,
			"max_attempts", d.cfg.BulkMaxRetries,
			"error", lastErr,
		)
		if attempt < d.cfg.BulkMaxRetries {
			d.sleep(d.cfg.BulkRetryDelay)
		}
	}
	return fmt.Errorf("after %d attempts: %w", d.cfg.BulkMaxRetries, lastErr)
}

// processOne runs research, auto-approves it, and writes the article.
func (d *BulkDriver) processOne(ctx context.Context, suggestionID int64) error {
	research, err := d.researcher.GenerateResearch(ctx, suggestionID)
	if err != nil {
		return err
	}

	if err := d.research.UpdateStatus(ctx, research.ID, domain.StatusApproved); err != nil {
		return fmt.Errorf("approve research %d: %w", research.ID, err)
	}

	if _, err := d.writer.GenerateArticle(ctx, research.ID); err != nil {
		return err
	}
	return nil
}
