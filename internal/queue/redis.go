// Package queue runs generation jobs from a Redis-backed list. Producers
// enqueue a typed job with a JSON payload; the worker pops jobs, dispatches
// them to registered handlers under bounded concurrency, and mirrors each
// job's lifecycle into a Redis hash so callers can poll status and progress.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"editorial_pipeline/internal/config"
	"editorial_pipeline/internal/service"
)

const (
	JobGenerateSuggestions  = "generate_suggestions"
	JobGenerateResearch     = "generate_research"
	JobGenerateArticle      = "generate_article"
	JobImproveReadability   = "improve_readability"
	JobSuggestMedia         = "suggest_media"
	JobPromoteArticle       = "promote_article"
	JobGenerateFeedPosts    = "generate_feed_posts"
	JobTranslate            = "translate"
	JobDispatchTranslations = "dispatch_translations"
	JobBulkGeneration       = "bulk_generation"
)

const (
	StatusQueued   = "queued"
	StatusStarted  = "started"
	StatusFinished = "finished"
	StatusFailed   = "failed"
)

const (
	jobsKey     = "pipeline:jobs"
	popTimeout  = 5 * time.Second
	bookkeeping = 5 * time.Second
)

func jobKey(id string) string { return "pipeline:job:" + id }

// Job is the wire shape of one queued unit of work.
type Job struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

func newJob(jobType string, payload any) (Job, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("marshal payload: %w", err)
	}
	return Job{
		ID:         uuid.NewString(),
		Type:       jobType,
		Payload:    raw,
		EnqueuedAt: time.Now().UTC(),
	}, nil
}

// JobStatus is a point-in-time snapshot of a job's metadata hash.
type JobStatus struct {
	Type     string
	Status   string
	Progress float64
	Message  string
	Error    string
}

// Queue enqueues jobs and owns their metadata hashes.
type Queue struct {
	redis     *redis.Client
	resultTTL time.Duration
	logger    *slog.Logger
}

func NewQueue(client *redis.Client, resultTTL time.Duration, logger *slog.Logger) *Queue {
	return &Queue{
		redis:     client,
		resultTTL: resultTTL,
		logger:    logger.With("service", "queue"),
	}
}

// Enqueue pushes a job onto the work list and seeds its metadata hash.
// It returns the job id callers poll with Status.
func (q *Queue) Enqueue(ctx context.Context, jobType string, payload any) (string, error) {
	job, err := newJob(jobType, payload)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}

	pipe := q.redis.TxPipeline()
	pipe.HSet(ctx, jobKey(job.ID),
		"type", job.Type,
		"status", StatusQueued,
		"progress", "0",
		"message", "",
		"error", "",
	)
	pipe.Expire(ctx, jobKey(job.ID), q.resultTTL)
	pipe.RPush(ctx, jobsKey, string(data))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("enqueue %s job: %w", jobType, err)
	}

	q.logger.Info("job enqueued", "job_id", job.ID, "type", job.Type)
	return job.ID, nil
}

// Status reads a job's metadata hash. It returns a zero-status snapshot
// when the hash has expired or never existed.
func (q *Queue) Status(ctx context.Context, id string) (JobStatus, error) {
	fields, err := q.redis.HGetAll(ctx, jobKey(id)).Result()
	if err != nil {
		return JobStatus{}, fmt.Errorf("read job %s: %w", id, err)
	}

	status := JobStatus{
		Type:    fields["type"],
		Status:  fields["status"],
		Message: fields["message"],
		Error:   fields["error"],
	}
	if raw, ok := fields["progress"]; ok && raw != "" {
		if progress, err := strconv.ParseFloat(raw, 64); err == nil {
			status.Progress = progress
		}
	}
	return status, nil
}

func (q *Queue) markStarted(ctx context.Context, id string) error {
	return q.setFields(ctx, id, "status", StatusStarted)
}

func (q *Queue) markFinished(ctx context.Context, id string) error {
	return q.setFields(ctx, id, "status", StatusFinished, "progress", "100")
}

func (q *Queue) markFailed(ctx context.Context, id, reason string) error {
	return q.setFields(ctx, id, "status", StatusFailed, "error", reason)
}

func (q *Queue) setProgress(ctx context.Context, id string, progress float64, message string) error {
	return q.setFields(ctx, id,
		"progress", strconv.FormatFloat(progress, 'f', -1, 64),
		"message", message,
	)
}

func (q *Queue) setFields(ctx context.Context, id string, pairs ...any) error {
	pipe := q.redis.TxPipeline()
	pipe.HSet(ctx, jobKey(id), pairs...)
	pipe.Expire(ctx, jobKey(id), q.resultTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update job %s: %w", id, err)
	}
	return nil
}

// statusTracker is the slice of Queue the worker needs for job bookkeeping.
type statusTracker interface {
	markStarted(ctx context.Context, id string) error
	markFinished(ctx context.Context, id string) error
	markFailed(ctx context.Context, id, reason string) error
	setProgress(ctx context.Context, id string, progress float64, message string) error
}

// HandlerFunc processes one job payload. Long-running handlers receive a
// reporter that writes progress into the job's metadata hash.
type HandlerFunc func(ctx context.Context, payload json.RawMessage, progress service.ProgressReporter) error

// Worker pops jobs off the Redis list and dispatches them to handlers.
// At most cfg.Concurrency jobs run at once; each job gets its own timeout.
type Worker struct {
	redis      *redis.Client
	status     statusTracker
	handlers   map[string]HandlerFunc
	sem        *semaphore.Weighted
	jobTimeout time.Duration
	logger     *slog.Logger
	wg         sync.WaitGroup
}

func NewWorker(client *redis.Client, queue *Queue, cfg config.WorkerConfig, logger *slog.Logger) *Worker {
	return &Worker{
		redis:      client,
		status:     queue,
		handlers:   make(map[string]HandlerFunc),
		sem:        semaphore.NewWeighted(int64(cfg.Concurrency)),
		jobTimeout: cfg.JobTimeout,
		logger:     logger.With("service", "worker"),
	}
}

func (w *Worker) Register(jobType string, fn HandlerFunc) {
	w.handlers[jobType] = fn
}

// Run blocks until ctx is cancelled, then waits for in-flight jobs.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker stopping")
			w.wg.Wait()
			return
		default:
			result, err := w.redis.BLPop(ctx, popTimeout, jobsKey).Result()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				w.logger.Error("pop job", "error", err)
				time.Sleep(time.Second)
				continue
			}

			if err := w.sem.Acquire(ctx, 1); err != nil {
				// Shutting down mid-pop: put the job back.
				w.requeue(result[1])
				continue
			}

			w.wg.Add(1)
			go func(raw string) {
				defer w.wg.Done()
				defer w.sem.Release(1)
				w.process(ctx, raw)
			}(result[1])
		}
	}
}

func (w *Worker) requeue(raw string) {
	ctx, cancel := context.WithTimeout(context.Background(), bookkeeping)
	defer cancel()
	if err := w.redis.LPush(ctx, jobsKey, raw).Err(); err != nil {
		w.logger.Error("requeue job", "error", err)
	}
}

func (w *Worker) process(ctx context.Context, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		w.logger.Error("unmarshal job", "error", err)
		return
	}

	logger := w.logger.With("job_id", job.ID, "type", job.Type)

	// A panicking handler must not take the worker down.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panicked", "panic", r)
			w.track(job.ID, func(bctx context.Context) error {
				return w.status.markFailed(bctx, job.ID, fmt.Sprintf("panic: %v", r))
			})
		}
	}()

	handler, ok := w.handlers[job.Type]
	if !ok {
		logger.Error("unknown job type")
		w.track(job.ID, func(bctx context.Context) error {
			return w.status.markFailed(bctx, job.ID, "unknown job type: "+job.Type)
		})
		return
	}

	w.track(job.ID, func(bctx context.Context) error {
		return w.status.markStarted(bctx, job.ID)
	})

	jobCtx, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()

	start := time.Now()
	reporter := &jobProgress{status: w.status, jobID: job.ID}
	if err := handler(jobCtx, job.Payload, reporter); err != nil {
		logger.Error("job failed", "error", err, "duration", time.Since(start))
		w.track(job.ID, func(bctx context.Context) error {
			return w.status.markFailed(bctx, job.ID, err.Error())
		})
		return
	}

	w.track(job.ID, func(bctx context.Context) error {
		return w.status.markFinished(bctx, job.ID)
	})
	logger.Info("job finished", "duration", time.Since(start))
}

// track runs a bookkeeping update on a fresh context so status survives
// job timeouts and shutdown.
func (w *Worker) track(jobID string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), bookkeeping)
	defer cancel()
	if err := fn(ctx); err != nil {
		w.logger.Error("update job status", "job_id", jobID, "error", err)
	}
}

// jobProgress adapts the job metadata hash to service.ProgressReporter.
type jobProgress struct {
	status statusTracker
	jobID  string
}

func (p *jobProgress) Update(ctx context.Context, progress float64, message string) error {
	return p.status.setProgress(ctx, p.jobID, progress, message)
}
