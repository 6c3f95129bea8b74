package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/semaphore"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/service"
)

type progressUpdate struct {
	jobID    string
	progress float64
	message  string
}

// fakeTracker records status transitions instead of writing to Redis.
type fakeTracker struct {
	mu       sync.Mutex
	started  []string
	finished []string
	failed   map[string]string
	progress []progressUpdate
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{failed: make(map[string]string)}
}

func (f *fakeTracker) markStarted(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, id)
	return nil
}

func (f *fakeTracker) markFinished(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finished = append(f.finished, id)
	return nil
}

func (f *fakeTracker) markFailed(_ context.Context, id, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[id] = reason
	return nil
}

func (f *fakeTracker) setProgress(_ context.Context, id string, progress float64, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress = append(f.progress, progressUpdate{jobID: id, progress: progress, message: message})
	return nil
}

type WorkerSuite struct {
	suite.Suite
	ctx     context.Context
	tracker *fakeTracker
	worker  *Worker
}

func (s *WorkerSuite) SetupTest() {
	s.ctx = context.Background()
	s.tracker = newFakeTracker()
	s.worker = &Worker{
		status:     s.tracker,
		handlers:   make(map[string]HandlerFunc),
		sem:        semaphore.NewWeighted(1),
		jobTimeout: time.Minute,
		logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelError,
		})),
	}
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerSuite))
}

func (s *WorkerSuite) rawJob(id, jobType string, payload any) string {
	raw, err := json.Marshal(payload)
	s.Require().NoError(err)
	data, err := json.Marshal(Job{
		ID:         id,
		Type:       jobType,
		Payload:    raw,
		EnqueuedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)
	return string(data)
}

func (s *WorkerSuite) TestProcessDispatchesPayload() {
	var got ResearchPayload
	s.worker.Register(JobGenerateResearch, func(_ context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		return json.Unmarshal(payload, &got)
	})

	s.worker.process(s.ctx, s.rawJob("job-1", JobGenerateResearch, ResearchPayload{SuggestionID: 42}))

	s.Equal(int64(42), got.SuggestionID)
	s.Equal([]string{"job-1"}, s.tracker.started)
	s.Equal([]string{"job-1"}, s.tracker.finished)
	s.Empty(s.tracker.failed)
}

func (s *WorkerSuite) TestProcessUnknownType() {
	s.worker.process(s.ctx, s.rawJob("job-2", "mystery", struct{}{}))

	s.Empty(s.tracker.started)
	s.Equal("unknown job type: mystery", s.tracker.failed["job-2"])
}

func (s *WorkerSuite) TestProcessHandlerFailure() {
	s.worker.Register(JobGenerateArticle, func(context.Context, json.RawMessage, service.ProgressReporter) error {
		return errors.New("generation exploded")
	})

	s.worker.process(s.ctx, s.rawJob("job-3", JobGenerateArticle, ArticlePayload{ResearchID: 7}))

	s.Equal([]string{"job-3"}, s.tracker.started)
	s.Empty(s.tracker.finished)
	s.Equal("generation exploded", s.tracker.failed["job-3"])
}

func (s *WorkerSuite) TestProcessHandlerPanic() {
	s.worker.Register(JobSuggestMedia, func(context.Context, json.RawMessage, service.ProgressReporter) error {
		panic("nil dereference somewhere deep")
	})

	s.worker.process(s.ctx, s.rawJob("job-8", JobSuggestMedia, MediaPayload{ResearchID: 5}))

	s.Equal([]string{"job-8"}, s.tracker.started)
	s.Empty(s.tracker.finished)
	s.Equal("panic: nil dereference somewhere deep", s.tracker.failed["job-8"])
}

func (s *WorkerSuite) TestProcessMalformedJob() {
	s.worker.process(s.ctx, "{not json")

	s.Empty(s.tracker.started)
	s.Empty(s.tracker.finished)
	s.Empty(s.tracker.failed)
}

func (s *WorkerSuite) TestProgressReporterWritesToJob() {
	s.worker.Register(JobBulkGeneration, func(ctx context.Context, _ json.RawMessage, progress service.ProgressReporter) error {
		return progress.Update(ctx, 50, "processed 1/2 (0 failed)")
	})

	s.worker.process(s.ctx, s.rawJob("job-4", JobBulkGeneration, BulkPayload{}))

	s.Require().Len(s.tracker.progress, 1)
	s.Equal("job-4", s.tracker.progress[0].jobID)
	s.Equal(50.0, s.tracker.progress[0].progress)
	s.Equal("processed 1/2 (0 failed)", s.tracker.progress[0].message)
	s.Equal([]string{"job-4"}, s.tracker.finished)
}

type stubTranslations struct {
	entityType string
	entityID   int64
	fields     []string
	target     string
	drainLimit int
}

func (t *stubTranslations) Translate(_ context.Context, entityType string, entityID int64, fields []string, target string) (map[string]bool, error) {
	t.entityType = entityType
	t.entityID = entityID
	t.fields = fields
	t.target = target
	return map[string]bool{"title": true}, nil
}

func (t *stubTranslations) DrainOutbox(_ context.Context, limit int) (int, error) {
	t.drainLimit = limit
	return 0, nil
}

type stubBulk struct{}

func (stubBulk) Run(ctx context.Context, progress service.ProgressReporter) (domain.BulkStats, error) {
	if err := progress.Update(ctx, 100, "processed 2/2 (0 failed)"); err != nil {
		return domain.BulkStats{}, err
	}
	return domain.BulkStats{Processed: 2, Succeeded: 2}, nil
}

func (s *WorkerSuite) TestPipelineTranslateHandler() {
	translations := &stubTranslations{}
	s.worker.RegisterPipeline(Services{Translations: translations})

	s.worker.process(s.ctx, s.rawJob("job-5", JobTranslate, TranslatePayload{
		EntityType:     "article",
		EntityID:       9,
		Fields:         []string{"title", "content"},
		TargetLanguage: "de",
	}))

	s.Equal("article", translations.entityType)
	s.Equal(int64(9), translations.entityID)
	s.Equal([]string{"title", "content"}, translations.fields)
	s.Equal("de", translations.target)
	s.Equal([]string{"job-5"}, s.tracker.finished)
}

func (s *WorkerSuite) TestPipelineDispatchDefaultLimit() {
	translations := &stubTranslations{}
	s.worker.RegisterPipeline(Services{Translations: translations})

	s.worker.process(s.ctx, s.rawJob("job-6", JobDispatchTranslations, DispatchPayload{}))

	s.Equal(defaultDispatchLimit, translations.drainLimit)
}

func (s *WorkerSuite) TestPipelineBulkThreadsReporter() {
	s.worker.RegisterPipeline(Services{Bulk: stubBulk{}})

	s.worker.process(s.ctx, s.rawJob("job-7", JobBulkGeneration, BulkPayload{}))

	s.Require().Len(s.tracker.progress, 1)
	s.Equal(100.0, s.tracker.progress[0].progress)
	s.Equal([]string{"job-7"}, s.tracker.finished)
}

func TestNewJobRoundTrip(t *testing.T) {
	job, err := newJob(JobGenerateSuggestions, SuggestionsPayload{TaxonomyID: 3, Count: 5})
	if err != nil {
		t.Fatal(err)
	}
	if job.ID == "" {
		t.Fatal("expected a job id")
	}
	if job.Type != JobGenerateSuggestions {
		t.Fatalf("unexpected type %q", job.Type)
	}

	var payload SuggestionsPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.TaxonomyID != 3 || payload.Count != 5 {
		t.Fatalf("payload did not survive encoding: %+v", payload)
	}
}
