package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/couchcryptid/problem-report-intake/internal/domain"
	"github.com/couchcryptid/problem-report-intake/internal/observability"
	"github.com/couchcryptid/problem-report-intake/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

// mockExtractor hands out each batch once, then blocks until the context
// is cancelled to simulate an idle topic.
type mockExtractor struct {
	batches [][]domain.RawEvent
	errs    []error
	calls   atomic.Int64
}

func (m *mockExtractor) ExtractBatch(ctx context.Context, _ int) ([]domain.RawEvent, error) {
	i := int(m.calls.Add(1) - 1)
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	if i < len(m.batches) {
		return m.batches[i], nil
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

type mockTransformer struct {
	err    error
	reject map[string]bool
}

func (m *mockTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	if m.err != nil {
		return domain.OutputEvent{}, m.err
	}
	if m.reject[string(raw.Key)] {
		return domain.OutputEvent{}, errors.New("invalid submission")
	}
	return domain.OutputEvent{Key: raw.Key, Value: raw.Value}, nil
}

type mockLoader struct {
	mu       sync.Mutex
	loaded   []domain.OutputEvent
	failures int
}

func (m *mockLoader) LoadBatch(_ context.Context, events []domain.OutputEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return errors.New("broker unavailable")
	}
	m.loaded = append(m.loaded, events...)
	return nil
}

func (m *mockLoader) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.loaded)
}

func (m *mockLoader) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.loaded))
	for _, e := range m.loaded {
		keys = append(keys, string(e.Key))
	}
	return keys
}

// commitLog records commit order along with how many reports had been
// loaded when each commit happened.
type commitLog struct {
	mu       sync.Mutex
	keys     []string
	loadedAt []int
}

func (c *commitLog) track(raw domain.RawEvent, ldr *mockLoader) domain.RawEvent {
	raw.Commit = func(context.Context) error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.keys = append(c.keys, string(raw.Key))
		c.loadedAt = append(c.loadedAt, ldr.count())
		return nil
	}
	return raw
}

func (c *commitLog) snapshot() ([]string, []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.keys), slices.Clone(c.loadedAt)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runFor(t *testing.T, p *pipeline.Pipeline, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	require.NoError(t, p.Run(ctx))
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	raw := makeRawEvent(t, "msg-1", validSubmission())

	ext := &mockExtractor{batches: [][]domain.RawEvent{{raw}}}
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), metrics, 10)
	require.Error(t, p.CheckReadiness(context.Background()))

	runFor(t, p, 300*time.Millisecond)

	require.Equal(t, 1, ldr.count())
	assert.Equal(t, raw.Value, ldr.loaded[0].Value)
	require.NoError(t, p.CheckReadiness(context.Background()))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.MessagesConsumed), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.MessagesProduced), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.PipelineRunning), 0)
}

func TestPipeline_Run_ContextCancellation(t *testing.T) {
	ext := &mockExtractor{}
	ldr := &mockLoader{}

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), observability.NewMetricsForTesting(), 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Run(ctx))
	assert.Zero(t, ldr.count())
}

func TestPipeline_Run_RejectedSubmissionIsCommitted(t *testing.T) {
	var committed atomic.Bool
	raw := makeRawEvent(t, "msg-2", domain.RawSubmission{Title: "Buraco"})
	raw.Commit = func(context.Context) error {
		committed.Store(true)
		return nil
	}

	ext := &mockExtractor{batches: [][]domain.RawEvent{{raw}}}
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, &mockTransformer{err: errors.New("invalid submission")}, ldr, discardLogger(), metrics, 10)
	runFor(t, p, 300*time.Millisecond)

	assert.Zero(t, ldr.count())
	assert.True(t, committed.Load())
	assert.Error(t, p.CheckReadiness(context.Background()))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.TransformErrors), 0)
}

func TestPipeline_Run_CommitsAfterLoad(t *testing.T) {
	var loadedAtCommit atomic.Int64
	ldr := &mockLoader{}

	raw := makeRawEvent(t, "msg-3", validSubmission())
	raw.Topic = "raw-problem-reports"
	raw.Commit = func(context.Context) error {
		loadedAtCommit.Store(int64(ldr.count()))
		return nil
	}

	ext := &mockExtractor{batches: [][]domain.RawEvent{{raw}}}
	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), observability.NewMetricsForTesting(), 10)
	runFor(t, p, 300*time.Millisecond)

	assert.Equal(t, int64(1), loadedAtCommit.Load())
}

func TestPipeline_Run_LoadFailureRetriesSameBatch(t *testing.T) {
	ldr := &mockLoader{failures: 1}
	var log commitLog
	a := log.track(makeRawEvent(t, "a", validSubmission()), ldr)
	b := log.track(makeRawEvent(t, "b", validSubmission()), ldr)

	ext := &mockExtractor{batches: [][]domain.RawEvent{{a}, {b}}}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), metrics, 10)
	runFor(t, p, 2*time.Second)

	assert.Equal(t, []string{"a", "b"}, ldr.keys())
	keys, loadedAt := log.snapshot()
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, []int{1, 2}, loadedAt)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.MessagesProduced), 0)
}

func TestPipeline_Run_RejectedWaitsForLoad(t *testing.T) {
	ldr := &mockLoader{failures: 2}
	var log commitLog
	accepted := log.track(makeRawEvent(t, "accepted", validSubmission()), ldr)
	rejected := log.track(makeRawEvent(t, "rejected", validSubmission()), ldr)

	ext := &mockExtractor{batches: [][]domain.RawEvent{{accepted, rejected}}}
	tfm := &mockTransformer{reject: map[string]bool{"rejected": true}}

	p := pipeline.New(ext, tfm, ldr, discardLogger(), observability.NewMetricsForTesting(), 10)
	runFor(t, p, 2*time.Second)

	assert.Equal(t, []string{"accepted"}, ldr.keys())
	keys, loadedAt := log.snapshot()
	assert.Equal(t, []string{"accepted", "rejected"}, keys)
	assert.Equal(t, []int{1, 1}, loadedAt)
}

func TestPipeline_Run_LoadNeverSucceedsLeavesBatchUncommitted(t *testing.T) {
	ldr := &mockLoader{failures: 1 << 30}
	var log commitLog
	a := log.track(makeRawEvent(t, "a", validSubmission()), ldr)

	ext := &mockExtractor{batches: [][]domain.RawEvent{{a}}}
	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), observability.NewMetricsForTesting(), 10)
	runFor(t, p, 500*time.Millisecond)

	keys, _ := log.snapshot()
	assert.Empty(t, keys)
	assert.Empty(t, ldr.keys())
	assert.Error(t, p.CheckReadiness(context.Background()))
}

func TestPipeline_Run_ExtractErrorRetries(t *testing.T) {
	raw := makeRawEvent(t, "msg-5", validSubmission())
	ext := &mockExtractor{
		errs:    []error{errors.New("leader not available")},
		batches: [][]domain.RawEvent{nil, {raw}},
	}
	ldr := &mockLoader{}

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), observability.NewMetricsForTesting(), 10)
	runFor(t, p, time.Second)

	assert.Equal(t, 1, ldr.count())
	assert.GreaterOrEqual(t, ext.calls.Load(), int64(2))
}

func TestReportTransformer_Transform(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	tfm := pipeline.NewTransformer(nil, discardLogger(), metrics)

	out, err := tfm.Transform(context.Background(), makeRawEvent(t, "msg-6", validSubmission()))
	require.NoError(t, err)

	assert.Contains(t, string(out.Key), "infrastructure-")
	assert.Equal(t, "high", out.Headers["severity"])
	assert.Equal(t, "infrastructure", out.Headers["category"])
	assert.NotEmpty(t, out.Headers["received_at"])

	var report domain.Report
	require.NoError(t, json.Unmarshal(out.Value, &report))
	assert.Equal(t, string(out.Key), report.ID)
	assert.Equal(t, domain.StatusPending, report.Status)
	assert.Equal(t, "potholes", report.Submission.Subtype)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReportsClassified.WithLabelValues("high", "infrastructure")), 0)
}

func TestReportTransformer_ValidationFailure(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	tfm := pipeline.NewTransformer(nil, discardLogger(), metrics)

	in := validSubmission()
	in.Category = "weather"
	in.Location = "somewhere"

	_, err := tfm.Transform(context.Background(), makeRawEvent(t, "msg-7", in))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Contains(t, err.Error(), "build submission")

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ValidationFailures.WithLabelValues("unknown_category")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ValidationFailures.WithLabelValues("invalid_location_format")), 0)
}

func TestReportTransformer_MalformedJSON(t *testing.T) {
	tfm := pipeline.NewTransformer(nil, discardLogger(), observability.NewMetricsForTesting())

	_, err := tfm.Transform(context.Background(), domain.RawEvent{Value: []byte("not json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse raw event")
}

type stubGeocoder struct{}

func (stubGeocoder) ReverseGeocode(context.Context, float64, float64) (domain.GeocodingResult, error) {
	return domain.GeocodingResult{FormattedAddress: "Praça da Sé, São Paulo", PlaceName: "Praça da Sé", Confidence: 1}, nil
}

func TestReportTransformer_WithGeocoder(t *testing.T) {
	tfm := pipeline.NewTransformer(stubGeocoder{}, discardLogger(), observability.NewMetricsForTesting())

	out, err := tfm.Transform(context.Background(), makeRawEvent(t, "msg-8", validSubmission()))
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal(out.Value, &report))
	assert.Equal(t, domain.GeoSourceReverse, report.GeoSource)
	assert.Equal(t, "Praça da Sé", report.PlaceName)
}

// --- helpers ---

func validSubmission() domain.RawSubmission {
	return domain.RawSubmission{
		Title:       "Buraco",
		Description: "Há um buraco grande e perigoso",
		Category:    "infrastructure",
		Subtype:     "potholes",
		Location:    "-23.5505, -46.6333 - Centro de São Paulo",
	}
}

func makeRawEvent(t *testing.T, key string, in domain.RawSubmission) domain.RawEvent {
	t.Helper()
	data, err := json.Marshal(in)
	require.NoError(t, err)
	return domain.RawEvent{
		Key:   []byte(key),
		Value: data,
	}
}
