// Package analysis turns an analyze request into a career recommendation
// using an LLM, with a Redis cache in front and a canned answer behind.
package analysis

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonathan/pathfinder/internal/llm"
	"github.com/jonathan/pathfinder/internal/logging"
	"github.com/jonathan/pathfinder/internal/metrics"
	"github.com/jonathan/pathfinder/internal/payload"
	"github.com/jonathan/pathfinder/internal/types"
)

const tracerName = "github.com/jonathan/pathfinder/internal/analysis"

// Cache stores recommendations by payload digest.
type Cache interface {
	Get(ctx context.Context, digest string) (*types.Recommendation, bool, error)
	Set(ctx context.Context, digest string, rec *types.Recommendation) error
}

// Option configures a Service.
type Option func(*Service)

// WithCache puts a cache in front of the model.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithMetrics records analysis counters and LLM latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the service logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTimeout bounds each model call. Zero means no extra bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// Service produces recommendations.
type Service struct {
	client  llm.Client
	cache   Cache
	metrics *metrics.Metrics
	logger  logging.Logger
	tracer  trace.Tracer
	now     func() time.Time
	timeout time.Duration
}

// NewService creates a Service. A nil client makes every analysis use the
// canned fallback.
func NewService(client llm.Client, opts ...Option) *Service {
	s := &Service{
		client: client,
		logger: logging.NewNop(),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeProfile validates the request and analyzes it.
func (s *Service) AnalyzeProfile(ctx context.Context, req types.AnalyzeRequest) (*types.Recommendation, error) {
	if err := payload.Validate(req); err != nil {
		return nil, err
	}
	return s.Analyze(ctx, req)
}

// Analyze returns a recommendation for an already validated request. Model
// failures never surface as errors; they yield the fallback recommendation.
func (s *Service) Analyze(ctx context.Context, req types.AnalyzeRequest) (*types.Recommendation, error) {
	ctx, span := s.tracer.Start(ctx, "analysis.Analyze")
	defer span.End()

	digest, err := payload.Digest(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "digest failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("payload.digest", digest))
	log := s.logger.WithFields(map[string]interface{}{"digest": digest})

	if rec, ok := s.fromCache(ctx, log, digest); ok {
		span.SetAttributes(attribute.String("analysis.source", metrics.SourceCache))
		s.count(metrics.SourceCache)
		return rec, nil
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "prompt failed")
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	text, err := s.generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Warn("model call failed, using fallback", nil)
		span.RecordError(err)
		span.SetAttributes(attribute.String("analysis.source", metrics.SourceFallback))
		s.count(metrics.SourceFallback)
		rec := Fallback()
		rec.Timestamp = s.now()
		return rec, nil
	}

	rec := ParseResponse(text)
	rec.Timestamp = s.now()
	span.SetAttributes(
		attribute.String("analysis.source", metrics.SourceLLM),
		attribute.String("analysis.recommendation", rec.AIRecommendation),
	)
	s.count(metrics.SourceLLM)
	log.Info("analysis complete", map[string]interface{}{
		"recommendation": rec.AIRecommendation,
		"confidence":     rec.ConfidenceLevel,
	})

	s.toCache(ctx, log, digest, rec)
	return rec, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("no LLM client configured")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.client.GenerateContent(ctx, prompt)
	if s.metrics != nil {
		s.metrics.LLMDuration.Observe(time.Since(start).Seconds())
	}
	return text, err
}

func (s *Service) fromCache(ctx context.Context, log logging.Logger, digest string) (*types.Recommendation, bool) {
	if s.cache == nil {
		return nil, false
	}
	rec, ok, err := s.cache.Get(ctx, digest)
	switch {
	case err != nil:
		log.WithError(err).Warn("cache read failed", nil)
		s.cacheOp("get", "error")
		return nil, false
	case !ok:
		s.cacheOp("get", "miss")
		return nil, false
	}
	s.cacheOp("get", "hit")
	return rec, true
}

func (s *Service) toCache(ctx context.Context, log logging.Logger, digest string, rec *types.Recommendation) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, digest, rec); err != nil {
		log.WithError(err).Warn("cache write failed", nil)
		s.cacheOp("set", "error")
		return
	}
	s.cacheOp("set", "ok")
}

func (s *Service) count(source string) {
	if s.metrics != nil {
		s.metrics.Analyses.WithLabelValues(source).Inc()
	}
}

func (s *Service) cacheOp(op, result string) {
	if s.metrics != nil {
		s.metrics.CacheOperations.WithLabelValues(op, result).Inc()
	}
}
