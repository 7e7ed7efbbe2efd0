// Package submission performs the single outbound analyze call of a session
// and holds its result.
package submission

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/pathfinder/internal/logging"
	"github.com/jonathan/pathfinder/internal/payload"
	"github.com/jonathan/pathfinder/internal/types"
)

// Analyzer computes a recommendation for a request.
type Analyzer interface {
	AnalyzeProfile(ctx context.Context, req types.AnalyzeRequest) (*types.Recommendation, error)
}

// AnalyzerFunc adapts a function to the Analyzer interface.
type AnalyzerFunc func(ctx context.Context, req types.AnalyzeRequest) (*types.Recommendation, error)

// AnalyzeProfile calls f(ctx, req).
func (f AnalyzerFunc) AnalyzeProfile(ctx context.Context, req types.AnalyzeRequest) (*types.Recommendation, error) {
	return f(ctx, req)
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the coordinator's logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

// WithNotifier sets where failures are reported.
func WithNotifier(n Notifier) Option {
	return func(c *Coordinator) { c.notifier = n }
}

// Coordinator allows one analyze call at a time and keeps the last result.
// Its methods are safe to call from the goroutine running a submission.
type Coordinator struct {
	analyzer Analyzer
	logger   logging.Logger
	notifier Notifier

	mu       sync.Mutex
	busy     bool
	result   *types.Recommendation
	override string
	edited   bool
}

// New creates a Coordinator around an analyzer.
func New(analyzer Analyzer, opts ...Option) *Coordinator {
	c := &Coordinator{
		analyzer: analyzer,
		logger:   logging.NewNop(),
		notifier: nopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notifier returns the coordinator's notifier so other components can share it.
func (c *Coordinator) Notifier() Notifier {
	return c.notifier
}

// Submit builds the payload for answers and calls the analyzer.
//
// It returns ErrBusy without calling the analyzer while another call is in
// flight. The busy flag is cleared on every path before Submit returns. On
// failure the previous result is kept, KindSubmissionFailed is raised, and the
// returned *Error wraps the cause.
func (c *Coordinator) Submit(ctx context.Context, answers types.AnswerSet) (*types.Recommendation, error) {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.busy = true
	c.mu.Unlock()

	req := payload.Build(answers)
	log := c.logger.WithFields(map[string]interface{}{"submission_id": uuid.NewString()})
	start := time.Now()
	log.Info("submitting assessment", map[string]interface{}{
		"field_of_study": req.Academic.FieldOfStudy,
		"priorities":     len(req.WorkStyle.Priorities),
	})

	result, err := c.analyzer.AnalyzeProfile(ctx, req)
	if err == nil && (result == nil || strings.TrimSpace(result.AIRecommendation) == "") {
		err = ErrMalformedResult
	}

	if err != nil {
		c.setBusy(false)
		log.WithError(err).Warn("submission failed", map[string]interface{}{
			"duration_ms": time.Since(start).Milliseconds(),
		})
		c.notifier.Notify(KindSubmissionFailed, SubmissionFailedMessage)
		return nil, &Error{Message: "analyze profile failed", Cause: err}
	}

	c.mu.Lock()
	c.result = result.Clone()
	c.override = ""
	c.edited = false
	c.busy = false
	c.mu.Unlock()

	log.Info("submission succeeded", map[string]interface{}{
		"recommendation": result.AIRecommendation,
		"confidence":     result.ConfidenceLevel,
		"duration_ms":    time.Since(start).Milliseconds(),
	})
	return result.Clone(), nil
}

func (c *Coordinator) setBusy(v bool) {
	c.mu.Lock()
	c.busy = v
	c.mu.Unlock()
}

// Busy reports whether a submission is in flight.
func (c *Coordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Result returns a copy of the last successful result, or nil.
func (c *Coordinator) Result() *types.Recommendation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result.Clone()
}

// EditAnalysis replaces the analysis text shown for the current result.
func (c *Coordinator) EditAnalysis(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return ErrNoResult
	}
	c.override = text
	c.edited = true
	return nil
}

// Analysis returns the user's edited text if any, else the service's detailed
// analysis, else the default narrative. It is empty without a result.
func (c *Coordinator) Analysis() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.result == nil:
		return ""
	case c.edited:
		return c.override
	case c.result.DetailedAnalysis != "":
		return c.result.DetailedAnalysis
	}
	return DefaultNarrative(c.result)
}

// Clear drops the result and any edited analysis.
func (c *Coordinator) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = nil
	c.override = ""
	c.edited = false
}
