// internal/intent/extractor.go

// Package intent turns free-text layout requests into structured
// ParsedIntent values. A remote model strategy is preferred when a
// credential is configured; a deterministic keyword strategy serves as the
// always-available fallback.
package intent

import (
	"context"
	"time"

	"layout-engine/internal/common/logger"
	"layout-engine/internal/common/metrics"
	"layout-engine/internal/models"
	"layout-engine/internal/store"
)

// Strategy is one interchangeable extraction implementation.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, prompt string, reqCtx *models.RequestContext) (*models.ParsedIntent, error)
}

// Service composes the primary and fallback strategies. Extract never fails:
// any primary-strategy error is swallowed, counted, logged, and answered by
// the fallback.
type Service struct {
	primary  Strategy // nil when no credential is configured
	fallback Strategy
	history  store.HistoryStore
	logger   logger.Logger
	timeout  time.Duration
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock substitutes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPrimary installs the remote strategy. Without this option the service
// runs in fallback-only mode, which is a supported configuration rather than
// an error.
func WithPrimary(primary Strategy, timeout time.Duration) Option {
	return func(s *Service) {
		s.primary = primary
		s.timeout = timeout
	}
}

func NewService(history store.HistoryStore, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		fallback: NewFallbackStrategy(),
		history:  history,
		logger:   log.WithFields(map[string]interface{}{"component": "intent"}),
		timeout:  3 * time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract parses the prompt into a ParsedIntent. On success for a known
// userID the interaction is appended to that user's history.
func (s *Service) Extract(ctx context.Context, prompt, userID string, reqCtx *models.RequestContext) *models.ParsedIntent {
	parsed := s.extract(ctx, prompt, reqCtx)

	if userID != "" && s.history != nil {
		if err := s.history.Append(ctx, userID, models.Interaction{
			Prompt:     prompt,
			Intent:     parsed.PrimaryIntent,
			Complexity: parsed.Complexity,
			Tone:       parsed.EmotionalTone,
			Timestamp:  s.now().UTC(),
		}); err != nil {
			s.logger.Warn("history append failed", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
		}
	}

	return parsed
}

func (s *Service) extract(ctx context.Context, prompt string, reqCtx *models.RequestContext) *models.ParsedIntent {
	if s.primary == nil {
		metrics.ExtractorFallbacks.WithLabelValues("no_credential").Inc()
		return s.extractFallback(ctx, prompt, reqCtx)
	}

	primaryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	parsed, err := s.primary.Extract(primaryCtx, prompt, reqCtx)
	if err == nil {
		parsed.EnsureValid()
		return parsed
	}

	reason := "error"
	if primaryCtx.Err() == context.DeadlineExceeded {
		reason = "timeout"
	}
	metrics.ExtractorFallbacks.WithLabelValues(reason).Inc()
	s.logger.Warn("primary extraction failed, using fallback", map[string]interface{}{
		"reason": reason,
		"error":  err.Error(),
	})

	return s.extractFallback(ctx, prompt, reqCtx)
}

func (s *Service) extractFallback(ctx context.Context, prompt string, reqCtx *models.RequestContext) *models.ParsedIntent {
	parsed, _ := s.fallback.Extract(ctx, prompt, reqCtx) // fallback cannot fail
	parsed.EnsureValid()
	return parsed
}
