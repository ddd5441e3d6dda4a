// internal/intent/remote.go
package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"layout-engine/internal/common/config"
	"layout-engine/internal/common/logger"
	"layout-engine/internal/models"
)

var (
	ErrExtractorUnavailable = errors.New("EXTRACTOR_UNAVAILABLE")
	ErrExtractorTimeout     = errors.New("EXTRACTOR_TIMEOUT")
	ErrExtractorMalformed   = errors.New("EXTRACTOR_RESPONSE_MALFORMED")
)

// RemoteStrategy delegates extraction to the external text-understanding
// service. Failures surface as errors for the composite service to recover
// from; this strategy never degrades silently on its own.
type RemoteStrategy struct {
	config config.ExtractorConfig
	client *http.Client
	logger logger.Logger
}

func NewRemoteStrategy(cfg config.ExtractorConfig, log logger.Logger) *RemoteStrategy {
	return &RemoteStrategy{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.TimeoutDuration(),
		},
		logger: log.WithFields(map[string]interface{}{"strategy": "remote"}),
	}
}

func (s *RemoteStrategy) Name() string { return "remote" }

func (s *RemoteStrategy) Extract(ctx context.Context, prompt string, reqCtx *models.RequestContext) (*models.ParsedIntent, error) {
	requestBody := map[string]interface{}{
		"prompt": prompt,
	}
	if s.config.Model != "" {
		requestBody["model"] = s.config.Model
	}
	if reqCtx != nil {
		requestBody["context"] = reqCtx
	}

	body, _ := json.Marshal(requestBody)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= s.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ErrExtractorTimeout
			}
		}

		// Rebuilt per attempt: the body reader is consumed by each send.
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			s.config.BaseURL+"/v1/intent/parse", bytes.NewBuffer(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtractorUnavailable, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

		resp, lastErr = s.client.Do(req)

		if ctx.Err() != nil ||
			errors.Is(lastErr, context.DeadlineExceeded) ||
			errors.Is(lastErr, context.Canceled) {
			return nil, ErrExtractorTimeout
		}

		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrExtractorTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrExtractorUnavailable, lastErr)
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: no successful response after retries", ErrExtractorUnavailable)
	}
	defer resp.Body.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrExtractorMalformed, err)
	}

	// Field-level defaulting happens inside normalization: a payload missing
	// some fields under every alias is still usable.
	parsed := normalizeRemoteResponse(raw)

	s.logger.Debug("remote extraction succeeded", map[string]interface{}{
		"intent":     parsed.PrimaryIntent,
		"confidence": parsed.Confidence,
		"topicCount": len(parsed.Entities.Topics),
	})

	return parsed, nil
}
