// internal/engine/engine.go

// Package engine orchestrates the recommendation pipeline: cache lookup,
// intent extraction, parallel scoring and contextual adaptation, composition,
// and response assembly. Every failure degrades to a valid response; nothing
// here is fatal to the process.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"layout-engine/internal/adapter"
	stderrors "layout-engine/internal/common/errors"
	"layout-engine/internal/common/logger"
	"layout-engine/internal/common/metrics"
	"layout-engine/internal/common/observability"
	"layout-engine/internal/composer"
	"layout-engine/internal/corpus"
	"layout-engine/internal/intent"
	"layout-engine/internal/models"
	"layout-engine/internal/scorer"
	"layout-engine/internal/store"
)

// Engine wires the pipeline stages together. All dependencies are injected;
// there is no hidden static state.
type Engine struct {
	corpus    *corpus.Corpus
	extractor *intent.Service
	scorer    *scorer.Scorer
	adapter   *adapter.Adapter
	composer  *composer.Composer
	stores    *store.Stores
	obs       *observability.Observability
	logger    logger.Logger
	now       func() time.Time
	version   string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithVersion sets the modelVersion reported in response metadata.
func WithVersion(version string) Option {
	return func(e *Engine) { e.version = version }
}

func New(c *corpus.Corpus, extractor *intent.Service, sc *scorer.Scorer, ad *adapter.Adapter, comp *composer.Composer, stores *store.Stores, obs *observability.Observability, log logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		corpus:    c,
		extractor: extractor,
		scorer:    sc,
		adapter:   ad,
		composer:  comp,
		stores:    stores,
		obs:       obs,
		logger:    log.WithFields(map[string]interface{}{"component": "engine"}),
		now:       time.Now,
		version:   "dev",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend runs the full pipeline for one request. It never returns an
// error: any panic inside the pipeline is caught at this boundary and
// reported as a response with success=false and empty array fields.
func (e *Engine) Recommend(ctx context.Context, req *models.RecommendRequest) (resp *models.RecommendResponse) {
	start := e.now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("pipeline panic recovered", map[string]interface{}{
				"panic": fmt.Sprintf("%v", r),
			})
			metrics.RecommendRequests.WithLabelValues("failure").Inc()
			resp = models.EmptyResponse()
			resp.Success = false
			resp.Error = stderrors.New(stderrors.ErrCodePipelineFailure, "recommendation pipeline failed").Error()
			resp.Metadata = e.buildMetadata(start, 0, false)
		}
	}()

	if req == nil || req.Prompt == "" {
		metrics.RecommendRequests.WithLabelValues("invalid").Inc()
		resp = models.EmptyResponse()
		resp.Success = false
		resp.Error = stderrors.New(stderrors.ErrCodeRequestInvalid, "prompt must not be empty").Error()
		resp.Metadata = e.buildMetadata(start, 0, false)
		return resp
	}

	opts := models.RequestOptions{}
	if req.Options != nil {
		opts = *req.Options
	}
	opts.Normalize()

	key := cacheKey(req, opts)
	if cached := e.readCache(ctx, key); cached != nil {
		cached.Metadata.CacheHit = true
		metrics.RecommendRequests.WithLabelValues("success").Inc()
		return cached
	}

	resp = e.runPipeline(ctx, req, opts, start)

	e.writeCache(ctx, key, resp)
	metrics.RecommendRequests.WithLabelValues("success").Inc()
	metrics.RecommendDuration.Observe(e.now().Sub(start).Seconds())
	return resp
}

func (e *Engine) runPipeline(ctx context.Context, req *models.RecommendRequest, opts models.RequestOptions, start time.Time) *models.RecommendResponse {
	parsed := e.extractStage(ctx, req)

	var (
		wg         sync.WaitGroup
		matches    []models.MatchResult
		userCtx    *models.UserContext
		primary    models.ContextualLayout
		searchDur  time.Duration
		panicMu    sync.Mutex
		stagePanic interface{}
	)

	// Stage panics must reach the recover boundary on the request goroutine,
	// so each stage captures its panic and the pipeline re-raises it after
	// the join.
	guard := func(fn func()) {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				panicMu.Lock()
				if stagePanic == nil {
					stagePanic = r
				}
				panicMu.Unlock()
			}
		}()
		fn()
	}

	wg.Add(2)
	go guard(func() {
		stageStart := e.now()
		matches = e.scorer.ScoreAll(parsed, e.corpus.All())
		searchDur = e.now().Sub(stageStart)
		e.recordStage(ctx, "score", "success", stageStart)
	})
	go guard(func() {
		stageStart := e.now()
		userCtx = e.adapter.BuildUserContext(ctx, req.UserID)
		session := sessionData(req)
		primary = e.adapter.Adapt(ctx, parsed, userCtx, session)
		e.recordStage(ctx, "adapt", "success", stageStart)
	})
	wg.Wait()

	if stagePanic != nil {
		panic(stagePanic)
	}

	contextual := []models.ContextualLayout{primary}
	if opts.IncludeAlternatives {
		contextual = append(contextual, e.adapter.Variants(parsed, primary)...)
	}

	composeStart := e.now()
	layouts := e.composer.Compose(ctx, contextual, matches, req.UserID, opts)
	e.recordStage(ctx, "compose", "success", composeStart)

	resp := models.EmptyResponse()
	resp.Success = true
	resp.Layouts = layouts
	resp.Suggestions = buildSuggestions(parsed, layouts)
	resp.SearchResults = models.SearchResults{
		Matches:            matches,
		TotalMatches:       len(matches),
		SearchTime:         searchDur.Milliseconds(),
		Suggestions:        searchSuggestions(parsed, matches),
		AlternativeQueries: alternativeQueries(parsed),
	}
	resp.Insights = e.buildInsights(ctx, parsed, userCtx, req, opts)
	resp.Metadata = e.buildMetadata(start, responseConfidence(parsed, layouts), false)
	return resp
}

func (e *Engine) extractStage(ctx context.Context, req *models.RecommendRequest) *models.ParsedIntent {
	stageStart := e.now()
	parsed := e.extractor.Extract(ctx, req.Prompt, req.UserID, req.Context)
	e.recordStage(ctx, "extract", "success", stageStart)
	return parsed
}

func (e *Engine) recordStage(ctx context.Context, stage, status string, start time.Time) {
	if e.obs == nil {
		return
	}
	e.obs.RecordStage(ctx, stage, status)
	e.obs.RecordStageDuration(ctx, stage, e.now().Sub(start))
}

func (e *Engine) readCache(ctx context.Context, key string) *models.RecommendResponse {
	if e.stores == nil || e.stores.Cache == nil {
		return nil
	}
	cached, found, err := e.stores.Cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("cache read failed", map[string]interface{}{"error": err.Error()})
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return nil
	}
	if !found {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return cached
}

func (e *Engine) writeCache(ctx context.Context, key string, resp *models.RecommendResponse) {
	if e.stores == nil || e.stores.Cache == nil || !resp.Success {
		return
	}
	if err := e.stores.Cache.Set(ctx, key, resp); err != nil {
		e.logger.Warn("cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

func (e *Engine) buildMetadata(start time.Time, confidence float64, cacheHit bool) models.ResponseMetadata {
	return models.ResponseMetadata{
		ProcessingTime: e.now().Sub(start).Milliseconds(),
		Confidence:     confidence,
		CacheHit:       cacheHit,
		ModelVersion:   e.version,
	}
}

func (e *Engine) buildInsights(ctx context.Context, parsed *models.ParsedIntent, userCtx *models.UserContext, req *models.RecommendRequest, opts models.RequestOptions) models.Insights {
	insights := models.Insights{
		IntentAnalysis:  parsed,
		Recommendations: insightRecommendations(parsed),
	}

	if userCtx != nil && userCtx.UserID != "" {
		insights.UserPatterns = &models.UserPatterns{
			TopCategories:    userCtx.Preferences.PreferredCategories,
			ModalComplexity:  userCtx.Preferences.PreferredComplexity,
			InteractionCount: len(userCtx.History),
			RecentCount:      len(userCtx.RecentActivity),
		}
	}

	if opts.LearningMode && req.UserID != "" && e.stores != nil && e.stores.Feedback != nil {
		if scores, err := e.stores.Feedback.All(ctx, req.UserID); err == nil && len(scores) > 0 {
			total := 0.0
			for _, s := range scores {
				total += s
			}
			insights.LearningInsights = &models.Learning{
				FeedbackCount: len(scores),
				MeanScore:     total / float64(len(scores)),
			}
		}
	}

	return insights
}

// RecordFeedback stores one explicit (userId, candidateId, score) rating for
// future ranking. Scores outside [0,1] are rejected.
func (e *Engine) RecordFeedback(ctx context.Context, userID, candidateID string, score float64) error {
	if userID == "" || candidateID == "" {
		return stderrors.New(stderrors.ErrCodeFeedbackInvalid, "userId and candidateId are required")
	}
	if score < 0 || score > 1 {
		return stderrors.New(stderrors.ErrCodeFeedbackInvalid, fmt.Sprintf("score must be in [0,1], got %v", score))
	}
	if e.stores == nil || e.stores.Feedback == nil {
		return stderrors.New(stderrors.ErrCodeStoreUnavailable, "feedback store not configured")
	}
	if err := e.stores.Feedback.Put(ctx, userID, candidateID, score); err != nil {
		return stderrors.Wrap(stderrors.ErrCodeStoreUnavailable, "failed to record feedback", err)
	}
	metrics.FeedbackRecorded.Inc()
	e.logger.Info("feedback recorded", map[string]interface{}{
		"userId":      userID,
		"candidateId": candidateID,
		"score":       score,
	})
	return nil
}

// ClearCache drops every cached response.
func (e *Engine) ClearCache(ctx context.Context) error {
	if e.stores == nil || e.stores.Cache == nil {
		return nil
	}
	return e.stores.Cache.Clear(ctx)
}

// Templates exposes the full corpus for the listing endpoint.
func (e *Engine) Templates() []models.CandidateTemplate {
	return e.corpus.All()
}

func sessionData(req *models.RecommendRequest) map[string]interface{} {
	if req.Context == nil {
		return nil
	}
	return req.Context.SessionData
}

func responseConfidence(parsed *models.ParsedIntent, layouts []models.ContextualLayout) float64 {
	if len(layouts) == 0 {
		return parsed.Confidence
	}
	best := layouts[0].Confidence
	for _, l := range layouts[1:] {
		if l.Confidence > best {
			best = l.Confidence
		}
	}
	return best
}
