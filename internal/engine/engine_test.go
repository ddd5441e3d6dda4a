// internal/engine/engine_test.go
package engine

import (
	"context"
	"testing"

	"layout-engine/internal/adapter"
	"layout-engine/internal/common/logger"
	"layout-engine/internal/composer"
	"layout-engine/internal/corpus"
	"layout-engine/internal/intent"
	"layout-engine/internal/models"
	"layout-engine/internal/scorer"
	"layout-engine/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEngine(t *testing.T) (*Engine, *store.Stores) {
	t.Helper()
	log := logger.NewTestLogger(t)
	stores := store.NewMemoryStores()
	c := corpus.Default()

	return New(
		c,
		intent.NewService(stores.History, log),
		scorer.New(scorer.DefaultThreshold),
		adapter.New(stores.History, log),
		composer.New(c, stores.Feedback, log),
		stores,
		nil,
		log,
		WithVersion("test"),
	), stores
}

func TestRecommend_HappyPath(t *testing.T) {
	e, _ := createEngine(t)

	resp := e.Recommend(context.Background(), &models.RecommendRequest{
		Prompt:  "I need a weekly planner for my work projects",
		Options: &models.RequestOptions{MaxResults: 10},
	})

	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
	assert.NotEmpty(t, resp.Layouts)
	assert.False(t, resp.Metadata.CacheHit)
	assert.Equal(t, "test", resp.Metadata.ModelVersion)

	// The obvious corpus winner and the synthesized contextual layout are
	// both present at this result width.
	ids := make([]string, 0, len(resp.Layouts))
	personalized := 0
	for _, l := range resp.Layouts {
		ids = append(ids, l.ID)
		if l.Personalized {
			personalized++
		}
	}
	assert.Contains(t, ids, "weekly-planner")
	assert.Equal(t, 1, personalized, "one contextual layout without alternatives")

	assert.Equal(t, len(resp.SearchResults.Matches), resp.SearchResults.TotalMatches)
	assert.NotEmpty(t, resp.SearchResults.AlternativeQueries)
	require.NotNil(t, resp.Insights.IntentAnalysis)
	assert.Equal(t, models.IntentPlanning, resp.Insights.IntentAnalysis.PrimaryIntent)
}

func TestRecommend_RankedDescending(t *testing.T) {
	e, _ := createEngine(t)

	resp := e.Recommend(context.Background(), &models.RecommendRequest{
		Prompt: "habit tracker for my daily workouts",
	})

	require.True(t, resp.Success)
	for i := 1; i < len(resp.Layouts); i++ {
		assert.GreaterOrEqual(t, resp.Layouts[i-1].RankScore, resp.Layouts[i].RankScore)
	}
}

func TestRecommend_CacheHitOnSecondCall(t *testing.T) {
	e, stores := createEngine(t)
	ctx := context.Background()
	req := &models.RecommendRequest{
		Prompt: "weekly planner",
		UserID: "u1",
	}

	first := e.Recommend(ctx, req)
	require.True(t, first.Success)
	assert.False(t, first.Metadata.CacheHit)

	historyAfterFirst, err := stores.History.Get(ctx, "u1")
	require.NoError(t, err)
	firstLen := len(historyAfterFirst)
	assert.NotZero(t, firstLen)

	second := e.Recommend(ctx, req)
	require.True(t, second.Success)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.Layouts, second.Layouts)
	assert.Equal(t, first.SearchResults.Matches, second.SearchResults.Matches)

	// Cached responses bypass extraction and adaptation entirely, so the
	// user's history does not grow.
	historyAfterSecond, err := stores.History.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, historyAfterSecond, firstLen)
}

func TestRecommend_PromptNormalizationSharesCacheKey(t *testing.T) {
	e, _ := createEngine(t)
	ctx := context.Background()

	first := e.Recommend(ctx, &models.RecommendRequest{Prompt: "Weekly   Planner"})
	require.True(t, first.Success)

	second := e.Recommend(ctx, &models.RecommendRequest{Prompt: "weekly planner"})
	assert.True(t, second.Metadata.CacheHit)
}

func TestRecommend_DifferentOptionsMissCache(t *testing.T) {
	e, _ := createEngine(t)
	ctx := context.Background()

	e.Recommend(ctx, &models.RecommendRequest{Prompt: "weekly planner"})
	resp := e.Recommend(ctx, &models.RecommendRequest{
		Prompt:  "weekly planner",
		Options: &models.RequestOptions{MaxResults: 3},
	})
	assert.False(t, resp.Metadata.CacheHit)
}

func TestRecommend_IncludeAlternatives(t *testing.T) {
	e, _ := createEngine(t)

	resp := e.Recommend(context.Background(), &models.RecommendRequest{
		Prompt:  "brainstorm ideas for my art project",
		Options: &models.RequestOptions{IncludeAlternatives: true, MaxResults: 10},
	})

	require.True(t, resp.Success)
	variants := map[string]bool{}
	for _, l := range resp.Layouts {
		if l.Variant != "" {
			variants[l.Variant] = true
		}
	}
	assert.True(t, variants["minimalist"])
	assert.True(t, variants["detailed"])
	// Creative intent unlocks the creative variant.
	assert.True(t, variants["creative"])
}

func TestRecommend_EmptyPromptRejected(t *testing.T) {
	e, _ := createEngine(t)

	resp := e.Recommend(context.Background(), &models.RecommendRequest{Prompt: ""})

	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
	assert.NotNil(t, resp.Layouts)
	assert.NotNil(t, resp.Suggestions)
	assert.NotNil(t, resp.SearchResults.Matches)
}

func TestRecommend_PanicBoundary(t *testing.T) {
	log := logger.NewNoOpLogger()
	stores := store.NewMemoryStores()

	// A nil corpus makes the scoring stage panic; the boundary converts it
	// into a degraded response instead of crashing.
	e := New(
		nil,
		intent.NewService(stores.History, log),
		scorer.New(scorer.DefaultThreshold),
		adapter.New(stores.History, log),
		composer.New(corpus.Default(), stores.Feedback, log),
		stores,
		nil,
		log,
	)

	resp := e.Recommend(context.Background(), &models.RecommendRequest{Prompt: "weekly planner"})

	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
	assert.NotNil(t, resp.Layouts)
	assert.Empty(t, resp.Layouts)
}

func TestRecommend_UserPatternsInInsights(t *testing.T) {
	e, _ := createEngine(t)
	ctx := context.Background()

	resp := e.Recommend(ctx, &models.RecommendRequest{
		Prompt: "weekly planner for work",
		UserID: "u-patterns",
	})

	require.True(t, resp.Success)
	require.NotNil(t, resp.Insights.UserPatterns)
	assert.NotZero(t, resp.Insights.UserPatterns.InteractionCount)
}

func TestRecommend_LearningInsights(t *testing.T) {
	e, stores := createEngine(t)
	ctx := context.Background()
	require.NoError(t, stores.Feedback.Put(ctx, "u1", "weekly-planner", 0.9))
	require.NoError(t, stores.Feedback.Put(ctx, "u1", "blank-notes", 0.1))

	resp := e.Recommend(ctx, &models.RecommendRequest{
		Prompt:  "weekly planner",
		UserID:  "u1",
		Options: &models.RequestOptions{LearningMode: true},
	})

	require.True(t, resp.Success)
	require.NotNil(t, resp.Insights.LearningInsights)
	assert.Equal(t, 2, resp.Insights.LearningInsights.FeedbackCount)
	assert.InDelta(t, 0.5, resp.Insights.LearningInsights.MeanScore, 1e-9)
}

func TestRecordFeedback(t *testing.T) {
	e, stores := createEngine(t)
	ctx := context.Background()

	require.NoError(t, e.RecordFeedback(ctx, "u1", "weekly-planner", 0.8))

	score, found, err := stores.Feedback.Get(ctx, "u1", "weekly-planner")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 0.8, score)
}

func TestRecordFeedback_Validation(t *testing.T) {
	e, _ := createEngine(t)
	ctx := context.Background()

	assert.Error(t, e.RecordFeedback(ctx, "", "weekly-planner", 0.5))
	assert.Error(t, e.RecordFeedback(ctx, "u1", "", 0.5))
	assert.Error(t, e.RecordFeedback(ctx, "u1", "weekly-planner", 1.5))
	assert.Error(t, e.RecordFeedback(ctx, "u1", "weekly-planner", -0.1))
}

func TestClearCache(t *testing.T) {
	e, _ := createEngine(t)
	ctx := context.Background()
	req := &models.RecommendRequest{Prompt: "weekly planner"}

	e.Recommend(ctx, req)
	require.NoError(t, e.ClearCache(ctx))

	resp := e.Recommend(ctx, req)
	assert.False(t, resp.Metadata.CacheHit)
}

func TestBuildSuggestions_EmptyResults(t *testing.T) {
	parsed := &models.ParsedIntent{
		PrimaryIntent: models.IntentGeneral,
		Entities:      models.NewEntities(),
	}
	parsed.EnsureValid()

	suggestions := buildSuggestions(parsed, nil)

	types := make([]string, len(suggestions))
	for i, s := range suggestions {
		types[i] = s.Type
	}
	assert.Contains(t, types, "refine-prompt")
	assert.Contains(t, types, "add-timeframe")
	assert.Contains(t, types, "try-category")
}

func TestTemplates_ExposesCorpus(t *testing.T) {
	e, _ := createEngine(t)
	assert.Equal(t, corpus.Default().Len(), len(e.Templates()))
}
