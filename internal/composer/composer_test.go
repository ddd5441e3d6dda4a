// internal/composer/composer_test.go
package composer

import (
	"context"
	"testing"

	"layout-engine/internal/common/logger"
	"layout-engine/internal/corpus"
	"layout-engine/internal/models"
	"layout-engine/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createComposer(t *testing.T) (*Composer, store.FeedbackStore) {
	t.Helper()
	stores := store.NewMemoryStores()
	return New(corpus.Default(), stores.Feedback, logger.NewTestLogger(t)), stores.Feedback
}

func defaultOptions() models.RequestOptions {
	opts := models.RequestOptions{}
	opts.Normalize()
	return opts
}

func matchFor(id string, similarity, confidence float64) models.MatchResult {
	return models.MatchResult{
		CandidateID:     id,
		SimilarityScore: similarity,
		ConfidenceScore: confidence,
		Reasoning:       []string{"Good similarity to your request"},
	}
}

func contextualLayout(id string, confidence float64) models.ContextualLayout {
	return models.ContextualLayout{
		ID:           id,
		Name:         "Contextual",
		Category:     models.IntentPlanning,
		Confidence:   confidence,
		Complexity:   models.ComplexityMedium,
		Personalized: true,
	}
}

func TestCompose_ConvertsMatchesViaCorpus(t *testing.T) {
	c, _ := createComposer(t)

	layouts := c.Compose(context.Background(), nil,
		[]models.MatchResult{matchFor("weekly-planner", 0.8, 0.9)},
		"", defaultOptions())

	require.Len(t, layouts, 1)
	assert.Equal(t, "weekly-planner", layouts[0].ID)
	assert.Equal(t, models.IntentPlanning, layouts[0].Category)
	assert.Equal(t, 0.9, layouts[0].Confidence)
	assert.False(t, layouts[0].Personalized)
	assert.NotEmpty(t, layouts[0].Fields)
	assert.NotEmpty(t, layouts[0].Reasoning)
}

func TestCompose_UnknownCandidateSkipped(t *testing.T) {
	c, _ := createComposer(t)

	layouts := c.Compose(context.Background(), nil,
		[]models.MatchResult{matchFor("no-such-template", 0.9, 0.9)},
		"", defaultOptions())

	assert.Empty(t, layouts)
}

func TestCompose_DedupeContextualWins(t *testing.T) {
	c, _ := createComposer(t)

	contextual := contextualLayout("weekly-planner", 0.9)
	layouts := c.Compose(context.Background(),
		[]models.ContextualLayout{contextual},
		[]models.MatchResult{matchFor("weekly-planner", 0.8, 0.9)},
		"", defaultOptions())

	require.Len(t, layouts, 1)
	assert.True(t, layouts[0].Personalized)
	assert.Equal(t, "Contextual", layouts[0].Name)
}

func TestCompose_RankFormula(t *testing.T) {
	c, _ := createComposer(t)

	// weekly-planner has popularity 95.
	layouts := c.Compose(context.Background(), nil,
		[]models.MatchResult{matchFor("weekly-planner", 0.8, 0.9)},
		"", defaultOptions())

	require.Len(t, layouts, 1)
	expected := 0.5*0.8 + 0.3*0.9 + 0.2*0.95
	assert.InDelta(t, expected, layouts[0].RankScore, 1e-9)
}

func TestCompose_FeedbackBlendOnlyWithUser(t *testing.T) {
	c, feedback := createComposer(t)
	ctx := context.Background()
	require.NoError(t, feedback.Put(ctx, "u1", "weekly-planner", 1.0))

	base := 0.5*0.8 + 0.3*0.9 + 0.2*0.95

	anonymous := c.Compose(ctx, nil,
		[]models.MatchResult{matchFor("weekly-planner", 0.8, 0.9)},
		"", defaultOptions())
	require.Len(t, anonymous, 1)
	assert.InDelta(t, base, anonymous[0].RankScore, 1e-9)

	known := c.Compose(ctx, nil,
		[]models.MatchResult{matchFor("weekly-planner", 0.8, 0.9)},
		"u1", defaultOptions())
	require.Len(t, known, 1)
	assert.InDelta(t, 0.8*base+0.2*1.0, known[0].RankScore, 1e-9)
}

func TestCompose_NeutralFeedbackDefault(t *testing.T) {
	c, _ := createComposer(t)

	// A user with no recorded feedback still gets the blend, at 0.5.
	base := 0.5*0.8 + 0.3*0.9 + 0.2*0.95
	layouts := c.Compose(context.Background(), nil,
		[]models.MatchResult{matchFor("weekly-planner", 0.8, 0.9)},
		"u-silent", defaultOptions())

	require.Len(t, layouts, 1)
	assert.InDelta(t, 0.8*base+0.2*0.5, layouts[0].RankScore, 1e-9)
}

func TestCompose_StableSortKeepsInsertionOrderOnTies(t *testing.T) {
	c, _ := createComposer(t)

	// Two contextual layouts with identical rank inputs.
	first := contextualLayout("ctx-a", 0.7)
	second := contextualLayout("ctx-b", 0.7)

	layouts := c.Compose(context.Background(),
		[]models.ContextualLayout{first, second}, nil, "", defaultOptions())

	require.Len(t, layouts, 2)
	assert.Equal(t, "ctx-a", layouts[0].ID)
	assert.Equal(t, "ctx-b", layouts[1].ID)
}

func TestCompose_SortsByRankDescending(t *testing.T) {
	c, _ := createComposer(t)

	layouts := c.Compose(context.Background(), nil,
		[]models.MatchResult{
			matchFor("blank-notes", 0.4, 0.4),
			matchFor("weekly-planner", 0.9, 0.95),
		},
		"", defaultOptions())

	require.Len(t, layouts, 2)
	assert.Equal(t, "weekly-planner", layouts[0].ID)
	assert.GreaterOrEqual(t, layouts[0].RankScore, layouts[1].RankScore)
}

func TestApplyPersonalization(t *testing.T) {
	ranked := make([]models.ContextualLayout, 8)
	for i := range ranked {
		ranked[i] = models.ContextualLayout{ID: string(rune('a' + i))}
	}

	tests := []struct {
		name     string
		level    string
		max      int
		expected []string
	}{
		{"medium top N", models.PersonalizationMedium, 5, []string{"a", "b", "c", "d", "e"}},
		{"high top N", models.PersonalizationHigh, 3, []string{"a", "b", "c"}},
		{"low splits ceil and floor", models.PersonalizationLow, 5, []string{"a", "b", "c", "d", "e"}},
		{"short list untouched", models.PersonalizationHigh, 10, []string{"a", "b", "c", "d", "e", "f", "g", "h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := models.RequestOptions{MaxResults: tt.max, PersonalizationLevel: tt.level}
			opts.Normalize()
			out := applyPersonalization(ranked, opts)
			ids := make([]string, len(out))
			for i, l := range out {
				ids[i] = l.ID
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
