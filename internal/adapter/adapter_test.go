// internal/adapter/adapter_test.go
package adapter

import (
	"context"
	"testing"
	"time"

	"layout-engine/internal/common/logger"
	"layout-engine/internal/models"
	"layout-engine/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return string(rune('a' + n - 1))
	}
}

func createAdapter(t *testing.T, history store.HistoryStore, now time.Time) *Adapter {
	t.Helper()
	return New(history, logger.NewTestLogger(t),
		WithClock(fixedClock(now)),
		WithIDGenerator(sequentialIDs()),
	)
}

func planningIntent() *models.ParsedIntent {
	intent := &models.ParsedIntent{
		PrimaryIntent: models.IntentPlanning,
		Complexity:    models.ComplexityMedium,
		EmotionalTone: models.ToneProfessional,
		Context: models.IntentContext{
			TimeFrame: models.TimeFrameWeekly,
			Urgency:   models.UrgencyNormal,
			Domain:    "work",
		},
		Entities:   models.NewEntities(),
		Confidence: 0.7,
	}
	intent.EnsureValid()
	return intent
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{5, "morning"}, {11, "morning"},
		{12, "afternoon"}, {16, "afternoon"},
		{17, "evening"}, {21, "evening"},
		{22, "night"}, {2, "night"}, {4, "night"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, timeOfDay(tt.hour), "hour %d", tt.hour)
	}
}

func TestBuildUserContext_AnonymousUser(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC) // Monday morning
	a := createAdapter(t, store.NewMemoryStores().History, now)

	userCtx := a.BuildUserContext(context.Background(), "")

	assert.Empty(t, userCtx.UserID)
	assert.Empty(t, userCtx.History)
	assert.Equal(t, "morning", userCtx.TimeOfDay)
	assert.Equal(t, "Monday", userCtx.DayOfWeek)
	assert.Empty(t, userCtx.Preferences.PreferredCategories)
}

func TestBuildUserContext_RecentActivityWindow(t *testing.T) {
	now := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)
	history := store.NewMemoryStores().History
	ctx := context.Background()

	old := models.Interaction{Intent: models.IntentStudy, Timestamp: now.Add(-48 * time.Hour)}
	recent := models.Interaction{Intent: models.IntentPlanning, Timestamp: now.Add(-2 * time.Hour)}
	require.NoError(t, history.Append(ctx, "u1", old))
	require.NoError(t, history.Append(ctx, "u1", recent))

	a := createAdapter(t, history, now)
	userCtx := a.BuildUserContext(ctx, "u1")

	assert.Len(t, userCtx.History, 2)
	require.Len(t, userCtx.RecentActivity, 1)
	assert.Equal(t, models.IntentPlanning, userCtx.RecentActivity[0].Intent)
}

func TestDerivePreferences_TopCategoriesAndModes(t *testing.T) {
	history := []models.Interaction{
		{Intent: models.IntentPlanning, Complexity: models.ComplexityMedium, Tone: models.ToneProfessional},
		{Intent: models.IntentPlanning, Complexity: models.ComplexityMedium, Tone: models.ToneProfessional},
		{Intent: models.IntentPlanning, Complexity: models.ComplexitySimple, Tone: models.ToneCasual},
		{Intent: models.IntentTracking, Complexity: models.ComplexityMedium, Tone: models.ToneProfessional},
		{Intent: models.IntentTracking, Complexity: models.ComplexitySimple, Tone: models.ToneCasual},
		{Intent: models.IntentJournal, Complexity: models.ComplexityMedium, Tone: models.ToneProfessional},
		{Intent: models.IntentFitness, Complexity: models.ComplexityMedium, Tone: models.ToneProfessional},
	}

	prefs := derivePreferences(history)

	// Four distinct categories, only the top three survive.
	assert.Equal(t, []string{models.IntentPlanning, models.IntentTracking, models.IntentJournal}, prefs.PreferredCategories)
	assert.Equal(t, models.ComplexityMedium, prefs.PreferredComplexity)
	assert.Equal(t, models.ToneProfessional, prefs.PreferredTone)
}

func TestDerivePreferences_EmptyHistory(t *testing.T) {
	prefs := derivePreferences(nil)
	assert.NotNil(t, prefs.PreferredCategories)
	assert.Empty(t, prefs.PreferredCategories)
	assert.Empty(t, prefs.PreferredComplexity)
}

func TestAdapt_BuildsPersonalizedLayout(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	a := createAdapter(t, store.NewMemoryStores().History, now)
	intent := planningIntent()
	userCtx := a.BuildUserContext(context.Background(), "")

	layout := a.Adapt(context.Background(), intent, userCtx, nil)

	assert.True(t, layout.Personalized)
	assert.Equal(t, models.IntentPlanning, layout.Category)
	assert.Equal(t, "Your Morning Planning Layout", layout.Name)
	assert.Equal(t, intent.Confidence, layout.Confidence)
	assert.NotEmpty(t, layout.Fields)
	assert.Contains(t, layout.ID, "contextual-")
	assert.Contains(t, layout.Context, "fresh start")
	assert.Contains(t, layout.Context, "work")
	assert.Contains(t, layout.Context, "individual use")
}

func TestAdapt_AppendsHistoryAndRefreshesPreferences(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	history := store.NewMemoryStores().History
	a := createAdapter(t, history, now)
	ctx := context.Background()

	userCtx := a.BuildUserContext(ctx, "u1")
	a.Adapt(ctx, planningIntent(), userCtx, nil)

	stored, err := history.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, models.IntentPlanning, stored[0].Intent)
	assert.Equal(t, models.ComplexityMedium, stored[0].Complexity)
	assert.NotEmpty(t, stored[0].ChosenTemplateID)

	assert.Equal(t, []string{models.IntentPlanning}, userCtx.Preferences.PreferredCategories)
	assert.Equal(t, models.ComplexityMedium, userCtx.Preferences.PreferredComplexity)
}

func TestAdapt_AnonymousUserSkipsHistory(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	history := store.NewMemoryStores().History
	a := createAdapter(t, history, now)
	ctx := context.Background()

	userCtx := a.BuildUserContext(ctx, "")
	a.Adapt(ctx, planningIntent(), userCtx, nil)

	stored, err := history.Get(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAdapt_CollaborativeSession(t *testing.T) {
	now := time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)
	a := createAdapter(t, store.NewMemoryStores().History, now)
	userCtx := a.BuildUserContext(context.Background(), "")

	layout := a.Adapt(context.Background(), planningIntent(), userCtx, map[string]interface{}{
		"collaborative": true,
	})

	assert.Contains(t, layout.Context, "several people")
}

func TestGenerateFields_ByComplexity(t *testing.T) {
	tests := []struct {
		complexity string
		fields     int
	}{
		{models.ComplexitySimple, 1},
		{models.ComplexityMedium, 3},
		{models.ComplexityComplex, 5},
	}
	for _, tt := range tests {
		t.Run(tt.complexity, func(t *testing.T) {
			intent := planningIntent()
			intent.Complexity = tt.complexity
			assert.Len(t, generateFields(intent), tt.fields)
		})
	}
}

func TestVariants_BaselinePair(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	a := createAdapter(t, store.NewMemoryStores().History, now)
	intent := planningIntent()
	primary := a.Adapt(context.Background(), intent, a.BuildUserContext(context.Background(), ""), nil)

	variants := a.Variants(intent, primary)

	require.Len(t, variants, 2)
	assert.Equal(t, "minimalist", variants[0].Variant)
	assert.Equal(t, 0.8, variants[0].Confidence)
	assert.Len(t, variants[0].Fields, 1)
	assert.Equal(t, "detailed", variants[1].Variant)
	assert.Equal(t, 0.85, variants[1].Confidence)
	assert.Len(t, variants[1].Fields, 4)
	for _, v := range variants {
		assert.True(t, v.Personalized)
		assert.Equal(t, primary.Context, v.Context)
	}
}

func TestVariants_CreativeGating(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	a := createAdapter(t, store.NewMemoryStores().History, now)

	creative := planningIntent()
	creative.PrimaryIntent = models.IntentCreative
	primary := a.Adapt(context.Background(), creative, a.BuildUserContext(context.Background(), ""), nil)

	variants := a.Variants(creative, primary)
	require.Len(t, variants, 3)
	assert.Equal(t, "creative", variants[2].Variant)
	assert.Equal(t, 0.75, variants[2].Confidence)
	assert.Len(t, variants[2].Fields, 5)

	// A creative tone on a non-creative intent also unlocks the variant.
	toned := planningIntent()
	toned.EmotionalTone = models.ToneCreative
	assert.Len(t, a.Variants(toned, primary), 3)
}
