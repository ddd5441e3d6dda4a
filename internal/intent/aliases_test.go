// internal/intent/aliases_test.go
package intent

import (
	"encoding/json"
	"testing"

	"layout-engine/internal/models"

	"github.com/stretchr/testify/assert"
)

func decodeRaw(t *testing.T, payload string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func TestNormalize_CanonicalFieldNames(t *testing.T) {
	raw := decodeRaw(t, `{
		"primaryIntent": "planning",
		"secondaryIntents": ["tracking"],
		"complexity": "medium",
		"emotionalTone": "professional",
		"confidence": 0.92,
		"context": {"timeFrame": "weekly", "collaboration": true},
		"entities": {"topics": ["planner", "work"]},
		"layoutRequirements": {"structure": "grid", "requiredElements": ["checkbox"]}
	}`)

	parsed := normalizeRemoteResponse(raw)
	assert.Equal(t, models.IntentPlanning, parsed.PrimaryIntent)
	assert.Equal(t, []string{models.IntentTracking}, parsed.SecondaryIntents)
	assert.Equal(t, models.ComplexityMedium, parsed.Complexity)
	assert.Equal(t, models.ToneProfessional, parsed.EmotionalTone)
	assert.Equal(t, 0.92, parsed.Confidence)
	assert.Equal(t, models.TimeFrameWeekly, parsed.Context.TimeFrame)
	assert.True(t, parsed.Context.Collaboration)
	assert.Equal(t, []string{"planner", "work"}, parsed.Entities.Topics)
	assert.Equal(t, models.StructureGrid, parsed.LayoutRequirements.Structure)
}

func TestNormalize_SnakeCaseAliases(t *testing.T) {
	raw := decodeRaw(t, `{
		"primary_intent": "fitness",
		"emotional_tone": "casual",
		"time_frame": "daily",
		"layout_requirements": {"visual_style": "playful"}
	}`)

	parsed := normalizeRemoteResponse(raw)
	assert.Equal(t, models.IntentFitness, parsed.PrimaryIntent)
	assert.Equal(t, models.ToneCasual, parsed.EmotionalTone)
	assert.Equal(t, models.TimeFrameDaily, parsed.Context.TimeFrame)
	assert.Equal(t, models.StylePlayful, parsed.LayoutRequirements.VisualStyle)
}

func TestNormalize_TitleCasedAliases(t *testing.T) {
	raw := decodeRaw(t, `{
		"Primary Intent": "study",
		"Emotional Tone": "academic"
	}`)

	parsed := normalizeRemoteResponse(raw)
	assert.Equal(t, models.IntentStudy, parsed.PrimaryIntent)
	assert.Equal(t, models.ToneAcademic, parsed.EmotionalTone)
}

func TestNormalize_AliasOrderPrefersCanonical(t *testing.T) {
	// When multiple aliases resolve, the first in the alias list wins.
	raw := decodeRaw(t, `{
		"primaryIntent": "journal",
		"intent": "business"
	}`)

	parsed := normalizeRemoteResponse(raw)
	assert.Equal(t, models.IntentJournal, parsed.PrimaryIntent)
}

func TestNormalize_MissingFieldsDefaultIndependently(t *testing.T) {
	// Only one field arrives; every other defaults instead of failing.
	raw := decodeRaw(t, `{"intent": "creative"}`)

	parsed := normalizeRemoteResponse(raw)
	assert.Equal(t, models.IntentCreative, parsed.PrimaryIntent)
	assert.Equal(t, models.ComplexityMedium, parsed.Complexity)
	assert.Equal(t, models.ToneNeutral, parsed.EmotionalTone)
	assert.Equal(t, 0.5, parsed.Confidence)
	assert.NotNil(t, parsed.Entities.Topics)
	assert.NotNil(t, parsed.SecondaryIntents)
}

func TestNormalize_InvalidValuesFallToDefaults(t *testing.T) {
	raw := decodeRaw(t, `{
		"primaryIntent": "world-domination",
		"complexity": "extreme",
		"emotionalTone": 42,
		"confidence": 7.5
	}`)

	parsed := normalizeRemoteResponse(raw)
	assert.Equal(t, models.IntentGeneral, parsed.PrimaryIntent)
	assert.Equal(t, models.ComplexityMedium, parsed.Complexity)
	assert.Equal(t, models.ToneNeutral, parsed.EmotionalTone)
	assert.Equal(t, 0.5, parsed.Confidence)
}

func TestNormalize_EmptyPayload(t *testing.T) {
	parsed := normalizeRemoteResponse(map[string]interface{}{})

	assert.Equal(t, models.IntentGeneral, parsed.PrimaryIntent)
	assert.GreaterOrEqual(t, parsed.Confidence, 0.0)
	assert.LessOrEqual(t, parsed.Confidence, 1.0)
}
