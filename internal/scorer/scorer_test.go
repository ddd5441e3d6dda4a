// internal/scorer/scorer_test.go
package scorer

import (
	"math"
	"testing"

	"layout-engine/internal/corpus"
	"layout-engine/internal/models"

	"github.com/stretchr/testify/assert"
)

func createPlanningIntent() *models.ParsedIntent {
	intent := &models.ParsedIntent{
		PrimaryIntent:    models.IntentPlanning,
		SecondaryIntents: []string{models.IntentBusiness},
		Complexity:       models.ComplexityMedium,
		Context: models.IntentContext{
			TimeFrame: models.TimeFrameWeekly,
			Urgency:   models.UrgencyNormal,
		},
		EmotionalTone: models.ToneProfessional,
		Entities:      models.NewEntities(),
		LayoutRequirements: models.LayoutRequirements{
			Structure:        models.StructureGrid,
			RequiredElements: []string{},
			Interactivity:    models.InteractivityMedium,
			VisualStyle:      models.StyleMinimal,
		},
		Confidence: 0.7,
	}
	intent.Entities.Topics = []string{"weekly", "planner", "work"}
	return intent
}

func mustGet(t *testing.T, id string) *models.CandidateTemplate {
	t.Helper()
	tmpl, ok := corpus.Default().Get(id)
	assert.True(t, ok, "missing corpus template %s", id)
	return tmpl
}

func TestWeightsSumToOne(t *testing.T) {
	sum := weightIntentCategory + weightKeyword + weightComplexity + weightTone + weightLayout
	assert.InDelta(t, 1.0, sum, 1e-9)

	assert.InDelta(t, 1.0, keywordJaccardWeight+keywordSemanticWeight, 1e-9)
}

func TestScore_SimilarityInRange(t *testing.T) {
	s := New(DefaultThreshold)
	intents := []*models.ParsedIntent{
		createPlanningIntent(),
		{PrimaryIntent: models.IntentGeneral, Entities: models.NewEntities(), Confidence: 0.3},
		{PrimaryIntent: models.IntentCreative, EmotionalTone: models.ToneCreative, Entities: models.NewEntities(), Confidence: 1.0},
	}
	for _, intent := range intents {
		intent.EnsureValid()
		for _, candidate := range corpus.Default().All() {
			result := s.Score(intent, &candidate)
			assert.GreaterOrEqual(t, result.SimilarityScore, 0.0, "candidate %s", candidate.ID)
			assert.LessOrEqual(t, result.SimilarityScore, 1.0, "candidate %s", candidate.ID)
			assert.GreaterOrEqual(t, result.ConfidenceScore, 0.0, "candidate %s", candidate.ID)
			assert.LessOrEqual(t, result.ConfidenceScore, 1.0, "candidate %s", candidate.ID)
		}
	}
}

func TestScore_CategoryCompatibility(t *testing.T) {
	s := New(DefaultThreshold)
	intent := createPlanningIntent()

	planner := s.Score(intent, mustGet(t, "weekly-planner"))
	sketch := s.Score(intent, mustGet(t, "sketch-page"))

	// Planning intent against a planning template beats a creative one.
	assert.Greater(t, planner.SimilarityScore, sketch.SimilarityScore)
}

func TestScore_IncompatibleCategoryKeepsFloor(t *testing.T) {
	// The category dimension never scores zero, preserving long-tail recall.
	assert.Equal(t, 0.3, scoreIntentCategory(models.IntentCreative, models.IntentFitness))
	assert.Equal(t, 1.0, scoreIntentCategory(models.IntentPlanning, models.IntentTracking))
}

func TestScore_PopularExactMatchBoost(t *testing.T) {
	s := New(DefaultThreshold)
	intent := createPlanningIntent()

	// weekly-planner: popularity 95 and exact category match, so the boost
	// is at least +0.2 over raw similarity (before clamping).
	result := s.Score(intent, mustGet(t, "weekly-planner"))
	expected := math.Min(1.0, result.SimilarityScore+0.2+0.1*intent.Confidence)
	assert.InDelta(t, expected, result.ConfidenceScore, 1e-9)
}

func TestScore_ModeratePopularityBoost(t *testing.T) {
	intent := createPlanningIntent()
	intent.Confidence = 0

	// popularity 51-80 earns +0.05 only.
	candidate := &models.CandidateTemplate{
		ID: "x", Category: models.IntentFitness, Popularity: 60,
		EditableFields: make([]models.EditableField, 5),
	}
	result := New(DefaultThreshold).Score(intent, candidate)
	assert.InDelta(t, result.SimilarityScore+0.05, result.ConfidenceScore, 1e-9)
}

func TestScore_ReasoningOrder(t *testing.T) {
	s := New(DefaultThreshold)
	intent := createPlanningIntent()

	result := s.Score(intent, mustGet(t, "weekly-planner"))
	assert.NotEmpty(t, result.Reasoning)
	assert.Equal(t, "Category matches your intent exactly", result.Reasoning[0])
	// Popularity 95 always earns a line; it follows any similarity line.
	assert.Contains(t, result.Reasoning, "Popular choice among users")
	// Medium intent vs medium candidate earns the complexity line last.
	assert.Equal(t, "Complexity level fits your request", result.Reasoning[len(result.Reasoning)-1])
}

func TestScoreAll_FiltersBelowThreshold(t *testing.T) {
	s := New(DefaultThreshold)
	intent := createPlanningIntent()

	results := s.ScoreAll(intent, corpus.Default().All())
	assert.NotEmpty(t, results)
	for _, r := range results {
		assert.Greater(t, r.SimilarityScore, DefaultThreshold)
	}
}

func TestScoreAll_PreservesCorpusOrder(t *testing.T) {
	s := New(DefaultThreshold)
	intent := createPlanningIntent()
	all := corpus.Default().All()

	results := s.ScoreAll(intent, all)

	position := map[string]int{}
	for i, c := range all {
		position[c.ID] = i
	}
	for i := 1; i < len(results); i++ {
		assert.Less(t, position[results[i-1].CandidateID], position[results[i].CandidateID])
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := New(DefaultThreshold)
	intent := createPlanningIntent()
	candidate := mustGet(t, "habit-tracker")

	first := s.Score(intent, candidate)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Score(intent, candidate))
	}
}

func TestComplexityAdjacency(t *testing.T) {
	tests := []struct {
		name      string
		intent    string
		candidate string
		expected  float64
	}{
		{"exact", models.ComplexityMedium, models.ComplexityMedium, 1.0},
		{"adjacent", models.ComplexitySimple, models.ComplexityMedium, 0.7},
		{"distant", models.ComplexitySimple, models.ComplexityComplex, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoreComplexity(tt.intent, tt.candidate))
		})
	}
}

func TestKeywordSimilarity_PartialCredit(t *testing.T) {
	// "plan" is contained in "planner": half credit, not zero.
	partial := jaccardWithPartialCredit([]string{"plan"}, []string{"planner"})
	assert.Greater(t, partial, 0.0)

	exact := jaccardWithPartialCredit([]string{"planner"}, []string{"planner"})
	assert.Equal(t, 1.0, exact)

	none := jaccardWithPartialCredit([]string{"xyz"}, []string{"planner"})
	assert.Equal(t, 0.0, none)
}

func TestSemanticGroups_NoLiteralOverlap(t *testing.T) {
	// "daily" and "schedule" share a synonym cluster without overlapping.
	sim := semanticGroupSimilarity([]string{"daily"}, []string{"schedule"})
	assert.Equal(t, 1.0, sim)

	sim = semanticGroupSimilarity([]string{"daily"}, []string{"flashcard"})
	assert.Equal(t, 0.0, sim)
}

func TestToneCompatibility(t *testing.T) {
	assert.Equal(t, 1.0, scoreTone(models.ToneProfessional, models.IntentBusiness))
	assert.Equal(t, 0.5, scoreTone(models.ToneProfessional, models.IntentCreative))
	assert.Equal(t, 0.5, scoreTone(models.ToneNeutral, models.IntentPlanning))
}

func TestLayoutCompatibility_ElementCoverage(t *testing.T) {
	req := &models.LayoutRequirements{
		Structure:        models.StructureGrid,
		RequiredElements: []string{"checkbox", "number"},
		Interactivity:    models.InteractivityHigh,
	}
	habit := mustGet(t, "habit-tracker") // grid, has checkbox and number fields

	score := scoreLayout(req, habit)
	assert.InDelta(t, 1.0, score, 1e-9)

	// No requested elements: coverage takes the 0.5 default.
	reqNone := &models.LayoutRequirements{
		Structure:        models.StructureFreeform,
		RequiredElements: []string{},
		Interactivity:    models.InteractivityMedium,
	}
	blank := mustGet(t, "blank-notes")
	score = scoreLayout(reqNone, blank)
	assert.InDelta(t, (1.0+0.5+0.7)/3.0, score, 1e-9)
}
