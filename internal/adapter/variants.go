// internal/adapter/variants.go
package adapter

import (
	"layout-engine/internal/models"
)

// generateFields lays out the primary contextual layout's editable regions
// according to the intent's complexity tier.
func generateFields(intent *models.ParsedIntent) []models.EditableField {
	switch intent.Complexity {
	case models.ComplexitySimple:
		return []models.EditableField{
			{ID: "main", Type: "textarea", Label: "Notes",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.1, Width: 0.9, Height: 0.8}},
		}
	case models.ComplexityComplex:
		return []models.EditableField{
			{ID: "title", Type: "text", Label: "Title",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.05, Width: 0.9, Height: 0.08}},
			{ID: "overview", Type: "textarea", Label: "Overview",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.16, Width: 0.9, Height: 0.18}},
			{ID: "details", Type: "textarea", Label: "Details",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.37, Width: 0.9, Height: 0.28}},
			{ID: "actions", Type: "textarea", Label: "Action Items",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.68, Width: 0.9, Height: 0.16}},
			{ID: "followup", Type: "textarea", Label: "Follow-up",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.87, Width: 0.9, Height: 0.1}},
		}
	default:
		return []models.EditableField{
			{ID: "title", Type: "text", Label: "Title",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.05, Width: 0.9, Height: 0.08}},
			{ID: "body", Type: "textarea", Label: "Body",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.16, Width: 0.9, Height: 0.6}},
			{ID: "notes", Type: "textarea", Label: "Notes",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.79, Width: 0.9, Height: 0.16}},
		}
	}
}

// Variants produces alternative takes on the primary contextual layout. The
// minimalist and detailed variants are always offered; the creative variant
// only appears for creative-leaning intents, meaning the primary intent is
// creative or the tone is creative.
func (a *Adapter) Variants(intent *models.ParsedIntent, primary models.ContextualLayout) []models.ContextualLayout {
	variants := []models.ContextualLayout{
		a.minimalistVariant(intent, primary),
		a.detailedVariant(intent, primary),
	}
	if creativeLeaning(intent) {
		variants = append(variants, a.creativeVariant(intent, primary))
	}
	return variants
}

func creativeLeaning(intent *models.ParsedIntent) bool {
	return intent.PrimaryIntent == models.IntentCreative ||
		intent.EmotionalTone == models.ToneCreative
}

func (a *Adapter) minimalistVariant(intent *models.ParsedIntent, primary models.ContextualLayout) models.ContextualLayout {
	return models.ContextualLayout{
		ID:          "variant-minimal-" + a.newID(),
		Name:        primary.Name + " (Minimal)",
		Category:    intent.PrimaryIntent,
		Description: "A stripped-down take with a single open writing area",
		Fields: []models.EditableField{
			{ID: "canvas", Type: "textarea", Label: "",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.05, Width: 0.9, Height: 0.9}},
		},
		Context:      primary.Context,
		Confidence:   0.8,
		Complexity:   models.ComplexitySimple,
		Personalized: true,
		Variant:      "minimalist",
	}
}

func (a *Adapter) detailedVariant(intent *models.ParsedIntent, primary models.ContextualLayout) models.ContextualLayout {
	return models.ContextualLayout{
		ID:          "variant-detailed-" + a.newID(),
		Name:        primary.Name + " (Detailed)",
		Category:    intent.PrimaryIntent,
		Description: "An expanded take with labeled sections for structured capture",
		Fields: []models.EditableField{
			{ID: "goals", Type: "textarea", Label: "Goals",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.05, Width: 0.9, Height: 0.2}},
			{ID: "tasks", Type: "textarea", Label: "Tasks",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.28, Width: 0.9, Height: 0.25}},
			{ID: "schedule", Type: "textarea", Label: "Schedule",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.56, Width: 0.9, Height: 0.2}},
			{ID: "reflections", Type: "textarea", Label: "Reflections",
				Geometry: models.FieldGeometry{X: 0.05, Y: 0.79, Width: 0.9, Height: 0.16}},
		},
		Context:      primary.Context,
		Confidence:   0.85,
		Complexity:   models.ComplexityComplex,
		Personalized: true,
		Variant:      "detailed",
	}
}

func (a *Adapter) creativeVariant(intent *models.ParsedIntent, primary models.ContextualLayout) models.ContextualLayout {
	bubbles := make([]models.EditableField, 0, 5)
	positions := []models.FieldGeometry{
		{X: 0.35, Y: 0.4, Width: 0.3, Height: 0.15},
		{X: 0.1, Y: 0.1, Width: 0.25, Height: 0.12},
		{X: 0.65, Y: 0.12, Width: 0.25, Height: 0.12},
		{X: 0.1, Y: 0.72, Width: 0.25, Height: 0.12},
		{X: 0.65, Y: 0.7, Width: 0.25, Height: 0.12},
	}
	labels := []string{"Central Idea", "Idea", "Idea", "Idea", "Idea"}
	for i, geo := range positions {
		bubbles = append(bubbles, models.EditableField{
			ID:       "bubble-" + string(rune('a'+i)),
			Type:     "text",
			Label:    labels[i],
			Geometry: geo,
		})
	}
	return models.ContextualLayout{
		ID:           "variant-creative-" + a.newID(),
		Name:         primary.Name + " (Creative)",
		Category:     intent.PrimaryIntent,
		Description:  "A freeform take with idea bubbles radiating from a center",
		Fields:       bubbles,
		Context:      primary.Context,
		Confidence:   0.75,
		Complexity:   models.ComplexityMedium,
		Personalized: true,
		Variant:      "creative",
	}
}
