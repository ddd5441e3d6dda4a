// internal/intent/aliases.go
package intent

import (
	"strings"

	"layout-engine/internal/models"
)

// The remote service does not guarantee stable field naming: the same field
// can arrive camelCased, snake_cased or title-cased depending on model
// version. Each canonical field therefore carries an ordered alias list, and
// resolution tries every alias before giving up. Paths use dots for nesting.
type aliasMapping struct {
	canonical string
	aliases   []string
}

var fieldAliases = []aliasMapping{
	{"primaryIntent", []string{"primaryIntent", "primary_intent", "Primary Intent", "intent", "category"}},
	{"secondaryIntents", []string{"secondaryIntents", "secondary_intents", "Secondary Intents", "secondary"}},
	{"complexity", []string{"complexity", "Complexity", "complexity_level", "complexityLevel"}},
	{"emotionalTone", []string{"emotionalTone", "emotional_tone", "Emotional Tone", "tone"}},
	{"confidence", []string{"confidence", "Confidence", "confidence_score", "confidenceScore"}},
	{"context.timeFrame", []string{"context.timeFrame", "context.time_frame", "timeFrame", "time_frame", "timeframe"}},
	{"context.domain", []string{"context.domain", "domain"}},
	{"context.urgency", []string{"context.urgency", "urgency"}},
	{"context.collaboration", []string{"context.collaboration", "collaboration", "collaborative", "is_collaborative"}},
	{"entities.dates", []string{"entities.dates", "dates"}},
	{"entities.topics", []string{"entities.topics", "topics", "keywords"}},
	{"entities.people", []string{"entities.people", "people"}},
	{"entities.locations", []string{"entities.locations", "locations", "places"}},
	{"entities.numbers", []string{"entities.numbers", "numbers"}},
	{"layoutRequirements.structure", []string{"layoutRequirements.structure", "layout_requirements.structure", "structure", "layout_structure"}},
	{"layoutRequirements.requiredElements", []string{"layoutRequirements.requiredElements", "layout_requirements.required_elements", "requiredElements", "required_elements", "elements"}},
	{"layoutRequirements.interactivity", []string{"layoutRequirements.interactivity", "layout_requirements.interactivity", "interactivity"}},
	{"layoutRequirements.visualStyle", []string{"layoutRequirements.visualStyle", "layout_requirements.visual_style", "visualStyle", "visual_style", "style"}},
}

// resolveAlias walks the raw response for the first alias path that resolves
// to a value.
func resolveAlias(raw map[string]interface{}, aliases []string) (interface{}, bool) {
	for _, path := range aliases {
		if v, ok := lookupPath(raw, path); ok {
			return v, true
		}
	}
	return nil, false
}

func lookupPath(raw map[string]interface{}, path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	var current interface{} = raw
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func aliasesFor(canonical string) []string {
	for _, m := range fieldAliases {
		if m.canonical == canonical {
			return m.aliases
		}
	}
	return nil
}

func resolveString(raw map[string]interface{}, canonical string) (string, bool) {
	v, ok := resolveAlias(raw, aliasesFor(canonical))
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return strings.TrimSpace(s), ok
}

func resolveFloat(raw map[string]interface{}, canonical string) (float64, bool) {
	v, ok := resolveAlias(raw, aliasesFor(canonical))
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func resolveBool(raw map[string]interface{}, canonical string) (bool, bool) {
	v, ok := resolveAlias(raw, aliasesFor(canonical))
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func resolveStringList(raw map[string]interface{}, canonical string) ([]string, bool) {
	v, ok := resolveAlias(raw, aliasesFor(canonical))
	if !ok {
		return nil, false
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out, true
}

// normalizeRemoteResponse maps a decoded remote payload onto a ParsedIntent.
// Every field defaults independently: one missing or malformed field never
// fails the extraction.
func normalizeRemoteResponse(raw map[string]interface{}) *models.ParsedIntent {
	parsed := &models.ParsedIntent{
		Entities: models.NewEntities(),
	}

	if s, ok := resolveString(raw, "primaryIntent"); ok && isKnownIntent(s) {
		parsed.PrimaryIntent = strings.ToLower(s)
	}
	if list, ok := resolveStringList(raw, "secondaryIntents"); ok {
		for _, s := range list {
			if isKnownIntent(s) {
				parsed.SecondaryIntents = append(parsed.SecondaryIntents, strings.ToLower(s))
			}
		}
	}
	if s, ok := resolveString(raw, "complexity"); ok && isKnownComplexity(s) {
		parsed.Complexity = strings.ToLower(s)
	}
	if s, ok := resolveString(raw, "emotionalTone"); ok && isKnownTone(s) {
		parsed.EmotionalTone = strings.ToLower(s)
	}
	if f, ok := resolveFloat(raw, "confidence"); ok && f >= 0 && f <= 1 {
		parsed.Confidence = f
	} else {
		// Remote answered but certainty is unknown; assume moderate.
		parsed.Confidence = 0.5
	}

	if s, ok := resolveString(raw, "context.timeFrame"); ok {
		parsed.Context.TimeFrame = strings.ToLower(s)
	}
	if s, ok := resolveString(raw, "context.domain"); ok {
		parsed.Context.Domain = strings.ToLower(s)
	}
	if s, ok := resolveString(raw, "context.urgency"); ok {
		parsed.Context.Urgency = strings.ToLower(s)
	}
	if b, ok := resolveBool(raw, "context.collaboration"); ok {
		parsed.Context.Collaboration = b
	}

	if list, ok := resolveStringList(raw, "entities.dates"); ok {
		parsed.Entities.Dates = list
	}
	if list, ok := resolveStringList(raw, "entities.topics"); ok {
		parsed.Entities.Topics = list
	}
	if list, ok := resolveStringList(raw, "entities.people"); ok {
		parsed.Entities.People = list
	}
	if list, ok := resolveStringList(raw, "entities.locations"); ok {
		parsed.Entities.Locations = list
	}
	if list, ok := resolveStringList(raw, "entities.numbers"); ok {
		parsed.Entities.Numbers = list
	}

	if s, ok := resolveString(raw, "layoutRequirements.structure"); ok {
		parsed.LayoutRequirements.Structure = strings.ToLower(s)
	}
	if list, ok := resolveStringList(raw, "layoutRequirements.requiredElements"); ok {
		parsed.LayoutRequirements.RequiredElements = list
	}
	if s, ok := resolveString(raw, "layoutRequirements.interactivity"); ok {
		parsed.LayoutRequirements.Interactivity = strings.ToLower(s)
	}
	if s, ok := resolveString(raw, "layoutRequirements.visualStyle"); ok {
		parsed.LayoutRequirements.VisualStyle = strings.ToLower(s)
	}

	parsed.EnsureValid()
	return parsed
}

func isKnownIntent(s string) bool {
	s = strings.ToLower(s)
	for _, intent := range models.PrimaryIntents {
		if s == intent {
			return true
		}
	}
	return false
}

func isKnownComplexity(s string) bool {
	switch strings.ToLower(s) {
	case models.ComplexitySimple, models.ComplexityMedium, models.ComplexityComplex:
		return true
	}
	return false
}

func isKnownTone(s string) bool {
	switch strings.ToLower(s) {
	case models.ToneProfessional, models.ToneCasual, models.ToneCreative,
		models.ToneAcademic, models.TonePersonal, models.ToneNeutral:
		return true
	}
	return false
}
