// internal/intent/fallback.go
package intent

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"layout-engine/internal/models"
)

// Fallback confidence levels: any keyword match earns 0.7, none earns 0.3.
const (
	fallbackConfidenceMatched = 0.7
	fallbackConfidenceDefault = 0.3
)

// FallbackStrategy is the deterministic, network-free extraction strategy.
// It classifies prompts with fixed keyword tables and regex checks, so the
// same prompt always yields the same ParsedIntent.
type FallbackStrategy struct{}

func NewFallbackStrategy() *FallbackStrategy {
	return &FallbackStrategy{}
}

func (s *FallbackStrategy) Name() string { return "fallback" }

func (s *FallbackStrategy) Extract(_ context.Context, prompt string, reqCtx *models.RequestContext) (*models.ParsedIntent, error) {
	lower := strings.ToLower(prompt)
	tokens := tokenize(lower)
	tokenSet := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = true
	}

	primary, secondary, matched := classifyIntent(tokenSet)

	confidence := fallbackConfidenceDefault
	if matched {
		confidence = fallbackConfidenceMatched
	}

	parsed := &models.ParsedIntent{
		PrimaryIntent:    primary,
		SecondaryIntents: secondary,
		Complexity:       classifyComplexity(lower, tokens),
		Context: models.IntentContext{
			TimeFrame:     detectTimeFrame(tokenSet),
			Domain:        detectDomain(primary, reqCtx),
			Urgency:       detectUrgency(tokenSet),
			Collaboration: anyKeyword(tokenSet, collaborationKeywords),
		},
		EmotionalTone:      detectTone(tokenSet),
		Entities:           extractEntities(prompt, tokens),
		LayoutRequirements: detectLayoutRequirements(tokenSet),
		Confidence:         confidence,
	}
	parsed.EnsureValid()
	return parsed, nil
}

var tokenSplit = regexp.MustCompile(`[^a-z0-9+]+`)

func tokenize(lower string) []string {
	raw := tokenSplit.Split(lower, -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// classifyIntent picks the bucket with the most keyword matches. Ties keep
// the first-seen bucket; zero matches yields general. Buckets with at least
// one match but not the winner become secondary intents, ordered by match
// count then bucket order.
func classifyIntent(tokenSet map[string]bool) (primary string, secondary []string, matched bool) {
	type bucketScore struct {
		intent string
		count  int
		order  int
	}
	var scores []bucketScore
	for i, bucket := range intentBuckets {
		count := 0
		for _, kw := range bucket.keywords {
			if tokenSet[kw] {
				count++
			}
		}
		if count > 0 {
			scores = append(scores, bucketScore{bucket.intent, count, i})
		}
	}

	if len(scores) == 0 {
		return models.IntentGeneral, []string{}, false
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].count != scores[j].count {
			return scores[i].count > scores[j].count
		}
		return scores[i].order < scores[j].order
	})

	secondary = []string{}
	for _, s := range scores[1:] {
		secondary = append(secondary, s.intent)
	}
	return scores[0].intent, secondary, true
}

// classifyComplexity maps prompt length and multi-concept connectives to a
// tier. Single-character filler ("I", "a") does not count toward length.
func classifyComplexity(lower string, tokens []string) string {
	wordCount := 0
	for _, tok := range tokens {
		if len(tok) > 1 {
			wordCount++
		}
	}

	hasConnective := false
	for _, c := range connectives {
		if c == "+" {
			if strings.Contains(lower, "+") {
				hasConnective = true
			}
			continue
		}
		for _, tok := range tokens {
			if tok == c {
				hasConnective = true
			}
		}
	}

	hasDetailed := false
	for _, w := range detailedWords {
		for _, tok := range tokens {
			if tok == w {
				hasDetailed = true
			}
		}
	}

	switch {
	case wordCount <= 3 && !hasConnective:
		return models.ComplexitySimple
	case wordCount <= 8 && !hasConnective && !hasDetailed:
		return models.ComplexityMedium
	default:
		return models.ComplexityComplex
	}
}

func anyKeyword(tokenSet map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if tokenSet[kw] {
			return true
		}
	}
	return false
}

func detectTone(tokenSet map[string]bool) string {
	for _, entry := range toneKeywords {
		if anyKeyword(tokenSet, entry.keywords) {
			return entry.tone
		}
	}
	return models.ToneNeutral
}

func detectTimeFrame(tokenSet map[string]bool) string {
	for _, entry := range timeFrameKeywords {
		if anyKeyword(tokenSet, entry.keywords) {
			return entry.frame
		}
	}
	return ""
}

func detectUrgency(tokenSet map[string]bool) string {
	if anyKeyword(tokenSet, urgencyKeywords) {
		return models.UrgencyHigh
	}
	return models.UrgencyNormal
}

// detectDomain prefers an explicit category from the request context, then
// the classified intent.
func detectDomain(primary string, reqCtx *models.RequestContext) string {
	if reqCtx != nil && reqCtx.Category != "" {
		return reqCtx.Category
	}
	if primary != models.IntentGeneral {
		return primary
	}
	return ""
}

var (
	isoDatePattern   = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	slashDatePattern = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(/\d{2,4})?\b`)
	numberPattern    = regexp.MustCompile(`\b\d+(\.\d+)?\b`)
	relativeDates    = []string{"today", "tomorrow", "tonight", "weekend"}
	monthNames       = []string{
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december",
	}
	locationMarkers = map[string]bool{"at": true, "in": true}
	peopleMarkers   = map[string]bool{"with": true}
)

// extractEntities pulls dates, numbers, topics, people and locations out of
// the raw prompt with fixed regex and marker-word rules.
func extractEntities(prompt string, tokens []string) models.Entities {
	entities := models.NewEntities()
	lower := strings.ToLower(prompt)

	entities.Dates = append(entities.Dates, isoDatePattern.FindAllString(prompt, -1)...)
	entities.Dates = append(entities.Dates, slashDatePattern.FindAllString(prompt, -1)...)
	for _, rel := range relativeDates {
		if strings.Contains(lower, rel) {
			entities.Dates = append(entities.Dates, rel)
		}
	}
	for _, m := range monthNames {
		if strings.Contains(lower, m) {
			entities.Dates = append(entities.Dates, m)
		}
	}

	entities.Numbers = numberPattern.FindAllString(prompt, -1)
	if entities.Numbers == nil {
		entities.Numbers = []string{}
	}

	// Capitalized words after marker words become people/locations.
	rawWords := strings.Fields(prompt)
	for i := 1; i < len(rawWords); i++ {
		word := strings.Trim(rawWords[i], ".,!?;:")
		if word == "" || word[0] < 'A' || word[0] > 'Z' {
			continue
		}
		marker := strings.ToLower(strings.Trim(rawWords[i-1], ".,!?;:"))
		switch {
		case peopleMarkers[marker]:
			entities.People = append(entities.People, word)
		case locationMarkers[marker]:
			entities.Locations = append(entities.Locations, word)
		}
	}

	// Topics: remaining meaningful tokens, capped to keep scoring cheap.
	const maxTopics = 8
	seen := map[string]bool{}
	for _, tok := range tokens {
		if len(tok) < 3 || stopWords[tok] || seen[tok] {
			continue
		}
		if numberPattern.MatchString(tok) {
			continue
		}
		entities.Topics = append(entities.Topics, tok)
		seen[tok] = true
		if len(entities.Topics) >= maxTopics {
			break
		}
	}

	return entities
}

func detectLayoutRequirements(tokenSet map[string]bool) models.LayoutRequirements {
	req := models.LayoutRequirements{
		Structure:        models.StructureFreeform,
		RequiredElements: []string{},
		Interactivity:    models.InteractivityMedium,
		VisualStyle:      models.StyleMinimal,
	}

	for _, entry := range structureKeywords {
		if anyKeyword(tokenSet, entry.keywords) {
			req.Structure = entry.structure
			break
		}
	}

	for _, entry := range elementKeywords {
		if anyKeyword(tokenSet, entry.keywords) {
			req.RequiredElements = append(req.RequiredElements, entry.element)
		}
	}

	for _, entry := range visualStyleKeywords {
		if anyKeyword(tokenSet, entry.keywords) {
			req.VisualStyle = entry.style
			break
		}
	}

	// Checkbox-heavy requests imply interaction; pure writing implies less.
	switch {
	case containsElement(req.RequiredElements, "checkbox"):
		req.Interactivity = models.InteractivityHigh
	case len(req.RequiredElements) == 1 && req.RequiredElements[0] == "textarea":
		req.Interactivity = models.InteractivityLow
	}

	return req
}

func containsElement(elements []string, want string) bool {
	for _, e := range elements {
		if e == want {
			return true
		}
	}
	return false
}
