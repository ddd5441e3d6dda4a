// internal/engine/suggestions.go
package engine

import (
	"fmt"

	"layout-engine/internal/models"
)

// buildSuggestions derives actionable hints from what the pipeline produced.
// An empty result list always yields the refine-prompt hint.
func buildSuggestions(parsed *models.ParsedIntent, layouts []models.ContextualLayout) []models.ContextualSuggestion {
	suggestions := []models.ContextualSuggestion{}

	if len(layouts) == 0 {
		suggestions = append(suggestions, models.ContextualSuggestion{
			Type:    "refine-prompt",
			Message: "Try a more specific prompt describing what you want to organize",
		})
	}
	if parsed.Context.TimeFrame == "" {
		suggestions = append(suggestions, models.ContextualSuggestion{
			Type:    "add-timeframe",
			Message: "Mention a rhythm like daily or weekly for a better-fitting structure",
		})
	}
	if parsed.PrimaryIntent == models.IntentGeneral {
		suggestions = append(suggestions, models.ContextualSuggestion{
			Type:    "try-category",
			Message: "Name an activity like planning, tracking or journaling to narrow the match",
		})
	}

	return suggestions
}

// searchSuggestions mirrors the hints as plain strings on the search block.
func searchSuggestions(parsed *models.ParsedIntent, matches []models.MatchResult) []string {
	out := []string{}
	if len(matches) == 0 {
		out = append(out, "try a more specific prompt")
	}
	if len(parsed.Entities.Topics) == 0 {
		out = append(out, "include a topic or subject in your request")
	}
	return out
}

// alternativeQueries proposes deterministic rephrasings built from the intent.
func alternativeQueries(parsed *models.ParsedIntent) []string {
	queries := []string{}
	name := intentQueryWord(parsed.PrimaryIntent)

	if parsed.Context.TimeFrame != "" {
		queries = append(queries, fmt.Sprintf("%s %s template", parsed.Context.TimeFrame, name))
	} else {
		queries = append(queries, fmt.Sprintf("weekly %s template", name))
	}
	if len(parsed.Entities.Topics) > 0 {
		queries = append(queries, fmt.Sprintf("simple %s layout", parsed.Entities.Topics[0]))
	}
	for _, secondary := range parsed.SecondaryIntents {
		queries = append(queries, fmt.Sprintf("%s layout", intentQueryWord(secondary)))
		if len(queries) >= 4 {
			break
		}
	}

	return queries
}

// insightRecommendations explains how the request could score better.
func insightRecommendations(parsed *models.ParsedIntent) []string {
	recs := []string{}
	if parsed.Confidence < 0.5 {
		recs = append(recs, "Your request was hard to classify; adding an activity word improves matching")
	}
	if parsed.Complexity == models.ComplexityComplex {
		recs = append(recs, "Complex requests match better when split into separate layouts")
	}
	if parsed.Context.Collaboration {
		recs = append(recs, "Shared layouts work best with clearly labeled sections per person")
	}
	return recs
}

func intentQueryWord(primary string) string {
	switch primary {
	case models.IntentPlanning:
		return "planner"
	case models.IntentTracking:
		return "tracker"
	case models.IntentCreative:
		return "brainstorm"
	case models.IntentStudy:
		return "study notes"
	case models.IntentBusiness:
		return "meeting notes"
	case models.IntentFitness:
		return "workout log"
	case models.IntentJournal:
		return "journal"
	default:
		return "notes"
	}
}
