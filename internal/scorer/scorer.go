// internal/scorer/scorer.go

// Package scorer computes the weighted multi-dimensional similarity between
// a parsed intent and a candidate template. Score is a pure function of its
// two inputs; nothing here mutates shared state.
package scorer

import (
	"strings"

	"layout-engine/internal/common/metrics"
	"layout-engine/internal/models"
)

// Dimension weights. They must total 1.0; TestWeightsSumToOne guards this.
const (
	weightIntentCategory = 0.40
	weightKeyword        = 0.25
	weightComplexity     = 0.15
	weightTone           = 0.10
	weightLayout         = 0.10
)

// Sub-weights inside the keyword dimension.
const (
	keywordJaccardWeight  = 0.6
	keywordSemanticWeight = 0.4
)

// DefaultThreshold excludes weak matches from output entirely.
const DefaultThreshold = 0.3

// Scorer scores candidates against one parsed intent.
type Scorer struct {
	threshold float64
}

func New(threshold float64) *Scorer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Scorer{threshold: threshold}
}

// Score computes the MatchResult for one (intent, candidate) pair.
func (s *Scorer) Score(intent *models.ParsedIntent, candidate *models.CandidateTemplate) models.MatchResult {
	categoryScore := scoreIntentCategory(intent.PrimaryIntent, candidate.Category)
	keywordScore := scoreKeywords(intent, candidate)
	complexityScore := scoreComplexity(intent.Complexity, candidate.InferredComplexity())
	toneScore := scoreTone(intent.EmotionalTone, candidate.Category)
	layoutScore := scoreLayout(&intent.LayoutRequirements, candidate)

	similarity := categoryScore*weightIntentCategory +
		keywordScore*weightKeyword +
		complexityScore*weightComplexity +
		toneScore*weightTone +
		layoutScore*weightLayout

	confidence := boostConfidence(similarity, intent, candidate)
	reasoning := buildReasoning(similarity, intent, candidate, complexityScore)

	return models.MatchResult{
		CandidateID:     candidate.ID,
		SimilarityScore: similarity,
		ConfidenceScore: confidence,
		Reasoning:       reasoning,
	}
}

// ScoreAll scores every candidate and drops results at or below the
// threshold. Output preserves corpus order.
func (s *Scorer) ScoreAll(intent *models.ParsedIntent, candidates []models.CandidateTemplate) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(candidates))
	for i := range candidates {
		result := s.Score(intent, &candidates[i])
		metrics.CandidatesScored.Inc()
		if result.SimilarityScore <= s.threshold {
			continue
		}
		results = append(results, result)
	}
	return results
}

// Dimension 1: intent-to-category compatibility (weight 0.40).
func scoreIntentCategory(primaryIntent, category string) float64 {
	if containsString(intentCategories[primaryIntent], category) {
		return 1.0
	}
	return 0.3
}

// Dimension 2: keyword similarity (weight 0.25). Combines token overlap
// with partial substring credit, and coarse semantic-group overlap.
func scoreKeywords(intent *models.ParsedIntent, candidate *models.CandidateTemplate) float64 {
	intentTokens := intentKeywordTokens(intent)
	candTokens := candidateKeywordTokens(candidate)

	jaccard := jaccardWithPartialCredit(intentTokens, candTokens)
	semantic := semanticGroupSimilarity(intentTokens, candTokens)

	return keywordJaccardWeight*jaccard + keywordSemanticWeight*semantic
}

func intentKeywordTokens(intent *models.ParsedIntent) []string {
	tokens := make([]string, 0, len(intent.Entities.Topics)+2)
	tokens = append(tokens, intent.Entities.Topics...)
	if intent.Context.TimeFrame != "" {
		tokens = append(tokens, intent.Context.TimeFrame)
	}
	if intent.Context.Domain != "" {
		tokens = append(tokens, intent.Context.Domain)
	}
	return normalizeTokens(tokens)
}

func candidateKeywordTokens(candidate *models.CandidateTemplate) []string {
	tokens := make([]string, 0, len(candidate.Keywords)+len(candidate.Tags))
	tokens = append(tokens, candidate.Keywords...)
	tokens = append(tokens, candidate.Tags...)
	return normalizeTokens(tokens)
}

func normalizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := map[string]bool{}
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" || seen[tok] {
			continue
		}
		out = append(out, tok)
		seen[tok] = true
	}
	return out
}

// jaccardWithPartialCredit is token-set Jaccard similarity where exact
// matches count 1.0 and containment pairs ("plan" in "planner") count 0.5.
func jaccardWithPartialCredit(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	bSet := map[string]bool{}
	for _, tok := range b {
		bSet[tok] = true
	}

	matched := 0.0
	for _, tokA := range a {
		if bSet[tokA] {
			matched += 1.0
			continue
		}
		for _, tokB := range b {
			if len(tokA) >= 3 && len(tokB) >= 3 &&
				(strings.Contains(tokA, tokB) || strings.Contains(tokB, tokA)) {
				matched += 0.5
				break
			}
		}
	}

	union := float64(len(a)+len(b)) - matched
	if union <= 0 {
		return 1.0
	}
	sim := matched / union
	if sim > 1 {
		sim = 1
	}
	return sim
}

// semanticGroupSimilarity treats fixed synonym clusters as mutually similar:
// the score is the fraction of touched clusters both sides hit.
func semanticGroupSimilarity(a, b []string) float64 {
	touched, shared := 0, 0
	for _, cluster := range synonymClusters {
		hitA, hitB := false, false
		for _, tok := range cluster {
			if containsString(a, tok) {
				hitA = true
			}
			if containsString(b, tok) {
				hitB = true
			}
		}
		if hitA || hitB {
			touched++
		}
		if hitA && hitB {
			shared++
		}
	}
	if touched == 0 {
		return 0
	}
	return float64(shared) / float64(touched)
}

// Dimension 3: complexity compatibility (weight 0.15).
func scoreComplexity(intentComplexity, candidateComplexity string) float64 {
	return adjacencyScore(complexityRank[intentComplexity], complexityRank[candidateComplexity])
}

// Dimension 4: emotional-tone compatibility (weight 0.10).
func scoreTone(tone, category string) float64 {
	if containsString(toneCategories[tone], category) {
		return 1.0
	}
	return 0.5
}

// Dimension 5: layout-requirement compatibility (weight 0.10): the average
// of structure match, element coverage and interactivity adjacency.
func scoreLayout(req *models.LayoutRequirements, candidate *models.CandidateTemplate) float64 {
	structure := 0.5
	if req.Structure != "" && req.Structure == candidate.Structure {
		structure = 1.0
	}

	coverage := 0.5
	if len(req.RequiredElements) > 0 {
		present := map[string]bool{}
		for _, f := range candidate.EditableFields {
			present[f.Type] = true
		}
		matched := 0
		for _, el := range req.RequiredElements {
			if present[el] {
				matched++
			}
		}
		coverage = float64(matched) / float64(len(req.RequiredElements))
	}

	interactivity := adjacencyScore(
		interactivityRank[req.Interactivity],
		interactivityRank[candidate.Interactivity],
	)

	return (structure + coverage + interactivity) / 3.0
}

// boostConfidence lifts the similarity score for popular candidates, exact
// category hits and confident extractions, clamped to [0,1].
func boostConfidence(similarity float64, intent *models.ParsedIntent, candidate *models.CandidateTemplate) float64 {
	confidence := similarity
	switch {
	case candidate.Popularity > 80:
		confidence += 0.1
	case candidate.Popularity > 50:
		confidence += 0.05
	}
	if intent.PrimaryIntent == candidate.Category {
		confidence += 0.1
	}
	confidence += 0.1 * intent.Confidence

	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}

// buildReasoning assembles the ordered justification list. Condition order
// is fixed: category, similarity tier, popularity, complexity.
func buildReasoning(similarity float64, intent *models.ParsedIntent, candidate *models.CandidateTemplate, complexityScore float64) []string {
	reasoning := []string{}
	if intent.PrimaryIntent == candidate.Category {
		reasoning = append(reasoning, "Category matches your intent exactly")
	}
	switch {
	case similarity >= 0.8:
		reasoning = append(reasoning, "High similarity to your request")
	case similarity >= 0.6:
		reasoning = append(reasoning, "Good similarity to your request")
	}
	if candidate.Popularity > 80 {
		reasoning = append(reasoning, "Popular choice among users")
	}
	if complexityScore == 1.0 {
		reasoning = append(reasoning, "Complexity level fits your request")
	}
	return reasoning
}
