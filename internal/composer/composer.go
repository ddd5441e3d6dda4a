// internal/composer/composer.go

// Package composer merges contextual layouts and scored corpus matches into
// one deduplicated, ranked, personalization-trimmed list.
package composer

import (
	"context"
	"math"
	"sort"

	"layout-engine/internal/common/logger"
	"layout-engine/internal/corpus"
	"layout-engine/internal/models"
	"layout-engine/internal/store"
)

// Rank blend weights over similarity, base confidence and popularity.
const (
	rankSimilarityWeight = 0.5
	rankConfidenceWeight = 0.3
	rankPopularityWeight = 0.2
)

// Feedback blend: the rank score keeps most of its weight, explicit feedback
// nudges it. Candidates without feedback use the neutral default.
const (
	feedbackRankWeight   = 0.8
	feedbackScoreWeight  = 0.2
	feedbackNeutralScore = 0.5
)

// Composer assembles the final ranked layout list.
type Composer struct {
	corpus   *corpus.Corpus
	feedback store.FeedbackStore
	logger   logger.Logger
}

func New(c *corpus.Corpus, feedback store.FeedbackStore, log logger.Logger) *Composer {
	return &Composer{
		corpus:   c,
		feedback: feedback,
		logger:   log.WithFields(map[string]interface{}{"component": "composer"}),
	}
}

// Compose merges the contextual layouts with the scored matches, deduplicates
// by id keeping the first occurrence, ranks with a stable sort, and applies
// the personalization trimming policy. Contextual layouts are listed before
// matches, so on an id collision the contextual one wins.
func (c *Composer) Compose(ctx context.Context, contextual []models.ContextualLayout, matches []models.MatchResult, userID string, opts models.RequestOptions) []models.ContextualLayout {
	merged := make([]models.ContextualLayout, 0, len(contextual)+len(matches))
	merged = append(merged, contextual...)
	for _, m := range matches {
		layout, ok := c.fromMatch(m)
		if !ok {
			c.logger.Warn("match references unknown candidate", map[string]interface{}{
				"candidateId": m.CandidateID,
			})
			continue
		}
		merged = append(merged, layout)
	}

	deduped := dedupeByID(merged)

	feedback := c.loadFeedback(ctx, userID)
	for i := range deduped {
		deduped[i].RankScore = c.rank(&deduped[i], feedback, userID != "")
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].RankScore > deduped[j].RankScore
	})

	return applyPersonalization(deduped, opts)
}

// fromMatch converts a scored match back into a layout using the corpus
// record it refers to.
func (c *Composer) fromMatch(m models.MatchResult) (models.ContextualLayout, bool) {
	candidate, ok := c.corpus.Get(m.CandidateID)
	if !ok {
		return models.ContextualLayout{}, false
	}
	return models.ContextualLayout{
		ID:          candidate.ID,
		Name:        candidate.Name,
		Category:    candidate.Category,
		Description: candidate.Description,
		Fields:      candidate.EditableFields,
		Confidence:  m.ConfidenceScore,
		Complexity:  candidate.InferredComplexity(),
		Popularity:  candidate.Popularity,
		Reasoning:   m.Reasoning,

		// Carries the similarity through to ranking without widening the type.
		RankScore: m.SimilarityScore,
	}, true
}

func dedupeByID(layouts []models.ContextualLayout) []models.ContextualLayout {
	seen := make(map[string]bool, len(layouts))
	out := make([]models.ContextualLayout, 0, len(layouts))
	for _, l := range layouts {
		if seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		out = append(out, l)
	}
	return out
}

func (c *Composer) loadFeedback(ctx context.Context, userID string) map[string]float64 {
	if userID == "" || c.feedback == nil {
		return nil
	}
	scores, err := c.feedback.All(ctx, userID)
	if err != nil {
		c.logger.Warn("feedback read failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil
	}
	return scores
}

// rank blends similarity (RankScore carries it for corpus matches; contextual
// layouts use their confidence), base confidence and normalized popularity,
// then folds in the user's explicit feedback when present.
func (c *Composer) rank(layout *models.ContextualLayout, feedback map[string]float64, hasUser bool) float64 {
	similarity := layout.RankScore
	if layout.Personalized {
		similarity = layout.Confidence
	}

	score := rankSimilarityWeight*similarity +
		rankConfidenceWeight*layout.Confidence +
		rankPopularityWeight*float64(layout.Popularity)/100.0

	if hasUser {
		fb := feedbackNeutralScore
		if v, ok := feedback[layout.ID]; ok {
			fb = v
		}
		score = feedbackRankWeight*score + feedbackScoreWeight*fb
	}

	return score
}

// applyPersonalization trims the ranked list. High and medium levels take the
// top N. Low takes ceil(N/2) from the top plus the next floor(N/2), mixing
// best with next-best rather than re-sampling.
func applyPersonalization(ranked []models.ContextualLayout, opts models.RequestOptions) []models.ContextualLayout {
	n := opts.MaxResults
	if n <= 0 {
		n = models.DefaultMaxResults
	}
	if len(ranked) <= n {
		return ranked
	}

	if opts.PersonalizationLevel != models.PersonalizationLow {
		return ranked[:n]
	}

	top := int(math.Ceil(float64(n) / 2.0))
	rest := n - top
	out := make([]models.ContextualLayout, 0, n)
	out = append(out, ranked[:top]...)
	out = append(out, ranked[top:top+rest]...)
	return out
}
