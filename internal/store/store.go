// internal/store/store.go

// Package store defines the three keyed stores shared across requests:
// response cache, per-user interaction history, and explicit feedback.
// Implementations must support concurrent access from independent requests
// without serializing unrelated keys.
package store

import (
	"context"

	"layout-engine/internal/models"
)

// CacheStore memoizes full composed responses by canonical request hash.
// Entries never expire; they are dropped only by Clear or process restart.
type CacheStore interface {
	Get(ctx context.Context, key string) (*models.RecommendResponse, bool, error)
	Set(ctx context.Context, key string, resp *models.RecommendResponse) error
	Clear(ctx context.Context) error
}

// HistoryStore keeps the append-only, size-bounded interaction log per user.
// Append beyond models.HistoryLimit evicts the oldest entries.
type HistoryStore interface {
	Append(ctx context.Context, userID string, interaction models.Interaction) error
	Get(ctx context.Context, userID string) ([]models.Interaction, error)
}

// FeedbackStore records explicit user feedback per (userID, candidateID).
// Scores are overwritten, not accumulated.
type FeedbackStore interface {
	Put(ctx context.Context, userID, candidateID string, score float64) error
	Get(ctx context.Context, userID, candidateID string) (float64, bool, error)
	All(ctx context.Context, userID string) (map[string]float64, error)
}

// Stores bundles the three stores for injection into the engine.
type Stores struct {
	Cache    CacheStore
	History  HistoryStore
	Feedback FeedbackStore
}
