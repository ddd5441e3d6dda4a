// internal/models/request.go
package models

// Personalization levels.
const (
	PersonalizationLow    = "low"
	PersonalizationMedium = "medium"
	PersonalizationHigh   = "high"
)

// DefaultMaxResults bounds the ranked list when the caller does not ask for a
// specific size.
const DefaultMaxResults = 5

// RequestContext is the optional situational payload supplied by the caller.
type RequestContext struct {
	PreviousLayouts []string               `json:"previousLayouts,omitempty"`
	Preferences     map[string]interface{} `json:"preferences,omitempty"`
	Category        string                 `json:"category,omitempty"`
	SessionData     map[string]interface{} `json:"sessionData,omitempty"`
}

// RequestOptions tunes a single recommendation request.
type RequestOptions struct {
	MaxResults           int    `json:"maxResults,omitempty"`
	IncludeAlternatives  bool   `json:"includeAlternatives,omitempty"`
	LearningMode         bool   `json:"learningMode,omitempty"`
	PersonalizationLevel string `json:"personalizationLevel,omitempty"`
}

// Normalize fills defaults so the pipeline never branches on zero values.
func (o *RequestOptions) Normalize() {
	if o.MaxResults <= 0 {
		o.MaxResults = DefaultMaxResults
	}
	switch o.PersonalizationLevel {
	case PersonalizationLow, PersonalizationMedium, PersonalizationHigh:
	default:
		o.PersonalizationLevel = PersonalizationMedium
	}
}

// RecommendRequest is the inbound request shape.
type RecommendRequest struct {
	Prompt  string          `json:"prompt"`
	UserID  string          `json:"userId,omitempty"`
	Context *RequestContext `json:"context,omitempty"`
	Options *RequestOptions `json:"options,omitempty"`
}

// SearchResults summarizes the raw scoring pass.
type SearchResults struct {
	Matches            []MatchResult `json:"matches"`
	TotalMatches       int           `json:"totalMatches"`
	SearchTime         int64         `json:"searchTime"` // milliseconds
	Suggestions        []string      `json:"suggestions"`
	AlternativeQueries []string      `json:"alternativeQueries"`
}

// Insights explains what the engine understood and learned.
type Insights struct {
	IntentAnalysis   *ParsedIntent `json:"intentAnalysis,omitempty"`
	UserPatterns     *UserPatterns `json:"userPatterns,omitempty"`
	Recommendations  []string      `json:"recommendations"`
	LearningInsights *Learning     `json:"learningInsights,omitempty"`
}

// UserPatterns is the history-derived view of one user.
type UserPatterns struct {
	TopCategories    []string `json:"topCategories"`
	ModalComplexity  string   `json:"modalComplexity"`
	InteractionCount int      `json:"interactionCount"`
	RecentCount      int      `json:"recentCount"`
}

// Learning summarizes recorded feedback for the requesting user.
type Learning struct {
	FeedbackCount int     `json:"feedbackCount"`
	MeanScore     float64 `json:"meanScore"`
}

// ResponseMetadata describes how the response was produced.
type ResponseMetadata struct {
	ProcessingTime int64   `json:"processingTime"` // milliseconds
	Confidence     float64 `json:"confidence"`
	CacheHit       bool    `json:"cacheHit"`
	ModelVersion   string  `json:"modelVersion"`
}

// RecommendResponse is the full response envelope. Array fields are always
// present, even on failure.
type RecommendResponse struct {
	Success       bool                   `json:"success"`
	Layouts       []ContextualLayout     `json:"layouts"`
	Suggestions   []ContextualSuggestion `json:"suggestions"`
	SearchResults SearchResults          `json:"searchResults"`
	Insights      Insights               `json:"insights"`
	Metadata      ResponseMetadata       `json:"metadata"`
	Error         string                 `json:"error,omitempty"`
}

// EmptyResponse returns a valid all-empty response envelope used for the
// failure path.
func EmptyResponse() *RecommendResponse {
	return &RecommendResponse{
		Layouts:     []ContextualLayout{},
		Suggestions: []ContextualSuggestion{},
		SearchResults: SearchResults{
			Matches:            []MatchResult{},
			Suggestions:        []string{},
			AlternativeQueries: []string{},
		},
		Insights: Insights{
			Recommendations: []string{},
		},
	}
}

// FeedbackRequest is the explicit feedback payload.
type FeedbackRequest struct {
	UserID      string  `json:"userId"`
	CandidateID string  `json:"candidateId"`
	Score       float64 `json:"score"`
}
