// internal/models/user.go
package models

import "time"

// HistoryLimit caps per-user interaction history. Appending beyond the cap
// evicts the oldest entries.
const HistoryLimit = 100

// Interaction is one past request by a user. Complexity and Tone are carried
// so preference aggregation can compute modal values without re-parsing
// prompts.
type Interaction struct {
	Prompt           string    `json:"prompt,omitempty"`
	Intent           string    `json:"intent"`
	Complexity       string    `json:"complexity,omitempty"`
	Tone             string    `json:"tone,omitempty"`
	ChosenTemplateID string    `json:"chosenTemplateId,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// Preferences is the aggregate derived from a user's history.
type Preferences struct {
	PreferredCategories []string `json:"preferredCategories"` // top-3 by frequency
	PreferredComplexity string   `json:"preferredComplexity"` // modal value
	PreferredTone       string   `json:"preferredTone"`       // modal value
}

// UserContext is the per-user state read by the context adapter. TimeOfDay
// and DayOfWeek are computed at request time, never stored.
type UserContext struct {
	UserID         string        `json:"userId"`
	History        []Interaction `json:"history"`
	Preferences    Preferences   `json:"preferences"`
	TimeOfDay      string        `json:"timeOfDay,omitempty"` // morning | afternoon | evening | night
	DayOfWeek      string        `json:"dayOfWeek,omitempty"`
	RecentActivity []Interaction `json:"recentActivity,omitempty"` // history within the last 24h
}

// FeedbackRecord stores one explicit user rating of a candidate.
type FeedbackRecord struct {
	UserID      string    `json:"userId"`
	CandidateID string    `json:"candidateId"`
	Score       float64   `json:"score"` // [0,1]
	UpdatedAt   time.Time `json:"updatedAt"`
}
