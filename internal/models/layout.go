// internal/models/layout.go
package models

// ContextualLayout is the unified result type flowing out of the pipeline:
// either a corpus candidate converted by the composer or a layout synthesized
// by the context adapter. Context carries the human-readable rationale.
type ContextualLayout struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Fields       []EditableField `json:"fields"`
	Context      string          `json:"context,omitempty"`
	Confidence   float64         `json:"confidence"`
	Complexity   string          `json:"complexity"`
	Popularity   int             `json:"popularity"`
	Personalized bool            `json:"personalized"`
	Reasoning    []string        `json:"reasoning,omitempty"`
	Variant      string          `json:"variant,omitempty"` // minimalist | detailed | creative

	// RankScore is the combined ranking score assigned by the composer.
	RankScore float64 `json:"rankScore"`
}

// ContextualSuggestion is a short actionable hint returned alongside layouts.
type ContextualSuggestion struct {
	Type    string `json:"type"` // refine-prompt | add-timeframe | try-category
	Message string `json:"message"`
}
