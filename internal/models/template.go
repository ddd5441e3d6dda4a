// internal/models/template.go
package models

// FieldGeometry positions an editable field on the page, in page-relative
// units.
type FieldGeometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EditableField describes one typed, user-editable region of a template.
type EditableField struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"` // text | textarea | checkbox | date | number | select
	Label       string        `json:"label,omitempty"`
	Geometry    FieldGeometry `json:"geometry"`
	Placeholder string        `json:"placeholder,omitempty"`
	Options     []string      `json:"options,omitempty"`
}

// CandidateTemplate is an immutable corpus record eligible for
// recommendation. Created at corpus-build time, read-only during a request.
type CandidateTemplate struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Keywords       []string        `json:"keywords"`
	Tags           []string        `json:"tags"`
	EditableFields []EditableField `json:"editableFields"`
	Popularity     int             `json:"popularity"` // 0-100
	Structure      string          `json:"structure"`  // coarse structural hint
	Interactivity  string          `json:"interactivity"`
}

// InferredComplexity derives a complexity tier from the editable-field count.
func (c *CandidateTemplate) InferredComplexity() string {
	n := len(c.EditableFields)
	switch {
	case n <= 3:
		return ComplexitySimple
	case n <= 8:
		return ComplexityMedium
	default:
		return ComplexityComplex
	}
}

// MatchResult is the scorer's verdict for one (intent, candidate) pair.
// Derived per request, never persisted beyond the response.
type MatchResult struct {
	CandidateID     string   `json:"candidateId"`
	SimilarityScore float64  `json:"similarityScore"`
	ConfidenceScore float64  `json:"confidenceScore"`
	Reasoning       []string `json:"reasoning"`
}
