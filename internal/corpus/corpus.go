// internal/corpus/corpus.go

// Package corpus holds the candidate template catalogue the scorer runs
// against. Records are built once and read-only afterwards.
package corpus

import (
	"fmt"

	"layout-engine/internal/models"
)

// Corpus is a static, queryable set of candidate templates.
type Corpus struct {
	templates []models.CandidateTemplate
	byID      map[string]*models.CandidateTemplate
}

// New builds a corpus from the given templates. Duplicate ids are rejected.
func New(templates []models.CandidateTemplate) (*Corpus, error) {
	c := &Corpus{
		templates: templates,
		byID:      make(map[string]*models.CandidateTemplate, len(templates)),
	}
	for i := range templates {
		tmpl := &c.templates[i]
		if _, dup := c.byID[tmpl.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", tmpl.ID)
		}
		c.byID[tmpl.ID] = tmpl
	}
	return c, nil
}

// All returns every template in insertion order.
func (c *Corpus) All() []models.CandidateTemplate {
	return c.templates
}

// Get returns the template with the given id.
func (c *Corpus) Get(id string) (*models.CandidateTemplate, bool) {
	tmpl, ok := c.byID[id]
	return tmpl, ok
}

// Len returns the number of templates.
func (c *Corpus) Len() int {
	return len(c.templates)
}
