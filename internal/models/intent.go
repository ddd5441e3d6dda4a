// internal/models/intent.go
package models

// Primary intent categories. The closed set every extraction strategy maps into.
const (
	IntentPlanning = "planning"
	IntentTracking = "tracking"
	IntentCreative = "creative"
	IntentStudy    = "study"
	IntentBusiness = "business"
	IntentFitness  = "fitness"
	IntentJournal  = "journal"
	IntentGeneral  = "general"
)

// PrimaryIntents lists the closed intent set in canonical order.
var PrimaryIntents = []string{
	IntentPlanning, IntentTracking, IntentCreative, IntentStudy,
	IntentBusiness, IntentFitness, IntentJournal, IntentGeneral,
}

// Complexity tiers.
const (
	ComplexitySimple  = "simple"
	ComplexityMedium  = "medium"
	ComplexityComplex = "complex"
)

// Emotional tones, in fallback detection priority order. Neutral is the
// default when no tone keyword matches.
const (
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneCreative     = "creative"
	ToneAcademic     = "academic"
	TonePersonal     = "personal"
	ToneNeutral      = "neutral"
)

// Time frames, in fallback detection priority order.
const (
	TimeFrameDaily   = "daily"
	TimeFrameWeekly  = "weekly"
	TimeFrameMonthly = "monthly"
	TimeFrameYearly  = "yearly"
	TimeFrameOngoing = "ongoing"
)

// Urgency levels.
const (
	UrgencyHigh   = "high"
	UrgencyNormal = "normal"
)

// Layout structure hints.
const (
	StructureGrid      = "grid"
	StructureLinear    = "linear"
	StructureFreeform  = "freeform"
	StructureSectioned = "sectioned"
)

// Interactivity levels.
const (
	InteractivityLow    = "low"
	InteractivityMedium = "medium"
	InteractivityHigh   = "high"
)

// Visual styles.
const (
	StyleMinimal      = "minimal"
	StyleProfessional = "professional"
	StylePlayful      = "playful"
	StyleDecorated    = "decorated"
)

// IntentContext carries optional situational signals extracted alongside the
// primary intent.
type IntentContext struct {
	TimeFrame     string `json:"timeFrame,omitempty"`
	Domain        string `json:"domain,omitempty"`
	Urgency       string `json:"urgency,omitempty"`
	Collaboration bool   `json:"collaboration"`
}

// Entities holds extracted entity lists. Lists may be empty but are never nil.
type Entities struct {
	Dates     []string `json:"dates"`
	Topics    []string `json:"topics"`
	People    []string `json:"people"`
	Locations []string `json:"locations"`
	Numbers   []string `json:"numbers"`
}

// NewEntities returns an Entities value with every list allocated.
func NewEntities() Entities {
	return Entities{
		Dates:     []string{},
		Topics:    []string{},
		People:    []string{},
		Locations: []string{},
		Numbers:   []string{},
	}
}

// LayoutRequirements describes the structural expectations derived from the
// request text.
type LayoutRequirements struct {
	Structure        string   `json:"structure"`
	RequiredElements []string `json:"requiredElements"`
	Interactivity    string   `json:"interactivity"`
	VisualStyle      string   `json:"visualStyle"`
}

// ParsedIntent is the structured interpretation of a free-text request.
// Confidence reflects extractor certainty only; candidate match quality is an
// independent number computed later by the scorer.
type ParsedIntent struct {
	PrimaryIntent      string             `json:"primaryIntent"`
	SecondaryIntents   []string           `json:"secondaryIntents"`
	Complexity         string             `json:"complexity"`
	Context            IntentContext      `json:"context"`
	EmotionalTone      string             `json:"emotionalTone"`
	Entities           Entities           `json:"entities"`
	LayoutRequirements LayoutRequirements `json:"layoutRequirements"`
	Confidence         float64            `json:"confidence"`
}

// EnsureValid fills any zero-value fields so downstream stages never see nil
// lists or out-of-range confidence.
func (p *ParsedIntent) EnsureValid() {
	if p.PrimaryIntent == "" {
		p.PrimaryIntent = IntentGeneral
	}
	if p.SecondaryIntents == nil {
		p.SecondaryIntents = []string{}
	}
	if p.Complexity == "" {
		p.Complexity = ComplexityMedium
	}
	if p.EmotionalTone == "" {
		p.EmotionalTone = ToneNeutral
	}
	if p.Entities.Dates == nil {
		p.Entities.Dates = []string{}
	}
	if p.Entities.Topics == nil {
		p.Entities.Topics = []string{}
	}
	if p.Entities.People == nil {
		p.Entities.People = []string{}
	}
	if p.Entities.Locations == nil {
		p.Entities.Locations = []string{}
	}
	if p.Entities.Numbers == nil {
		p.Entities.Numbers = []string{}
	}
	if p.LayoutRequirements.Structure == "" {
		p.LayoutRequirements.Structure = StructureFreeform
	}
	if p.LayoutRequirements.RequiredElements == nil {
		p.LayoutRequirements.RequiredElements = []string{}
	}
	if p.LayoutRequirements.Interactivity == "" {
		p.LayoutRequirements.Interactivity = InteractivityMedium
	}
	if p.LayoutRequirements.VisualStyle == "" {
		p.LayoutRequirements.VisualStyle = StyleMinimal
	}
	if p.Confidence < 0 {
		p.Confidence = 0
	}
	if p.Confidence > 1 {
		p.Confidence = 1
	}
}
