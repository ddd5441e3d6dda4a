// internal/scorer/tables.go
package scorer

import "layout-engine/internal/models"

// intentCategories maps each primary intent to the candidate categories it
// is compatible with. Membership scores 1.0; anything else scores a floor of
// 0.3 so long-tail candidates keep some recall.
var intentCategories = map[string][]string{
	models.IntentPlanning: {models.IntentPlanning, models.IntentTracking, models.IntentBusiness},
	models.IntentTracking: {models.IntentTracking, models.IntentPlanning, models.IntentFitness},
	models.IntentCreative: {models.IntentCreative, models.IntentGeneral},
	models.IntentStudy:    {models.IntentStudy, models.IntentPlanning},
	models.IntentBusiness: {models.IntentBusiness, models.IntentPlanning},
	models.IntentFitness:  {models.IntentFitness, models.IntentTracking},
	models.IntentJournal:  {models.IntentJournal, models.IntentCreative},
	models.IntentGeneral:  {models.IntentGeneral, models.IntentPlanning, models.IntentTracking},
}

// toneCategories maps each emotional tone to the categories it sits well
// with. Neutral maps to nothing and takes the 0.5 default.
var toneCategories = map[string][]string{
	models.ToneProfessional: {models.IntentBusiness, models.IntentPlanning, models.IntentStudy},
	models.ToneCasual:       {models.IntentGeneral, models.IntentJournal, models.IntentTracking},
	models.ToneCreative:     {models.IntentCreative, models.IntentJournal, models.IntentGeneral},
	models.ToneAcademic:     {models.IntentStudy, models.IntentPlanning},
	models.TonePersonal:     {models.IntentJournal, models.IntentFitness, models.IntentTracking, models.IntentCreative},
}

// synonymClusters is the coarse semantic-group table: tokens in the same
// cluster count as similar even without literal overlap. Deliberately a
// small fixed table, not embeddings; the scoring weights were tuned against
// this method.
var synonymClusters = [][]string{
	{"daily", "weekly", "monthly", "schedule", "calendar", "planner", "agenda", "week", "month"},
	{"habit", "habits", "track", "tracker", "streak", "goal", "goals", "progress", "log", "todo", "checklist", "tasks"},
	{"notes", "writing", "write", "journal", "diary", "reflection", "gratitude", "mood"},
	{"idea", "ideas", "brainstorm", "creative", "sketch", "draw", "drawing", "design", "art", "mindmap"},
	{"study", "exam", "school", "lecture", "class", "revision", "flashcard", "flashcards", "cornell", "learn"},
	{"work", "meeting", "meetings", "business", "project", "projects", "client", "milestones"},
	{"workout", "fitness", "gym", "exercise", "training", "health", "meal", "meals", "nutrition", "diet", "grocery"},
}

// complexityRank orders tiers so adjacency can be measured.
var complexityRank = map[string]int{
	models.ComplexitySimple:  0,
	models.ComplexityMedium:  1,
	models.ComplexityComplex: 2,
}

// interactivityRank mirrors complexityRank for interactivity levels.
var interactivityRank = map[string]int{
	models.InteractivityLow:    0,
	models.InteractivityMedium: 1,
	models.InteractivityHigh:   2,
}

// adjacencyScore converts a rank distance to a score: exact 1.0, adjacent
// 0.7, distant 0.3.
func adjacencyScore(a, b int) float64 {
	switch diff := abs(a - b); diff {
	case 0:
		return 1.0
	case 1:
		return 0.7
	default:
		return 0.3
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
