// internal/intent/keywords.go
package intent

import "layout-engine/internal/models"

// intentBucket pairs one primary intent with its keyword list. Bucket order
// is significant: ties on match count keep the first-seen bucket.
type intentBucket struct {
	intent   string
	keywords []string
}

var intentBuckets = []intentBucket{
	{models.IntentPlanning, []string{
		"planner", "plan", "planning", "schedule", "agenda", "calendar",
		"organize", "organizer", "week", "weekly", "month", "monthly",
		"appointment", "itinerary",
	}},
	{models.IntentTracking, []string{
		"track", "tracker", "tracking", "habit", "habits", "todo", "list",
		"checklist", "log", "progress", "streak", "goal", "goals",
	}},
	{models.IntentCreative, []string{
		"creative", "sketch", "draw", "drawing", "brainstorm", "idea",
		"ideas", "design", "art", "doodle", "mindmap", "inspiration",
	}},
	{models.IntentStudy, []string{
		"study", "studying", "notes", "lecture", "class", "exam", "school",
		"learn", "learning", "revision", "course", "flashcard", "flashcards",
		"homework",
	}},
	{models.IntentBusiness, []string{
		"work", "meeting", "meetings", "project", "projects", "business",
		"client", "clients", "deadline", "report", "standup", "sprint",
	}},
	{models.IntentFitness, []string{
		"workout", "fitness", "gym", "exercise", "meal", "meals", "diet",
		"health", "run", "running", "training", "nutrition", "weight",
	}},
	{models.IntentJournal, []string{
		"journal", "journaling", "diary", "gratitude", "reflection",
		"reflect", "mood", "memories", "dream", "dreams",
	}},
}

// connectives signal multi-concept prompts for complexity classification.
var connectives = []string{"and", "with", "+", "plus"}

// detailedWords push a prompt into the complex tier regardless of length.
var detailedWords = []string{
	"detailed", "comprehensive", "complete", "full", "advanced", "elaborate",
}

// toneKeywords are checked in priority order; the first tone with any hit
// wins. No hit means neutral.
var toneKeywords = []struct {
	tone     string
	keywords []string
}{
	{models.ToneProfessional, []string{"work", "meeting", "business", "professional", "client", "office", "corporate"}},
	{models.ToneCasual, []string{"fun", "casual", "quick", "easy", "relaxed"}},
	{models.ToneCreative, []string{"creative", "colorful", "artistic", "playful", "whimsical"}},
	{models.ToneAcademic, []string{"study", "school", "exam", "lecture", "academic", "research"}},
	{models.TonePersonal, []string{"personal", "private", "self", "own"}},
}

// timeFrameKeywords are checked in priority order: daily beats weekly beats
// monthly beats yearly beats ongoing.
var timeFrameKeywords = []struct {
	frame    string
	keywords []string
}{
	{models.TimeFrameDaily, []string{"daily", "day", "today", "everyday", "morning", "evening"}},
	{models.TimeFrameWeekly, []string{"weekly", "week"}},
	{models.TimeFrameMonthly, []string{"monthly", "month"}},
	{models.TimeFrameYearly, []string{"yearly", "year", "annual", "annually"}},
	{models.TimeFrameOngoing, []string{"ongoing", "continuous", "always", "permanent"}},
}

var urgencyKeywords = []string{"urgent", "urgently", "asap", "deadline", "now", "immediately"}

var collaborationKeywords = []string{
	"team", "shared", "together", "collaborate", "collaboration",
	"collaborative", "group", "family", "partner",
}

// Structure hints, first match wins.
var structureKeywords = []struct {
	structure string
	keywords  []string
}{
	{models.StructureGrid, []string{"grid", "table", "calendar", "tracker", "board", "matrix"}},
	{models.StructureSectioned, []string{"sections", "section", "cornell", "meeting", "columns"}},
	{models.StructureLinear, []string{"list", "todo", "journal", "log", "timeline", "checklist"}},
}

// Requested element types, derived from prompt vocabulary.
var elementKeywords = []struct {
	element  string
	keywords []string
}{
	{"checkbox", []string{"todo", "checklist", "habit", "habits", "track", "tasks", "checkboxes"}},
	{"date", []string{"date", "dates", "daily", "weekly", "monthly", "calendar", "schedule"}},
	{"textarea", []string{"notes", "journal", "writing", "write", "reflection", "diary"}},
	{"number", []string{"score", "budget", "count", "reps", "sets", "numbers"}},
}

var visualStyleKeywords = []struct {
	style    string
	keywords []string
}{
	{models.StyleMinimal, []string{"simple", "minimal", "minimalist", "clean", "plain"}},
	{models.StylePlayful, []string{"fun", "colorful", "cute", "playful"}},
	{models.StyleDecorated, []string{"decorated", "fancy", "pretty", "ornate", "beautiful"}},
	{models.StyleProfessional, []string{"professional", "business", "formal", "corporate"}},
}

// stopWords are excluded from topic extraction.
var stopWords = map[string]bool{
	"i": true, "a": true, "an": true, "the": true, "my": true, "me": true,
	"for": true, "to": true, "of": true, "in": true, "on": true, "at": true,
	"and": true, "with": true, "plus": true, "need": true, "want": true,
	"make": true, "create": true, "please": true, "some": true, "that": true,
	"this": true, "it": true, "is": true, "be": true, "have": true,
}
