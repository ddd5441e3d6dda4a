// internal/corpus/builtin.go
package corpus

import "layout-engine/internal/models"

// Default returns the built-in template catalogue. Popularity values come
// from aggregate usage of the surrounding notebook application.
func Default() *Corpus {
	c, err := New(builtinTemplates())
	if err != nil {
		// The catalogue is static; a duplicate id is a programming error.
		panic(err)
	}
	return c
}

func field(id, typ, label string, x, y, w, h float64) models.EditableField {
	return models.EditableField{
		ID:       id,
		Type:     typ,
		Label:    label,
		Geometry: models.FieldGeometry{X: x, Y: y, Width: w, Height: h},
	}
}

func builtinTemplates() []models.CandidateTemplate {
	return []models.CandidateTemplate{
		{
			ID:          "weekly-planner",
			Name:        "Weekly Planner",
			Category:    models.IntentPlanning,
			Description: "Seven-day spread with a notes column and priorities box",
			Keywords:    []string{"weekly", "planner", "week", "schedule", "agenda"},
			Tags:        []string{"planning", "organizer", "time"},
			EditableFields: []models.EditableField{
				field("mon", "textarea", "Monday", 0.02, 0.10, 0.22, 0.26),
				field("tue", "textarea", "Tuesday", 0.26, 0.10, 0.22, 0.26),
				field("wed", "textarea", "Wednesday", 0.50, 0.10, 0.22, 0.26),
				field("thu", "textarea", "Thursday", 0.02, 0.40, 0.22, 0.26),
				field("fri", "textarea", "Friday", 0.26, 0.40, 0.22, 0.26),
				field("weekend", "textarea", "Weekend", 0.50, 0.40, 0.22, 0.26),
				field("priorities", "textarea", "Priorities", 0.76, 0.10, 0.22, 0.56),
			},
			Popularity:    95,
			Structure:     models.StructureGrid,
			Interactivity: models.InteractivityMedium,
		},
		{
			ID:          "daily-agenda",
			Name:        "Daily Agenda",
			Category:    models.IntentPlanning,
			Description: "Hour-blocked day view with a top-three focus list",
			Keywords:    []string{"daily", "agenda", "today", "schedule", "hourly"},
			Tags:        []string{"planning", "time"},
			EditableFields: []models.EditableField{
				field("date", "date", "Date", 0.02, 0.02, 0.30, 0.06),
				field("focus", "textarea", "Top 3", 0.02, 0.10, 0.30, 0.24),
				field("morning", "textarea", "Morning", 0.36, 0.10, 0.60, 0.24),
				field("afternoon", "textarea", "Afternoon", 0.36, 0.38, 0.60, 0.24),
				field("evening", "textarea", "Evening", 0.36, 0.66, 0.60, 0.24),
				field("notes", "textarea", "Notes", 0.02, 0.38, 0.30, 0.52),
			},
			Popularity:    87,
			Structure:     models.StructureSectioned,
			Interactivity: models.InteractivityMedium,
		},
		{
			ID:          "simple-todo",
			Name:        "Simple To-Do List",
			Category:    models.IntentTracking,
			Description: "A single checklist with a title line",
			Keywords:    []string{"todo", "list", "tasks", "checklist"},
			Tags:        []string{"tracking", "tasks"},
			EditableFields: []models.EditableField{
				field("title", "text", "Title", 0.02, 0.02, 0.96, 0.08),
				field("items", "checkbox", "Items", 0.02, 0.14, 0.96, 0.80),
			},
			Popularity:    88,
			Structure:     models.StructureLinear,
			Interactivity: models.InteractivityHigh,
		},
		{
			ID:          "habit-tracker",
			Name:        "Habit Tracker",
			Category:    models.IntentTracking,
			Description: "Monthly habit grid with streak counters",
			Keywords:    []string{"habit", "tracker", "streak", "daily", "routine"},
			Tags:        []string{"tracking", "habits", "monthly"},
			EditableFields: []models.EditableField{
				field("month", "text", "Month", 0.02, 0.02, 0.40, 0.06),
				field("habit-1", "text", "Habit 1", 0.02, 0.12, 0.30, 0.06),
				field("habit-2", "text", "Habit 2", 0.02, 0.22, 0.30, 0.06),
				field("habit-3", "text", "Habit 3", 0.02, 0.32, 0.30, 0.06),
				field("grid", "checkbox", "Days", 0.36, 0.12, 0.60, 0.50),
				field("streaks", "number", "Best streak", 0.02, 0.70, 0.40, 0.08),
				field("reflection", "textarea", "Reflection", 0.02, 0.82, 0.96, 0.14),
			},
			Popularity:    90,
			Structure:     models.StructureGrid,
			Interactivity: models.InteractivityHigh,
		},
		{
			ID:          "monthly-calendar",
			Name:        "Monthly Calendar",
			Category:    models.IntentPlanning,
			Description: "Classic month grid with a goals sidebar",
			Keywords:    []string{"monthly", "calendar", "month", "overview"},
			Tags:        []string{"planning", "time", "monthly"},
			EditableFields: []models.EditableField{
				field("month", "text", "Month", 0.02, 0.02, 0.40, 0.06),
				field("grid", "textarea", "Days", 0.02, 0.12, 0.70, 0.84),
				field("goals", "textarea", "Goals", 0.76, 0.12, 0.22, 0.40),
				field("events", "textarea", "Key events", 0.76, 0.56, 0.22, 0.40),
			},
			Popularity:    85,
			Structure:     models.StructureGrid,
			Interactivity: models.InteractivityLow,
		},
		{
			ID:          "project-board",
			Name:        "Project Board",
			Category:    models.IntentBusiness,
			Description: "Three-column task board with a milestones strip",
			Keywords:    []string{"project", "board", "kanban", "tasks", "milestones"},
			Tags:        []string{"business", "work", "tasks"},
			EditableFields: []models.EditableField{
				field("project", "text", "Project", 0.02, 0.02, 0.60, 0.06),
				field("todo", "textarea", "To do", 0.02, 0.12, 0.30, 0.70),
				field("doing", "textarea", "In progress", 0.35, 0.12, 0.30, 0.70),
				field("done", "textarea", "Done", 0.68, 0.12, 0.30, 0.70),
				field("milestones", "textarea", "Milestones", 0.02, 0.86, 0.96, 0.12),
			},
			Popularity:    70,
			Structure:     models.StructureGrid,
			Interactivity: models.InteractivityHigh,
		},
		{
			ID:          "meeting-notes",
			Name:        "Meeting Notes",
			Category:    models.IntentBusiness,
			Description: "Attendees, agenda, decisions and action items",
			Keywords:    []string{"meeting", "notes", "agenda", "minutes", "work"},
			Tags:        []string{"business", "professional"},
			EditableFields: []models.EditableField{
				field("title", "text", "Meeting", 0.02, 0.02, 0.70, 0.06),
				field("attendees", "text", "Attendees", 0.02, 0.10, 0.96, 0.08),
				field("discussion", "textarea", "Discussion", 0.02, 0.22, 0.96, 0.48),
				field("actions", "checkbox", "Action items", 0.02, 0.74, 0.96, 0.24),
			},
			Popularity:    75,
			Structure:     models.StructureSectioned,
			Interactivity: models.InteractivityMedium,
		},
		{
			ID:          "brainstorm-map",
			Name:        "Brainstorm Map",
			Category:    models.IntentCreative,
			Description: "Central idea with radiating branches",
			Keywords:    []string{"brainstorm", "ideas", "mindmap", "creative", "sketch"},
			Tags:        []string{"creative", "freeform"},
			EditableFields: []models.EditableField{
				field("central", "text", "Central idea", 0.38, 0.44, 0.24, 0.12),
				field("branch-1", "text", "", 0.05, 0.10, 0.22, 0.10),
				field("branch-2", "text", "", 0.72, 0.10, 0.22, 0.10),
				field("branch-3", "text", "", 0.05, 0.78, 0.22, 0.10),
				field("branch-4", "text", "", 0.72, 0.78, 0.22, 0.10),
				field("notes", "textarea", "Notes", 0.02, 0.92, 0.96, 0.07),
			},
			Popularity:    65,
			Structure:     models.StructureFreeform,
			Interactivity: models.InteractivityMedium,
		},
		{
			ID:          "sketch-page",
			Name:        "Sketch Page",
			Category:    models.IntentCreative,
			Description: "One open canvas with a caption line",
			Keywords:    []string{"sketch", "drawing", "blank", "canvas", "art"},
			Tags:        []string{"creative"},
			EditableFields: []models.EditableField{
				field("canvas", "textarea", "", 0.02, 0.02, 0.96, 0.88),
				field("caption", "text", "Caption", 0.02, 0.92, 0.96, 0.06),
			},
			Popularity:    60,
			Structure:     models.StructureFreeform,
			Interactivity: models.InteractivityLow,
		},
		{
			ID:          "cornell-notes",
			Name:        "Cornell Notes",
			Category:    models.IntentStudy,
			Description: "Cue column, notes area and summary band",
			Keywords:    []string{"cornell", "notes", "study", "lecture", "class"},
			Tags:        []string{"study", "school", "academic"},
			EditableFields: []models.EditableField{
				field("topic", "text", "Topic", 0.02, 0.02, 0.96, 0.06),
				field("cues", "textarea", "Cues", 0.02, 0.10, 0.28, 0.66),
				field("notes", "textarea", "Notes", 0.32, 0.10, 0.66, 0.66),
				field("summary", "textarea", "Summary", 0.02, 0.80, 0.96, 0.18),
			},
			Popularity:    80,
			Structure:     models.StructureSectioned,
			Interactivity: models.InteractivityLow,
		},
		{
			ID:          "flashcard-sheet",
			Name:        "Flashcard Sheet",
			Category:    models.IntentStudy,
			Description: "Grid of question/answer pairs for active recall",
			Keywords:    []string{"flashcards", "revision", "study", "exam", "memorize"},
			Tags:        []string{"study", "school"},
			EditableFields: []models.EditableField{
				field("subject", "text", "Subject", 0.02, 0.02, 0.60, 0.06),
				field("q1", "text", "Q1", 0.02, 0.12, 0.46, 0.12),
				field("a1", "text", "A1", 0.52, 0.12, 0.46, 0.12),
				field("q2", "text", "Q2", 0.02, 0.28, 0.46, 0.12),
				field("a2", "text", "A2", 0.52, 0.28, 0.46, 0.12),
				field("q3", "text", "Q3", 0.02, 0.44, 0.46, 0.12),
				field("a3", "text", "A3", 0.52, 0.44, 0.46, 0.12),
				field("q4", "text", "Q4", 0.02, 0.60, 0.46, 0.12),
				field("a4", "text", "A4", 0.52, 0.60, 0.46, 0.12),
				field("score", "number", "Score", 0.02, 0.80, 0.30, 0.08),
			},
			Popularity:    55,
			Structure:     models.StructureGrid,
			Interactivity: models.InteractivityHigh,
		},
		{
			ID:          "workout-log",
			Name:        "Workout Log",
			Category:    models.IntentFitness,
			Description: "Exercise table with sets, reps and a cardio row",
			Keywords:    []string{"workout", "gym", "exercise", "fitness", "training"},
			Tags:        []string{"fitness", "health", "tracking"},
			EditableFields: []models.EditableField{
				field("date", "date", "Date", 0.02, 0.02, 0.30, 0.06),
				field("exercises", "textarea", "Exercises", 0.02, 0.12, 0.96, 0.50),
				field("sets", "number", "Sets", 0.02, 0.66, 0.30, 0.08),
				field("reps", "number", "Reps", 0.35, 0.66, 0.30, 0.08),
				field("cardio", "text", "Cardio", 0.02, 0.78, 0.60, 0.08),
				field("notes", "textarea", "How it felt", 0.02, 0.88, 0.96, 0.10),
			},
			Popularity:    72,
			Structure:     models.StructureLinear,
			Interactivity: models.InteractivityMedium,
		},
		{
			ID:          "meal-planner",
			Name:        "Meal Planner",
			Category:    models.IntentFitness,
			Description: "Weekly meals grid with a grocery checklist",
			Keywords:    []string{"meal", "food", "nutrition", "grocery", "weekly", "diet"},
			Tags:        []string{"fitness", "health", "planning"},
			EditableFields: []models.EditableField{
				field("breakfast", "textarea", "Breakfast", 0.02, 0.10, 0.30, 0.36),
				field("lunch", "textarea", "Lunch", 0.35, 0.10, 0.30, 0.36),
				field("dinner", "textarea", "Dinner", 0.68, 0.10, 0.30, 0.36),
				field("snacks", "textarea", "Snacks", 0.02, 0.50, 0.46, 0.20),
				field("water", "checkbox", "Water", 0.52, 0.50, 0.46, 0.20),
				field("grocery", "checkbox", "Grocery list", 0.02, 0.74, 0.60, 0.24),
				field("budget", "number", "Budget", 0.66, 0.74, 0.32, 0.10),
				field("prep", "textarea", "Prep notes", 0.66, 0.86, 0.32, 0.12),
			},
			Popularity:    68,
			Structure:     models.StructureGrid,
			Interactivity: models.InteractivityMedium,
		},
		{
			ID:          "gratitude-journal",
			Name:        "Gratitude Journal",
			Category:    models.IntentJournal,
			Description: "Three things, one highlight",
			Keywords:    []string{"gratitude", "journal", "reflection", "mindfulness"},
			Tags:        []string{"journal", "personal"},
			EditableFields: []models.EditableField{
				field("date", "date", "Date", 0.02, 0.02, 0.30, 0.06),
				field("grateful", "textarea", "Grateful for", 0.02, 0.12, 0.96, 0.50),
				field("highlight", "textarea", "Highlight", 0.02, 0.66, 0.96, 0.30),
			},
			Popularity:    78,
			Structure:     models.StructureLinear,
			Interactivity: models.InteractivityLow,
		},
		{
			ID:          "daily-journal",
			Name:        "Daily Journal",
			Category:    models.IntentJournal,
			Description: "Free writing with mood and weather markers",
			Keywords:    []string{"journal", "diary", "daily", "writing", "mood"},
			Tags:        []string{"journal", "personal", "daily"},
			EditableFields: []models.EditableField{
				field("date", "date", "Date", 0.02, 0.02, 0.30, 0.06),
				field("mood", "select", "Mood", 0.36, 0.02, 0.20, 0.06),
				field("entry", "textarea", "Entry", 0.02, 0.12, 0.96, 0.76),
				field("tomorrow", "text", "Looking forward to", 0.02, 0.92, 0.96, 0.06),
			},
			Popularity:    82,
			Structure:     models.StructureLinear,
			Interactivity: models.InteractivityLow,
		},
		{
			ID:          "blank-notes",
			Name:        "Blank Notes",
			Category:    models.IntentGeneral,
			Description: "A plain note page",
			Keywords:    []string{"notes", "blank", "page", "general"},
			Tags:        []string{"general"},
			EditableFields: []models.EditableField{
				field("title", "text", "Title", 0.02, 0.02, 0.96, 0.06),
				field("body", "textarea", "", 0.02, 0.10, 0.96, 0.88),
			},
			Popularity:    50,
			Structure:     models.StructureFreeform,
			Interactivity: models.InteractivityLow,
		},
	}
}
