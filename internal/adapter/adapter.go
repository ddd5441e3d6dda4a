// internal/adapter/adapter.go

// Package adapter synthesizes personalized layouts from a parsed intent and
// the user's context: history-derived preferences, time of day, and session
// signals. Unlike the scorer, its output is not restricted to the corpus.
package adapter

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"layout-engine/internal/common/logger"
	"layout-engine/internal/models"
	"layout-engine/internal/store"

	"github.com/google/uuid"
)

// Adapter builds contextual layouts and maintains per-user preference state.
type Adapter struct {
	history store.HistoryStore
	logger  logger.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithClock substitutes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

// WithIDGenerator substitutes the layout id source, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(a *Adapter) { a.newID = gen }
}

func New(history store.HistoryStore, log logger.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		history: history,
		logger:  log.WithFields(map[string]interface{}{"component": "adapter"}),
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BuildUserContext loads a user's history and derives the request-time view:
// preferences, time of day, day of week and recent activity. Unknown users
// get an empty context rather than an error.
func (a *Adapter) BuildUserContext(ctx context.Context, userID string) *models.UserContext {
	now := a.now()
	userCtx := &models.UserContext{
		UserID:         userID,
		History:        []models.Interaction{},
		TimeOfDay:      timeOfDay(now.Hour()),
		DayOfWeek:      now.Weekday().String(),
		RecentActivity: []models.Interaction{},
	}

	if userID == "" || a.history == nil {
		return userCtx
	}

	history, err := a.history.Get(ctx, userID)
	if err != nil {
		a.logger.Warn("history read failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
		return userCtx
	}

	userCtx.History = history
	userCtx.Preferences = derivePreferences(history)

	cutoff := now.Add(-24 * time.Hour)
	for _, it := range history {
		if it.Timestamp.After(cutoff) {
			userCtx.RecentActivity = append(userCtx.RecentActivity, it)
		}
	}

	return userCtx
}

// Adapt synthesizes the primary contextual layout for this intent and user
// moment, appends the interaction to the user's history, and refreshes the
// derived preferences on the returned context.
func (a *Adapter) Adapt(ctx context.Context, intent *models.ParsedIntent, userCtx *models.UserContext, session map[string]interface{}) models.ContextualLayout {
	layout := models.ContextualLayout{
		ID:           "contextual-" + a.newID(),
		Name:         a.personalizedName(intent, userCtx),
		Category:     intent.PrimaryIntent,
		Description:  describeIntent(intent),
		Fields:       generateFields(intent),
		Context:      buildContextNarrative(intent, userCtx, session),
		Confidence:   intent.Confidence,
		Complexity:   intent.Complexity,
		Personalized: true,
	}

	if userCtx != nil && userCtx.UserID != "" && a.history != nil {
		interaction := models.Interaction{
			Intent:           intent.PrimaryIntent,
			Complexity:       intent.Complexity,
			Tone:             intent.EmotionalTone,
			ChosenTemplateID: layout.ID,
			Timestamp:        a.now().UTC(),
		}
		if err := a.history.Append(ctx, userCtx.UserID, interaction); err != nil {
			a.logger.Warn("history append failed", map[string]interface{}{
				"userId": userCtx.UserID,
				"error":  err.Error(),
			})
		} else {
			userCtx.History = append(userCtx.History, interaction)
			if len(userCtx.History) > models.HistoryLimit {
				userCtx.History = userCtx.History[len(userCtx.History)-models.HistoryLimit:]
			}
			userCtx.Preferences = derivePreferences(userCtx.History)
		}
	}

	return layout
}

func (a *Adapter) personalizedName(intent *models.ParsedIntent, userCtx *models.UserContext) string {
	base := intentDisplayName(intent.PrimaryIntent)
	if userCtx == nil || userCtx.TimeOfDay == "" {
		return fmt.Sprintf("Your %s Layout", base)
	}
	return fmt.Sprintf("Your %s %s Layout", capitalize(userCtx.TimeOfDay), base)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// derivePreferences aggregates history into the preference view: top-3
// categories by frequency, plus modal complexity and tone.
func derivePreferences(history []models.Interaction) models.Preferences {
	prefs := models.Preferences{PreferredCategories: []string{}}
	if len(history) == 0 {
		return prefs
	}

	categoryCounts := map[string]int{}
	complexityCounts := map[string]int{}
	toneCounts := map[string]int{}
	var categoryOrder []string

	for _, it := range history {
		if it.Intent != "" {
			if categoryCounts[it.Intent] == 0 {
				categoryOrder = append(categoryOrder, it.Intent)
			}
			categoryCounts[it.Intent]++
		}
		if it.Complexity != "" {
			complexityCounts[it.Complexity]++
		}
		if it.Tone != "" {
			toneCounts[it.Tone]++
		}
	}

	// Stable ordering: by count descending, then first appearance.
	sort.SliceStable(categoryOrder, func(i, j int) bool {
		return categoryCounts[categoryOrder[i]] > categoryCounts[categoryOrder[j]]
	})
	for i, cat := range categoryOrder {
		if i >= 3 {
			break
		}
		prefs.PreferredCategories = append(prefs.PreferredCategories, cat)
	}

	prefs.PreferredComplexity = modalValue(complexityCounts)
	prefs.PreferredTone = modalValue(toneCounts)
	return prefs
}

func modalValue(counts map[string]int) string {
	best, bestCount := "", 0
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic tie-break
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

func timeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 22:
		return "evening"
	default:
		return "night"
	}
}

func intentDisplayName(primary string) string {
	switch primary {
	case models.IntentPlanning:
		return "Planning"
	case models.IntentTracking:
		return "Tracking"
	case models.IntentCreative:
		return "Creative"
	case models.IntentStudy:
		return "Study"
	case models.IntentBusiness:
		return "Work"
	case models.IntentFitness:
		return "Fitness"
	case models.IntentJournal:
		return "Journal"
	default:
		return "Notes"
	}
}

func describeIntent(intent *models.ParsedIntent) string {
	parts := []string{fmt.Sprintf("A %s layout", intentDisplayName(intent.PrimaryIntent))}
	if intent.Context.TimeFrame != "" {
		parts = append(parts, fmt.Sprintf("on a %s rhythm", intent.Context.TimeFrame))
	}
	if intent.Context.Collaboration {
		parts = append(parts, "built for working together")
	}
	return strings.Join(parts, ", ")
}
