// internal/adapter/narratives.go
package adapter

import (
	"fmt"
	"strings"

	"layout-engine/internal/models"
)

// buildContextNarrative joins up to three short sentences describing why this
// layout fits the user's moment: the temporal angle, the domain angle, and
// the social angle. Absent signals simply contribute nothing.
func buildContextNarrative(intent *models.ParsedIntent, userCtx *models.UserContext, session map[string]interface{}) string {
	var parts []string

	if temporal := temporalNarrative(userCtx); temporal != "" {
		parts = append(parts, temporal)
	}
	if domain := domainNarrative(intent); domain != "" {
		parts = append(parts, domain)
	}
	if social := socialNarrative(intent, session); social != "" {
		parts = append(parts, social)
	}

	return strings.Join(parts, " ")
}

func temporalNarrative(userCtx *models.UserContext) string {
	if userCtx == nil || userCtx.TimeOfDay == "" {
		return ""
	}
	var angle string
	switch userCtx.TimeOfDay {
	case "morning":
		angle = "a fresh start to the day"
	case "afternoon":
		angle = "keeping momentum through the afternoon"
	case "evening":
		angle = "winding down and reviewing the day"
	default:
		angle = "late-night capture without clutter"
	}
	if userCtx.DayOfWeek != "" {
		return fmt.Sprintf("Shaped for %s, %s.", angle, strings.ToLower(userCtx.DayOfWeek))
	}
	return fmt.Sprintf("Shaped for %s.", angle)
}

func domainNarrative(intent *models.ParsedIntent) string {
	if intent == nil {
		return ""
	}
	name := strings.ToLower(intentDisplayName(intent.PrimaryIntent))
	if intent.Context.Domain != "" {
		return fmt.Sprintf("Structured around %s needs in your %s context.", name, intent.Context.Domain)
	}
	if intent.PrimaryIntent == models.IntentGeneral {
		return ""
	}
	return fmt.Sprintf("Structured around your %s needs.", name)
}

func socialNarrative(intent *models.ParsedIntent, session map[string]interface{}) string {
	collaborative := intent != nil && intent.Context.Collaboration
	if !collaborative && session != nil {
		if v, ok := session["collaborative"].(bool); ok && v {
			collaborative = true
		}
	}
	if collaborative {
		return "Laid out so several people can contribute at once."
	}
	return "Kept focused for individual use."
}
