package submission

import (
	"strings"

	"github.com/jonathan/pathfinder/internal/types"
)

const (
	narrativeIntro = "Based on your profile, here's our comprehensive analysis:"
	narrativeSteps = "Your next steps should include:"
	narrativeOutro = "This recommendation is tailored to your unique combination of academic background, " +
		"experience, and personal preferences. Remember that this is a starting point for your " +
		"decision-making process - consider discussing these insights with mentors, professors, " +
		"or industry professionals who know you well."
)

// DefaultNarrative composes the analysis text shown when the service sent no
// detailed analysis and the user has not edited it.
func DefaultNarrative(r *types.Recommendation) string {
	if r == nil {
		return ""
	}

	items := make([]string, len(r.ActionItems))
	for i, item := range r.ActionItems {
		items[i] = "• " + item
	}

	var sb strings.Builder
	sb.WriteString(narrativeIntro)
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(r.KeyInsights, " "))
	sb.WriteString("\n\n")
	sb.WriteString(narrativeSteps)
	sb.WriteString("\n")
	sb.WriteString(strings.Join(items, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(narrativeOutro)
	return sb.String()
}
