package analysis

import (
	"strings"

	"github.com/jonathan/pathfinder/internal/llm"
	"github.com/jonathan/pathfinder/internal/types"
)

// Recommendation labels.
const (
	RecommendPhD      = "PhD Path Recommended"
	RecommendIndustry = "Industry Path Recommended"
	RecommendBoth     = "Both Paths Are Viable"
)

// Confidence labels.
const (
	ConfidenceHigh     = "High Confidence"
	ConfidenceModerate = "Moderate Confidence"
	ConfidenceLow      = "Low Confidence"
)

// Limits on the parsed lists.
const (
	MaxInsights    = 3
	MaxActionItems = 4
)

var actionWords = []string{"should", "recommend", "suggest", "next"}

var defaultInsights = []string{
	"Your profile shows mixed indicators for both paths.",
	"Consider your long-term career goals carefully.",
	"Both options have merit based on your background.",
}

var defaultActionItems = []string{
	"Research specific PhD programs or companies in your field",
	"Talk to professionals in both academia and industry",
	"Consider doing informational interviews",
	"Reflect on what type of work energizes you most",
}

// ParseResponse turns free-form model text into a recommendation. The
// timestamp is left for the caller to set.
func ParseResponse(text string) *types.Recommendation {
	text = llm.CleanCodeBlock(text)
	lower := strings.ToLower(text)

	rec := &types.Recommendation{
		AIRecommendation: RecommendPhD,
		ConfidenceLevel:  ConfidenceModerate,
	}

	switch {
	case strings.Contains(lower, "industry"):
		rec.AIRecommendation = RecommendIndustry
	case strings.Contains(lower, "both"):
		rec.AIRecommendation = RecommendBoth
	}

	switch {
	case strings.Contains(lower, "strongly"), strings.Contains(lower, "clearly"):
		rec.ConfidenceLevel = ConfidenceHigh
	case strings.Contains(lower, "slightly"), strings.Contains(lower, "somewhat"):
		rec.ConfidenceLevel = ConfidenceLow
	}

	var insights, actions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isActionLine(line) {
			actions = append(actions, line)
		} else if len(insights) < MaxInsights {
			insights = append(insights, line)
		}
	}

	if len(insights) == 0 {
		insights = append([]string(nil), defaultInsights...)
	}
	if len(actions) == 0 {
		actions = append([]string(nil), defaultActionItems...)
	}
	if len(actions) > MaxActionItems {
		actions = actions[:MaxActionItems]
	}

	rec.KeyInsights = insights
	rec.ActionItems = actions
	return rec
}

func isActionLine(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range actionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Fallback returns the canned recommendation used when the model is unavailable.
func Fallback() *types.Recommendation {
	return &types.Recommendation{
		AIRecommendation: RecommendBoth,
		ConfidenceLevel:  ConfidenceModerate,
		KeyInsights: []string{
			"Your profile shows potential for both PhD and industry paths.",
			"Your academic background and experience provide flexibility.",
			"The decision depends on your personal priorities and goals.",
		},
		ActionItems: []string{
			"List pros and cons of each path based on your priorities",
			"Speak with mentors in both academia and industry",
			"Consider trying industry first - you can pursue PhD later",
			"Attend career workshops at your university",
		},
	}
}
