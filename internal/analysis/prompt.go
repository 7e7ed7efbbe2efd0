package analysis

import (
	"strconv"
	"strings"

	"github.com/jonathan/pathfinder/internal/prompts"
	"github.com/jonathan/pathfinder/internal/types"
)

// BuildPrompt renders the counselor prompt for a request.
func BuildPrompt(req types.AnalyzeRequest) (string, error) {
	topPriority := ""
	if len(req.WorkStyle.Priorities) > 0 {
		topPriority = req.WorkStyle.Priorities[0]
	}

	return prompts.Render(prompts.AnalysisFile, prompts.CareerCounselor, map[string]string{
		"FieldOfStudy":        req.Academic.FieldOfStudy,
		"Specialization":      req.Academic.Specialization,
		"GPARange":            req.Academic.GPARange,
		"ResearchPapers":      strconv.Itoa(req.Academic.ResearchPapers),
		"ThesisStatus":        req.Academic.ThesisStatus,
		"InternshipMonths":    strconv.Itoa(req.Experience.InternshipMonths),
		"WorkExperienceYears": strconv.FormatFloat(req.Experience.WorkExperienceYears, 'f', -1, 64),
		"ResearchExperience":  req.Experience.ResearchExperience,
		"TeachingExperience":  req.Experience.TeachingExperience,
		"MostEnjoyed":         req.Experience.MostEnjoyed,
		"PhDReasons":          strings.Join(req.Motivations.PhDReasons, ", "),
		"IndustryReasons":     strings.Join(req.Motivations.IndustryReasons, ", "),
		"WorkEnvironment":     req.WorkStyle.WorkEnvironment,
		"ProjectPreference":   req.WorkStyle.ProjectPreference,
		"FutureVision":        req.WorkStyle.FutureVision,
		"TopPriority":         topPriority,
	})
}
