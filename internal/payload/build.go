// Package payload converts an answer set into the request sent to the analysis service.
package payload

import (
	"strconv"

	"github.com/jonathan/pathfinder/internal/types"
)

// Defaults substituted for empty answers when building a request. They are
// never written back into the answer set.
var (
	DefaultPhDReasons        = []string{types.PhDPassionate}
	DefaultIndustryReasons   = []string{types.IndustryFinancial}
	DefaultWorkEnvironment   = types.EnvironmentSolo
	DefaultProjectPreference = types.PreferenceDeep
	DefaultFutureVision      = types.VisionScientist
	DefaultPriorities        = []string{types.PriorityIntellectual, types.PriorityFinancial}
)

// Build maps an answer set to an AnalyzeRequest. It is pure: the same answers
// always produce the same request, and the request shares no slices with a.
func Build(a types.AnswerSet) types.AnalyzeRequest {
	return types.AnalyzeRequest{
		Academic: types.AcademicProfile{
			FieldOfStudy:   a.Academic.Domain,
			Specialization: a.Academic.Domain,
			GPARange:       a.Academic.GPARange,
			ResearchPapers: ResearchPapers(a.Academic.Papers),
			ThesisStatus:   a.Academic.Thesis,
		},
		Experience: types.ExperienceProfile{
			InternshipMonths:    InternshipMonths(a.Experience.Internship),
			WorkExperienceYears: 0,
			ResearchExperience:  ResearchExperience(a.Experience.Research),
			TeachingExperience:  TeachingExperience(a.Experience.Teaching),
			MostEnjoyed:         a.Experience.Enjoyed,
		},
		Motivations: types.Motivations{
			PhDReasons:      orDefaultList(a.WhyPhD, DefaultPhDReasons),
			IndustryReasons: orDefaultList(a.WhyIndustry, DefaultIndustryReasons),
		},
		WorkStyle: types.WorkStyleProfile{
			WorkEnvironment:   orDefault(a.WorkStyle.Environment, DefaultWorkEnvironment),
			ProjectPreference: orDefault(a.WorkStyle.Preference, DefaultProjectPreference),
			FutureVision:      orDefault(a.FutureVision, DefaultFutureVision),
			Priorities:        orDefaultList(a.Priorities, DefaultPriorities),
		},
	}
}

// ResearchPapers maps the papers answer to a count. "3+" is 3; anything that
// does not parse as an integer, including the empty answer, is 0.
func ResearchPapers(v string) int {
	if v == types.PapersThreePlus {
		return 3
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// InternshipMonths maps the internship answer to months.
func InternshipMonths(v string) int {
	switch v {
	case types.InternshipNone:
		return 0
	case types.InternshipOneToTwo:
		return 2
	default:
		return 6
	}
}

// ResearchExperience maps the research answer to its service code.
func ResearchExperience(v string) string {
	switch v {
	case types.ResearchNone:
		return "none"
	case types.ResearchCourse:
		return "course"
	case types.ResearchLab:
		return "lab"
	default:
		return "published"
	}
}

// TeachingExperience maps the teaching answer to its service code.
func TeachingExperience(v string) string {
	switch v {
	case types.TeachingNone:
		return "none"
	case types.TeachingTA:
		return "ta"
	default:
		return "instructor"
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultList(v, def []string) []string {
	src := v
	if len(src) == 0 {
		src = def
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
