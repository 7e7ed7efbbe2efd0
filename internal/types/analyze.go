//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the request body of the analyze-profile call.
type AnalyzeRequest struct {
	Academic    AcademicProfile   `json:"academic"`
	Experience  ExperienceProfile `json:"experience"`
	Motivations Motivations       `json:"motivations"`
	WorkStyle   WorkStyleProfile  `json:"work_style"`
}

// AcademicProfile is the academic section of an AnalyzeRequest.
type AcademicProfile struct {
	FieldOfStudy   string `json:"field_of_study" validate:"required"`
	Specialization string `json:"specialization" validate:"required,min=2,max=100"`
	GPARange       string `json:"gpa_range" validate:"required"`
	ResearchPapers int    `json:"research_papers" validate:"gte=0,lte=50"`
	ThesisStatus   string `json:"thesis_status"`
}

// ExperienceProfile is the experience section of an AnalyzeRequest.
type ExperienceProfile struct {
	InternshipMonths    int     `json:"internship_months" validate:"gte=0,lte=60"`
	WorkExperienceYears float64 `json:"work_experience_years" validate:"gte=0,lte=20"`
	ResearchExperience  string  `json:"research_experience"`
	TeachingExperience  string  `json:"teaching_experience"`
	MostEnjoyed         string  `json:"most_enjoyed"`
}

// Motivations is the motivations section of an AnalyzeRequest.
type Motivations struct {
	PhDReasons      []string `json:"phd_reasons" validate:"min=1,max=2"`
	IndustryReasons []string `json:"industry_reasons" validate:"min=1,max=2"`
}

// WorkStyleProfile is the work style section of an AnalyzeRequest.
type WorkStyleProfile struct {
	WorkEnvironment   string   `json:"work_environment"`
	ProjectPreference string   `json:"project_preference"`
	FutureVision      string   `json:"future_vision"`
	Priorities        []string `json:"priorities" validate:"min=2,max=5"`
}

// Validate checks the numeric and cardinality bounds the service enforces.
// Enum membership is checked by the JSON Schema.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Recommendation is the analysis service's answer.
type Recommendation struct {
	AIRecommendation string    `json:"ai_recommendation"`
	ConfidenceLevel  string    `json:"confidence_level"`
	DetailedAnalysis string    `json:"detailed_analysis,omitempty"`
	KeyInsights      []string  `json:"key_insights"`
	ActionItems      []string  `json:"action_items"`
	Timestamp        time.Time `json:"timestamp"`
}

// Clone returns a deep copy of the recommendation.
func (r *Recommendation) Clone() *Recommendation {
	if r == nil {
		return nil
	}
	out := *r
	out.KeyInsights = cloneStrings(r.KeyInsights)
	out.ActionItems = cloneStrings(r.ActionItems)
	return &out
}
