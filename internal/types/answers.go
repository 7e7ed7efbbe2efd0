//nolint:revive // types is a standard Go package name pattern
package types

// Academic holds the academic background page.
type Academic struct {
	Domain   string `json:"domain"`
	GPARange string `json:"gpa"`
	Papers   string `json:"papers"`
	Thesis   string `json:"thesis"`
}

// Experience holds the experience profile page.
type Experience struct {
	Internship string `json:"internship"`
	Research   string `json:"research"`
	Teaching   string `json:"teaching"`
	Enjoyed    string `json:"enjoyed"`
}

// WorkStyle holds the working style page.
type WorkStyle struct {
	Environment string `json:"environment"`
	Preference  string `json:"preference"`
}

// AnswerSet is the in-progress assessment. The zero value is the empty form.
//
// Priorities is ordered by rank: index 0 is rank 1. A tag missing from the
// slice is unranked.
type AnswerSet struct {
	Academic     Academic   `json:"academic"`
	Experience   Experience `json:"experience"`
	WhyPhD       []string   `json:"whyPhd"`
	WhyIndustry  []string   `json:"whyIndustry"`
	WorkStyle    WorkStyle  `json:"workStyle"`
	FutureVision string     `json:"futureVision"`
	Priorities   []string   `json:"priorities"`
}

// Clone returns a deep copy so callers never share slices with the original.
func (a AnswerSet) Clone() AnswerSet {
	out := a
	out.WhyPhD = cloneStrings(a.WhyPhD)
	out.WhyIndustry = cloneStrings(a.WhyIndustry)
	out.Priorities = cloneStrings(a.Priorities)
	return out
}

// Value returns the current value of a single-choice field.
func (a AnswerSet) Value(f Field) string {
	switch f {
	case FieldDomain:
		return a.Academic.Domain
	case FieldGPARange:
		return a.Academic.GPARange
	case FieldPapers:
		return a.Academic.Papers
	case FieldThesis:
		return a.Academic.Thesis
	case FieldInternship:
		return a.Experience.Internship
	case FieldResearch:
		return a.Experience.Research
	case FieldTeaching:
		return a.Experience.Teaching
	case FieldEnjoyed:
		return a.Experience.Enjoyed
	case FieldEnvironment:
		return a.WorkStyle.Environment
	case FieldPreference:
		return a.WorkStyle.Preference
	case FieldFutureVision:
		return a.FutureVision
	}
	return ""
}

// Tags returns the current sequence held by a group.
func (a AnswerSet) Tags(g Group) []string {
	switch g {
	case GroupWhyPhD:
		return cloneStrings(a.WhyPhD)
	case GroupWhyIndustry:
		return cloneStrings(a.WhyIndustry)
	case GroupPriorities:
		return cloneStrings(a.Priorities)
	}
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
