// Package types provides the assessment data model: answer fields, their legal
// values, and the request/response shapes exchanged with the analysis service.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Field identifies a single-choice leaf of the answer set.
type Field string

// Single-choice fields, in page order.
const (
	FieldDomain       Field = "academic.domain"
	FieldGPARange     Field = "academic.gpa"
	FieldPapers       Field = "academic.papers"
	FieldThesis       Field = "academic.thesis"
	FieldInternship   Field = "experience.internship"
	FieldResearch     Field = "experience.research"
	FieldTeaching     Field = "experience.teaching"
	FieldEnjoyed      Field = "experience.enjoyed"
	FieldEnvironment  Field = "workStyle.environment"
	FieldPreference   Field = "workStyle.preference"
	FieldFutureVision Field = "futureVision"
)

// Group identifies a multi-valued answer: a bounded tag selection or the ranked list.
type Group string

const (
	GroupWhyPhD      Group = "whyPhd"
	GroupWhyIndustry Group = "whyIndustry"
	GroupPriorities  Group = "priorities"
)

// Values referenced by the payload mapping.
const (
	PapersThreePlus = "3+"

	InternshipNone       = "None"
	InternshipOneToTwo   = "1-2"
	InternshipThreePlus  = "3+"
	ResearchNone         = "None"
	ResearchCourse       = "Course projects"
	ResearchLab          = "Lab research"
	ResearchPublished    = "Published work"
	TeachingNone         = "None"
	TeachingTA           = "TA"
	TeachingInstructor   = "Instructor"
	PhDPassionate        = "passionate-research"
	IndustryFinancial    = "financial"
	EnvironmentSolo      = "independent"
	PreferenceDeep       = "deep"
	VisionScientist      = "scientist"
	PriorityFinancial    = "financial"
	PriorityIntellectual = "intellectual"
)

// MaxReasons caps each motivation group.
const MaxReasons = 2

// Option is one legal value of a field or group together with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var fieldOrder = []Field{
	FieldDomain, FieldGPARange, FieldPapers, FieldThesis,
	FieldInternship, FieldResearch, FieldTeaching, FieldEnjoyed,
	FieldEnvironment, FieldPreference, FieldFutureVision,
}

var fieldLabels = map[Field]string{
	FieldDomain:       "Core Domain",
	FieldGPARange:     "Current GPA Range",
	FieldPapers:       "Research Papers Published",
	FieldThesis:       "Thesis Status",
	FieldInternship:   "Internship Experience",
	FieldResearch:     "Research Experience",
	FieldTeaching:     "Teaching Experience",
	FieldEnjoyed:      "Which did you enjoy most?",
	FieldEnvironment:  "I work best in",
	FieldPreference:   "I prefer",
	FieldFutureVision: "In 5-7 years, I see myself as",
}

var fieldOptions = map[Field][]Option{
	FieldDomain: {
		{"Computer Science", "Computer Science"},
		{"Data Science", "Data Science"},
		{"AI/Machine Learning", "AI/Machine Learning"},
		{"Software Engineering", "Software Engineering"},
		{"Electrical Engineering", "Electrical Engineering"},
		{"Mechanical Engineering", "Mechanical Engineering"},
		{"Biological Sciences", "Biological Sciences"},
		{"Physics", "Physics"},
		{"Chemistry", "Chemistry"},
		{"Mathematics", "Mathematics"},
		{"Other", "Other"},
	},
	FieldGPARange: {
		{"1.0-1.3", "1.0-1.3 (Excellent)"},
		{"1.4-1.7", "1.4-1.7 (Very Good)"},
		{"1.8-2.3", "1.8-2.3 (Good)"},
		{"2.4-2.7", "2.4-2.7 (Above Average)"},
		{"2.8-3.3", "2.8-3.3 (Average)"},
		{"3.4-4.0", "3.4-4.0 (Below Average)"},
	},
	FieldPapers: {
		{"0", "0"},
		{"1", "1-2"},
		{PapersThreePlus, "3+"},
	},
	FieldThesis: {
		{"not-started", "Not started"},
		{"in-progress", "In progress"},
		{"completed", "Completed"},
	},
	FieldInternship: {
		{InternshipNone, "None"},
		{InternshipOneToTwo, "1-2 months"},
		{InternshipThreePlus, "3+ months"},
	},
	FieldResearch: {
		{ResearchNone, "None"},
		{ResearchCourse, "Course projects"},
		{ResearchLab, "Lab research"},
		{ResearchPublished, "Published work"},
	},
	FieldTeaching: {
		{TeachingNone, "None"},
		{TeachingTA, "TA"},
		{TeachingInstructor, "Instructor"},
	},
	FieldEnjoyed: {
		{"research", "Research"},
		{"internship", "Internship"},
		{"teaching", "Teaching"},
		{"none", "Not sure yet"},
	},
	FieldEnvironment: {
		{EnvironmentSolo, "Independent research setting"},
		{"team", "Collaborative team environment"},
		{"mix", "Mix of both"},
	},
	FieldPreference: {
		{PreferenceDeep, "Deep work on one thing"},
		{"multiple", "Multiple projects simultaneously"},
		{"varied", "Short-term varied tasks"},
	},
	FieldFutureVision: {
		{VisionScientist, "Research scientist/Professor"},
		{"tech-lead", "Technical lead at a company"},
		{"product", "Product manager/architect"},
		{"entrepreneur", "Entrepreneur/Startup founder"},
		{"specialist", "Senior specialist in my domain"},
	},
}

var groupLabels = map[Group]string{
	GroupWhyPhD:      "Why are you considering PhD? (Select up to 2)",
	GroupWhyIndustry: "Why are you considering Industry? (Select up to 2)",
	GroupPriorities:  "Rank these from 1 (most important) to 5 (least important)",
}

var groupOptions = map[Group][]Option{
	GroupWhyPhD: {
		{PhDPassionate, "Passionate about research"},
		{"professor", "Want to become a professor"},
		{"expert", "Want to be an expert in my field"},
		{"academic-env", "Enjoy academic environment"},
		{"complex-problems", "Want to solve complex problems"},
	},
	GroupWhyIndustry: {
		{IndustryFinancial, "Better financial prospects"},
		{"products", "Want to build products users love"},
		{"fast-paced", "Prefer fast-paced environment"},
		{"impact", "Want immediate real-world impact"},
		{"startup", "Interested in business/startup culture"},
	},
	GroupPriorities: {
		{PriorityFinancial, "Financial stability"},
		{PriorityIntellectual, "Intellectual satisfaction"},
		{"balance", "Work-life balance"},
		{"growth", "Career growth speed"},
		{"location", "Location flexibility"},
	},
}

// Fields returns every single-choice field in page order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Label returns the question text shown for a field.
func (f Field) Label() string {
	return fieldLabels[f]
}

// Known reports whether f is one of the declared fields.
func (f Field) Known() bool {
	_, ok := fieldOptions[f]
	return ok
}

// Options returns a copy of the legal values for a field, or nil for unknown fields.
func (f Field) Options() []Option {
	return cloneOptions(fieldOptions[f])
}

// Allows reports whether v may be stored in f. The empty sentinel is always allowed.
func (f Field) Allows(v string) bool {
	if v == "" {
		return f.Known()
	}
	return containsValue(fieldOptions[f], v)
}

// Label returns the question text shown for a group.
func (g Group) Label() string {
	return groupLabels[g]
}

// Options returns a copy of the tag universe of a group.
func (g Group) Options() []Option {
	return cloneOptions(groupOptions[g])
}

// Universe returns the number of tags a group can hold.
func (g Group) Universe() int {
	return len(groupOptions[g])
}

// Allows reports whether tag belongs to the group's universe.
func (g Group) Allows(tag string) bool {
	return containsValue(groupOptions[g], tag)
}

// LabelFor returns the display label of v within the field, or v itself if unknown.
func (f Field) LabelFor(v string) string {
	return labelFor(fieldOptions[f], v)
}

// LabelFor returns the display label of tag within the group, or tag itself if unknown.
func (g Group) LabelFor(tag string) string {
	return labelFor(groupOptions[g], tag)
}

func labelFor(opts []Option, v string) string {
	for _, o := range opts {
		if o.Value == v {
			return o.Label
		}
	}
	return v
}

func containsValue(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

func cloneOptions(opts []Option) []Option {
	if opts == nil {
		return nil
	}
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}
