// Package wizard drives the assessment through its pages and routes the final
// submission to the results page.
package wizard

import "github.com/jonathan/pathfinder/internal/types"

// Page is a position in the wizard.
type Page int

const (
	PageWelcome Page = iota
	PageAcademic
	PageExperience
	PageMotivations
	PageWorkStyle
	PageFutureVision
	PagePriorities
	PageSubmitting
	PageResults
)

// InputPages is the number of pages that collect answers.
const InputPages = 6

func (p Page) String() string {
	switch p {
	case PageWelcome:
		return "welcome"
	case PageAcademic:
		return "academic"
	case PageExperience:
		return "experience"
	case PageMotivations:
		return "motivations"
	case PageWorkStyle:
		return "work_style"
	case PageFutureVision:
		return "future_vision"
	case PagePriorities:
		return "priorities"
	case PageSubmitting:
		return "submitting"
	case PageResults:
		return "results"
	}
	return "unknown"
}

// IsInput reports whether p collects answers.
func (p Page) IsInput() bool {
	return p >= PageAcademic && p <= PagePriorities
}

type content struct {
	title    string
	subtitle string
	fields   []types.Field
	groups   []types.Group
}

var pages = map[Page]content{
	PageWelcome: {
		title: "Welcome to PathFinder AI",
		subtitle: "This AI-powered assessment helps Masters students make informed decisions " +
			"between pursuing a PhD or entering industry. The assessment takes about 5 minutes to complete.",
	},
	PageAcademic: {
		title:  "1. Academic Background",
		fields: []types.Field{types.FieldDomain, types.FieldGPARange, types.FieldPapers, types.FieldThesis},
	},
	PageExperience: {
		title:  "2. Experience Profile",
		fields: []types.Field{types.FieldInternship, types.FieldResearch, types.FieldTeaching, types.FieldEnjoyed},
	},
	PageMotivations: {
		title:  "3. Your Motivations",
		groups: []types.Group{types.GroupWhyPhD, types.GroupWhyIndustry},
	},
	PageWorkStyle: {
		title:  "4. Working Style",
		fields: []types.Field{types.FieldEnvironment, types.FieldPreference},
	},
	PageFutureVision: {
		title:  "5. Future Vision",
		fields: []types.Field{types.FieldFutureVision},
	},
	PagePriorities: {
		title:    "6. Your Priorities",
		subtitle: types.GroupPriorities.Label(),
		groups:   []types.Group{types.GroupPriorities},
	},
	PageSubmitting: {
		title:    "AI is analyzing your profile...",
		subtitle: "This will take just a moment",
	},
	PageResults: {
		title: "Your Personalized Career Recommendation",
	},
}

// Title returns the heading shown on p.
func (p Page) Title() string { return pages[p].title }

// Subtitle returns the text shown under the heading, if any.
func (p Page) Subtitle() string { return pages[p].subtitle }

// Fields returns the single-choice fields asked on p, in display order.
func (p Page) Fields() []types.Field {
	return append([]types.Field(nil), pages[p].fields...)
}

// Groups returns the multi-valued groups asked on p.
func (p Page) Groups() []types.Group {
	return append([]types.Group(nil), pages[p].groups...)
}
