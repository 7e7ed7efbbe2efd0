// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/pathfinder/internal/schemas"
	"github.com/jonathan/pathfinder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines wrap.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, part := range wrap(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, part)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// wrap splits line into pieces of at most width runes, breaking at spaces
// where possible and keeping leading indentation on continuation lines.
func wrap(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}

	indent := len(runes) - len([]rune(strings.TrimLeft(line, " ")))
	if indent > width/2 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)

	var out []string
	for len(runes) > width {
		cut := width
		for i := width; i > indent; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		out = append(out, strings.TrimRight(string(runes[:cut]), " "))
		runes = []rune(pad + strings.TrimLeft(string(runes[cut:]), " "))
	}
	return append(out, string(runes))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintAnswers outputs the answers given so far with their display labels.
func (p *Printer) PrintAnswers(a types.AnswerSet) {
	var sb strings.Builder
	for _, f := range types.Fields() {
		v := a.Value(f)
		if v == "" {
			v = "(not answered)"
		} else {
			v = f.LabelFor(v)
		}
		sb.WriteString(fmt.Sprintf("%-24s %s\n", truncate(string(f), 24)+":", truncate(v, 30)))
	}

	for _, g := range []types.Group{types.GroupWhyPhD, types.GroupWhyIndustry, types.GroupPriorities} {
		tags := a.Tags(g)
		sb.WriteString(fmt.Sprintf("\n%s:\n", g))
		if len(tags) == 0 {
			sb.WriteString("  (none)\n")
			continue
		}
		for i, tag := range tags {
			if g == types.GroupPriorities {
				sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, g.LabelFor(tag)))
			} else {
				sb.WriteString(fmt.Sprintf("  • %s\n", g.LabelFor(tag)))
			}
		}
	}

	p.printBox("ANSWERS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPayload outputs a summary of the request sent to the analysis service.
func (p *Printer) PrintPayload(req types.AnalyzeRequest) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Field:       %s\n", req.Academic.FieldOfStudy))
	sb.WriteString(fmt.Sprintf("GPA:         %s\n", req.Academic.GPARange))
	sb.WriteString(fmt.Sprintf("Papers:      %d\n", req.Academic.ResearchPapers))
	sb.WriteString(fmt.Sprintf("Thesis:      %s\n", req.Academic.ThesisStatus))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Internship:  %d months\n", req.Experience.InternshipMonths))
	sb.WriteString(fmt.Sprintf("Research:    %s\n", req.Experience.ResearchExperience))
	sb.WriteString(fmt.Sprintf("Teaching:    %s\n", req.Experience.TeachingExperience))
	sb.WriteString(fmt.Sprintf("Enjoyed:     %s\n", req.Experience.MostEnjoyed))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Why PhD:     %s\n", strings.Join(req.Motivations.PhDReasons, ", ")))
	sb.WriteString(fmt.Sprintf("Why Industry: %s\n", strings.Join(req.Motivations.IndustryReasons, ", ")))
	sb.WriteString(fmt.Sprintf("Environment: %s\n", req.WorkStyle.WorkEnvironment))
	sb.WriteString(fmt.Sprintf("Projects:    %s\n", req.WorkStyle.ProjectPreference))
	sb.WriteString(fmt.Sprintf("Vision:      %s\n", req.WorkStyle.FutureVision))
	sb.WriteString(fmt.Sprintf("Priorities:  %s", strings.Join(req.WorkStyle.Priorities, " > ")))

	p.printBox("ANALYZE REQUEST", sb.String())
}

// PrintRecommendation outputs the recommendation and the analysis text.
func (p *Printer) PrintRecommendation(rec *types.Recommendation, analysis string) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%s)\n", rec.AIRecommendation, rec.ConfidenceLevel))
	if analysis != "" {
		sb.WriteString("\n" + analysis + "\n")
	}

	if len(rec.KeyInsights) > 0 {
		sb.WriteString("\nKey Insights:\n")
		for _, s := range rec.KeyInsights {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	if len(rec.ActionItems) > 0 {
		sb.WriteString("\nAction Items:\n")
		count := min(len(rec.ActionItems), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec.ActionItems[i]))
		}
		if len(rec.ActionItems) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.ActionItems)-maxItemsToShow))
		}
	}

	p.printBox("CAREER RECOMMENDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs validation problems, or a success line when there are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(verr *schemas.ValidationError) {
	if verr == nil || len(verr.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ PAYLOAD VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(verr.Errors)))
	for i, e := range verr.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", e.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(e.Message, 50)))
		if i < len(verr.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION ERRORS", strings.TrimSuffix(sb.String(), "\n"))
}
