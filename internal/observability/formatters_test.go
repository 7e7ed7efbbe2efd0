package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/pathfinder/internal/payload"
	"github.com/jonathan/pathfinder/internal/schemas"
	"github.com/jonathan/pathfinder/internal/types"
)

func assertBoxWidth(t *testing.T, output string) {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPrintAnswers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnswers(types.AnswerSet{
		Academic:   types.Academic{Domain: "Physics"},
		WhyPhD:     []string{"professor"},
		Priorities: []string{"growth", "financial"},
	})
	output := buf.String()

	assert.Contains(t, output, "ANSWERS")
	assert.Contains(t, output, "Physics")
	assert.Contains(t, output, "(not answered)")
	assert.Contains(t, output, "• Want to become a professor")
	assert.Contains(t, output, "1. Career growth speed")
	assert.Contains(t, output, "2. Financial stability")
	assertBoxWidth(t, output)
}

func TestPrintPayload(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPayload(payload.Build(types.AnswerSet{Academic: types.Academic{Domain: "Physics", Papers: "3+"}}))
	output := buf.String()

	assert.Contains(t, output, "ANALYZE REQUEST")
	assert.Contains(t, output, "Field:       Physics")
	assert.Contains(t, output, "Papers:      3")
	assert.Contains(t, output, "intellectual > financial")
	assertBoxWidth(t, output)
}

func TestPrintRecommendation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := &types.Recommendation{
		AIRecommendation: "PhD Path Recommended",
		ConfidenceLevel:  "High Confidence",
		KeyInsights:      []string{"Your publication record is strong for your stage and would stand out in most admissions pools."},
		ActionItems:      []string{"a", "b", "c", "d", "e", "f"},
	}
	p.PrintRecommendation(rec, "Long analysis text that certainly needs to wrap because it is much wider than the box.")
	output := buf.String()

	assert.Contains(t, output, "CAREER RECOMMENDATION")
	assert.Contains(t, output, "PhD Path Recommended (High Confidence)")
	assert.Contains(t, output, "Key Insights:")
	assert.Contains(t, output, "5. e")
	assert.Contains(t, output, "... and 1 more")
	assert.NotContains(t, output, "6. f")
	assertBoxWidth(t, output)
}

func TestPrintRecommendation_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecommendation(nil, "x")
	assert.Empty(t, buf.String())
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidation(nil)
	assert.Contains(t, buf.String(), "PAYLOAD VALID")
	assertBoxWidth(t, buf.String())

	buf.Reset()
	p.PrintValidation(&schemas.ValidationError{Errors: []schemas.FieldError{
		{Field: "academic.field_of_study", Message: "academic.field_of_study must be one of the following"},
		{Field: "work_style.priorities", Message: "Array must have at least 2 items"},
	}})
	output := buf.String()
	assert.Contains(t, output, "Found 2 problems")
	assert.Contains(t, output, "⚠ academic.field_of_study")
	assertBoxWidth(t, output)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  []string
	}{
		{"short", "hello", 10, []string{"hello"}},
		{"break at space", "hello brave world", 11, []string{"hello brave", "world"}},
		{"no spaces", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"keeps indent", "  • one two three", 10, []string{"  • one", "  two", "  three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.line, tt.width))
		})
	}
}
