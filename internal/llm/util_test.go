package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "  I recommend the PhD path.  ",
			expected: "I recommend the PhD path.",
		},
		{
			name:     "generic code block",
			input:    "```\nBoth paths are viable.\n```",
			expected: "Both paths are viable.",
		},
		{
			name:     "code block with language",
			input:    "```markdown\n1. Talk to advisors\n2. Apply\n```",
			expected: "1. Talk to advisors\n2. Apply",
		},
		{
			name:     "unterminated fence",
			input:    "```\nIndustry fits you",
			expected: "Industry fits you",
		},
		{
			name:     "first line is prose",
			input:    "```Industry is a strong fit\nfor you```",
			expected: "Industry is a strong fit\nfor you",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanCodeBlock(tt.input))
		})
	}
}
