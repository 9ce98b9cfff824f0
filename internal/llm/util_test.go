package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json untouched",
			input:    `{"career_goal": "Data Analyst"}`,
			expected: `{"career_goal": "Data Analyst"}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"career_goal\": \"Data Analyst\"}\n```",
			expected: `{"career_goal": "Data Analyst"}`,
		},
		{
			name:     "generic fence",
			input:    "```\n{\"career_goal\": \"Data Analyst\"}\n```",
			expected: `{"career_goal": "Data Analyst"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n{\"a\": 1}\n```\n  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
