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
			name:     "JSON array wrapped in json block",
			input:    "```json\n[{\"title\": \"CAP theorem\"}]\n```",
			expected: `[{"title": "CAP theorem"}]`,
		},
		{
			name:     "JSON wrapped in bare block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON without code blocks",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "whitespace around code blocks",
			input:    "  ```json\n{\"key\": \"value\"}\n```  ",
			expected: `{"key": "value"}`,
		},
		{
			name:     "language identifier on first line",
			input:    "```javascript\nconst x = 1;\n```",
			expected: "const x = 1;",
		},
		{
			name:     "plain text untouched",
			input:    "Score: 7/10",
			expected: "Score: 7/10",
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
