package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"type":"out"}`,
			want:  `{"type":"out"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"type\":\"out\"}\n```",
			want:  `{"type":"out"}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"type\":\"out\"}\n```",
			want:  `{"type":"out"}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n{\"type\":\"out\"}\n  ",
			want:  `{"type":"out"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.input))
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "exact object",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "leading commentary",
			input: `Here is the transaction: {"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "trailing commentary",
			input: `{"a":1} I hope that helps!`,
			want:  `{"a":1}`,
		},
		{
			name:  "nested braces",
			input: `{"a":{"b":2}}`,
			want:  `{"a":{"b":2}}`,
		},
		{
			name:  "no object",
			input: "sorry, I cannot help with that",
			want:  "",
		},
		{
			name:  "unbalanced",
			input: "}{",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.input))
		})
	}
}
