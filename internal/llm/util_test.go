package llm

import (
	"testing"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"experience_level\": \"senior\"}\n```",
			expected: `{"experience_level": "senior"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"experience_level\": \"senior\"}\n```",
			expected: `{"experience_level": "senior"}`,
		},
		{
			name:     "code block with unrelated language tag",
			input:    "```javascript\n{\"experience_level\": \"senior\"}\n```",
			expected: `{"experience_level": "senior"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"experience_level": "senior"}`,
			expected: `{"experience_level": "senior"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCleanJSONBlock_PreambleText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before JSON object",
			input:    "As requested, here is the JSON:\n{\"experience_level\": \"mid\"}",
			expected: `{"experience_level": "mid"}`,
		},
		{
			name:     "conversational preamble",
			input:    "Based on the job posting provided, I've extracted the key requirements. Here's the structured output:\n\n{\"experience_level\": \"senior\", \"min_years\": 5}",
			expected: `{"experience_level": "senior", "min_years": 5}`,
		},
		{
			name:     "preamble with multiple sentences",
			input:    "I analyzed the posting. The role emphasizes backend work. Here is the result: {\"technical\": [\"go\", \"postgresql\"]}",
			expected: `{"technical": ["go", "postgresql"]}`,
		},
		{
			name:     "preamble before JSON array",
			input:    "Here are the priority skills:\n[\"python\", \"kubernetes\"]",
			expected: `["python", "kubernetes"]`,
		},
		{
			name:     "JSON with trailing text",
			input:    "{\"experience_level\": \"entry\"}\n\nLet me know if you need anything else!",
			expected: `{"experience_level": "entry"}`,
		},
		{
			name:     "nested objects",
			input:    "Output:\n{\"skills\": {\"technical\": [\"go\"]}}",
			expected: `{"skills": {"technical": ["go"]}}`,
		},
		{
			name:     "JSON with escaped quotes",
			input:    "Result: {\"requirement\": \"must know \\\"Go\\\"\"}",
			expected: `{"requirement": "must know \"Go\""}`,
		},
		{
			name:     "deeply nested",
			input:    "Here: {\"analysis\": {\"skills\": {\"soft\": {\"top\": \"communication\"}}}}",
			expected: `{"analysis": {"skills": {"soft": {"top": "communication"}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple object",
			input:    `{"score": 72.5}`,
			expected: `{"score": 72.5}`,
		},
		{
			name:     "nested objects",
			input:    `{"skills": {"technical": ["go"]}}`,
			expected: `{"skills": {"technical": ["go"]}}`,
		},
		{
			name:     "object with array",
			input:    `{"requirements": ["5+ years", "Go"]}`,
			expected: `{"requirements": ["5+ years", "Go"]}`,
		},
		{
			name:     "object with trailing text",
			input:    `{"score": 50} and some more text`,
			expected: `{"score": 50}`,
		},
		{
			name:     "string with braces inside",
			input:    `{"note": "covers {frontend} too"}`,
			expected: `{"note": "covers {frontend} too"}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "not starting with brace",
			input:    "not json",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractJSONObject(tt.input)
			if result != tt.expected {
				t.Errorf("extractJSONObject() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple array",
			input:    `["go", "docker", "aws"]`,
			expected: `["go", "docker", "aws"]`,
		},
		{
			name:     "nested arrays",
			input:    `[["go", 3], ["aws", 1]]`,
			expected: `[["go", 3], ["aws", 1]]`,
		},
		{
			name:     "array of objects",
			input:    `[{"skill": "go"}, {"skill": "aws"}]`,
			expected: `[{"skill": "go"}, {"skill": "aws"}]`,
		},
		{
			name:     "array with trailing text",
			input:    `["go", "aws"] extra stuff`,
			expected: `["go", "aws"]`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "not starting with bracket",
			input:    "not array",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractJSONArray(tt.input)
			if result != tt.expected {
				t.Errorf("extractJSONArray() = %q, want %q", result, tt.expected)
			}
		})
	}
}
