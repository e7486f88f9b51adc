package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract test data.",
		Fields: []SchemaField{
			{Name: "title", Type: `"string"`, Description: "the title", Required: true},
			{Name: "tags", Type: `["string"]`},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some input text")

	assert.Contains(t, prompt, "Extract test data.")
	assert.Contains(t, prompt, `"title": "string" (required) // the title`)
	assert.Contains(t, prompt, `"tags": ["string"]`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, "some input text")
	assert.True(t, strings.Contains(prompt, "no markdown"))
}

func TestJobAnalysisSchema_CoversAnalysisShape(t *testing.T) {
	schema := JobAnalysisSchema()

	fieldNames := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		fieldNames = append(fieldNames, f.Name)
		assert.True(t, f.Required, "field %s should be required", f.Name)
	}

	assert.ElementsMatch(t, []string{
		"skills", "requirements", "responsibilities",
		"experience_level", "keywords", "priority_skills",
	}, fieldNames)
}
