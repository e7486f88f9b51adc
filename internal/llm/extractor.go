// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobAnalysis")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", nested object shapes
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// JobAnalysisSchema returns the extraction schema for job descriptions. The
// field shapes mirror types.JobAnalysis exactly, so a valid response
// unmarshals straight into the same bundle the deterministic analyzer
// produces.
func JobAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobAnalysis",
		Description: `You are an expert HR analyst. Your task is to extract structured signals from a raw job description.
Identify concrete technical skills (languages, frameworks, databases, cloud tooling), soft skills, the seniority of the role, and the stated requirements and responsibilities.
Skills must be lowercase single terms as they appear in the text (e.g. "python", "node.js", "c++").`,
		Fields: []SchemaField{
			{
				Name:        "skills",
				Type:        `{"technical": ["string"], "soft": ["string"]}`,
				Description: "Technical and soft skills found in the text, lowercase",
				Required:    true,
			},
			{
				Name:        "requirements",
				Type:        `["string"]`,
				Description: "Requirement/qualification lines, copied verbatim",
				Required:    true,
			},
			{
				Name:        "responsibilities",
				Type:        `["string"]`,
				Description: "Responsibility/duty lines, copied verbatim",
				Required:    true,
			},
			{
				Name:        "experience_level",
				Type:        `"entry" | "mid" | "senior" | "executive" | "unknown"`,
				Description: "Seniority inferred from title and requirements",
				Required:    true,
			},
			{
				Name:        "keywords",
				Type:        `[{"word": "string", "count": 1}]`,
				Description: "Up to 20 salient terms with occurrence counts, most frequent first",
				Required:    true,
			},
			{
				Name:        "priority_skills",
				Type:        `[{"skill": "string", "frequency": 1, "in_requirements": true}]`,
				Description: "Skills that recur or appear inside the requirements, most important first",
				Required:    true,
			},
		},
	}
}
