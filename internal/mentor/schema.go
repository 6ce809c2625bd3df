package mentor

import "github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/llm"

// roadmapSchema constrains roadmap generation to a topics array.
func roadmapSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "study-roadmap",
		Description: "Sequential study topics for a subject",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topics": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"minItems":    1,
					"description": "A list of 5-7 key study topics or modules for the subject.",
				},
			},
			"required":             []any{"topics"},
			"additionalProperties": false,
		},
	}
}
