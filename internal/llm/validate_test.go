package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func topicsSchema(name string) *Schema {
	return &Schema{
		Name: name,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topics": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
			},
			"required": []any{"topics"},
		},
	}
}

func TestValidateNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateConformingDocument(t *testing.T) {
	raw := json.RawMessage(`{"topics":["Verbos","Vocabulário"]}`)
	if err := validateResponse(topicsSchema("topics-ok"), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	err := validateResponse(topicsSchema("topics-malformed"), json.RawMessage(`{"topics":`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateSchemaViolation(t *testing.T) {
	err := validateResponse(topicsSchema("topics-violation"), json.RawMessage(`{"topics":[]}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
	if inv.Content == nil {
		t.Fatal("expected offending content to be preserved")
	}
}

func TestValidateCachesCompiledSchema(t *testing.T) {
	s := topicsSchema("topics-cached")
	raw := json.RawMessage(`{"topics":["a"]}`)
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := compiledSchemas.Load(s.Name); !ok {
		t.Fatal("schema not cached after validation")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
