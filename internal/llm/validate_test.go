package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-answer",
	Description: "A test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer", "minimum": 0},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer": "yes", "score": 3}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must skip validation: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score": 3}`)
	err := validateResponse(testSchema, raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if string(invalid.Content) != string(raw) {
		t.Error("error does not carry the offending content")
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"answer": "yes", "score": "three"}`)
	var invalid *ErrInvalidResponse
	if err := validateResponse(testSchema, raw); !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	var invalid *ErrInvalidResponse
	if err := validateResponse(testSchema, json.RawMessage(`{broken`)); !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	raw := json.RawMessage(`{"answer": "yes"}`)
	for range 3 {
		if err := validateResponse(testSchema, raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, ok := schemaCache.Load(testSchema.Name); !ok {
		t.Error("compiled schema not cached")
	}
}
