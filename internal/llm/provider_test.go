package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	first, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"n":1}` || string(second.Content) != `{"n":2}` {
		t.Errorf("responses out of order: %s, %s", first.Content, second.Content)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	req := Request{System: "be helpful", MaxTokens: 64}
	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("got %d calls, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != "be helpful" || mock.Calls[0].MaxTokens != 64 {
		t.Errorf("recorded request %+v", mock.Calls[0])
	}
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{"friendly": "provider-model-id"}
	if got := resolveModel("friendly", models); got != "provider-model-id" {
		t.Errorf("got %q", got)
	}
	// Unmapped names pass through as direct model IDs.
	if got := resolveModel("custom-model-2024", models); got != "custom-model-2024" {
		t.Errorf("got %q", got)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(context.Background(), "study-note")
	if got := PurposeFrom(ctx); got != "study-note" {
		t.Errorf("got %q, want study-note", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("got %q, want unknown", got)
	}
}
