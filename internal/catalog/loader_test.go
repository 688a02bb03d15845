package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSlice = `{
	"objectives": [
		{"id": "num-1", "description": "Counting", "subject": "maths", "year_group": 1},
		{"id": "num-2", "description": "Addition", "subject": "maths", "year_group": 2,
		 "difficulty": "medium", "prerequisites": ["num-1"]}
	]
}`

const validContent = `{
	"content": [
		{"id": "vid-1", "title": "Counting song", "type": "video",
		 "difficulty": "easy", "learning_objectives_covered": ["num-1"]},
		{"id": "sim-1", "title": "Simulation", "type": "simulation",
		 "learning_objectives_covered": ["num-2"]}
	]
}`

func TestDecodeCurriculumSlice(t *testing.T) {
	objectives, err := DecodeCurriculumSlice([]byte(validSlice))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objectives) != 2 {
		t.Fatalf("got %d objectives, want 2", len(objectives))
	}
	if objectives[1].ID != "num-2" || objectives[1].Difficulty != "medium" {
		t.Errorf("got %+v", objectives[1])
	}
	if len(objectives[1].Prerequisites) != 1 || objectives[1].Prerequisites[0] != "num-1" {
		t.Errorf("prerequisites = %v", objectives[1].Prerequisites)
	}
}

func TestDecodeCurriculumSlice_MissingRequiredField(t *testing.T) {
	doc := `{"objectives": [{"id": "num-1", "subject": "maths", "year_group": 1}]}`
	_, err := DecodeCurriculumSlice([]byte(doc))
	if err == nil {
		t.Fatal("expected schema validation error for missing description")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDecodeCurriculumSlice_InvalidJSON(t *testing.T) {
	if _, err := DecodeCurriculumSlice([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestDecodeContentSet_KeepsUnknownTypes(t *testing.T) {
	items, err := DecodeContentSet([]byte(validContent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// Unknown types are preserved, not rejected.
	if items[1].Type != ContentType("simulation") {
		t.Errorf("got type %q, want simulation", items[1].Type)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	slicePath := filepath.Join(dir, "slice.json")
	contentPath := filepath.Join(dir, "content.json")
	if err := os.WriteFile(slicePath, []byte(validSlice), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(contentPath, []byte(validContent), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFiles(slicePath, contentPath)
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	objs, items := s.Counts()
	if objs != 2 || items != 2 {
		t.Errorf("got %d objectives %d items, want 2 and 2", objs, items)
	}
}

func TestLoadFiles_ObjectivesOnly(t *testing.T) {
	dir := t.TempDir()
	slicePath := filepath.Join(dir, "slice.json")
	if err := os.WriteFile(slicePath, []byte(validSlice), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFiles(slicePath, "")
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	objs, items := s.Counts()
	if objs != 2 || items != 0 {
		t.Errorf("got %d objectives %d items, want 2 and 0", objs, items)
	}
}

func TestLoadFiles_MissingFile(t *testing.T) {
	if _, err := LoadFiles(filepath.Join(t.TempDir(), "absent.json"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}
