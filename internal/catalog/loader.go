package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// docSchema pairs a schema name with its JSON Schema definition.
type docSchema struct {
	Name       string
	Definition map[string]any
}

// schemaCache caches compiled document schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

type objectiveDoc struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	Subject       string   `json:"subject"`
	YearGroup     int      `json:"year_group"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

type curriculumSliceDoc struct {
	Objectives []objectiveDoc `json:"objectives"`
}

type contentItemDoc struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty,omitempty"`
	Covered    []string `json:"learning_objectives_covered,omitempty"`
}

type contentSetDoc struct {
	Content []contentItemDoc `json:"content"`
}

// DecodeCurriculumSlice validates and decodes a Curriculum Slice document.
func DecodeCurriculumSlice(data []byte) ([]Objective, error) {
	if err := validateDocument(curriculumSliceSchema, data); err != nil {
		return nil, err
	}

	var doc curriculumSliceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode curriculum slice: %w", err)
	}

	objectives := make([]Objective, len(doc.Objectives))
	for i, o := range doc.Objectives {
		objectives[i] = Objective{
			ID:            o.ID,
			Description:   o.Description,
			Subject:       o.Subject,
			YearGroup:     o.YearGroup,
			Difficulty:    o.Difficulty,
			Prerequisites: o.Prerequisites,
		}
	}
	return objectives, nil
}

// DecodeContentSet validates and decodes a Content Set document.
// Unknown content types are kept as-is; the selector ranks them with the
// default difficulty and they participate in fallback selection.
func DecodeContentSet(data []byte) ([]Item, error) {
	if err := validateDocument(contentSetSchema, data); err != nil {
		return nil, err
	}

	var doc contentSetDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content set: %w", err)
	}

	items := make([]Item, len(doc.Content))
	for i, c := range doc.Content {
		items[i] = Item{
			ID:         c.ID,
			Title:      c.Title,
			Type:       ContentType(c.Type),
			Difficulty: c.Difficulty,
			Objectives: c.Covered,
		}
	}
	return items, nil
}

// LoadFiles reads a curriculum slice file and a content set file and
// builds a Store from them. An empty content path loads objectives only.
func LoadFiles(slicePath, contentPath string) (*Store, error) {
	sliceData, err := os.ReadFile(slicePath)
	if err != nil {
		return nil, fmt.Errorf("read curriculum slice: %w", err)
	}
	objectives, err := DecodeCurriculumSlice(sliceData)
	if err != nil {
		return nil, err
	}

	var items []Item
	if contentPath != "" {
		contentData, err := os.ReadFile(contentPath)
		if err != nil {
			return nil, fmt.Errorf("read content set: %w", err)
		}
		items, err = DecodeContentSet(contentData)
		if err != nil {
			return nil, err
		}
	}

	return Load(objectives, items)
}

// validateDocument validates raw JSON against a document schema.
func validateDocument(schema *docSchema, data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("%s: invalid JSON: %w", schema.Name, err)
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", schema.Name, err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *docSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
