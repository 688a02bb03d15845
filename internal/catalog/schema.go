package catalog

// curriculumSliceSchema validates a Curriculum Slice document before decoding.
var curriculumSliceSchema = &docSchema{
	Name: "curriculum-slice",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"objectives": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string", "minLength": 1},
						"description": map[string]any{"type": "string"},
						"subject":     map[string]any{"type": "string"},
						"year_group":  map[string]any{"type": "integer", "minimum": 0},
						"difficulty":  map[string]any{"type": "string"},
						"prerequisites": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"id", "description", "subject", "year_group"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"objectives"},
		"additionalProperties": false,
	},
}

// contentSetSchema validates a Content Set document before decoding.
var contentSetSchema = &docSchema{
	Name: "content-set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":         map[string]any{"type": "string", "minLength": 1},
						"title":      map[string]any{"type": "string"},
						"type":       map[string]any{"type": "string", "minLength": 1},
						"difficulty": map[string]any{"type": "string"},
						"learning_objectives_covered": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"id", "title", "type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"content"},
		"additionalProperties": false,
	},
}
