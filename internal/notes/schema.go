package notes

import "github.com/abhisek/pathweaver/internal/llm"

// StudyNoteSchema defines the JSON schema for study note generation.
var StudyNoteSchema = &llm.Schema{
	Name:        "study-note",
	Description: "A short orientation note for a learner's generated pathway",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the note (3-8 words)",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "2-4 sentence overview of what this pathway covers and how it builds on completed work",
			},
			"focus": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"objective_id": map[string]any{
							"type":        "string",
							"description": "The learning objective ID this entry refers to",
						},
						"headline": map[string]any{
							"type":        "string",
							"description": "One-line summary of what to focus on (5-12 words)",
						},
						"why_it_helps": map[string]any{
							"type":        "string",
							"description": "One sentence connecting this objective to the learner's progress",
						},
					},
					"required":             []any{"objective_id", "headline", "why_it_helps"},
					"additionalProperties": false,
				},
				"description": "One entry per objective in the pathway, in pathway order",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "A single practical study tip tailored to the learner's preferences",
			},
		},
		"required":             []any{"title", "overview", "focus", "tip"},
		"additionalProperties": false,
	},
}
