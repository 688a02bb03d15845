package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/pathweaver/internal/llm"
)

// Service generates study notes for pathways.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a study note generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type noteOutput struct {
	Title    string        `json:"title"`
	Overview string        `json:"overview"`
	Focus    []focusOutput `json:"focus"`
	Tip      string        `json:"tip"`
}

type focusOutput struct {
	ObjectiveID string `json:"objective_id"`
	Headline    string `json:"headline"`
	WhyItHelps  string `json:"why_it_helps"`
}

// Generate produces a study note for the given pathway.
func (s *Service) Generate(ctx context.Context, input NoteInput) (*StudyNote, error) {
	if input.Pathway == nil || len(input.Pathway.Steps) == 0 {
		return nil, fmt.Errorf("study note requires a pathway with at least one step")
	}

	ctx = llm.WithPurpose(ctx, "study-note")

	req := llm.Request{
		System: noteSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNoteUserMessage(input)},
		},
		Schema:      StudyNoteSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("study note generation: %w", err)
	}

	var out noteOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse study note response: %w", err)
	}

	note := &StudyNote{
		LearnerID:   input.Pathway.LearnerID,
		PathwayID:   input.Pathway.ID,
		Title:       out.Title,
		Overview:    out.Overview,
		Tip:         out.Tip,
		GeneratedAt: time.Now(),
	}
	for _, f := range out.Focus {
		note.Focus = append(note.Focus, ObjectiveFocus{
			ObjectiveID: f.ObjectiveID,
			Headline:    f.Headline,
			WhyItHelps:  f.WhyItHelps,
		})
	}

	return note, nil
}
