package notes

import (
	"time"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/pathway"
)

// StudyNote is an LLM-generated orientation note for a generated pathway.
type StudyNote struct {
	LearnerID   string
	PathwayID   string
	Title       string
	Overview    string
	Focus       []ObjectiveFocus
	Tip         string
	GeneratedAt time.Time
}

// ObjectiveFocus is per-objective guidance within a study note.
type ObjectiveFocus struct {
	ObjectiveID string
	Headline    string
	WhyItHelps  string
}

// NoteInput holds all context needed to generate a study note.
type NoteInput struct {
	Pathway     *pathway.Pathway
	Objectives  []catalog.Objective
	Preferences map[string]string
	Completed   int
}
