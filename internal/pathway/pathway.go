package pathway

import (
	"time"

	"github.com/abhisek/pathweaver/internal/catalog"
)

// Step pairs one objective with its selected content, in pathway order.
type Step struct {
	Objective catalog.Objective
	Content   []catalog.Item
}

// Pathway is the ordered output sequence generated for one learner.
type Pathway struct {
	ID          string
	LearnerID   string
	Steps       []Step
	GeneratedAt time.Time

	// Diagnostics carries the fail-closed decisions recorded while
	// resolving eligibility. Informational only.
	Diagnostics []string
}

// ActivityCount returns the total number of content items across steps.
func (p *Pathway) ActivityCount() int {
	n := 0
	for _, s := range p.Steps {
		n += len(s.Content)
	}
	return n
}

// FlatStep is the presentation-convenience view: one record per
// objective with the content attached as a field. Pure data reshaping.
type FlatStep struct {
	ObjectiveID  string         `json:"objective_id"`
	Description  string         `json:"description"`
	Subject      string         `json:"subject"`
	YearGroup    int            `json:"year_group"`
	ContentItems []catalog.Item `json:"content_items"`
}

// Flatten reshapes the pathway into flat records.
func (p *Pathway) Flatten() []FlatStep {
	flat := make([]FlatStep, len(p.Steps))
	for i, s := range p.Steps {
		flat[i] = FlatStep{
			ObjectiveID:  s.Objective.ID,
			Description:  s.Objective.Description,
			Subject:      s.Objective.Subject,
			YearGroup:    s.Objective.YearGroup,
			ContentItems: s.Content,
		}
	}
	return flat
}

// DefaultMaxObjectives is the default cap on objectives per pathway.
const DefaultMaxObjectives = 5
