package pathway

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/eligibility"
	"github.com/abhisek/pathweaver/internal/learner"
	"github.com/abhisek/pathweaver/internal/selector"
	"github.com/abhisek/pathweaver/internal/store"
)

// Options bounds one generation call.
type Options struct {
	MaxObjectives int
	MaxActivities int

	// Seed drives the eligibility shuffle. Zero means "vary": the
	// generator is seeded from the current time.
	Seed uint64
}

// DefaultOptions returns the standard pathway bounds.
func DefaultOptions() Options {
	return Options{
		MaxObjectives: DefaultMaxObjectives,
		MaxActivities: selector.DefaultMaxActivities,
	}
}

// Generator assembles pathways: eligibility resolution, then content
// selection per objective, preserving the resolver's randomized order.
// A Generator is stateless per call and never mutates learner state or
// catalog; it is safe for concurrent use across learners.
type Generator struct {
	catalog   *catalog.Store
	eventRepo store.EventRepo
}

// NewGenerator creates a Generator. eventRepo may be nil; generation
// events are then not recorded.
func NewGenerator(cat *catalog.Store, eventRepo store.EventRepo) *Generator {
	return &Generator{catalog: cat, eventRepo: eventRepo}
}

// Generate produces a pathway for the learner. An empty pathway (all
// objectives completed, or none eligible) is a valid result.
func (g *Generator) Generate(ctx context.Context, state *learner.State, opts Options) *Pathway {
	if opts.MaxObjectives <= 0 {
		opts.MaxObjectives = DefaultMaxObjectives
	}
	if opts.MaxActivities <= 0 {
		opts.MaxActivities = selector.DefaultMaxActivities
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	p := &Pathway{
		ID:          uuid.NewString(),
		LearnerID:   state.LearnerID,
		GeneratedAt: time.Now(),
	}

	resolver := eligibility.New(g.catalog)
	resolver.Diag = func(msg string) {
		p.Diagnostics = append(p.Diagnostics, msg)
	}

	for _, obj := range resolver.NextObjectives(state, opts.MaxObjectives, rng) {
		candidates := g.catalog.ContentForObjective(obj.ID)
		selected := selector.Select(candidates, state, opts.MaxActivities)
		// A step with no content is kept: downstream explicitly
		// supports objectives without activities.
		p.Steps = append(p.Steps, Step{Objective: obj, Content: selected})
	}

	if g.eventRepo != nil {
		_ = g.eventRepo.AppendPathwayEvent(ctx, store.PathwayEventData{
			PathwayID:  p.ID,
			LearnerID:  p.LearnerID,
			Objectives: len(p.Steps),
			Activities: p.ActivityCount(),
			Seed:       int64(seed),
		})
	}

	return p
}
