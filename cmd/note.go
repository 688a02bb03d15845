package cmd

import (
	"fmt"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/llm"
	"github.com/abhisek/pathweaver/internal/notes"
	"github.com/abhisek/pathweaver/internal/pathway"
	"github.com/abhisek/pathweaver/internal/ui"
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Generate a pathway with an AI study note",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		st, svc, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		gen := pathway.NewGenerator(cat, st.EventRepo())
		opts := pathway.DefaultOptions()
		opts.Seed = seed
		p := gen.Generate(cmd.Context(), svc.State(), opts)

		if len(p.Steps) == 0 {
			fmt.Print(ui.RenderEmptyPathway(p))
			return nil
		}
		fmt.Print(ui.RenderPathway(p))

		objectives := make([]catalog.Objective, len(p.Steps))
		for i, s := range p.Steps {
			objectives[i] = s.Objective
		}

		noteSvc := notes.NewService(provider, notes.DefaultConfig())
		note, err := noteSvc.Generate(cmd.Context(), notes.NoteInput{
			Pathway:     p,
			Objectives:  objectives,
			Preferences: svc.State().Preferences,
			Completed:   len(svc.State().Completed),
		})
		if err != nil {
			return fmt.Errorf("generate study note: %w", err)
		}

		fmt.Println()
		fmt.Print(ui.RenderStudyNote(note))
		return nil
	},
}

func init() {
	noteCmd.Flags().Uint64("seed", 0, "Random seed for reproducible pathways (0 = vary)")
}
