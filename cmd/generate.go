package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathweaver/internal/pathway"
	"github.com/abhisek/pathweaver/internal/ui"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a learning pathway",
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

		maxObjectives, _ := cmd.Flags().GetInt("max-objectives")
		maxActivities, _ := cmd.Flags().GetInt("max-activities")
		seed, _ := cmd.Flags().GetUint64("seed")

		gen := pathway.NewGenerator(cat, st.EventRepo())
		p := gen.Generate(cmd.Context(), svc.State(), pathway.Options{
			MaxObjectives: maxObjectives,
			MaxActivities: maxActivities,
			Seed:          seed,
		})

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(p.Flatten(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode pathway: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(p.Steps) == 0 {
			fmt.Print(ui.RenderEmptyPathway(p))
			return nil
		}
		fmt.Print(ui.RenderPathway(p))
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("max-objectives", pathway.DefaultMaxObjectives, "Maximum objectives per pathway")
	generateCmd.Flags().Int("max-activities", 0, "Maximum activities per objective (0 = default)")
	generateCmd.Flags().Uint64("seed", 0, "Random seed for reproducible pathways (0 = vary)")
	generateCmd.Flags().Bool("json", false, "Output the pathway as JSON")
}
