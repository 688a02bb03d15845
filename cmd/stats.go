package cmd

import (
	"fmt"

	"github.com/abhisek/pathweaver/internal/store"
	"github.com/abhisek/pathweaver/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := svc.State()
		fmt.Println(theme.Title.Render("Progress"))
		fmt.Printf("Learner: %s\n", state.LearnerID)
		fmt.Printf("Objectives completed: %d\n", len(state.Completed))
		if state.CurrentObjective != "" {
			fmt.Printf("Working on: %s\n", state.CurrentObjective)
		}

		_, totalBadges, err := st.EventRepo().BadgeCounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("load badge counts: %w", err)
		}
		fmt.Printf("Badges earned: %d\n", totalBadges)

		pathways, err := st.EventRepo().QueryPathwayEvents(cmd.Context(), store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("load pathway events: %w", err)
		}
		if len(pathways) > 0 {
			fmt.Println()
			fmt.Println(theme.Subtitle.Render("Recent pathways:"))
			for _, p := range pathways {
				fmt.Println(theme.Hint.Render(fmt.Sprintf("  %s — %d objectives, %d activities",
					p.Timestamp.Format("2006-01-02 15:04"), p.Objectives, p.Activities)))
			}
		}
		return nil
	},
}
