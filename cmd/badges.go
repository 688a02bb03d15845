package cmd

import (
	"fmt"

	"github.com/abhisek/pathweaver/internal/badges"
	"github.com/abhisek/pathweaver/internal/store"
	"github.com/abhisek/pathweaver/internal/ui/theme"
	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		counts, total, err := st.EventRepo().BadgeCounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("load badge counts: %w", err)
		}
		if total == 0 {
			fmt.Println(theme.Hint.Render("No badges earned yet. Complete an objective to get started!"))
			return nil
		}

		fmt.Println(theme.Title.Render("Badges"))
		for _, bt := range badges.AllBadgeTypes() {
			if n := counts[string(bt)]; n > 0 {
				fmt.Printf("%s ×%d\n", theme.BadgeStyle.Render("★ "+bt.DisplayName()), n)
			}
		}

		recent, err := st.EventRepo().QueryBadgeEvents(cmd.Context(), store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("load badge events: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println()
			fmt.Println(theme.Subtitle.Render("Recent:"))
			for _, ev := range recent {
				fmt.Println(theme.Hint.Render(fmt.Sprintf("  %s — %s", ev.Timestamp.Format("2006-01-02"), ev.Reason)))
			}
		}
		return nil
	},
}
