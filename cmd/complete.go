package cmd

import (
	"fmt"

	"github.com/abhisek/pathweaver/internal/badges"
	"github.com/abhisek/pathweaver/internal/ui/theme"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <objective-id>...",
	Short: "Mark learning objectives as completed",
	Args:  cobra.MinimumNArgs(1),
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

		badgeSvc := badges.NewService(cat, svc.State(), st.EventRepo())
		svc.Subscribe(badgeSvc)

		for _, id := range args {
			if _, ok := cat.Objective(id); !ok {
				fmt.Println(theme.Warn.Render(fmt.Sprintf("unknown objective %q — skipped", id)))
				continue
			}
			if svc.MarkObjectiveCompleted(cmd.Context(), id) {
				fmt.Println(theme.Done.Render("✓ " + id))
			} else {
				fmt.Println(theme.Hint.Render(id + " was already completed"))
			}
		}

		for _, b := range badgeSvc.SessionBadges {
			fmt.Println(theme.BadgeStyle.Render("★ New badge: " + b.Type.DisplayName()))
		}

		return saveSnapshot(cmd.Context(), st, svc)
	},
}
