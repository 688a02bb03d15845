package cmd

import (
	"fmt"
	"sort"

	"github.com/abhisek/pathweaver/internal/badges"
	"github.com/abhisek/pathweaver/internal/ui/theme"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage learner preferences",
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <category> <value>",
	Short: "Set a preference (e.g. learning_style visual)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Preference mutations only reach PreferenceSet, which never
		// touches the catalog.
		badgeSvc := badges.NewService(nil, svc.State(), st.EventRepo())
		svc.Subscribe(badgeSvc)

		svc.SetPreference(cmd.Context(), args[0], args[1])
		fmt.Printf("%s = %s\n", args[0], args[1])

		for _, b := range badgeSvc.SessionBadges {
			fmt.Println(theme.BadgeStyle.Render("★ New badge: " + b.Type.DisplayName()))
		}

		return saveSnapshot(cmd.Context(), st, svc)
	},
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prefs := svc.State().Preferences
		if len(prefs) == 0 {
			fmt.Println(theme.Hint.Render("No preferences set."))
			return nil
		}

		cats := make([]string, 0, len(prefs))
		for c := range prefs {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		for _, c := range cats {
			fmt.Printf("%s = %s\n", c, prefs[c])
		}
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsShowCmd)
}
