package cmd

import (
	"fmt"

	"github.com/abhisek/pathweaver/internal/ui"
	"github.com/abhisek/pathweaver/internal/ui/theme"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the curriculum catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the curriculum slice and content set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		objectives, items := cat.Counts()
		fmt.Println(theme.Done.Render(fmt.Sprintf("OK — %d objectives, %d content items", objectives, items)))

		for _, d := range cat.Diagnostics() {
			fmt.Println(theme.Warn.Render("warning: " + d))
		}
		return nil
	},
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderStats(cat.Summarize()))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
}
