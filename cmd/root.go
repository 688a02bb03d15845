package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathweaver",
	Short: "Adaptive curriculum pathway engine",
	Long:  "Pathweaver — generates personalized learning pathways from a curriculum catalog, the learner's completed objectives, and their content preferences.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWEAVER_DB env var)")
	rootCmd.PersistentFlags().String("curriculum", "", "Path to curriculum slice JSON (overrides PATHWEAVER_CURRICULUM env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to content set JSON (overrides PATHWEAVER_CONTENT env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWEAVER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadCatalog builds the catalog from the --curriculum/--content flags or
// their environment fallbacks.
func loadCatalog(cmd *cobra.Command) (*catalog.Store, error) {
	slicePath, _ := cmd.Flags().GetString("curriculum")
	if slicePath == "" {
		slicePath = os.Getenv("PATHWEAVER_CURRICULUM")
	}
	if slicePath == "" {
		return nil, fmt.Errorf("no curriculum slice: pass --curriculum or set PATHWEAVER_CURRICULUM")
	}

	contentPath, _ := cmd.Flags().GetString("content")
	if contentPath == "" {
		contentPath = os.Getenv("PATHWEAVER_CONTENT")
	}

	return catalog.LoadFiles(slicePath, contentPath)
}
