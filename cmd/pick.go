package cmd

import (
	"fmt"

	"github.com/crxforge/crxforge/internal/catalog"
	"github.com/crxforge/crxforge/internal/compose"
	"github.com/crxforge/crxforge/internal/i18n"
	"github.com/crxforge/crxforge/internal/project"
	"github.com/crxforge/crxforge/internal/tui"
	"github.com/spf13/cobra"
)

var pickDir string

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick features for a project",
	Long: `Open an interactive picker over the feature catalog and compose
the selected features into a project.

Already-applied features show as locked entries: composition only ever
adds, it never removes permissions or code.

Example:
  crxforge pick
  crxforge pick --dir ./my-extension`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVar(&pickDir, "dir", ".", "project directory")
}

func runPick(cmd *cobra.Command, args []string) error {
	proj, err := project.LoadDir(pickDir)
	if err != nil {
		return err
	}

	reg, err := catalog.Default()
	if err != nil {
		return err
	}

	applied := compose.AppliedFeatures(proj, reg)

	result, err := tui.RunFeatureFinder(reg, applied)
	if err != nil {
		return err
	}
	if result.Cancelled || len(result.ToAdd) == 0 {
		fmt.Println(i18n.T("Cancelled", nil))
		return nil
	}

	engine := compose.NewEngine(reg)
	composed, err := engine.Compose(proj, compose.Selection{Features: result.ToAdd})
	if err != nil {
		return err
	}

	if err := project.SaveDir(composed.Project, pickDir); err != nil {
		return err
	}

	fmt.Println(i18n.T("ComposeSuccess", map[string]any{"Count": len(composed.Applied)}, len(composed.Applied)))
	for _, id := range composed.Applied {
		fmt.Printf("  + %s\n", id)
	}

	printReports(composed.Project)
	return nil
}
