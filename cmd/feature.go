package cmd

import (
	"fmt"
	"strings"

	"github.com/crxforge/crxforge/internal/catalog"
	"github.com/crxforge/crxforge/internal/compose"
	"github.com/crxforge/crxforge/internal/i18n"
	"github.com/crxforge/crxforge/internal/manifest"
	"github.com/crxforge/crxforge/internal/project"
	"github.com/crxforge/crxforge/internal/search"
	"github.com/crxforge/crxforge/internal/tui"
	"github.com/spf13/cobra"
)

var featureCmd = &cobra.Command{
	Use:     "feature",
	Aliases: []string{"ft"},
	Short:   "Manage extension features",
	Long: `Manage extension features.

Commands:
  list    List all features in the catalog
  add     Compose features into a project
  search  Search the feature catalog`,
}

var featureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all features in the catalog",
	Long: `List all features in the catalog, builtin and external.

Example:
  crxforge feature list
  crxforge feature list -v  # Show permissions and target files`,
	RunE: runFeatureList,
}

var featureAddCmd = &cobra.Command{
	Use:   "add <feature>...",
	Short: "Compose features into a project",
	Long: `Compose one or more features into an extension project.

Each feature unions its permissions into the manifest, provisions a
background service worker when it needs one, and injects its code
fragment once (re-adding an applied feature is a no-op).

Selecting a framework replaces the popup entry files with framework
boilerplate, discarding any hand edits; crxforge asks before doing that
unless --yes is given.

Example:
  crxforge feature add storage contextMenu
  crxforge feature add storage --dir ./my-extension --host-mode active-tab
  crxforge add scripting --type popup`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFeatureAdd,
}

var featureSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search the feature catalog",
	Long: `Search features using fuzzy matching.

The search looks through feature ids, titles, descriptions, keywords,
and the permissions they grant.

Example:
  crxforge feature search clipboard
  crxforge search notification`,
	Args: cobra.ExactArgs(1),
	RunE: runFeatureSearch,
}

var (
	addDir         string
	addType        string
	addHostMode    string
	addHosts       []string
	addFramework   string
	addName        string
	addDescription string
	addYes         bool
)

func init() {
	featureAddCmd.Flags().StringVar(&addDir, "dir", ".", "project directory")
	featureAddCmd.Flags().StringVarP(&addType, "type", "t", "", "extension type (content-script, popup, side-panel, page-action)")
	featureAddCmd.Flags().StringVar(&addHostMode, "host-mode", "", "host permission mode (active-tab, all-urls, custom)")
	featureAddCmd.Flags().StringSliceVar(&addHosts, "host", nil, "host patterns for --host-mode custom")
	featureAddCmd.Flags().StringVarP(&addFramework, "framework", "f", "", "UI framework (replaces popup files)")
	featureAddCmd.Flags().StringVar(&addName, "name", "", "rename the extension")
	featureAddCmd.Flags().StringVarP(&addDescription, "description", "d", "", "set the extension description")
	featureAddCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "skip the framework overwrite confirmation")

	featureCmd.AddCommand(featureListCmd)
	featureCmd.AddCommand(featureAddCmd)
	featureCmd.AddCommand(featureSearchCmd)
}

func runFeatureList(cmd *cobra.Command, args []string) error {
	reg, err := catalog.Default()
	if err != nil {
		return err
	}

	fmt.Println(i18n.T("ListFeaturesHeader", map[string]any{"Count": reg.Len()}, reg.Len()))
	fmt.Println(strings.Repeat("-", 40))

	for _, d := range reg.All() {
		id := d.ID
		if d.Catalog != "" {
			id = fmt.Sprintf("%s@%s", d.ID, d.Catalog)
		}
		fmt.Printf("  %-16s %s\n", id, d.Title)
		if verbose {
			if d.Description != "" {
				fmt.Printf("    %s\n", d.Description)
			}
			if len(d.Grants) > 0 {
				fmt.Printf("    Permissions: %s\n", strings.Join(d.Grants, ", "))
			}
			if d.RequiresBackground {
				fmt.Printf("    Needs a background service worker\n")
			}
			if d.TargetFile != "" {
				fmt.Printf("    Injects into: %s\n", d.TargetFile)
			}
			fmt.Println()
		}
	}

	return nil
}

func runFeatureAdd(cmd *cobra.Command, args []string) error {
	sel, err := buildSelection(args)
	if err != nil {
		return err
	}

	proj, err := project.LoadDir(addDir)
	if err != nil {
		return err
	}

	if sel.Framework != compose.FrameworkNone && !addYes {
		ok, err := tui.RunFrameworkConfirm(string(sel.Framework))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(i18n.T("Cancelled", nil))
			return nil
		}
	}

	reg, err := catalog.Default()
	if err != nil {
		return err
	}

	engine := compose.NewEngine(reg)
	result, err := engine.Compose(proj, sel)
	if err != nil {
		return err
	}

	if err := project.SaveDir(result.Project, addDir); err != nil {
		return err
	}

	fmt.Println(i18n.T("ComposeSuccess", map[string]any{"Count": len(result.Applied)}, len(result.Applied)))
	for _, id := range result.Applied {
		fmt.Printf("  + %s\n", id)
	}

	printReports(result.Project)
	return nil
}

func runFeatureSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	reg, err := catalog.Default()
	if err != nil {
		return err
	}

	results := search.FuzzySearch(reg, keyword)
	if len(results) == 0 {
		fmt.Println(i18n.T("NoResults", map[string]any{"Keyword": keyword}))
		return nil
	}

	fmt.Println(i18n.T("SearchResults", map[string]any{"Count": len(results)}, len(results)))
	fmt.Println()

	for _, r := range results {
		d := r.Feature
		id := d.ID
		if d.Catalog != "" {
			id = fmt.Sprintf("%s@%s", d.ID, d.Catalog)
		}
		fmt.Printf("  %s - %s\n", id, d.Title)
		if d.Description != "" {
			fmt.Printf("    %s\n", d.Description)
		}
		if len(d.Grants) > 0 {
			fmt.Printf("    Permissions: %s\n", strings.Join(d.Grants, ", "))
		}
		fmt.Println()
	}

	return nil
}

// buildSelection turns the feature add flags into a validated Selection
func buildSelection(featureIDs []string) (compose.Selection, error) {
	var sel compose.Selection

	extType, err := compose.ParseExtensionType(addType)
	if err != nil {
		return sel, err
	}
	hostMode, err := compose.ParseHostMode(addHostMode)
	if err != nil {
		return sel, err
	}
	if hostMode == compose.HostModeCustom && len(addHosts) == 0 {
		return sel, fmt.Errorf("--host-mode custom requires at least one --host pattern")
	}
	framework, err := compose.ParseFramework(addFramework)
	if err != nil {
		return sel, err
	}

	return compose.Selection{
		Features:     featureIDs,
		Type:         extType,
		HostMode:     hostMode,
		HostPatterns: addHosts,
		Framework:    framework,
		Identity: compose.Identity{
			Name:        addName,
			Description: addDescription,
		},
	}, nil
}

// printReports prints the validation and audit summaries after a compose
func printReports(proj *project.Project) {
	m, err := proj.Manifest()
	if err != nil {
		return
	}

	report := manifest.Validate(m)
	if report.Valid {
		fmt.Println(i18n.T("ValidationPassed", map[string]any{"Warnings": len(report.Warnings)}))
	} else {
		fmt.Println(i18n.T("ValidationFailed", map[string]any{"Count": len(report.Errors)}, len(report.Errors)))
		for _, f := range report.Errors {
			fmt.Printf("  ✗ %s\n", f.Message)
		}
	}

	audit := manifest.Audit(m)
	fmt.Println(i18n.T("AuditScore", map[string]any{"Score": audit.Score}))
}
