package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crxforge/crxforge/internal/catalog"
	"github.com/crxforge/crxforge/internal/config"
	"github.com/crxforge/crxforge/internal/i18n"
	"github.com/crxforge/crxforge/internal/remote"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Aliases: []string{"cat"},
	Short:   "Manage external feature catalogs",
	Long: `Manage external feature catalogs (similar to 'brew tap').

A catalog is a git repository carrying crxforge/catalog.json with extra
feature descriptors. Registered catalogs merge into the builtin feature
set; duplicate ids or markers are rejected.

Commands:
  add     Add a new catalog from a git URL
  del     Remove a registered catalog
  list    List all registered catalogs
  update  Update catalog(s)`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <git-url>",
	Short: "Add a feature catalog repository",
	Long: `Add a feature catalog repository from a git URL.

Example:
  crxforge catalog add https://github.com/org/my-features
  crxforge cat add git@github.com:org/my-features.git`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogAdd,
}

var catalogDelCmd = &cobra.Command{
	Use:     "del <name>",
	Aliases: []string{"delete", "remove", "rm"},
	Short:   "Remove a registered catalog",
	Long: `Remove a registered catalog.

Example:
  crxforge catalog del my-features`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogDel,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered catalogs",
	Long: `List all registered catalogs.

Example:
  crxforge catalog list
  crxforge cat list --all  # Show the features each catalog provides`,
	RunE: runCatalogList,
}

var catalogUpdateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Update catalog(s)",
	Long: `Update all catalogs or a specific catalog.

Example:
  crxforge catalog update              # Update all
  crxforge catalog update my-features  # Update specific`,
	RunE: runCatalogUpdate,
}

var (
	catalogListAll bool
)

func init() {
	catalogListCmd.Flags().BoolVarP(&catalogListAll, "all", "a", false, "show the features each catalog provides")

	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogDelCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogUpdateCmd)
}

func runCatalogAdd(cmd *cobra.Command, args []string) error {
	url := args[0]

	// Extract repository name from URL
	repoName := extractRepoName(url)
	if repoName == "" {
		return fmt.Errorf("failed to extract repository name from URL: %s", url)
	}

	// Check if already exists
	sources := catalog.GetSources()
	if sources.Exists(repoName) {
		return fmt.Errorf("%s", i18n.T("AlreadyExists", map[string]any{"Name": repoName}))
	}

	// Ensure catalogs directory exists
	if err := config.EnsureDir(config.CatalogsDir()); err != nil {
		return err
	}

	// Clone the repository
	destPath := filepath.Join(config.CatalogsDir(), repoName)
	gitClient := remote.NewClient()

	fmt.Printf("Cloning %s...\n", url)
	if err := gitClient.Clone(url, destPath); err != nil {
		if authErr, ok := err.(*remote.AuthError); ok {
			return fmt.Errorf("%s", i18n.T("GitAuthFailed", map[string]any{"URL": authErr.URL}))
		}
		return fmt.Errorf("%s", i18n.T("GitCloneFailed", map[string]any{"Error": err.Error()}))
	}

	// Load and validate the catalog file
	file, err := catalog.LoadFile(destPath)
	if err != nil {
		// Rollback: remove cloned directory
		os.RemoveAll(destPath)
		return fmt.Errorf("%s", i18n.T("InvalidCatalog", map[string]any{"Path": destPath}))
	}

	// A catalog that conflicts with the merged registry is useless; check now
	catalogName := file.Name
	if catalogName == "" {
		catalogName = repoName
	}
	if _, err := catalog.Merge(map[string]*catalog.CatalogFile{catalogName: file}); err != nil {
		os.RemoveAll(destPath)
		return fmt.Errorf("%s", i18n.T("CatalogConflict", map[string]any{"Error": err.Error()}))
	}

	// Register the catalog
	if err := sources.Add(catalogName, url, destPath); err != nil {
		os.RemoveAll(destPath)
		return err
	}

	featureCount := len(file.Features)
	fmt.Println(i18n.T("CatalogAddSuccess", map[string]any{
		"Name":  catalogName,
		"Count": featureCount,
	}, featureCount))

	return nil
}

func runCatalogDel(cmd *cobra.Command, args []string) error {
	name := args[0]

	sources := catalog.GetSources()
	c := sources.Get(name)
	if c == nil {
		return fmt.Errorf("%s", i18n.T("CatalogNotFound", map[string]any{"Name": name}))
	}

	// Remove the directory
	if c.InstallLocation != "" {
		if err := os.RemoveAll(c.InstallLocation); err != nil {
			fmt.Printf("Warning: failed to remove directory %s: %v\n", c.InstallLocation, err)
		}
	}

	// Remove from registry
	if err := sources.Remove(name); err != nil {
		return err
	}

	fmt.Println(i18n.T("CatalogRemoved", map[string]any{"Name": name}))
	return nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	sources := catalog.GetSources()
	catalogs := sources.List()

	fmt.Println(i18n.T("ListCatalogsHeader", nil))
	fmt.Println(strings.Repeat("-", 40))

	if len(catalogs) == 0 {
		fmt.Println(i18n.T("NoCatalogs", nil))
		return nil
	}

	for name, c := range catalogs {
		fmt.Printf("  %s\n", name)
		fmt.Printf("    URL: %s\n", c.Source.URL)
		fmt.Printf("    Path: %s\n", c.InstallLocation)
		fmt.Printf("    Updated: %s\n", c.LastUpdated)

		// Show features if --all flag
		if catalogListAll {
			file, err := catalog.LoadFile(c.InstallLocation)
			if err == nil && len(file.Features) > 0 {
				fmt.Println("    Features:")
				for _, d := range file.Features {
					fmt.Printf("      - %s: %s\n", d.ID, d.Title)
				}
			}
		}
		fmt.Println()
	}

	return nil
}

func runCatalogUpdate(cmd *cobra.Command, args []string) error {
	gitClient := remote.NewClient()
	sources := catalog.GetSources()

	if len(args) == 0 {
		// Update all catalogs
		return updateAllCatalogs(gitClient, sources)
	}

	// Update single catalog
	return updateCatalog(gitClient, sources, args[0])
}

// extractRepoName extracts the repository name from a git URL
func extractRepoName(url string) string {
	// Remove trailing .git
	url = strings.TrimSuffix(url, ".git")

	// Handle various URL formats
	// https://github.com/org/repo
	// git@github.com:org/repo
	// github.com/org/repo

	parts := strings.Split(url, "/")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}

	return ""
}

func updateAllCatalogs(gitClient *remote.DefaultClient, sources *catalog.Sources) error {
	catalogs := sources.List()

	if len(catalogs) == 0 {
		fmt.Println(i18n.T("NoCatalogs", nil))
		return nil
	}

	for name, c := range catalogs {
		fmt.Printf("Updating %s...\n", name)
		if err := gitClient.Pull(c.InstallLocation); err != nil {
			if authErr, ok := err.(*remote.AuthError); ok {
				fmt.Printf("  Error: %s\n", i18n.T("GitAuthFailed", map[string]any{"URL": authErr.URL}))
			} else {
				fmt.Printf("  Error: %s\n", i18n.T("GitPullFailed", map[string]any{"Error": err.Error()}))
			}
			continue
		}
		sources.UpdateTimestamp(name)
		fmt.Printf("  Done\n")
	}

	fmt.Println(i18n.T("UpdateAllSuccess", nil))
	return nil
}

func updateCatalog(gitClient *remote.DefaultClient, sources *catalog.Sources, name string) error {
	c := sources.Get(name)
	if c == nil {
		return fmt.Errorf("%s", i18n.T("CatalogNotFound", map[string]any{"Name": name}))
	}

	fmt.Printf("Updating %s...\n", name)
	if err := gitClient.Pull(c.InstallLocation); err != nil {
		if authErr, ok := err.(*remote.AuthError); ok {
			return fmt.Errorf("%s", i18n.T("GitAuthFailed", map[string]any{"URL": authErr.URL}))
		}
		return fmt.Errorf("%s", i18n.T("GitPullFailed", map[string]any{"Error": err.Error()}))
	}

	sources.UpdateTimestamp(name)
	fmt.Println(i18n.T("UpdateSuccess", map[string]any{"Target": name}))
	return nil
}
