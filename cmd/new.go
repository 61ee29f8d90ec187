package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/crxforge/crxforge/internal/catalog"
	"github.com/crxforge/crxforge/internal/compose"
	"github.com/crxforge/crxforge/internal/config"
	"github.com/crxforge/crxforge/internal/i18n"
	"github.com/crxforge/crxforge/internal/project"
	"github.com/crxforge/crxforge/internal/tui"
	"github.com/spf13/cobra"
)

var (
	newType        string
	newFramework   string
	newDescription string
	newDir         string
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new extension project",
	Long: `Scaffold a new Chrome extension project.

Without --type, an interactive selector asks for the extension's entry
point. The framework defaults to the configured one.

Example:
  crxforge new my-extension --type popup
  crxforge new my-extension --type side-panel --framework react`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newType, "type", "t", "", "extension type (content-script, popup, side-panel, page-action)")
	newCmd.Flags().StringVarP(&newFramework, "framework", "f", "", "UI framework (vanilla, react, vue, svelte)")
	newCmd.Flags().StringVarP(&newDescription, "description", "d", "", "extension description")
	newCmd.Flags().StringVar(&newDir, "dir", ".", "parent directory for the project")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	destPath := filepath.Join(newDir, name)
	if _, err := os.Stat(destPath); err == nil {
		return fmt.Errorf("%s", i18n.T("ProjectExists", map[string]any{"Path": destPath}))
	}

	extType, err := compose.ParseExtensionType(newType)
	if err != nil {
		return err
	}
	if extType == compose.TypeNone {
		extType, err = tui.RunTypeSelector()
		if err != nil {
			return err
		}
		if extType == compose.TypeNone {
			fmt.Println(i18n.T("Cancelled", nil))
			return nil
		}
	}

	framework := newFramework
	if framework == "" {
		framework = config.GetDefaultFramework()
	}
	fw, err := compose.ParseFramework(framework)
	if err != nil {
		return err
	}
	// Framework files only make sense for popup-style entry points
	if extType != compose.TypePopup {
		fw = compose.FrameworkNone
	}

	reg, err := catalog.Default()
	if err != nil {
		return err
	}

	engine := compose.NewEngine(reg)
	result, err := engine.Compose(project.New(name), compose.Selection{
		Type:      extType,
		Framework: fw,
		Identity: compose.Identity{
			Name:        name,
			Description: newDescription,
		},
	})
	if err != nil {
		return err
	}

	if err := project.SaveDir(result.Project, destPath); err != nil {
		return err
	}

	fmt.Println(i18n.T("NewSuccess", map[string]any{
		"Name": name,
		"Path": destPath,
		"Type": string(extType),
	}))
	return nil
}
