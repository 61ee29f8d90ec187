package cmd

import (
	"fmt"

	"github.com/crxforge/crxforge/internal/compose"
	"github.com/crxforge/crxforge/internal/config"
	"github.com/crxforge/crxforge/internal/i18n"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change crxforge settings",
	Long: `Show or change crxforge settings.

Settings:
  locale              UI language ("auto", "en-US", "ko-KR")
  defaults.framework  Framework applied to new projects (vanilla, react, vue, svelte)
  defaults.hostMode   Host permission scope for new compositions (active-tab, all-urls)

Commands:
  show  Print the current settings
  set   Change a setting`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting.

Example:
  crxforge config set locale ko-KR
  crxforge config set defaults.framework react
  crxforge config set defaults.hostMode active-tab`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println(i18n.T("ConfigHeader", nil))
	fmt.Printf("  locale:             %s\n", cfg.Locale)
	fmt.Printf("  defaults.framework: %s\n", cfg.Defaults.Framework)
	fmt.Printf("  defaults.hostMode:  %s\n", cfg.Defaults.HostMode)
	if cfg.Defaults.Author != "" {
		fmt.Printf("  defaults.author:    %s\n", cfg.Defaults.Author)
	}
	fmt.Printf("  catalogs:           %d\n", len(cfg.Catalogs))
	fmt.Printf("\n  %s\n", config.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	switch key {
	case "locale":
		if err := config.SetLocale(value); err != nil {
			return err
		}
		if value != "auto" {
			i18n.SetLocale(value)
		}

	case "defaults.framework":
		if _, err := compose.ParseFramework(value); err != nil {
			return err
		}
		if err := config.SetDefaultFramework(value); err != nil {
			return err
		}

	case "defaults.hostMode":
		mode, err := compose.ParseHostMode(value)
		if err != nil {
			return err
		}
		if mode != compose.HostModeActiveTab && mode != compose.HostModeAllURLs {
			return fmt.Errorf("defaults.hostMode must be %q or %q", compose.HostModeActiveTab, compose.HostModeAllURLs)
		}
		if err := config.SetDefaultHostMode(config.HostMode(value)); err != nil {
			return err
		}

	case "defaults.author":
		cfg := config.Get()
		cfg.Defaults.Author = value
		if err := config.Save(cfg); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%s", i18n.T("UnknownConfigKey", map[string]any{"Key": key}))
	}

	fmt.Println(i18n.T("ConfigUpdated", map[string]any{"Key": key, "Value": value}))
	return nil
}
