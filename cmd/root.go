package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:           "crxforge",
		Short:         "CLI tool for assembling Chrome extensions",
		SilenceErrors: true,
		Long: `crxforge assembles Chrome extension (manifest v3) projects from
templates and a catalog of optional features.

It scaffolds a project, composes features into it (permissions, code
fragments, manifest changes), validates the manifest, scores the
declared permission risk, and packs the result for distribution.

Commands:
  new       Scaffold a new extension project
  feature   Manage features (list, add, search)
  pick      Interactively pick features for a project
  validate  Validate a project's manifest
  audit     Score a project's permission risk
  pack      Zip a project for distribution
  catalog   Manage external feature catalogs (add, del, list, update)
  config    Manage configuration

Shortcuts (aliases):
  add       = feature add
  search    = feature search`,
	}
)

// createAliasCommand creates a root-level alias that shares flags with a feature subcommand
func createAliasCommand(featureSubCmd *cobra.Command, aliases []string) *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:     featureSubCmd.Use,
		Short:   featureSubCmd.Short + " (alias)",
		Long:    featureSubCmd.Long,
		Args:    featureSubCmd.Args,
		Aliases: aliases,
		RunE:    featureSubCmd.RunE,
	}
	// Copy all flags from the original command
	featureSubCmd.Flags().VisitAll(func(f *pflag.Flag) {
		aliasCmd.Flags().AddFlag(f)
	})
	return aliasCmd
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Main commands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(featureCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
}

// RegisterFeatureAliases registers root-level aliases for feature subcommands
// Must be called after feature subcommands are initialized
func RegisterFeatureAliases() {
	rootCmd.AddCommand(createAliasCommand(featureAddCmd, nil))
	rootCmd.AddCommand(createAliasCommand(featureSearchCmd, nil))
}
