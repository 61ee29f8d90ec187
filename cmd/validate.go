package cmd

import (
	"fmt"

	"github.com/crxforge/crxforge/internal/i18n"
	"github.com/crxforge/crxforge/internal/manifest"
	"github.com/crxforge/crxforge/internal/project"
	"github.com/spf13/cobra"
)

var validateDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a project's manifest",
	Long: `Validate a project's manifest.json against the manifest v3 schema
rules: required fields, version format, background shape, content
script declarations, and permission hygiene.

Errors make the manifest invalid; warnings are advisory.

Example:
  crxforge validate
  crxforge validate --dir ./my-extension`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateDir, "dir", ".", "project directory")
}

func runValidate(cmd *cobra.Command, args []string) error {
	proj, err := project.LoadDir(validateDir)
	if err != nil {
		return err
	}

	m, err := proj.Manifest()
	if err != nil {
		return err
	}

	report := manifest.Validate(m)

	if len(report.Errors) > 0 {
		fmt.Println(i18n.T("ValidateErrorsHeader", map[string]any{"Count": len(report.Errors)}, len(report.Errors)))
		for _, f := range report.Errors {
			fmt.Printf("  ✗ [%s] %s\n", f.Kind, f.Message)
		}
		fmt.Println()
	}

	if len(report.Warnings) > 0 {
		fmt.Println(i18n.T("ValidateWarningsHeader", map[string]any{"Count": len(report.Warnings)}, len(report.Warnings)))
		for _, f := range report.Warnings {
			fmt.Printf("  ! [%s] %s\n", f.Kind, f.Message)
		}
		fmt.Println()
	}

	if report.Valid {
		fmt.Println(i18n.T("ValidationPassed", map[string]any{"Warnings": len(report.Warnings)}))
		return nil
	}

	return fmt.Errorf("%s", i18n.T("ValidationFailed", map[string]any{"Count": len(report.Errors)}, len(report.Errors)))
}
