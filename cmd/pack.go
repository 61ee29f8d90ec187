package cmd

import (
	"fmt"
	"os"

	"github.com/crxforge/crxforge/internal/i18n"
	"github.com/crxforge/crxforge/internal/manifest"
	"github.com/crxforge/crxforge/internal/pack"
	"github.com/crxforge/crxforge/internal/project"
	"github.com/spf13/cobra"
)

var (
	packDir    string
	packOutput string
	packForce  bool
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Zip a project for distribution",
	Long: `Pack a project's files into a zip archive suitable for upload.

The manifest is validated first; packing fails on validation errors
unless --force is given.

Example:
  crxforge pack
  crxforge pack --dir ./my-extension -o my-extension.zip`,
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringVar(&packDir, "dir", ".", "project directory")
	packCmd.Flags().StringVarP(&packOutput, "output", "o", "", "output zip path (default <name>.zip)")
	packCmd.Flags().BoolVar(&packForce, "force", false, "pack even when validation fails")
}

func runPack(cmd *cobra.Command, args []string) error {
	proj, err := project.LoadDir(packDir)
	if err != nil {
		return err
	}

	m, err := proj.Manifest()
	if err != nil {
		return err
	}

	report := manifest.Validate(m)
	if !report.Valid && !packForce {
		for _, f := range report.Errors {
			fmt.Printf("  ✗ [%s] %s\n", f.Kind, f.Message)
		}
		return fmt.Errorf("%s", i18n.T("PackBlocked", map[string]any{"Count": len(report.Errors)}, len(report.Errors)))
	}

	output := packOutput
	if output == "" {
		output = proj.Name + ".zip"
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pack.Write(f, proj); err != nil {
		os.Remove(output)
		return err
	}

	fmt.Println(i18n.T("PackSuccess", map[string]any{
		"Path":  output,
		"Count": len(proj.Files),
	}, len(proj.Files)))
	return nil
}
