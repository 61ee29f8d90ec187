package cmd

import (
	"fmt"

	"github.com/crxforge/crxforge/internal/i18n"
	"github.com/crxforge/crxforge/internal/manifest"
	"github.com/crxforge/crxforge/internal/project"
	"github.com/spf13/cobra"
)

var auditDir string

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Score a project's permission risk",
	Long: `Score a project's declared permissions on a 0-100 scale.

Broad host access and high-risk API permissions lower the score;
the report lists concrete recommendations. The audit only informs,
it never fails.

Example:
  crxforge audit
  crxforge audit --dir ./my-extension`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditDir, "dir", ".", "project directory")
}

func runAudit(cmd *cobra.Command, args []string) error {
	proj, err := project.LoadDir(auditDir)
	if err != nil {
		return err
	}

	m, err := proj.Manifest()
	if err != nil {
		return err
	}

	report := manifest.Audit(m)

	fmt.Println(i18n.T("AuditScore", map[string]any{"Score": report.Score}))
	fmt.Println()

	for _, rec := range report.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}

	return nil
}
