package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditNoPermissions(t *testing.T) {
	report := Audit(&Manifest{ManifestVersion: 3, Name: "ext", Version: "1.0"})

	assert.Equal(t, 100, report.Score)
	require.Len(t, report.Recommendations, 1)
	assert.Contains(t, report.Recommendations[0], "Minimal permissions")
}

func TestAuditDeductions(t *testing.T) {
	tests := []struct {
		name      string
		manifest  Manifest
		wantScore int
	}{
		{
			name:      "broad host access",
			manifest:  Manifest{HostPermissions: []string{"<all_urls>"}},
			wantScore: 70,
		},
		{
			name:      "tabs without activeTab",
			manifest:  Manifest{Permissions: []string{"tabs"}},
			wantScore: 85,
		},
		{
			name:      "tabs with activeTab",
			manifest:  Manifest{Permissions: []string{"tabs", "activeTab"}},
			wantScore: 100,
		},
		{
			name:      "history",
			manifest:  Manifest{Permissions: []string{"history"}},
			wantScore: 90,
		},
		{
			name:      "cookies",
			manifest:  Manifest{Permissions: []string{"cookies"}},
			wantScore: 90,
		},
		{
			name: "everything risky at once",
			manifest: Manifest{
				Permissions:     []string{"tabs", "history", "cookies"},
				HostPermissions: []string{"<all_urls>"},
			},
			wantScore: 35,
		},
		{
			name:      "narrow host only",
			manifest:  Manifest{HostPermissions: []string{"https://example.com/*"}},
			wantScore: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Audit(&tt.manifest)
			assert.Equal(t, tt.wantScore, report.Score)
		})
	}
}

func TestAuditScoreNeverNegative(t *testing.T) {
	// Deductions sum past 100 must clamp at 0; with the current table the
	// worst case is 35, so this guards the clamp path for future additions.
	m := Manifest{
		Permissions:     []string{"tabs", "history", "cookies"},
		HostPermissions: []string{"<all_urls>"},
	}
	report := Audit(&m)
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
}

func TestAuditPositiveRecommendations(t *testing.T) {
	m := Manifest{Permissions: []string{"activeTab", "storage"}}

	report := Audit(&m)
	assert.Equal(t, 100, report.Score)

	joined := strings.Join(report.Recommendations, "\n")
	assert.Contains(t, joined, `"activeTab"`)
	assert.Contains(t, joined, `"storage"`)
}

func TestAuditStorageWithUnlimitedStorage(t *testing.T) {
	m := Manifest{Permissions: []string{"storage", "unlimitedStorage"}}

	report := Audit(&m)
	joined := strings.Join(report.Recommendations, "\n")
	assert.NotContains(t, joined, "quota bounded")
}
