package manifest

// AuditReport scores the permission surface of a manifest. Score is always
// in [0, 100]; higher means a narrower, lower-risk permission set. The
// report only informs, it never fails a composition.
type AuditReport struct {
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

// flat deductions per risky permission
const (
	deductionBroadHost = 30
	deductionTabs      = 15
	deductionHistory   = 10
	deductionCookies   = 10
)

// Audit scores a manifest's declared permissions. Pure and total.
func Audit(m *Manifest) AuditReport {
	if len(m.Permissions) == 0 && len(m.HostPermissions) == 0 {
		return AuditReport{
			Score:           100,
			Recommendations: []string{"Minimal permissions: the extension requests no access beyond its own pages"},
		}
	}

	score := 100
	var recs []string

	if HasBroadHostAccess(m.HostPermissions) {
		score -= deductionBroadHost
		recs = append(recs, "Broad host access requested; narrow host_permissions to the origins you need")
	}

	if m.HasPermission("tabs") && !m.HasPermission("activeTab") {
		score -= deductionTabs
		recs = append(recs, `Replace "tabs" with "activeTab" unless you need metadata for every open tab`)
	}

	if m.HasPermission("history") {
		score -= deductionHistory
		recs = append(recs, `"history" exposes full browsing history; make sure this is essential`)
	}

	if m.HasPermission("cookies") {
		score -= deductionCookies
		recs = append(recs, `"cookies" grants cross-site cookie access; scope host_permissions tightly`)
	}

	if m.HasPermission("activeTab") {
		recs = append(recs, `Good: "activeTab" limits page access to explicit user invocations`)
	}

	if m.HasPermission("storage") && !m.HasPermission("unlimitedStorage") {
		recs = append(recs, `Good: "storage" without "unlimitedStorage" keeps quota bounded`)
	}

	if score < 0 {
		score = 0
	}

	return AuditReport{Score: score, Recommendations: recs}
}
