package manifest

import (
	"fmt"
	"regexp"
)

// Finding kinds reported by Validate. These are stable identifiers for
// programmatic consumers; Message carries the human-readable detail.
const (
	KindMissingManifestVersion = "missing_manifest_version"
	KindBadManifestVersion     = "bad_manifest_version"
	KindMissingName            = "missing_name"
	KindNameTooLong            = "name_too_long"
	KindMissingVersion         = "missing_version"
	KindBadVersion             = "bad_version"
	KindMissingDescription     = "missing_description"
	KindDescriptionTooLong     = "description_too_long"
	KindMissingIcons           = "missing_icons"
	KindBroadHostAccess        = "broad_host_access"
	KindTabsWithoutActiveTab   = "tabs_without_active_tab"
	KindBackgroundNoWorker     = "background_no_service_worker"
	KindBackgroundPersistent   = "background_persistent"
	KindContentScriptNoMatches = "content_script_no_matches"
	KindContentScriptNoSource  = "content_script_no_source"
	KindDeprecatedAction       = "deprecated_action"
)

// Chrome Web Store limits
const (
	maxNameLength        = 45
	maxDescriptionLength = 132
)

// Finding is a single validation error or warning
type Finding struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Report is the result of validating a manifest. Valid is false when at
// least one error-level finding is present; warnings never block.
type Report struct {
	Valid    bool      `json:"valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

var versionPattern = regexp.MustCompile(`^\d+(\.\d+){0,3}$`)

// deprecated manifest v2 action variants, superseded by "action"
var deprecatedActionKeys = []string{"browser_action", "page_action"}

// Validate checks a manifest for structural validity. It is pure and
// total: any manifest value produces a report, never an error.
func Validate(m *Manifest) Report {
	var errors, warnings []Finding

	addError := func(kind, format string, args ...any) {
		errors = append(errors, Finding{Kind: kind, Message: fmt.Sprintf(format, args...)})
	}
	addWarning := func(kind, format string, args ...any) {
		warnings = append(warnings, Finding{Kind: kind, Message: fmt.Sprintf(format, args...)})
	}

	switch m.ManifestVersion {
	case 0:
		addError(KindMissingManifestVersion, "missing manifest_version")
	case 3:
		// ok
	default:
		addError(KindBadManifestVersion, "manifest_version must be 3, got %d", m.ManifestVersion)
	}

	if m.Name == "" {
		addError(KindMissingName, "missing required field: name")
	} else if len(m.Name) > maxNameLength {
		addWarning(KindNameTooLong, "name exceeds %d characters and will be rejected by the Web Store", maxNameLength)
	}

	if m.Version == "" {
		addError(KindMissingVersion, "missing required field: version")
	} else if !versionPattern.MatchString(m.Version) {
		addError(KindBadVersion, "version %q must be 1-4 dot-separated integers", m.Version)
	}

	if m.Description == "" {
		addWarning(KindMissingDescription, "missing description")
	} else if len(m.Description) > maxDescriptionLength {
		addWarning(KindDescriptionTooLong, "description exceeds %d characters", maxDescriptionLength)
	}

	if len(m.Icons) == 0 {
		addWarning(KindMissingIcons, "no icons declared")
	}

	if HasBroadHostAccess(m.HostPermissions) {
		addWarning(KindBroadHostAccess, "host_permissions grant access to all sites")
	}

	if m.HasPermission("tabs") && !m.HasPermission("activeTab") {
		addWarning(KindTabsWithoutActiveTab, `"tabs" without "activeTab"; prefer the narrower scope`)
	}

	if m.Background != nil {
		if m.Background.ServiceWorker == "" {
			addError(KindBackgroundNoWorker, "background requires a service_worker in manifest v3")
		}
		if m.Background.Persistent != nil {
			addError(KindBackgroundPersistent, "background.persistent is not supported in manifest v3")
		}
	}

	for i, cs := range m.ContentScripts {
		if len(cs.Matches) == 0 {
			addError(KindContentScriptNoMatches, "content_scripts[%d] declares no matches", i)
		}
		if len(cs.JS) == 0 && len(cs.CSS) == 0 {
			addWarning(KindContentScriptNoSource, "content_scripts[%d] has neither js nor css", i)
		}
	}

	for _, key := range deprecatedActionKeys {
		if _, ok := m.Extra[key]; ok {
			addError(KindDeprecatedAction, "%q is manifest v2 only; use \"action\"", key)
		}
	}

	return Report{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// broad host patterns that match effectively every origin
var broadHostPatterns = []string{"<all_urls>", "*://*/*"}

// HasBroadHostAccess reports whether the host permission list grants
// access to all sites, either via a single broad wildcard or via the
// http/https wildcard pair.
func HasBroadHostAccess(hosts []string) bool {
	var http, https bool
	for _, h := range hosts {
		for _, broad := range broadHostPatterns {
			if h == broad {
				return true
			}
		}
		switch h {
		case "http://*/*":
			http = true
		case "https://*/*":
			https = true
		}
	}
	return http && https
}
