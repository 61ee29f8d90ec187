package compose

import (
	"fmt"
	"strings"

	"github.com/crxforge/crxforge/internal/scaffold"
)

// ExtensionType selects the manifest shape for the extension's entry point
type ExtensionType string

const (
	// TypeNone leaves the entry point alone
	TypeNone ExtensionType = ""
	// TypeContentScript injects a script into matched pages
	TypeContentScript ExtensionType = "content-script"
	// TypePopup opens a popup from the toolbar action
	TypePopup ExtensionType = "popup"
	// TypeSidePanel opens the browser side panel
	TypeSidePanel ExtensionType = "side-panel"
	// TypePageAction exposes a plain toolbar action without a popup
	TypePageAction ExtensionType = "page-action"
)

// HostMode selects which origins the extension may access
type HostMode string

const (
	// HostModeNone leaves host permissions alone
	HostModeNone HostMode = ""
	// HostModeActiveTab grants the activeTab permission
	HostModeActiveTab HostMode = "active-tab"
	// HostModeAllURLs grants the <all_urls> host permission
	HostModeAllURLs HostMode = "all-urls"
	// HostModeCustom grants the patterns in Selection.HostPatterns
	HostModeCustom HostMode = "custom"
)

// Framework selects a UI framework whose boilerplate replaces the popup
// entry files. FrameworkNone leaves them alone.
type Framework string

// FrameworkNone leaves the UI files alone
const FrameworkNone Framework = ""

// Identity carries optional name/description overrides
type Identity struct {
	Name        string
	Description string
}

// Selection is one composition request: which features to add and how to
// shape the project. The zero value is the legal no-op selection.
type Selection struct {
	Features     []string
	Type         ExtensionType
	HostMode     HostMode
	HostPatterns []string // only read when HostMode is HostModeCustom
	Framework    Framework
	Identity     Identity
}

// IsZero reports whether the selection requests no change at all
func (s Selection) IsZero() bool {
	return len(s.Features) == 0 &&
		s.Type == TypeNone &&
		s.HostMode == HostModeNone &&
		s.Framework == FrameworkNone &&
		s.Identity == (Identity{})
}

// ParseExtensionType validates a CLI-supplied extension type
func ParseExtensionType(value string) (ExtensionType, error) {
	switch t := ExtensionType(value); t {
	case TypeNone, TypeContentScript, TypePopup, TypeSidePanel, TypePageAction:
		return t, nil
	}
	return TypeNone, fmt.Errorf("unknown extension type %q (valid: content-script, popup, side-panel, page-action)", value)
}

// ParseHostMode validates a CLI-supplied host mode
func ParseHostMode(value string) (HostMode, error) {
	switch m := HostMode(value); m {
	case HostModeNone, HostModeActiveTab, HostModeAllURLs, HostModeCustom:
		return m, nil
	}
	return HostModeNone, fmt.Errorf("unknown host mode %q (valid: active-tab, all-urls, custom)", value)
}

// ParseFramework validates a CLI-supplied framework name
func ParseFramework(value string) (Framework, error) {
	if value == "" {
		return FrameworkNone, nil
	}
	if !scaffold.IsFramework(value) {
		return FrameworkNone, fmt.Errorf("unknown framework %q (valid: %s)", value, strings.Join(scaffold.Frameworks(), ", "))
	}
	return Framework(value), nil
}
