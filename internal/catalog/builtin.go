package catalog

import (
	"encoding/json"

	"github.com/crxforge/crxforge/internal/manifest"
)

// builtinDescriptors is the feature set shipped with crxforge. Fragments
// are fixed strings so re-composing is deterministic.
var builtinDescriptors = []Descriptor{
	{
		ID:          "storage",
		Title:       "Local storage",
		Description: "Persist key/value data with chrome.storage.local",
		Keywords:    []string{"persist", "save", "data"},
		Grants:      []string{"storage"},
		TargetFile:  "popup.js",
		Marker:      "function saveData",
		Fragment: `// storage helpers
function saveData(key, value) {
  return chrome.storage.local.set({ [key]: value });
}

function loadData(key) {
  return chrome.storage.local.get(key).then((items) => items[key]);
}`,
	},
	{
		ID:                 "contextMenu",
		Title:              "Context menu entry",
		Description:        "Add a right-click menu item for selected text",
		Keywords:           []string{"right-click", "menu", "selection"},
		Grants:             []string{"contextMenus"},
		RequiresBackground: true,
		TargetFile:         "background.js",
		Marker:             "chrome.contextMenus.create",
		Fragment: `chrome.runtime.onInstalled.addListener(() => {
  chrome.contextMenus.create({
    id: "crxforge-selection",
    title: "Send selection to extension",
    contexts: ["selection"],
  });
});

chrome.contextMenus.onClicked.addListener((info) => {
  console.log("context menu:", info.menuItemId, info.selectionText);
});`,
	},
	{
		ID:                 "notifications",
		Title:              "Desktop notifications",
		Description:        "Show system notifications from the service worker",
		Keywords:           []string{"notify", "alert", "toast"},
		Grants:             []string{"notifications"},
		RequiresBackground: true,
		TargetFile:         "background.js",
		Marker:             "chrome.notifications.create",
		Fragment: `function notify(title, message) {
  chrome.notifications.create({
    type: "basic",
    iconUrl: "icon.png",
    title,
    message,
  });
}`,
	},
	{
		ID:                 "alarms",
		Title:              "Periodic alarms",
		Description:        "Run work on a schedule with chrome.alarms",
		Keywords:           []string{"schedule", "timer", "interval"},
		Grants:             []string{"alarms"},
		RequiresBackground: true,
		TargetFile:         "background.js",
		Marker:             "chrome.alarms.create",
		Fragment: `chrome.alarms.create("tick", { periodInMinutes: 1 });

chrome.alarms.onAlarm.addListener((alarm) => {
  console.log("alarm fired:", alarm.name);
});`,
	},
	{
		ID:          "tabs",
		Title:       "Tab access",
		Description: "Query and manipulate open browser tabs",
		Keywords:    []string{"tab", "window", "query"},
		Grants:      []string{"tabs"},
		TargetFile:  "popup.js",
		Marker:      "chrome.tabs.query",
		Fragment: `async function currentTab() {
  const [tab] = await chrome.tabs.query({ active: true, currentWindow: true });
  return tab;
}`,
	},
	{
		ID:          "activeTab",
		Title:       "Active tab access",
		Description: "Access the current tab only when the user invokes the extension",
		Keywords:    []string{"tab", "scoped", "minimal"},
		Grants:      []string{"activeTab"},
	},
	{
		ID:          "clipboard",
		Title:       "Clipboard write",
		Description: "Copy text to the system clipboard",
		Keywords:    []string{"copy", "paste"},
		Grants:      []string{"clipboardWrite"},
		TargetFile:  "popup.js",
		Marker:      "navigator.clipboard.writeText",
		Fragment: `function copyToClipboard(text) {
  return navigator.clipboard.writeText(text);
}`,
	},
	{
		ID:          "bookmarks",
		Title:       "Bookmark access",
		Description: "Read and create bookmarks",
		Keywords:    []string{"favorites"},
		Grants:      []string{"bookmarks"},
		TargetFile:  "popup.js",
		Marker:      "chrome.bookmarks.getTree",
		Fragment: `function allBookmarks() {
  return chrome.bookmarks.getTree();
}`,
	},
	{
		ID:          "downloads",
		Title:       "Download files",
		Description: "Start downloads programmatically",
		Keywords:    []string{"save", "file"},
		Grants:      []string{"downloads"},
		TargetFile:  "popup.js",
		Marker:      "chrome.downloads.download",
		Fragment: `function download(url, filename) {
  return chrome.downloads.download({ url, filename });
}`,
	},
	{
		ID:          "history",
		Title:       "History access",
		Description: "Search the user's browsing history",
		Keywords:    []string{"visited", "urls"},
		Grants:      []string{"history"},
		TargetFile:  "popup.js",
		Marker:      "chrome.history.search",
		Fragment: `function recentHistory(query) {
  return chrome.history.search({ text: query || "", maxResults: 20 });
}`,
	},
	{
		ID:          "cookies",
		Title:       "Cookie access",
		Description: "Read cookies for permitted hosts",
		Keywords:    []string{"session", "auth"},
		Grants:      []string{"cookies"},
		TargetFile:  "popup.js",
		Marker:      "chrome.cookies.getAll",
		Fragment: `function cookiesFor(domain) {
  return chrome.cookies.getAll({ domain });
}`,
	},
	{
		ID:          "scripting",
		Title:       "Script injection",
		Description: "Inject scripts into the active tab on demand",
		Keywords:    []string{"inject", "execute"},
		Grants:      []string{"scripting"},
		HostAccess:  HostAccessActiveTab,
		TargetFile:  "popup.js",
		Marker:      "chrome.scripting.executeScript",
		Fragment: `async function runInActiveTab(fn) {
  const [tab] = await chrome.tabs.query({ active: true, currentWindow: true });
  return chrome.scripting.executeScript({ target: { tabId: tab.id }, func: fn });
}`,
	},
	{
		ID:          "commands",
		Title:       "Keyboard shortcut",
		Description: "Bind a keyboard shortcut to the extension action",
		Keywords:    []string{"hotkey", "shortcut"},
		Mutate:      addExecuteActionCommand,
	},
	{
		ID:                 "badge",
		Title:              "Action badge",
		Description:        "Show a counter badge on the toolbar icon",
		Keywords:           []string{"counter", "icon"},
		RequiresBackground: true,
		TargetFile:         "background.js",
		Marker:             "chrome.action.setBadgeText",
		Fragment: `function setBadge(count) {
  chrome.action.setBadgeText({ text: count > 0 ? String(count) : "" });
}`,
	},
}

// addExecuteActionCommand declares the default keyboard shortcut for the
// toolbar action. Existing command declarations are left untouched.
func addExecuteActionCommand(m *manifest.Manifest) {
	if m.Commands == nil {
		m.Commands = make(map[string]json.RawMessage)
	}
	if _, ok := m.Commands["_execute_action"]; ok {
		return
	}
	m.Commands["_execute_action"] = json.RawMessage(`{"suggested_key":{"default":"Ctrl+Shift+Y","mac":"Command+Shift+Y"}}`)
}

// Builtin returns a registry containing only the shipped features
func Builtin() *Registry {
	return MustNewRegistry(builtinDescriptors)
}
